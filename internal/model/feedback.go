package model

type FeedbackType string

const (
	FeedbackFarm    FeedbackType = "FARM"
	FeedbackProduct FeedbackType = "PRODUCT"
)

// FeedbackRequest is the body of POST /feedback. Farm ratings carry FarmName,
// product ratings carry ProductID and ProductName.
type FeedbackRequest struct {
	OrderID      int64        `json:"orderId"`
	FeedbackType FeedbackType `json:"feedbackType"`
	Rating       int          `json:"rating"`
	Comment      string       `json:"comment"`
	FarmID       int64        `json:"farmId"`
	FarmName     string       `json:"farmName,omitempty"`
	ProductID    int64        `json:"productId,omitempty"`
	ProductName  string       `json:"productName,omitempty"`
}

// Feedback is a rating as returned by GET /feedback/farmer.
type Feedback struct {
	ID           int64        `json:"id"`
	OrderID      int64        `json:"orderId"`
	FeedbackType FeedbackType `json:"feedbackType"`
	Rating       int          `json:"rating"`
	Comment      string       `json:"comment"`
	FarmID       int64        `json:"farmId"`
	FarmName     string       `json:"farmName,omitempty"`
	ProductName  string       `json:"productName,omitempty"`
	ConsumerName string       `json:"consumerName,omitempty"`
}

// IsProduct reports whether the rating targets a product rather than the farm.
func (f Feedback) IsProduct() bool {
	return f.ProductName != ""
}
