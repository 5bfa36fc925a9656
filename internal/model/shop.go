package model

import "github.com/shopspring/decimal"

type Product struct {
	ID          int64           `json:"id"`
	CropName    string          `json:"cropName"`
	ImageURL    string          `json:"imageUrl,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Available   bool            `json:"available"`
	Category    string          `json:"category"`
	Unit        string          `json:"unit"`
	Quantity    int             `json:"quantity"`
	Description string          `json:"description"`
}

// Title falls back the way the store listing does for unnamed products.
func (p Product) Title() string {
	if p.CropName == "" {
		return "No description"
	}
	return p.CropName
}

func (p Product) CategoryOrDefault() string {
	if p.Category == "" {
		return "Vegetables"
	}
	return p.Category
}

type CartItem struct {
	ID           int64           `json:"id"`
	ProductName  string          `json:"productName"`
	ProductImage string          `json:"productImage,omitempty"`
	ProductPrice decimal.Decimal `json:"productPrice"`
	Quantity     int             `json:"quantity"`
}

type Cart struct {
	Items      []CartItem      `json:"items"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

// Item finds a cart line by id.
func (c Cart) Item(id int64) (CartItem, bool) {
	for _, it := range c.Items {
		if it.ID == id {
			return it, true
		}
	}
	return CartItem{}, false
}

type AddToCartRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

type CartQuantityRequest struct {
	Quantity int `json:"quantity"`
}
