package orders

// CodeLength is the number of digits in a delivery confirmation code.
const CodeLength = 6

// DeliveryCode is the one-time code a consumer hands to the handler.
type DeliveryCode struct {
	OrderID int64
	Code    string
}

// ValidCode reports whether code is exactly CodeLength ASCII digits.
func ValidCode(code string) bool {
	if len(code) != CodeLength {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}
	return true
}
