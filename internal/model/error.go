package model

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON       = "INVALID_JSON"
	ErrCodeDuplicateItem     = "DUPLICATE_ITEM"
	ErrCodeItemNotInCart     = "ITEM_NOT_IN_CART"
	ErrCodeProductNotFound   = "PRODUCT_NOT_FOUND"
	ErrCodeInsufficientStock = "INSUFFICIENT_STOCK"
	ErrCodeInvalidQuantity   = "INVALID_QUANTITY"
	ErrCodeMissingAddress    = "MISSING_ADDRESS"
	ErrCodeEmptyCart         = "EMPTY_CART"
	ErrCodeInvalidPromoCode  = "INVALID_PROMO_CODE"
	ErrCodeOrderNotFound     = "ORDER_NOT_FOUND"
	ErrCodeUnauthorised      = "UNAUTHORIZED"
	ErrCodeInternalError     = "INTERNAL_ERROR"
)

// DomainError is a business-rule violation. Domain operations report these as
// return values so callers can map them deterministically to responses;
// only unexpected storage failures travel as plain wrapped errors.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrDuplicateItem     = NewDomainError(ErrCodeDuplicateItem, "Product already in the cart")
	ErrItemNotInCart     = NewDomainError(ErrCodeItemNotInCart, "Product not in the cart")
	ErrProductNotFound   = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrInsufficientStock = NewDomainError(ErrCodeInsufficientStock, "Low stock for item")
	ErrInvalidQuantity   = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrMissingAddress    = NewDomainError(ErrCodeMissingAddress, "Address is required")
	ErrEmptyCart         = NewDomainError(ErrCodeEmptyCart, "Cart is empty")
	ErrInvalidPromoCode  = NewDomainError(ErrCodeInvalidPromoCode, "Promo code is not valid")
	ErrOrderNotFound     = NewDomainError(ErrCodeOrderNotFound, "Order not found")
)
