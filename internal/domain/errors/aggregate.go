package errors

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// NoLineItemsError is returned by the order-value computation when the order
// has no line items. The empty case is a failure here, unlike the other
// aggregates which report zero.
type NoLineItemsError struct {
	OrderID uuid.UUID
}

// Error implements the error interface.
func (e *NoLineItemsError) Error() string {
	return fmt.Sprintf("no line items found for order %s", e.OrderID)
}

// HTTPCode returns the HTTP status code.
func (e *NoLineItemsError) HTTPCode() int {
	return http.StatusUnprocessableEntity
}

// ErrorCode returns the business error code.
func (e *NoLineItemsError) ErrorCode() string {
	return "ORDER_HAS_NO_LINE_ITEMS"
}

// Message returns the user-friendly error message.
func (e *NoLineItemsError) Message() string {
	return "order has no line items to value"
}

// Details returns detailed error information.
func (e *NoLineItemsError) Details() string {
	return e.Error()
}

// MissingProductError is returned by the order-value computation when a line
// item's product reference cannot be resolved, for example after the product
// row was deleted while the order still pointed at it. The offending line
// item is identified by its own ID; no partial total is produced.
type MissingProductError struct {
	LineItemID uuid.UUID
}

// Error implements the error interface.
func (e *MissingProductError) Error() string {
	return fmt.Sprintf("product not found for line item %s", e.LineItemID)
}

// HTTPCode returns the HTTP status code.
func (e *MissingProductError) HTTPCode() int {
	return http.StatusConflict
}

// ErrorCode returns the business error code.
func (e *MissingProductError) ErrorCode() string {
	return "LINE_ITEM_PRODUCT_MISSING"
}

// Message returns the user-friendly error message.
func (e *MissingProductError) Message() string {
	return "a line item references a product that no longer exists"
}

// Details returns detailed error information.
func (e *MissingProductError) Details() string {
	return e.Error()
}
