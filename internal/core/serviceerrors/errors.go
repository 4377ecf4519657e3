package serviceerrors

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	KindNotFound ErrorKind = iota
	KindConflict
	KindUnprocessableEntity
	KindInvalidRequest
	KindInsufficientStock
	KindConsistency
)

func IsOfKind(err error, kind ErrorKind) bool {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Kind == kind
	}
	return false
}

type ServiceError struct {
	Kind    ErrorKind
	Message string
	// ProductID names the offending product on stock errors.
	ProductID string
}

func (e *ServiceError) Error() string {
	return e.Message
}

func NewNotFoundError(message string) *ServiceError {
	return &ServiceError{Kind: KindNotFound, Message: message}
}

func NewConflictError(message string) *ServiceError {
	return &ServiceError{Kind: KindConflict, Message: message}
}

func NewUnprocessableEntityError(message string) *ServiceError {
	return &ServiceError{Kind: KindUnprocessableEntity, Message: message}
}

func NewInvalidRequestError(message string) *ServiceError {
	return &ServiceError{Kind: KindInvalidRequest, Message: message}
}

func NewInsufficientStockError(productID string) *ServiceError {
	return &ServiceError{
		Kind:      KindInsufficientStock,
		Message:   fmt.Sprintf("insufficient stock for product %s", productID),
		ProductID: productID,
	}
}

// NewConsistencyError marks a conditional stock update that lost a race.
// Callers compensate already-applied decrements and surface the failure
// as insufficient stock.
func NewConsistencyError(productID string) *ServiceError {
	return &ServiceError{
		Kind:      KindConsistency,
		Message:   fmt.Sprintf("concurrent stock update conflict for product %s", productID),
		ProductID: productID,
	}
}
