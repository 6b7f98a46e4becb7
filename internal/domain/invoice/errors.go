package invoice

import "errors"

var (
	// ErrInvoiceNotFound indicates the invoice doesn't exist.
	ErrInvoiceNotFound = errors.New("invoice not found")
	// ErrInvalidStatus indicates an unknown invoice status value.
	ErrInvalidStatus = errors.New("invalid invoice status")
	// ErrInvalidToken indicates a signing token that resolves to no invoice.
	ErrInvalidToken = errors.New("invalid signing token")
)
