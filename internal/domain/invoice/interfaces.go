package invoice

import "context"

// Repository provides persistence for invoices.
type Repository interface {
	GetAll(ctx context.Context) ([]Invoice, error)
	GetByID(ctx context.Context, id int) (*Invoice, error)
	GetByClientID(ctx context.Context, clientID int) ([]Invoice, error)
	GetBySigningToken(ctx context.Context, token string) (*Invoice, error)
	Create(ctx context.Context, inv *Invoice) error
	Update(ctx context.Context, inv *Invoice) error
	Delete(ctx context.Context, id int) error
}
