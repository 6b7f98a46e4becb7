package proposal

import "context"

// Repository provides persistence for proposals.
type Repository interface {
	GetAll(ctx context.Context) ([]Proposal, error)
	GetByID(ctx context.Context, id int) (*Proposal, error)
	GetByClientID(ctx context.Context, clientID int) ([]Proposal, error)
	GetBySigningToken(ctx context.Context, token string) (*Proposal, error)
	Create(ctx context.Context, p *Proposal) error
	Update(ctx context.Context, p *Proposal) error
	Delete(ctx context.Context, id int) error
}
