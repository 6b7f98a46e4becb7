package project

import "context"

// Repository provides persistence for projects.
type Repository interface {
	GetAll(ctx context.Context) ([]Project, error)
	GetByID(ctx context.Context, id int) (*Project, error)
	GetByClientID(ctx context.Context, clientID int) ([]Project, error)
	Create(ctx context.Context, p *Project) error
	Update(ctx context.Context, p *Project) error
	Delete(ctx context.Context, id int) error
}
