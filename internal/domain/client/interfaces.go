package client

import "context"

// Repository provides persistence for clients.
type Repository interface {
	GetAll(ctx context.Context) ([]Client, error)
	GetByID(ctx context.Context, id int) (*Client, error)
	Create(ctx context.Context, c *Client) error
	Update(ctx context.Context, c *Client) error
	Delete(ctx context.Context, id int) error
}
