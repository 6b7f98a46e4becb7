package appointment

import "context"

// Repository provides persistence for appointments.
type Repository interface {
	GetAll(ctx context.Context) ([]Appointment, error)
	GetByID(ctx context.Context, id int) (*Appointment, error)
	GetByClientID(ctx context.Context, clientID int) ([]Appointment, error)
	GetByDate(ctx context.Context, date string) ([]Appointment, error)
	Create(ctx context.Context, a *Appointment) error
	Update(ctx context.Context, a *Appointment) error
	Delete(ctx context.Context, id int) error
}
