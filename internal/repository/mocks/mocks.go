package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rpggio/fieldbook/internal/domain/appointment"
	"github.com/rpggio/fieldbook/internal/domain/client"
	"github.com/rpggio/fieldbook/internal/domain/invoice"
	"github.com/rpggio/fieldbook/internal/domain/project"
	"github.com/rpggio/fieldbook/internal/domain/proposal"
)

// ClientRepository is a mock for client.Repository.
type ClientRepository struct {
	mock.Mock
}

func (m *ClientRepository) GetAll(ctx context.Context) ([]client.Client, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]client.Client); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ClientRepository) GetByID(ctx context.Context, id int) (*client.Client, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*client.Client); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ClientRepository) Create(ctx context.Context, c *client.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *ClientRepository) Update(ctx context.Context, c *client.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *ClientRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// ProjectRepository is a mock for project.Repository.
type ProjectRepository struct {
	mock.Mock
}

func (m *ProjectRepository) GetAll(ctx context.Context) ([]project.Project, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]project.Project); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) GetByID(ctx context.Context, id int) (*project.Project, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*project.Project); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) GetByClientID(ctx context.Context, clientID int) ([]project.Project, error) {
	args := m.Called(ctx, clientID)
	if list, ok := args.Get(0).([]project.Project); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) Create(ctx context.Context, p *project.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProjectRepository) Update(ctx context.Context, p *project.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProjectRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// InvoiceRepository is a mock for invoice.Repository.
type InvoiceRepository struct {
	mock.Mock
}

func (m *InvoiceRepository) GetAll(ctx context.Context) ([]invoice.Invoice, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]invoice.Invoice); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *InvoiceRepository) GetByID(ctx context.Context, id int) (*invoice.Invoice, error) {
	args := m.Called(ctx, id)
	if inv, ok := args.Get(0).(*invoice.Invoice); ok {
		return inv, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *InvoiceRepository) GetByClientID(ctx context.Context, clientID int) ([]invoice.Invoice, error) {
	args := m.Called(ctx, clientID)
	if list, ok := args.Get(0).([]invoice.Invoice); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *InvoiceRepository) GetBySigningToken(ctx context.Context, token string) (*invoice.Invoice, error) {
	args := m.Called(ctx, token)
	if inv, ok := args.Get(0).(*invoice.Invoice); ok {
		return inv, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *InvoiceRepository) Create(ctx context.Context, inv *invoice.Invoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *InvoiceRepository) Update(ctx context.Context, inv *invoice.Invoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *InvoiceRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// ProposalRepository is a mock for proposal.Repository.
type ProposalRepository struct {
	mock.Mock
}

func (m *ProposalRepository) GetAll(ctx context.Context) ([]proposal.Proposal, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]proposal.Proposal); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProposalRepository) GetByID(ctx context.Context, id int) (*proposal.Proposal, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*proposal.Proposal); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProposalRepository) GetByClientID(ctx context.Context, clientID int) ([]proposal.Proposal, error) {
	args := m.Called(ctx, clientID)
	if list, ok := args.Get(0).([]proposal.Proposal); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProposalRepository) GetBySigningToken(ctx context.Context, token string) (*proposal.Proposal, error) {
	args := m.Called(ctx, token)
	if p, ok := args.Get(0).(*proposal.Proposal); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProposalRepository) Create(ctx context.Context, p *proposal.Proposal) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProposalRepository) Update(ctx context.Context, p *proposal.Proposal) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProposalRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// AppointmentRepository is a mock for appointment.Repository.
type AppointmentRepository struct {
	mock.Mock
}

func (m *AppointmentRepository) GetAll(ctx context.Context) ([]appointment.Appointment, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]appointment.Appointment); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AppointmentRepository) GetByID(ctx context.Context, id int) (*appointment.Appointment, error) {
	args := m.Called(ctx, id)
	if a, ok := args.Get(0).(*appointment.Appointment); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AppointmentRepository) GetByClientID(ctx context.Context, clientID int) ([]appointment.Appointment, error) {
	args := m.Called(ctx, clientID)
	if list, ok := args.Get(0).([]appointment.Appointment); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AppointmentRepository) GetByDate(ctx context.Context, date string) ([]appointment.Appointment, error) {
	args := m.Called(ctx, date)
	if list, ok := args.Get(0).([]appointment.Appointment); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AppointmentRepository) Create(ctx context.Context, a *appointment.Appointment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *AppointmentRepository) Update(ctx context.Context, a *appointment.Appointment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *AppointmentRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
