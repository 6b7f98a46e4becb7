package invoice_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rpggio/fieldbook/internal/domain/invoice"
	"github.com/rpggio/fieldbook/internal/domain/signing"
	"github.com/rpggio/fieldbook/internal/repository"
	"github.com/rpggio/fieldbook/internal/repository/mocks"
	"github.com/rpggio/fieldbook/internal/validation"
)

const testBaseURL = "https://fieldbook.example.com"

func newTestService(repo invoice.Repository) *invoice.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return invoice.NewService(repo, testBaseURL, logger)
}

func TestInvoiceService_Create_Defaults(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.InvoiceRepository{}
	repo.On("Create", ctx, mock.Anything).Return(nil)

	svc := newTestService(repo)
	inv, err := svc.Create(ctx, invoice.CreateRequest{
		ClientID: validation.FormValue("3"),
		Subtotal: validation.FormValue("850"),
		Tax:      validation.FormValue("68"),
		Total:    validation.FormValue("918"),
	})
	require.NoError(t, err)

	require.Equal(t, invoice.StatusDraft, inv.Status)
	require.Equal(t, signing.StatusUnsigned, inv.SigningStatus)
	require.Nil(t, inv.PaidDate)
	require.Equal(t, 3, inv.ClientID)
	require.Equal(t, 918.0, inv.Total)
	require.True(t, strings.HasPrefix(inv.InvoiceNumber, "INV-"))
	require.True(t, strings.HasPrefix(inv.Name, "Invoice "))
	require.Equal(t, time.Now().Format("2006-01-02"), inv.IssueDate)
	repo.AssertExpectations(t)
}

func TestInvoiceService_Create_ValidationFails(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.InvoiceRepository{}

	svc := newTestService(repo)
	_, err := svc.Create(ctx, invoice.CreateRequest{
		ClientID: validation.FormValue("0"),
	})
	require.Error(t, err)

	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Fields, "client_id")
	require.Contains(t, verr.Fields, "total")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestInvoiceService_UpdateStatus_PaidStampsDate(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.InvoiceRepository{}
	repo.On("GetByID", ctx, 1).Return(&invoice.Invoice{
		ID: 1, ClientID: 3, Total: 918, Status: invoice.StatusSent,
		SigningStatus: signing.StatusUnsigned,
	}, nil)
	repo.On("Update", ctx, mock.Anything).Return(nil)

	svc := newTestService(repo)
	inv, err := svc.UpdateStatus(ctx, 1, invoice.StatusPaid)
	require.NoError(t, err)
	require.Equal(t, invoice.StatusPaid, inv.Status)
	require.NotNil(t, inv.PaidDate)
	require.Equal(t, time.Now().Format("2006-01-02"), *inv.PaidDate)
}

func TestInvoiceService_UpdateStatus_KeepsExistingPaidDate(t *testing.T) {
	ctx := context.Background()
	paid := "2025-01-02"
	repo := &mocks.InvoiceRepository{}
	repo.On("GetByID", ctx, 1).Return(&invoice.Invoice{
		ID: 1, ClientID: 3, Status: invoice.StatusOverdue, PaidDate: &paid,
	}, nil)
	repo.On("Update", ctx, mock.Anything).Return(nil)

	svc := newTestService(repo)
	inv, err := svc.UpdateStatus(ctx, 1, invoice.StatusPaid)
	require.NoError(t, err)
	require.Equal(t, paid, *inv.PaidDate)
}

func TestInvoiceService_UpdateStatus_Invalid(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.InvoiceRepository{}

	svc := newTestService(repo)
	_, err := svc.UpdateStatus(ctx, 1, invoice.Status("cancelled"))
	require.ErrorIs(t, err, invoice.ErrInvalidStatus)
}

func TestInvoiceService_GenerateSigningLink(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.InvoiceRepository{}
	repo.On("GetByID", ctx, 1).Return(&invoice.Invoice{
		ID: 1, ClientID: 3, SigningStatus: signing.StatusUnsigned,
	}, nil)
	repo.On("Update", ctx, mock.Anything).Return(nil)

	svc := newTestService(repo)
	res, err := svc.GenerateSigningLink(ctx, 1)
	require.NoError(t, err)

	require.Len(t, res.SigningToken, signing.TokenLength)
	require.Equal(t, testBaseURL+"/sign/invoice/"+res.SigningToken, res.SigningLink)
	require.NotNil(t, res.Invoice.SigningToken)
	require.NotNil(t, res.Invoice.LinkCreatedAt)
	require.Equal(t, signing.StatusUnsigned, res.Invoice.SigningStatus)
}

func TestInvoiceService_GenerateSigningLink_Idempotent(t *testing.T) {
	ctx := context.Background()
	token := "ExistingToken0000000000000000000"
	link := testBaseURL + "/sign/invoice/" + token
	repo := &mocks.InvoiceRepository{}
	repo.On("GetByID", ctx, 1).Return(&invoice.Invoice{
		ID: 1, ClientID: 3, SigningToken: &token, SigningLink: &link,
	}, nil)

	svc := newTestService(repo)
	res, err := svc.GenerateSigningLink(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, token, res.SigningToken)
	require.Equal(t, link, res.SigningLink)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestInvoiceService_GenerateSigningLink_RecomputesMissingLink(t *testing.T) {
	// Imported records can carry a signing token without a stored link; the
	// link is derived state and must be filled in, not dereferenced.
	ctx := context.Background()
	token := "ImportedToken0000000000000000000"
	repo := &mocks.InvoiceRepository{}
	repo.On("GetByID", ctx, 4).Return(&invoice.Invoice{
		ID: 4, ClientID: 3, SigningToken: &token,
	}, nil)
	var stored *invoice.Invoice
	repo.On("Update", ctx, mock.Anything).Run(func(args mock.Arguments) {
		stored = args.Get(1).(*invoice.Invoice)
	}).Return(nil)

	svc := newTestService(repo)
	res, err := svc.GenerateSigningLink(ctx, 4)
	require.NoError(t, err)

	want := testBaseURL + "/sign/invoice/" + token
	require.Equal(t, token, res.SigningToken)
	require.Equal(t, want, res.SigningLink)
	require.NotNil(t, stored)
	require.Equal(t, want, *stored.SigningLink)
	require.NotNil(t, stored.LinkCreatedAt)
}

func TestInvoiceService_GetBySigningToken(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.InvoiceRepository{}
	repo.On("GetBySigningToken", ctx, "missing").Return(nil, repository.ErrInvalidToken)

	svc := newTestService(repo)

	_, err := svc.GetBySigningToken(ctx, "")
	require.ErrorIs(t, err, invoice.ErrInvalidToken)

	_, err = svc.GetBySigningToken(ctx, "missing")
	require.ErrorIs(t, err, invoice.ErrInvalidToken)
}

func TestInvoiceService_UpdateSigningStatus_SignedPromotesToPaid(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.InvoiceRepository{}
	repo.On("GetByID", ctx, 1).Return(&invoice.Invoice{
		ID: 1, ClientID: 3, Status: invoice.StatusSent,
		SigningStatus: signing.StatusUnsigned,
	}, nil)

	var stored *invoice.Invoice
	repo.On("Update", ctx, mock.Anything).Run(func(args mock.Arguments) {
		stored = args.Get(1).(*invoice.Invoice)
	}).Return(nil)

	svc := newTestService(repo)
	inv, err := svc.UpdateSigningStatus(ctx, 1, signing.StatusSigned)
	require.NoError(t, err)

	// the paired status change goes to the store as one write
	require.Equal(t, signing.StatusSigned, stored.SigningStatus)
	require.Equal(t, invoice.StatusPaid, stored.Status)
	require.NotNil(t, stored.SignedAt)
	require.NotNil(t, stored.PaidDate)
	require.Equal(t, stored, inv)
}

func TestInvoiceService_UpdateSigningStatus_AlreadySignedIsNoop(t *testing.T) {
	ctx := context.Background()
	signedAt := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	repo := &mocks.InvoiceRepository{}
	repo.On("GetByID", ctx, 1).Return(&invoice.Invoice{
		ID: 1, ClientID: 3, Status: invoice.StatusPaid,
		SigningStatus: signing.StatusSigned, SignedAt: &signedAt,
	}, nil)

	svc := newTestService(repo)
	inv, err := svc.UpdateSigningStatus(ctx, 1, signing.StatusSigned)
	require.NoError(t, err)
	require.True(t, inv.SignedAt.Equal(signedAt))
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestInvoiceService_Get_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.InvoiceRepository{}
	repo.On("GetByID", ctx, 99).Return(nil, repository.ErrNotFound)

	svc := newTestService(repo)
	_, err := svc.Get(ctx, 99)
	require.ErrorIs(t, err, invoice.ErrInvoiceNotFound)
}

func TestInvoiceService_Delete_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.InvoiceRepository{}
	repo.On("Delete", ctx, 99).Return(repository.ErrNotFound)

	svc := newTestService(repo)
	err := svc.Delete(ctx, 99)
	require.ErrorIs(t, err, invoice.ErrInvoiceNotFound)
}
