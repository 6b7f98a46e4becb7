package normalize

import (
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rpggio/fieldbook/internal/domain/appointment"
	"github.com/rpggio/fieldbook/internal/domain/client"
	"github.com/rpggio/fieldbook/internal/domain/invoice"
	"github.com/rpggio/fieldbook/internal/domain/project"
	"github.com/rpggio/fieldbook/internal/domain/proposal"
	"github.com/rpggio/fieldbook/internal/domain/signing"
)

func TestNumber(t *testing.T) {
	require.Equal(t, 42.5, Number("42.5", 0))
	require.Equal(t, 42.5, Number(42.5, 0))
	require.Equal(t, 7.0, Number(7, 0))

	// Unparsable and non-numeric inputs fall back to the default.
	require.Equal(t, 9.0, Number("not a number", 9))
	require.Equal(t, 9.0, Number(nil, 9))
	require.Equal(t, 9.0, Number(true, 9))
	require.Equal(t, 9.0, Number("", 9))
	require.Equal(t, 9.0, Number(math.NaN(), 9))
	require.Equal(t, 9.0, Number(math.Inf(1), 9))

	// Negative results clamp to zero.
	require.Equal(t, 0.0, Number("-12", 9))
	require.Equal(t, 0.0, Number(-3.5, 9))
}

func TestString(t *testing.T) {
	require.Equal(t, "hello", String("  hello  "))
	require.Equal(t, "", String(nil))
	require.Equal(t, "7", String(7))
	require.Equal(t, "", String(map[string]any{"nested": true}))
	require.Equal(t, "", String([]any{1, 2}))
}

func TestProject_AliasResolution(t *testing.T) {
	// snake_case wins over camelCase when both are present.
	raw := map[string]any{
		"Id":        float64(3),
		"title":     "Landscape Redesign",
		"client_id": float64(7),
		"clientId":  float64(99),
		"budget":    "2500",
		"startDate": "2025-03-01",
	}

	p := Project(raw)
	require.NotNil(t, p)
	require.Equal(t, 3, p.ID)
	require.Equal(t, "Landscape Redesign", p.Title)
	require.Equal(t, "Landscape Redesign", p.Name)
	require.Equal(t, 7, p.ClientID)
	require.Equal(t, 2500.0, p.Budget)
	require.Equal(t, "2025-03-01", p.StartDate)
	require.Equal(t, project.StatusPlanning, p.Status)
}

func TestProject_DropsMalformed(t *testing.T) {
	// No resolvable identifier.
	require.Nil(t, Project(map[string]any{"title": "No ID"}))
	require.Nil(t, Project(map[string]any{"Id": "abc", "title": "Bad ID"}))

	// No usable name or title.
	require.Nil(t, Project(map[string]any{"Id": float64(1)}))
	require.Nil(t, Project(map[string]any{"Id": float64(1), "title": "   "}))
}

func TestInvoice_SigningFieldsAbsentNotEmpty(t *testing.T) {
	inv := Invoice(map[string]any{
		"Id":   float64(1),
		"Name": "Invoice 1",
	})
	require.NotNil(t, inv)
	require.Nil(t, inv.SigningToken)
	require.Nil(t, inv.SigningLink)
	require.Nil(t, inv.PaidDate)
	require.Equal(t, "unsigned", string(inv.SigningStatus))

	inv = Invoice(map[string]any{
		"Id":            float64(2),
		"Name":          "Invoice 2",
		"signing_token": "tok",
		"signing_link":  "https://x/sign/invoice/tok",
	})
	require.NotNil(t, inv)
	require.NotNil(t, inv.SigningToken)
	require.Equal(t, "tok", *inv.SigningToken)
}

func TestInvoice_OrphanLinkDropped(t *testing.T) {
	// A stored link without its token is derived state gone stale; it is
	// dropped so a token-and-link pair is the only shape that survives.
	inv := Invoice(map[string]any{
		"Id":           float64(3),
		"Name":         "Invoice 3",
		"signing_link": "https://old-host/sign/invoice/tok",
	})
	require.NotNil(t, inv)
	require.Nil(t, inv.SigningToken)
	require.Nil(t, inv.SigningLink)

	// Token without link is kept; the link generator recomputes it.
	inv = Invoice(map[string]any{
		"Id":            float64(4),
		"Name":          "Invoice 4",
		"signing_token": "tok",
	})
	require.NotNil(t, inv)
	require.NotNil(t, inv.SigningToken)
	require.Nil(t, inv.SigningLink)
}

func TestStatusCoercion(t *testing.T) {
	// Out-of-enum statuses coerce to the kind's default so both store
	// backends accept the record.
	c := Client(map[string]any{"Id": float64(1), "Name": "C", "status": "archived"})
	require.NotNil(t, c)
	require.Equal(t, client.StatusActive, c.Status)

	p := Project(map[string]any{"Id": float64(1), "title": "P", "status": "cancelled"})
	require.NotNil(t, p)
	require.Equal(t, project.StatusPlanning, p.Status)

	inv := Invoice(map[string]any{
		"Id": float64(1), "Name": "I",
		"status":         "archived",
		"signing_status": "maybe",
	})
	require.NotNil(t, inv)
	require.Equal(t, invoice.StatusDraft, inv.Status)
	require.Equal(t, signing.StatusUnsigned, inv.SigningStatus)

	pr := Proposal(map[string]any{"Id": float64(1), "title": "Q", "status": "withdrawn"})
	require.NotNil(t, pr)
	require.Equal(t, proposal.StatusPending, pr.Status)

	a := Appointment(map[string]any{"Id": float64(1), "title": "A", "status": "postponed"})
	require.NotNil(t, a)
	require.Equal(t, appointment.StatusScheduled, a.Status)

	// Valid statuses pass through untouched.
	c = Client(map[string]any{"Id": float64(2), "Name": "C", "status": "inactive"})
	require.Equal(t, client.StatusInactive, c.Status)
}

func TestBatch_PartialSuccess(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	raws := []map[string]any{
		{"Id": float64(1), "title": "Valid One"},
		{"title": "Missing ID"},
		{"Id": float64(2), "title": "Valid Two"},
		{"Id": float64(3)},
	}

	projects, dropped := Batch(logger, "project", raws, Project)
	require.Len(t, projects, 2)
	require.Equal(t, 2, dropped)
	require.LessOrEqual(t, len(projects), len(raws))
	require.Equal(t, 1, projects[0].ID)
	require.Equal(t, 2, projects[1].ID)
}
