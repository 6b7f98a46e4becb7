package transport

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rpggio/fieldbook/internal/domain/appointment"
	"github.com/rpggio/fieldbook/internal/domain/client"
	"github.com/rpggio/fieldbook/internal/domain/invoice"
	"github.com/rpggio/fieldbook/internal/domain/project"
	"github.com/rpggio/fieldbook/internal/domain/proposal"
)

// Repositories gives the import endpoints direct store access: imported
// records are already normalized, so they bypass form validation.
type Repositories struct {
	Clients      client.Repository
	Projects     project.Repository
	Invoices     invoice.Repository
	Proposals    proposal.Repository
	Appointments appointment.Repository
}

// Config bundles the dependencies of the HTTP server.
type Config struct {
	Clients      *client.Service
	Projects     *project.Service
	Invoices     *invoice.Service
	Proposals    *proposal.Service
	Appointments *appointment.Service
	Repos        Repositories
	Logger       *slog.Logger
}

// Server wires HTTP handlers.
type Server struct {
	clients      *client.Service
	projects     *project.Service
	invoices     *invoice.Service
	proposals    *proposal.Service
	appointments *appointment.Service
	repos        Repositories
	logger       *slog.Logger
}

// NewServer creates the API router with middleware.
func NewServer(cfg Config) *chi.Mux {
	s := &Server{
		clients:      cfg.Clients,
		projects:     cfg.Projects,
		invoices:     cfg.Invoices,
		proposals:    cfg.Proposals,
		appointments: cfg.Appointments,
		repos:        cfg.Repos,
		logger:       cfg.Logger,
	}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(RequestLogger(cfg.Logger))

	r.Route("/api", func(r chi.Router) {
		r.Route("/clients", func(r chi.Router) {
			r.Get("/", s.listClients)
			r.Post("/", s.createClient)
			r.Post("/import", s.importClients)
			r.Get("/{id}", s.getClient)
			r.Patch("/{id}", s.updateClient)
			r.Delete("/{id}", s.deleteClient)
			r.Patch("/{id}/status", s.updateClientStatus)
		})
		r.Route("/projects", func(r chi.Router) {
			r.Get("/", s.listProjects)
			r.Post("/", s.createProject)
			r.Post("/import", s.importProjects)
			r.Get("/{id}", s.getProject)
			r.Patch("/{id}", s.updateProject)
			r.Delete("/{id}", s.deleteProject)
			r.Patch("/{id}/status", s.updateProjectStatus)
		})
		r.Route("/invoices", func(r chi.Router) {
			r.Get("/", s.listInvoices)
			r.Post("/", s.createInvoice)
			r.Post("/import", s.importInvoices)
			r.Get("/{id}", s.getInvoice)
			r.Patch("/{id}", s.updateInvoice)
			r.Delete("/{id}", s.deleteInvoice)
			r.Patch("/{id}/status", s.updateInvoiceStatus)
			r.Post("/{id}/signing-link", s.generateInvoiceLink)
		})
		r.Route("/proposals", func(r chi.Router) {
			r.Get("/", s.listProposals)
			r.Post("/", s.createProposal)
			r.Post("/import", s.importProposals)
			r.Get("/{id}", s.getProposal)
			r.Patch("/{id}", s.updateProposal)
			r.Delete("/{id}", s.deleteProposal)
			r.Patch("/{id}/status", s.updateProposalStatus)
			r.Post("/{id}/signing-link", s.generateProposalLink)
		})
		r.Route("/appointments", func(r chi.Router) {
			r.Get("/", s.listAppointments)
			r.Post("/", s.createAppointment)
			r.Post("/import", s.importAppointments)
			r.Get("/{id}", s.getAppointment)
			r.Patch("/{id}", s.updateAppointment)
			r.Delete("/{id}", s.deleteAppointment)
			r.Patch("/{id}/status", s.updateAppointmentStatus)
		})
	})

	// Public signer surface: token-addressed, unauthenticated.
	r.Get("/sign/{kind}/{token}", s.resolveSigning)
	r.Post("/sign/{kind}/{token}", s.submitSigning)

	r.Get("/health", s.handleHealth)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// pathID parses the {id} URL parameter, writing a 400 on failure.
func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

// queryClientID parses an optional client_id filter. The second result is
// false when the parameter is present but unusable.
func queryClientID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("client_id")
	if raw == "" {
		return 0, true
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid client_id")
		return 0, false
	}
	return id, true
}
