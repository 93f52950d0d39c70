//go:generate mockgen -source ./server.go -destination=./mocks/server.go -package=mock_server
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nanumteam/nanum/internal/delivery"
	"github.com/nanumteam/nanum/internal/donation"
	"github.com/nanumteam/nanum/internal/metrics"
	"github.com/nanumteam/nanum/internal/repository"
)

type Engine interface {
	Create(ctx context.Context, params donation.CreateParams) (*repository.Donation, error)
	AdminApprove(ctx context.Context, donationID uuid.UUID) ([]donation.Event, error)
	AdminReject(ctx context.Context, donationID uuid.UUID, reason string) ([]donation.Event, error)
	AdminReset(ctx context.Context, donationID uuid.UUID) error
	AdminAssignOrganization(ctx context.Context, donationID, orgID uuid.UUID, carrier, trackingNumber *string) error
	OrgApprove(ctx context.Context, donationID, orgID uuid.UUID, carrier, trackingNumber *string) ([]donation.Event, error)
	OrgReject(ctx context.Context, donationID, orgID uuid.UUID) ([]donation.Event, error)
	DonorCancel(ctx context.Context, donationID uuid.UUID, reason string) ([]donation.Event, error)
	GetView(ctx context.Context, donationID uuid.UUID) (*donation.View, error)
	ListDonorViews(ctx context.Context, donorID uuid.UUID) ([]donation.View, error)
	ListOrganizationViews(ctx context.Context, orgID uuid.UUID) ([]donation.View, error)
}

type DeliveryManager interface {
	Create(ctx context.Context, params delivery.CreateParams) (*repository.Delivery, error)
	UpdateStatus(ctx context.Context, deliveryID uuid.UUID, newStatus repository.DeliveryStatus) error
	UpdateFields(ctx context.Context, deliveryID uuid.UUID, params delivery.UpdateFieldsParams) error
	GetByID(ctx context.Context, deliveryID uuid.UUID) (*repository.Delivery, error)
	GetByDonation(ctx context.Context, donationID uuid.UUID) (*repository.Delivery, error)
	ListByStatus(ctx context.Context, status repository.DeliveryStatus) ([]*repository.Delivery, error)
	ListByDonor(ctx context.Context, donorID uuid.UUID) ([]*repository.Delivery, error)
}

type Notifier interface {
	Dispatch(ctx context.Context, events []donation.Event)
}

type OrganizationGate interface {
	GetApproved(ctx context.Context) ([]*repository.Organization, error)
}

type UserRepo interface {
	ValidateUser(ctx context.Context, username, password string) (bool, error)
}

type NotificationStore interface {
	GetByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]*repository.Notification, error)
}

type Server struct {
	engine        Engine
	deliveries    DeliveryManager
	notifier      Notifier
	orgs          OrganizationGate
	userRepo      UserRepo
	notifications NotificationStore
	server        *http.Server
}

func New(engine Engine, deliveries DeliveryManager, notifier Notifier, orgs OrganizationGate, userRepo UserRepo, notifications NotificationStore) *Server {
	return &Server{
		engine:        engine,
		deliveries:    deliveries,
		notifier:      notifier,
		orgs:          orgs,
		userRepo:      userRepo,
		notifications: notifications,
	}
}

func (s *Server) Run(ctx context.Context, port string) error {
	router := s.setupRoutes()

	s.server = &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Printf("Server starting on port %s", port)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("Shutting down server...")
	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	log.Println("HTTP server shutdown completed")
	return nil
}

func (s *Server) setupRoutes() http.Handler {
	router := mux.NewRouter()
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := router.PathPrefix("/").Subrouter()
	api.Use(s.basicAuthMiddleware)

	api.HandleFunc("/donations", s.handleCreateDonation).Methods(http.MethodPost)
	api.HandleFunc("/donations/{id}", s.handleGetDonation).Methods(http.MethodGet)
	api.HandleFunc("/donations/{id}/cancel", s.handleDonorCancel).Methods(http.MethodPost)
	api.HandleFunc("/donations/{id}/delivery", s.handleGetDonationDelivery).Methods(http.MethodGet)
	api.HandleFunc("/users/{userID}/donations", s.handleListDonorDonations).Methods(http.MethodGet)
	api.HandleFunc("/users/{userID}/deliveries", s.handleListDonorDeliveries).Methods(http.MethodGet)
	api.HandleFunc("/users/{userID}/notifications", s.handleListUserNotifications).Methods(http.MethodGet)

	api.HandleFunc("/admin/donations/{id}/approve", s.handleAdminApprove).Methods(http.MethodPost)
	api.HandleFunc("/admin/donations/{id}/reject", s.handleAdminReject).Methods(http.MethodPost)
	api.HandleFunc("/admin/donations/{id}/reset", s.handleAdminReset).Methods(http.MethodPost)
	api.HandleFunc("/admin/donations/{id}/assign", s.handleAdminAssign).Methods(http.MethodPost)

	api.HandleFunc("/org/{orgID}/donations", s.handleListOrgDonations).Methods(http.MethodGet)
	api.HandleFunc("/org/{orgID}/donations/{id}/approve", s.handleOrgApprove).Methods(http.MethodPost)
	api.HandleFunc("/org/{orgID}/donations/{id}/reject", s.handleOrgReject).Methods(http.MethodPost)

	api.HandleFunc("/organizations", s.handleListOrganizations).Methods(http.MethodGet)

	api.HandleFunc("/deliveries", s.handleCreateDelivery).Methods(http.MethodPost)
	api.HandleFunc("/deliveries", s.handleListDeliveries).Methods(http.MethodGet)
	api.HandleFunc("/deliveries/{id}", s.handleGetDelivery).Methods(http.MethodGet)
	api.HandleFunc("/deliveries/{id}", s.handleUpdateDeliveryFields).Methods(http.MethodPatch)
	api.HandleFunc("/deliveries/{id}/status", s.handleUpdateDeliveryStatus).Methods(http.MethodPut)

	return router
}

func (s *Server) basicAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if !ok {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		valid, err := s.userRepo.ValidateUser(r.Context(), username, password)
		if err != nil || !valid {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondEngineError maps the engine's sentinel errors to HTTP statuses.
// Validation and state errors carry displayable messages; anything else
// becomes a generic 500 so internals do not leak.
func respondEngineError(w http.ResponseWriter, operation string, err error) {
	metrics.OperationErrorsTotal.WithLabelValues(operation).Inc()
	switch {
	case errors.Is(err, repository.ErrObjectNotFound):
		respondError(w, http.StatusNotFound, "Error: "+err.Error())
	case errors.Is(err, repository.ErrInvalidState), errors.Is(err, repository.ErrAlreadyExists):
		respondError(w, http.StatusConflict, "Error: "+err.Error())
	case errors.Is(err, repository.ErrValidation):
		respondError(w, http.StatusBadRequest, "Error: "+err.Error())
	default:
		log.Printf("Internal error during %s: %v", operation, err)
		respondError(w, http.StatusInternalServerError, "Internal error")
	}
}

func pathUUID(r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)[name])
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
