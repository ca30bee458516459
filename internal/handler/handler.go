package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/partnerlink/partnerlink/docs" // Import generated docs
	"github.com/partnerlink/partnerlink/internal/domain"
	"github.com/partnerlink/partnerlink/internal/handler/dto"
	"github.com/partnerlink/partnerlink/internal/middleware"
	"github.com/partnerlink/partnerlink/internal/repository"
	"github.com/partnerlink/partnerlink/internal/service"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	pool           *pgxpool.Pool
	agendaService  *service.AgendaService
	taskService    *service.ManualTaskService
	statsRepo      *repository.StatsRepository
	authMiddleware *middleware.AuthMiddleware
}

// New creates a new Handler instance with all dependencies.
func New(pool *pgxpool.Pool, calendar *service.Calendar) *Handler {
	// Create repositories
	manualTaskRepo := repository.NewManualTaskRepository(pool)
	userRepo := repository.NewUserRepository(pool)

	// Create services
	agendaService := service.NewAgendaService(
		repository.NewWorkOrderRepository(pool),
		repository.NewContactLogRepository(pool),
		manualTaskRepo,
		repository.NewVendorRepository(pool),
		calendar,
	)
	taskService := service.NewManualTaskService(pool, manualTaskRepo, calendar)

	return &Handler{
		pool:           pool,
		agendaService:  agendaService,
		taskService:    taskService,
		statsRepo:      repository.NewStatsRepository(pool),
		authMiddleware: middleware.NewAuthMiddleware(userRepo),
	}
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Health check
	mux.HandleFunc("GET /healthz", h.handleHealthz)

	// Swagger UI
	mux.HandleFunc("GET /swagger/", httpSwagger.Handler())

	// API v1 routes with authentication
	mux.Handle("GET /api/v1/calendar", h.authenticated(h.handleGetCalendar))
	mux.Handle("GET /api/v1/agenda", h.authenticated(h.handleGetAgenda))
	mux.Handle("POST /api/v1/tasks", h.authenticated(h.handleCreateTask))
	mux.Handle("GET /api/v1/tasks/{id}", h.authenticated(h.handleGetTask))
	mux.Handle("POST /api/v1/tasks/{id}/toggle", h.authenticated(h.handleToggleTask))
	mux.Handle("DELETE /api/v1/tasks/{id}", h.authenticated(h.handleDeleteTask))
	mux.Handle("GET /api/v1/stats", h.authenticated(h.handleGetStats))
}

func (h *Handler) authenticated(fn http.HandlerFunc) http.Handler {
	return h.authMiddleware.Authenticate(fn)
}

// handleHealthz returns 200 OK if the database is reachable.
func (h *Handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.pool.Ping(ctx); err != nil {
		slog.Error("database health check failed", "error", err)
		http.Error(w, "database unavailable", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// Ping checks if the database is reachable (used for testing).
func (h *Handler) Ping(ctx context.Context) error {
	return h.pool.Ping(ctx)
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// respondError writes a standard error response.
func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, dto.NewErrorResponse(code, message))
}

// respondDomainError maps err through dto.MapDomainError.
func respondDomainError(w http.ResponseWriter, err error) {
	status, code, message := dto.MapDomainError(err)
	respondError(w, status, code, message)
}

// currentUser extracts the authenticated user, answering 401 when absent.
func currentUser(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	user, err := middleware.GetUserFromContext(r.Context())
	if err != nil {
		respondError(w, http.StatusUnauthorized, "INVALID_TOKEN", "Authentication required")
		return nil, false
	}
	return user, true
}

// extractTaskID extracts the unified task id from the path.
// Returns ("", false) when missing; the error has already been sent.
func extractTaskID(w http.ResponseWriter, r *http.Request) (string, bool) {
	taskID := r.PathValue("id")
	if taskID == "" {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "task id is required")
		return "", false
	}
	return taskID, true
}

// parseMonthParam reads ?month=YYYY-MM, defaulting to the current business month.
func (h *Handler) parseMonthParam(r *http.Request) (int, time.Month, error) {
	raw := r.URL.Query().Get("month")
	if raw == "" {
		today := h.agendaService.Today()
		return today.Year, today.Month, nil
	}
	return domain.ParseMonth(raw)
}

// decodeJSON decodes the request body. Date fields that fail their own
// validation surface as domain validation errors.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			respondDomainError(w, err)
			return false
		}
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return false
	}
	return true
}
