// Package handler provides HTTP request handlers for the trigger server.
package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/webforgehq/outreach/internal/middleware"
	"github.com/webforgehq/outreach/internal/pipeline"
	"github.com/webforgehq/outreach/internal/repository"
)

const (
	errorCodeUnauthorized  = "UNAUTHORIZED"
	errorCodeRunInProgress = "RUN_IN_PROGRESS"
)

const (
	errorMessageUnauthorized  = "Missing or invalid trigger secret"
	errorMessageRunInProgress = "This pipeline action is already running"
	errorMessageMorningFailed = "Morning pipeline run failed"
	errorMessageSendFailed    = "Send pipeline run failed"
	errorMessageResetFailed   = "Reset pipeline run failed"
)

type errorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type healthResponse struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Redis     string    `json:"redis"`
	Timestamp time.Time `json:"timestamp"`
}

// Handler exposes the pipeline as cron-triggered HTTP endpoints. The
// endpoints are meant to be hit by an external cron service, so each one
// requires the shared trigger secret.
type Handler struct {
	orchestrator  *pipeline.Orchestrator
	repo          repository.Repository
	redisClient   *redis.Client
	triggerSecret string
	logger        *zap.Logger
}

func NewHandler(
	orchestrator *pipeline.Orchestrator,
	repo repository.Repository,
	redisClient *redis.Client,
	triggerSecret string,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		orchestrator:  orchestrator,
		repo:          repo,
		redisClient:   redisClient,
		triggerSecret: triggerSecret,
		logger:        logger,
	}
}

// TriggerMorning handles GET /cron/morning.
func (h *Handler) TriggerMorning(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(w, r) {
		return
	}

	summary, err := h.orchestrator.Morning(r.Context())
	if err != nil {
		h.handlePipelineError(w, r, err, errorMessageMorningFailed)
		return
	}

	render.JSON(w, r, summary)
}

// TriggerSend handles GET /cron/send.
func (h *Handler) TriggerSend(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(w, r) {
		return
	}

	summary, err := h.orchestrator.Send(r.Context())
	if err != nil {
		h.handlePipelineError(w, r, err, errorMessageSendFailed)
		return
	}

	render.JSON(w, r, summary)
}

// TriggerReset handles GET /cron/reset.
func (h *Handler) TriggerReset(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(w, r) {
		return
	}

	summary, err := h.orchestrator.Reset(r.Context())
	if err != nil {
		h.handlePipelineError(w, r, err, errorMessageResetFailed)
		return
	}

	render.JSON(w, r, summary)
}

// HealthCheck handles GET /health. No secret required; load balancers and
// uptime monitors hit this anonymously.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := healthResponse{
		Status:    "healthy",
		Database:  "up",
		Redis:     "up",
		Timestamp: time.Now(),
	}

	if err := h.repo.Ping(); err != nil {
		response.Status = "unhealthy"
		response.Database = "down"
	}

	if h.redisClient != nil {
		if err := h.redisClient.Ping(r.Context()).Err(); err != nil {
			response.Status = "unhealthy"
			response.Redis = "down"
		}
	}

	if response.Status != "healthy" {
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	render.JSON(w, r, response)
}

// authorized checks the trigger secret before any pipeline work starts.
func (h *Handler) authorized(w http.ResponseWriter, r *http.Request) bool {
	secret := r.URL.Query().Get("secret")
	if secret == "" || secret != h.triggerSecret {
		h.logger.Warn("Rejected trigger call",
			zap.String("path", r.URL.Path),
			zap.String("remote_addr", r.RemoteAddr))
		h.sendError(w, r, http.StatusUnauthorized, errorCodeUnauthorized, errorMessageUnauthorized)
		return false
	}
	return true
}

func (h *Handler) handlePipelineError(w http.ResponseWriter, r *http.Request, err error, message string) {
	if errors.Is(err, pipeline.ErrRunInProgress) {
		h.sendError(w, r, http.StatusConflict, errorCodeRunInProgress, errorMessageRunInProgress)
		return
	}

	requestID := middleware.GetRequestID(r.Context())
	h.logger.Error("Pipeline trigger failed",
		zap.String("request_id", requestID),
		zap.String("path", r.URL.Path),
		zap.Error(err))
	h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, message)
}

func (h *Handler) sendError(w http.ResponseWriter, r *http.Request, statusCode int, errorCode, message string) {
	render.Status(r, statusCode)
	render.JSON(w, r, errorResponse{
		Error:     errorCode,
		Message:   message,
		Timestamp: time.Now(),
	})
}
