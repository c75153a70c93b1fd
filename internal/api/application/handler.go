package application

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/futig/touchdown/internal/entity"
	"github.com/futig/touchdown/internal/pkg/logger"
	"github.com/futig/touchdown/internal/pkg/response"
	"github.com/futig/touchdown/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type Handler struct {
	usecase   ApplicationUsecase
	validator *validator.Validator
}

func NewHandler(usecase ApplicationUsecase, validator *validator.Validator) *Handler {
	return &Handler{
		usecase:   usecase,
		validator: validator,
	}
}

// GetQuestions handles GET /questions
func (h *Handler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.usecase.Questions(r.Context()))
}

// StartApplication handles POST /applications - open a new draft
func (h *Handler) StartApplication(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "StartApplication")

	state, err := h.usecase.Start(ctx)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Created(w, state)
}

// GetApplication handles GET /applications/{id}
func (h *Handler) GetApplication(w http.ResponseWriter, r *http.Request) {
	ctx, id := h.applicationContext(r, "GetApplication")

	ctxzap.Debug(ctx, "fetching application")

	state, err := h.usecase.Get(ctx, id)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, state)
}

// UpdateField handles PUT /applications/{id}/fields/{field}
func (h *Handler) UpdateField(w http.ResponseWriter, r *http.Request) {
	ctx, id := h.applicationContext(r, "UpdateField")
	field := entity.Field(chi.URLParam(r, "field"))

	var req entity.UpdateFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if err := h.validator.ValidateUpdateField(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "validation failed", err)
		return
	}

	state, err := h.usecase.UpdateField(ctx, id, field, *req.Value)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, state)
}

// SelectOption handles PUT /applications/{id}/choices/{field}
func (h *Handler) SelectOption(w http.ResponseWriter, r *http.Request) {
	ctx, id := h.applicationContext(r, "SelectOption")
	field := entity.Field(chi.URLParam(r, "field"))

	req, ok := h.decodeOption(ctx, w, r)
	if !ok {
		return
	}

	state, err := h.usecase.SelectSingle(ctx, id, field, req.Option)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, state)
}

// ToggleLoveLanguage handles POST /applications/{id}/love-languages/toggle
func (h *Handler) ToggleLoveLanguage(w http.ResponseWriter, r *http.Request) {
	ctx, id := h.applicationContext(r, "ToggleLoveLanguage")

	req, ok := h.decodeOption(ctx, w, r)
	if !ok {
		return
	}

	state, err := h.usecase.ToggleLoveLanguage(ctx, id, req.Option)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, state)
}

// Submit handles POST /applications/{id}/submit.
// A failed relay call still answers 200; the state carries the error message.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx, id := h.applicationContext(r, "Submit")

	ctxzap.Info(ctx, "submitting application")

	// The relay call runs to completion even if the client goes away.
	state, err := h.usecase.Submit(logger.Detach(ctx), id)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, state)
}

func (h *Handler) applicationContext(r *http.Request, action string) (context.Context, string) {
	id := chi.URLParam(r, "id")
	ctx := logger.AddFields(r.Context(),
		zap.String("application_id", id),
		zap.String("action", action),
	)
	return ctx, id
}

func (h *Handler) decodeOption(ctx context.Context, w http.ResponseWriter, r *http.Request) (*entity.SelectOptionRequest, bool) {
	var req entity.SelectOptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return nil, false
	}

	if err := h.validator.ValidateSelectOption(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "validation failed", err)
		return nil, false
	}

	return &req, true
}

func (h *Handler) respondError(ctx context.Context, w http.ResponseWriter, status int, message string, err error) {
	if status >= http.StatusInternalServerError {
		ctxzap.Error(ctx, message, zap.Error(err))
	} else {
		ctxzap.Warn(ctx, message, zap.Error(err))
	}
	response.JSON(w, status, entity.ErrorResponse{
		Error:   http.StatusText(status),
		Message: message + ": " + err.Error(),
	})
}

func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrApplicationNotFound):
		h.respondError(ctx, w, http.StatusNotFound, "resource not found", err)
	case errors.Is(err, entity.ErrUnknownField) || errors.Is(err, entity.ErrInvalidOption) ||
		errors.Is(err, entity.ErrMissingField) || errors.Is(err, entity.ErrInvalidFormat):
		h.respondError(ctx, w, http.StatusBadRequest, "invalid parameter", err)
	case errors.Is(err, entity.ErrFormSubmitted) || errors.Is(err, entity.ErrSubmitInProgress) ||
		errors.Is(err, entity.ErrExtraNotAvailable):
		h.respondError(ctx, w, http.StatusConflict, "invalid application state", err)
	default:
		h.respondError(ctx, w, http.StatusInternalServerError, "internal server error", err)
	}
}
