// Package handler provides the HTTP handlers for the forms feature.
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"agroform_backend/internal/api"
	"agroform_backend/internal/feature/forms/domain/entity"
	"agroform_backend/internal/feature/forms/transport/http/dto"
	"agroform_backend/internal/feature/forms/usecase"
	jwtmw "agroform_backend/internal/platform/jwt"
)

// FormUsecase defines the form operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type FormUsecase interface {
	Create(ctx context.Context, ownerID uint, in usecase.CreateFormInput) (*entity.Form, error)
	List(ctx context.Context) ([]entity.Form, error)
	GetByID(ctx context.Context, id uint) (*entity.Form, error)
	Update(ctx context.Context, id, actorID uint, in usecase.UpdateFormInput) (*entity.Form, error)
	Delete(ctx context.Context, id, actorID uint) error
}

// FormHandler handles HTTP requests for form operations.
type FormHandler struct {
	forms FormUsecase
}

// NewFormHandler creates a new FormHandler instance.
func NewFormHandler(forms FormUsecase) *FormHandler {
	return &FormHandler{forms: forms}
}

// Create handles POST /create-form. Requires authentication; the
// authenticated user becomes the form's owner.
func (h *FormHandler) Create(c *gin.Context) {
	actorID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication required"})
		return
	}

	var req dto.CreateFormReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("form validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.FieldErrors(err))
		return
	}

	form, err := h.forms.Create(c.Request.Context(), actorID, usecase.CreateFormInput{
		Email:    req.Email,
		Region:   req.Region,
		Place:    req.Place,
		Topic:    req.Topic,
		Question: req.Question,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidTopic) {
			c.JSON(http.StatusBadRequest, api.FieldError("topic", topicChoiceError(req.Topic)))
			return
		}
		slog.Error("form save failed", "error", err, "user_id", actorID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to save form."})
		return
	}

	c.JSON(http.StatusCreated, dto.FormItemFromEntity(form))
}

// List handles GET /forms.
func (h *FormHandler) List(c *gin.Context) {
	forms, err := h.forms.List(c.Request.Context())
	if err != nil {
		slog.Error("form list failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to list forms."})
		return
	}

	out := make([]dto.FormItem, 0, len(forms))
	for i := range forms {
		out = append(out, dto.FormItemFromEntity(&forms[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Get handles GET /form/:id.
func (h *FormHandler) Get(c *gin.Context) {
	id, ok := formID(c)
	if !ok {
		return
	}

	form, err := h.forms.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrFormNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Form not found"})
			return
		}
		slog.Error("form fetch failed", "error", err, "form_id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "An unexpected error occurred."})
		return
	}

	c.JSON(http.StatusOK, dto.FormItemFromEntity(form))
}

// Update handles PUT /form/:id with partial-update semantics.
// Only the owner may update.
func (h *FormHandler) Update(c *gin.Context) {
	actorID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication required"})
		return
	}
	id, ok := formID(c)
	if !ok {
		return
	}

	var req dto.UpdateFormReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.FieldErrors(err))
		return
	}

	form, err := h.forms.Update(c.Request.Context(), id, actorID, usecase.UpdateFormInput{
		Email:    req.Email,
		Region:   req.Region,
		Place:    req.Place,
		Topic:    req.Topic,
		Question: req.Question,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrFormNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Form not found"})
		case errors.Is(err, usecase.ErrNotOwner):
			c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "You do not have permission to modify this form"})
		case errors.Is(err, usecase.ErrInvalidTopic):
			topic := ""
			if req.Topic != nil {
				topic = *req.Topic
			}
			c.JSON(http.StatusBadRequest, api.FieldError("topic", topicChoiceError(topic)))
		default:
			slog.Error("form update failed", "error", err, "form_id", id, "user_id", actorID)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update form."})
		}
		return
	}

	c.JSON(http.StatusOK, dto.FormItemFromEntity(form))
}

// Delete handles DELETE /form/:id. Only the owner may delete; the
// form's comments are removed with it.
func (h *FormHandler) Delete(c *gin.Context) {
	actorID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication required"})
		return
	}
	id, ok := formID(c)
	if !ok {
		return
	}

	if err := h.forms.Delete(c.Request.Context(), id, actorID); err != nil {
		switch {
		case errors.Is(err, usecase.ErrFormNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Form not found"})
		case errors.Is(err, usecase.ErrNotOwner):
			c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "You do not have permission to modify this form"})
		default:
			slog.Error("form delete failed", "error", err, "form_id", id, "user_id", actorID)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to delete form."})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// currentUserID extracts the authenticated user's ID set by the JWT middleware.
func currentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(jwtmw.ContextUserID)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// formID parses the :id path segment, answering 404 on garbage input
// since no form can exist at such a path.
func formID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Form not found"})
		return 0, false
	}
	return uint(id), true
}

func topicChoiceError(topic string) string {
	return fmt.Sprintf("%q is not a valid choice.", topic)
}
