// Package handler provides the HTTP handlers for the comments feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"agroform_backend/internal/api"
	"agroform_backend/internal/feature/comments/domain/entity"
	"agroform_backend/internal/feature/comments/transport/http/dto"
	"agroform_backend/internal/feature/comments/usecase"
)

// CommentUsecase defines the comment operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type CommentUsecase interface {
	ListByForm(ctx context.Context, formID uint) ([]entity.Comment, error)
	Create(ctx context.Context, formID uint, text string) (*entity.Comment, error)
}

// CommentHandler handles HTTP requests for comment operations.
type CommentHandler struct {
	comments CommentUsecase
}

// NewCommentHandler creates a new CommentHandler instance.
func NewCommentHandler(comments CommentUsecase) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// ListByForm handles GET /form/:id/comments.
// A missing parent form answers 404, like GET /form/:id itself.
func (h *CommentHandler) ListByForm(c *gin.Context) {
	formID, ok := parentFormID(c)
	if !ok {
		return
	}

	comments, err := h.comments.ListByForm(c.Request.Context(), formID)
	if err != nil {
		if errors.Is(err, usecase.ErrFormNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Form not found"})
			return
		}
		slog.Error("comment list failed", "error", err, "form_id", formID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to list comments."})
		return
	}

	out := make([]dto.CommentItem, 0, len(comments))
	for i := range comments {
		out = append(out, dto.CommentItemFromEntity(&comments[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Create handles POST /form/:id/comments. The parent form comes from
// the path; a "form" field in the body is ignored.
func (h *CommentHandler) Create(c *gin.Context) {
	formID, ok := parentFormID(c)
	if !ok {
		return
	}

	var req dto.CreateCommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.FieldErrors(err))
		return
	}

	comment, err := h.comments.Create(c.Request.Context(), formID, req.Text)
	if err != nil {
		if errors.Is(err, usecase.ErrFormNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Form not found"})
			return
		}
		slog.Error("comment save failed", "error", err, "form_id", formID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to save comment."})
		return
	}

	c.JSON(http.StatusCreated, dto.CommentItemFromEntity(comment))
}

// parentFormID parses the :id path segment, answering 404 on garbage
// input since no form can exist at such a path.
func parentFormID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Form not found"})
		return 0, false
	}
	return uint(id), true
}
