package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"stocktrack/internal/repositories"
	"stocktrack/internal/services"
)

// CRUDService is the uniform shape every resource service exposes. M is the
// row model, C the create payload, P the patch payload.
type CRUDService[M, C, P any] interface {
	Create(ctx context.Context, req C) (*M, error)
	Get(ctx context.Context, id int64) (*M, error)
	Delete(ctx context.Context, id int64) (*M, error)
	Patch(ctx context.Context, id int64, req P) error
}

// ResourceHandlers serves the create/get/delete/patch surface for one entity.
// The four entities share this exact request shape; what differs per entity
// (field sets, required fields, foreign-key checks, constraint rules) lives
// in the payload types and the service behind it.
type ResourceHandlers[M, C, P any] struct {
	kind string
	svc  CRUDService[M, C, P]
	id   func(*M) int64
}

func NewResourceHandlers[M, C, P any](kind string, svc CRUDService[M, C, P], id func(*M) int64) *ResourceHandlers[M, C, P] {
	return &ResourceHandlers[M, C, P]{
		kind: kind,
		svc:  svc,
		id:   id,
	}
}

// Create handles POST. On success it answers 200 with the created entity's
// fields keyed by the assigned id.
func (h *ResourceHandlers[M, C, P]) Create(c echo.Context) error {
	var req C
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	m, err := h.svc.Create(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[int64]any{h.id(m): m})
}

// Get handles GET /:id.
func (h *ResourceHandlers[M, C, P]) Get(c echo.Context) error {
	id, err := h.param(c)
	if err != nil {
		return err
	}
	m, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[int64]any{h.id(m): m})
}

// Delete handles DELETE /:id and answers with the snapshot of what was
// removed.
func (h *ResourceHandlers[M, C, P]) Delete(c echo.Context) error {
	id, err := h.param(c)
	if err != nil {
		return err
	}
	m, err := h.svc.Delete(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[int64]any{h.id(m): m})
}

// Patch handles PATCH /:id. Unlike the other operations it answers 200 with
// an empty body.
func (h *ResourceHandlers[M, C, P]) Patch(c echo.Context) error {
	id, err := h.param(c)
	if err != nil {
		return err
	}
	var req P
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := h.svc.Patch(c.Request().Context(), id, req); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusOK)
}

// param parses the :id path segment. A non-numeric id cannot exist, so it is
// reported the same way as any other miss.
func (h *ResourceHandlers[M, C, P]) param(c echo.Context) (int64, error) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		nf := &services.NotFoundError{Kind: h.kind, ID: raw}
		return 0, echo.NewHTTPError(http.StatusNotFound, nf.Error())
	}
	return id, nil
}

// httpError maps service and repository errors onto the HTTP contract:
// missing ids and dangling foreign keys are 404, constraint violations 400.
func httpError(err error) error {
	var notFound *services.NotFoundError
	var reference *services.ReferenceError
	var constraint *repositories.ConstraintError
	switch {
	case errors.As(err, &notFound):
		return echo.NewHTTPError(http.StatusNotFound, notFound.Error())
	case errors.As(err, &reference):
		return echo.NewHTTPError(http.StatusNotFound, reference.Error())
	case errors.As(err, &constraint):
		return echo.NewHTTPError(http.StatusBadRequest, constraint.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
}
