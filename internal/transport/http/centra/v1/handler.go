package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"github.com/ilovegaming42069/FinalProjectBackend/internal/model"
	"github.com/ilovegaming42069/FinalProjectBackend/internal/transport/http/httputil"
)

type CentraService interface {
	List(ctx context.Context) ([]model.Centra, error)
	Create(ctx context.Context, params model.CreateCentraParams) (int64, error)
	PartialUpdate(ctx context.Context, centraID int64, params model.UpdateCentraParams) (*model.Centra, error)
	Delete(ctx context.Context, centraID int64) (*model.Centra, error)
}

type CentraResponse struct {
	CentraID          int64  `json:"Centra_ID"`
	CentraName        string `json:"CentraName"`
	CentraAddress     string `json:"CentraAddress"`
	NumberOfEmployees int64  `json:"NumberOfEmployees"`
}

type CreateCentraRequest struct {
	CentraName        *string `json:"CentraName" validate:"required"`
	CentraAddress     *string `json:"CentraAddress" validate:"required"`
	NumberOfEmployees *int64  `json:"NumberOfEmployees" validate:"required"`
}

// UpdateCentraRequest is a partial update; absent fields stay untouched, so
// nothing here is required.
type UpdateCentraRequest struct {
	CentraName        *string `json:"CentraName"`
	CentraAddress     *string `json:"CentraAddress"`
	NumberOfEmployees *int64  `json:"NumberOfEmployees"`
}

type handler struct {
	svc      CentraService
	validate *validator.Validate
}

func NewCentraHandler(service CentraService) *handler {
	return &handler{
		svc:      service,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *handler) Register(r chi.Router) {
	r.Get("/centra", h.ListCentra)
	r.Post("/centra", h.CreateCentra)
	r.Put("/centra/{centraID}", h.UpdateCentra)
	r.Delete("/centra/{centraID}", h.DeleteCentra)
}

func (h *handler) ListCentra(w http.ResponseWriter, r *http.Request) {
	centras, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, lo.Map(centras, func(c model.Centra, _ int) CentraResponse {
		return toCentraResponse(&c)
	}))
}

func (h *handler) CreateCentra(w http.ResponseWriter, r *http.Request) {
	var req CreateCentraRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.Detail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httputil.Detail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	centraID, err := h.svc.Create(r.Context(), model.CreateCentraParams{
		CentraName:        *req.CentraName,
		CentraAddress:     *req.CentraAddress,
		NumberOfEmployees: *req.NumberOfEmployees,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, CentraResponse{
		CentraID:          centraID,
		CentraName:        *req.CentraName,
		CentraAddress:     *req.CentraAddress,
		NumberOfEmployees: *req.NumberOfEmployees,
	})
}

func (h *handler) UpdateCentra(w http.ResponseWriter, r *http.Request) {
	centraID, err := httputil.IDParam(r, "centraID")
	if err != nil {
		httputil.Detail(w, http.StatusBadRequest, "invalid centra id")
		return
	}

	var req UpdateCentraRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.Detail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.svc.PartialUpdate(r.Context(), centraID, model.UpdateCentraParams{
		CentraName:        req.CentraName,
		CentraAddress:     req.CentraAddress,
		NumberOfEmployees: req.NumberOfEmployees,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, toCentraResponse(c))
}

func (h *handler) DeleteCentra(w http.ResponseWriter, r *http.Request) {
	centraID, err := httputil.IDParam(r, "centraID")
	if err != nil {
		httputil.Detail(w, http.StatusBadRequest, "invalid centra id")
		return
	}

	c, err := h.svc.Delete(r.Context(), centraID)
	if err != nil {
		writeError(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, toCentraResponse(c))
}

func toCentraResponse(c *model.Centra) CentraResponse {
	return CentraResponse{
		CentraID:          c.CentraID,
		CentraName:        c.CentraName,
		CentraAddress:     c.CentraAddress,
		NumberOfEmployees: c.NumberOfEmployees,
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrCentraNotFound):
		httputil.Detail(w, http.StatusNotFound, "Centra not found") // 404
	case errors.Is(err, model.ErrCentraInUse):
		httputil.Detail(w, http.StatusConflict, err.Error()) // 409
	default:
		httputil.Detail(w, http.StatusInternalServerError, err.Error()) // 500
	}
}
