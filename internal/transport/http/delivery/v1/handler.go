package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"github.com/ilovegaming42069/FinalProjectBackend/internal/model"
	"github.com/ilovegaming42069/FinalProjectBackend/internal/transport/http/httputil"
)

type DeliveryService interface {
	List(ctx context.Context) ([]model.Delivery, error)
	Create(ctx context.Context, params model.CreateDeliveryParams) (int64, error)
	ByBatch(ctx context.Context, batchID int64) (*model.Delivery, error)
	SetStatus(ctx context.Context, packageID int64, status string) error
	SetStatusByBatch(ctx context.Context, batchID int64, status string) error
	Complete(ctx context.Context, batchID int64, params model.CompleteDeliveryParams) error
	Delete(ctx context.Context, packageID int64) (*model.Delivery, error)
}

// DeliveryResponse is the four field shipment summary the wire contract
// uses everywhere a package is returned.
type DeliveryResponse struct {
	PackageID      int64     `json:"Package_ID"`
	Status         string    `json:"Status"`
	InDeliveryTime time.Time `json:"InDeliveryTime"`
	ExpeditionType string    `json:"ExpeditionType"`
}

type CreateDeliveryRequest struct {
	InDeliveryTime *time.Time `json:"InDeliveryTime" validate:"required"`
	ExpeditionType *string    `json:"ExpeditionType" validate:"required"`
	Status         *string    `json:"Status" validate:"required"`
}

type UpdateStatusRequest struct {
	Status *string `json:"Status" validate:"required"`
}

type UpdateStatusResponse struct {
	Status string `json:"Status"`
}

type OutDeliveryRequest struct {
	OutDeliveryTime *time.Time `json:"OutDeliveryTime" validate:"required"`
	WeightRescale   *int64     `json:"WeightRescale" validate:"required"`
}

type OutDeliveryResponse struct {
	OutDeliveryTime time.Time `json:"OutDeliveryTime"`
	WeightRescale   int64     `json:"WeightRescale"`
}

type handler struct {
	svc      DeliveryService
	validate *validator.Validate
}

func NewDeliveryHandler(service DeliveryService) *handler {
	return &handler{
		svc:      service,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *handler) Register(r chi.Router) {
	r.Get("/packages", h.ListPackages)
	r.Post("/package", h.CreatePackage)
	r.Put("/package/{packageID}/status", h.UpdatePackageStatus)
	r.Delete("/package/{packageID}", h.DeletePackage)

	r.Get("/batch/{batchID}/delivery", h.DeliveryByBatch)
	r.Put("/batch/{batchID}/status", h.UpdateStatusByBatch)
	r.Put("/batch/{batchID}/outdelivery", h.CompleteDelivery)
}

func (h *handler) ListPackages(w http.ResponseWriter, r *http.Request) {
	deliveries, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, lo.Map(deliveries, func(d model.Delivery, _ int) DeliveryResponse {
		return toDeliveryResponse(&d)
	}))
}

func (h *handler) CreatePackage(w http.ResponseWriter, r *http.Request) {
	var req CreateDeliveryRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.Detail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httputil.Detail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	packageID, err := h.svc.Create(r.Context(), model.CreateDeliveryParams{
		Status:         *req.Status,
		InDeliveryTime: *req.InDeliveryTime,
		ExpeditionType: *req.ExpeditionType,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, DeliveryResponse{
		PackageID:      packageID,
		Status:         *req.Status,
		InDeliveryTime: *req.InDeliveryTime,
		ExpeditionType: *req.ExpeditionType,
	})
}

func (h *handler) UpdatePackageStatus(w http.ResponseWriter, r *http.Request) {
	packageID, err := httputil.IDParam(r, "packageID")
	if err != nil {
		httputil.Detail(w, http.StatusBadRequest, "invalid package id")
		return
	}

	var req UpdateStatusRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.Detail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httputil.Detail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if err := h.svc.SetStatus(r.Context(), packageID, *req.Status); err != nil {
		writeError(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, UpdateStatusResponse{Status: *req.Status})
}

func (h *handler) DeletePackage(w http.ResponseWriter, r *http.Request) {
	packageID, err := httputil.IDParam(r, "packageID")
	if err != nil {
		httputil.Detail(w, http.StatusBadRequest, "invalid package id")
		return
	}

	d, err := h.svc.Delete(r.Context(), packageID)
	if err != nil {
		writeError(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, toDeliveryResponse(d))
}

func (h *handler) DeliveryByBatch(w http.ResponseWriter, r *http.Request) {
	batchID, err := httputil.IDParam(r, "batchID")
	if err != nil {
		httputil.Detail(w, http.StatusBadRequest, "invalid batch id")
		return
	}

	d, err := h.svc.ByBatch(r.Context(), batchID)
	if err != nil {
		writeError(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, toDeliveryResponse(d))
}

func (h *handler) UpdateStatusByBatch(w http.ResponseWriter, r *http.Request) {
	batchID, err := httputil.IDParam(r, "batchID")
	if err != nil {
		httputil.Detail(w, http.StatusBadRequest, "invalid batch id")
		return
	}

	var req UpdateStatusRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.Detail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httputil.Detail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if err := h.svc.SetStatusByBatch(r.Context(), batchID, *req.Status); err != nil {
		writeError(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, UpdateStatusResponse{Status: *req.Status})
}

func (h *handler) CompleteDelivery(w http.ResponseWriter, r *http.Request) {
	batchID, err := httputil.IDParam(r, "batchID")
	if err != nil {
		httputil.Detail(w, http.StatusBadRequest, "invalid batch id")
		return
	}

	var req OutDeliveryRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.Detail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httputil.Detail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	err = h.svc.Complete(r.Context(), batchID, model.CompleteDeliveryParams{
		OutDeliveryTime: *req.OutDeliveryTime,
		WeightRescale:   *req.WeightRescale,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, OutDeliveryResponse{
		OutDeliveryTime: *req.OutDeliveryTime,
		WeightRescale:   *req.WeightRescale,
	})
}

func toDeliveryResponse(d *model.Delivery) DeliveryResponse {
	return DeliveryResponse{
		PackageID:      d.PackageID,
		Status:         d.Status,
		InDeliveryTime: d.InDeliveryTime,
		ExpeditionType: d.ExpeditionType,
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrBatchNotFound):
		httputil.Detail(w, http.StatusNotFound, "Batch not found") // 404
	case errors.Is(err, model.ErrPackageNotFound):
		httputil.Detail(w, http.StatusNotFound, "Package not found") // 404
	default:
		httputil.Detail(w, http.StatusInternalServerError, err.Error()) // 500
	}
}
