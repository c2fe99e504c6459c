package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/ilovegaming42069/FinalProjectBackend/internal/model"
	"github.com/ilovegaming42069/FinalProjectBackend/internal/transport/http/httputil"
)

type BatchService interface {
	List(ctx context.Context) ([]model.Batch, error)
	ByID(ctx context.Context, batchID int64) (*model.Batch, error)
	Create(ctx context.Context, params model.CreateBatchParams) (int64, error)
	SetWetStage(ctx context.Context, batchID int64, params model.SetWetStageParams) error
	SetDryStage(ctx context.Context, batchID int64, params model.SetDryStageParams) error
	SetPowderStage(ctx context.Context, batchID int64, params model.SetPowderStageParams) error
	LinkPackage(ctx context.Context, batchID, packageID int64) error
	BulkSetStatus(ctx context.Context, batchIDs []int64, status string) error
	Delete(ctx context.Context, batchID int64) (*model.Batch, error)
	IDsByCentra(ctx context.Context, centraID int64) ([]int64, error)
	RecentWeightsByCentra(ctx context.Context, centraID int64) ([]model.BatchWeight, error)
}

type handler struct {
	svc      BatchService
	validate *validator.Validate
}

func NewBatchHandler(service BatchService) *handler {
	return &handler{
		svc:      service,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *handler) Register(r chi.Router) {
	r.Get("/batches", h.ListBatches)
	r.Post("/batch", h.CreateBatch)
	r.Put("/batches/status", h.BulkSetStatus)

	r.Get("/batch/{batchID}/raw", h.RawStage)
	r.Get("/batch/{batchID}/wet", h.WetStage)
	r.Get("/batch/{batchID}/dry", h.DryStage)
	r.Get("/batch/{batchID}/powder", h.PowderStage)
	r.Put("/batch/{batchID}/wet", h.SetWetStage)
	r.Put("/batch/{batchID}/dry", h.SetDryStage)
	r.Put("/batch/{batchID}/powder", h.SetPowderStage)
	r.Put("/batch/{batchID}/package", h.LinkPackage)
	r.Delete("/batch/{batchID}", h.DeleteBatch)

	r.Get("/centra/{centraID}/batches", h.BatchesByCentra)
	r.Get("/centra/{centraID}/batches/weights", h.WeightsByCentra)
}

func (h *handler) ListBatches(w http.ResponseWriter, r *http.Request) {
	batches, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, toBatchResponses(batches))
}

func (h *handler) CreateBatch(w http.ResponseWriter, r *http.Request) {
	var req CreateBatchRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.Detail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httputil.Detail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	batchID, err := h.svc.Create(r.Context(), createBatchRequestToParams(req))
	if err != nil {
		writeError(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, BatchResponse{
		BatchID:   batchID,
		RawWeight: *req.RawWeight,
		InTimeRaw: *req.InTimeRaw,
		Status:    *req.Status,
		CentraID:  *req.CentraID,
	})
}

func (h *handler) RawStage(w http.ResponseWriter, r *http.Request) {
	batchID, err := httputil.IDParam(r, "batchID")
	if err != nil {
		httputil.Detail(w, http.StatusBadRequest, "invalid batch id")
		return
	}

	b, err := h.svc.ByID(r.Context(), batchID)
	if err != nil {
		writeError(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, RawStageResponse{
		RawWeight: b.RawWeight,
		InTimeRaw: b.InTimeRaw,
	})
}

func (h *handler) WetStage(w http.ResponseWriter, r *http.Request) {
	batchID, err := httputil.IDParam(r, "batchID")
	if err != nil {
		httputil.Detail(w, http.StatusBadRequest, "invalid batch id")
		return
	}

	b, err := h.svc.ByID(r.Context(), batchID)
	if err != nil {
		writeError(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, WetStageResponse{
		WetWeight:  b.WetWeight,
		InTimeWet:  b.InTimeWet,
		OutTimeWet: b.OutTimeWet,
	})
}

func (h *handler) DryStage(w http.ResponseWriter, r *http.Request) {
	batchID, err := httputil.IDParam(r, "batchID")
	if err != nil {
		httputil.Detail(w, http.StatusBadRequest, "invalid batch id")
		return
	}

	b, err := h.svc.ByID(r.Context(), batchID)
	if err != nil {
		writeError(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, DryStageResponse{
		DryWeight:  b.DryWeight,
		InTimeDry:  b.InTimeDry,
		OutTimeDry: b.OutTimeDry,
	})
}

func (h *handler) PowderStage(w http.ResponseWriter, r *http.Request) {
	batchID, err := httputil.IDParam(r, "batchID")
	if err != nil {
		httputil.Detail(w, http.StatusBadRequest, "invalid batch id")
		return
	}

	b, err := h.svc.ByID(r.Context(), batchID)
	if err != nil {
		writeError(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, PowderStageResponse{
		PowderWeight:  b.PowderWeight,
		InTimePowder:  b.InTimePowder,
		OutTimePowder: b.OutTimePowder,
	})
}

func (h *handler) SetWetStage(w http.ResponseWriter, r *http.Request) {
	batchID, err := httputil.IDParam(r, "batchID")
	if err != nil {
		httputil.Detail(w, http.StatusBadRequest, "invalid batch id")
		return
	}

	var req SetWetStageRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.Detail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httputil.Detail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	err = h.svc.SetWetStage(r.Context(), batchID, model.SetWetStageParams{
		InTimeWet:  *req.InTimeWet,
		OutTimeWet: *req.OutTimeWet,
		WetWeight:  *req.WetWeight,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, WetStageResponse{
		WetWeight:  req.WetWeight,
		InTimeWet:  req.InTimeWet,
		OutTimeWet: req.OutTimeWet,
	})
}

func (h *handler) SetDryStage(w http.ResponseWriter, r *http.Request) {
	batchID, err := httputil.IDParam(r, "batchID")
	if err != nil {
		httputil.Detail(w, http.StatusBadRequest, "invalid batch id")
		return
	}

	var req SetDryStageRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.Detail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httputil.Detail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	err = h.svc.SetDryStage(r.Context(), batchID, model.SetDryStageParams{
		InTimeDry:  *req.InTimeDry,
		OutTimeDry: *req.OutTimeDry,
		DryWeight:  *req.DryWeight,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, DryStageResponse{
		DryWeight:  req.DryWeight,
		InTimeDry:  req.InTimeDry,
		OutTimeDry: req.OutTimeDry,
	})
}

func (h *handler) SetPowderStage(w http.ResponseWriter, r *http.Request) {
	batchID, err := httputil.IDParam(r, "batchID")
	if err != nil {
		httputil.Detail(w, http.StatusBadRequest, "invalid batch id")
		return
	}

	var req SetPowderStageRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.Detail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httputil.Detail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	err = h.svc.SetPowderStage(r.Context(), batchID, model.SetPowderStageParams{
		InTimePowder:  *req.InTimePowder,
		OutTimePowder: *req.OutTimePowder,
		PowderWeight:  *req.PowderWeight,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, PowderStageResponse{
		PowderWeight:  req.PowderWeight,
		InTimePowder:  req.InTimePowder,
		OutTimePowder: req.OutTimePowder,
	})
}

func (h *handler) LinkPackage(w http.ResponseWriter, r *http.Request) {
	batchID, err := httputil.IDParam(r, "batchID")
	if err != nil {
		httputil.Detail(w, http.StatusBadRequest, "invalid batch id")
		return
	}

	var req LinkPackageRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.Detail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httputil.Detail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if err := h.svc.LinkPackage(r.Context(), batchID, *req.PackageID); err != nil {
		writeError(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, LinkPackageResponse{
		BatchID:   batchID,
		PackageID: *req.PackageID,
	})
}

func (h *handler) BulkSetStatus(w http.ResponseWriter, r *http.Request) {
	var req BulkStatusRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.Detail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httputil.Detail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if err := h.svc.BulkSetStatus(r.Context(), req.BatchIDs, *req.Status); err != nil {
		writeError(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, BulkStatusResponse{
		BatchIDs: req.BatchIDs,
		Status:   *req.Status,
	})
}

func (h *handler) DeleteBatch(w http.ResponseWriter, r *http.Request) {
	batchID, err := httputil.IDParam(r, "batchID")
	if err != nil {
		httputil.Detail(w, http.StatusBadRequest, "invalid batch id")
		return
	}

	b, err := h.svc.Delete(r.Context(), batchID)
	if err != nil {
		writeError(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, toBatchResponse(b))
}

func (h *handler) BatchesByCentra(w http.ResponseWriter, r *http.Request) {
	centraID, err := httputil.IDParam(r, "centraID")
	if err != nil {
		httputil.Detail(w, http.StatusBadRequest, "invalid centra id")
		return
	}

	ids, err := h.svc.IDsByCentra(r.Context(), centraID)
	if err != nil {
		writeError(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, toBatchIDResponses(ids))
}

func (h *handler) WeightsByCentra(w http.ResponseWriter, r *http.Request) {
	centraID, err := httputil.IDParam(r, "centraID")
	if err != nil {
		httputil.Detail(w, http.StatusBadRequest, "invalid centra id")
		return
	}

	weights, err := h.svc.RecentWeightsByCentra(r.Context(), centraID)
	if err != nil {
		writeError(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, toWeightInfoResponses(weights))
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrBatchNotFound):
		httputil.Detail(w, http.StatusNotFound, "Batch not found") // 404
	case errors.Is(err, model.ErrCentraNotFound):
		httputil.Detail(w, http.StatusNotFound, "Centra not found") // 404
	case errors.Is(err, model.ErrPackageNotFound):
		httputil.Detail(w, http.StatusNotFound, "Package not found") // 404
	case errors.Is(err, model.ErrValidation):
		httputil.Detail(w, http.StatusUnprocessableEntity, err.Error()) // 422
	default:
		httputil.Detail(w, http.StatusInternalServerError, err.Error()) // 500
	}
}
