package http

import (
	"time"

	"github.com/samber/lo"

	"github.com/ilovegaming42069/FinalProjectBackend/internal/model"
)

// Field names follow the wire contract the frontend already speaks, hence
// the mixed Batch_ID / RawWeight casing.
type BatchResponse struct {
	BatchID       int64      `json:"Batch_ID"`
	RawWeight     int64      `json:"RawWeight"`
	InTimeRaw     time.Time  `json:"InTimeRaw"`
	InTimeWet     *time.Time `json:"InTimeWet"`
	OutTimeWet    *time.Time `json:"OutTimeWet"`
	WetWeight     *int64     `json:"WetWeight"`
	InTimeDry     *time.Time `json:"InTimeDry"`
	OutTimeDry    *time.Time `json:"OutTimeDry"`
	DryWeight     *int64     `json:"DryWeight"`
	InTimePowder  *time.Time `json:"InTimePowder"`
	OutTimePowder *time.Time `json:"OutTimePowder"`
	PowderWeight  *int64     `json:"PowderWeight"`
	Status        string     `json:"Status"`
	CentraID      int64      `json:"Centra_ID"`
	PackageID     *int64     `json:"Package_ID"`
	WeightRescale *int64     `json:"WeightRescale"`
}

type RawStageResponse struct {
	RawWeight int64     `json:"RawWeight"`
	InTimeRaw time.Time `json:"InTimeRaw"`
}

type WetStageResponse struct {
	WetWeight  *int64     `json:"WetWeight"`
	InTimeWet  *time.Time `json:"InTimeWet"`
	OutTimeWet *time.Time `json:"OutTimeWet"`
}

type DryStageResponse struct {
	DryWeight  *int64     `json:"DryWeight"`
	InTimeDry  *time.Time `json:"InTimeDry"`
	OutTimeDry *time.Time `json:"OutTimeDry"`
}

type PowderStageResponse struct {
	PowderWeight  *int64     `json:"PowderWeight"`
	InTimePowder  *time.Time `json:"InTimePowder"`
	OutTimePowder *time.Time `json:"OutTimePowder"`
}

type BatchIDResponse struct {
	BatchID int64 `json:"Batch_ID"`
}

type WeightInfoResponse struct {
	BatchID   int64     `json:"Batch_ID"`
	RawWeight int64     `json:"RawWeight"`
	InTimeRaw time.Time `json:"InTimeRaw"`
}

// Required fields are pointers so that a present zero value passes
// validation while an absent field does not.
type CreateBatchRequest struct {
	RawWeight *int64     `json:"RawWeight" validate:"required"`
	Status    *string    `json:"Status" validate:"required"`
	CentraID  *int64     `json:"Centra_ID" validate:"required"`
	InTimeRaw *time.Time `json:"InTimeRaw" validate:"required"`
}

type SetWetStageRequest struct {
	InTimeWet  *time.Time `json:"InTimeWet" validate:"required"`
	OutTimeWet *time.Time `json:"OutTimeWet" validate:"required"`
	WetWeight  *int64     `json:"WetWeight" validate:"required"`
}

type SetDryStageRequest struct {
	InTimeDry  *time.Time `json:"InTimeDry" validate:"required"`
	OutTimeDry *time.Time `json:"OutTimeDry" validate:"required"`
	DryWeight  *int64     `json:"DryWeight" validate:"required"`
}

type SetPowderStageRequest struct {
	InTimePowder  *time.Time `json:"InTimePowder" validate:"required"`
	OutTimePowder *time.Time `json:"OutTimePowder" validate:"required"`
	PowderWeight  *int64     `json:"PowderWeight" validate:"required"`
}

type LinkPackageRequest struct {
	PackageID *int64 `json:"Package_ID" validate:"required"`
}

type LinkPackageResponse struct {
	BatchID   int64 `json:"Batch_ID"`
	PackageID int64 `json:"Package_ID"`
}

type BulkStatusRequest struct {
	BatchIDs []int64 `json:"Batch_IDs" validate:"required"`
	Status   *string `json:"Status" validate:"required"`
}

type BulkStatusResponse struct {
	BatchIDs []int64 `json:"Batch_IDs"`
	Status   string  `json:"Status"`
}

func toBatchResponse(b *model.Batch) BatchResponse {
	return BatchResponse{
		BatchID:       b.BatchID,
		RawWeight:     b.RawWeight,
		InTimeRaw:     b.InTimeRaw,
		InTimeWet:     b.InTimeWet,
		OutTimeWet:    b.OutTimeWet,
		WetWeight:     b.WetWeight,
		InTimeDry:     b.InTimeDry,
		OutTimeDry:    b.OutTimeDry,
		DryWeight:     b.DryWeight,
		InTimePowder:  b.InTimePowder,
		OutTimePowder: b.OutTimePowder,
		PowderWeight:  b.PowderWeight,
		Status:        b.Status,
		CentraID:      b.CentraID,
		PackageID:     b.PackageID,
		WeightRescale: b.WeightRescale,
	}
}

func toBatchResponses(batches []model.Batch) []BatchResponse {
	return lo.Map(batches, func(b model.Batch, _ int) BatchResponse {
		return toBatchResponse(&b)
	})
}

func toBatchIDResponses(ids []int64) []BatchIDResponse {
	return lo.Map(ids, func(id int64, _ int) BatchIDResponse {
		return BatchIDResponse{BatchID: id}
	})
}

func toWeightInfoResponses(weights []model.BatchWeight) []WeightInfoResponse {
	return lo.Map(weights, func(w model.BatchWeight, _ int) WeightInfoResponse {
		return WeightInfoResponse{
			BatchID:   w.BatchID,
			RawWeight: w.RawWeight,
			InTimeRaw: w.InTimeRaw,
		}
	})
}

func createBatchRequestToParams(req CreateBatchRequest) model.CreateBatchParams {
	return model.CreateBatchParams{
		RawWeight: *req.RawWeight,
		Status:    *req.Status,
		CentraID:  *req.CentraID,
		InTimeRaw: *req.InTimeRaw,
	}
}
