package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ilovegaming42069/FinalProjectBackend/internal/logger"
	"github.com/ilovegaming42069/FinalProjectBackend/internal/model"
)

// recentWeightsLimit caps the per-centra weight history at the last seven
// arrivals.
const recentWeightsLimit = 7

type BatchRepository interface {
	List(ctx context.Context) ([]model.Batch, error)
	ByID(ctx context.Context, id int64) (*model.Batch, error)
	Create(ctx context.Context, params model.CreateBatchParams) (int64, error)
	SetWetStage(ctx context.Context, id int64, params model.SetWetStageParams) error
	SetDryStage(ctx context.Context, id int64, params model.SetDryStageParams) error
	SetPowderStage(ctx context.Context, id int64, params model.SetPowderStageParams) error
	SetPackageID(ctx context.Context, batchID, packageID int64) error
	SetStatus(ctx context.Context, batchID int64, status string) error
	Delete(ctx context.Context, id int64) error
	IDsByCentra(ctx context.Context, centraID int64) ([]int64, error)
	RecentWeightsByCentra(ctx context.Context, centraID int64, limit uint64) ([]model.BatchWeight, error)
}

type service struct {
	repo           BatchRepository
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewBatchService(
	repository BatchRepository,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		repo:           repository,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

func (svc *service) List(ctx context.Context) ([]model.Batch, error) {
	const op string = "batch.service.List"

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	batches, err := svc.repo.List(ctx)
	if err != nil {
		logger.Error(ctx, "repository list batches", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return batches, nil
}

func (svc *service) ByID(ctx context.Context, batchID int64) (*model.Batch, error) {
	const op string = "batch.service.ByID"
	log := logger.With(logger.Int64("batch_id", batchID))

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	b, err := svc.repo.ByID(ctx, batchID)
	if err != nil {
		log.Error(ctx, "repository batch by id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return b, nil
}

func (svc *service) Create(ctx context.Context, params model.CreateBatchParams) (int64, error) {
	const op string = "batch.service.Create"
	log := logger.With(
		logger.Int64("centra_id", params.CentraID),
		logger.Int64("raw_weight", params.RawWeight),
	)

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	batchID, err := svc.repo.Create(ctx, params)
	if err != nil {
		log.Error(ctx, "repository create batch", logger.ErrorF(err))
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return batchID, nil
}

func (svc *service) SetWetStage(ctx context.Context, batchID int64, params model.SetWetStageParams) error {
	const op string = "batch.service.SetWetStage"
	log := logger.With(logger.Int64("batch_id", batchID))

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	if err := svc.repo.SetWetStage(ctx, batchID, params); err != nil {
		log.Error(ctx, "repository set wet stage", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (svc *service) SetDryStage(ctx context.Context, batchID int64, params model.SetDryStageParams) error {
	const op string = "batch.service.SetDryStage"
	log := logger.With(logger.Int64("batch_id", batchID))

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	if err := svc.repo.SetDryStage(ctx, batchID, params); err != nil {
		log.Error(ctx, "repository set dry stage", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (svc *service) SetPowderStage(ctx context.Context, batchID int64, params model.SetPowderStageParams) error {
	const op string = "batch.service.SetPowderStage"
	log := logger.With(logger.Int64("batch_id", batchID))

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	if err := svc.repo.SetPowderStage(ctx, batchID, params); err != nil {
		log.Error(ctx, "repository set powder stage", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (svc *service) LinkPackage(ctx context.Context, batchID, packageID int64) error {
	const op string = "batch.service.LinkPackage"
	log := logger.With(
		logger.Int64("batch_id", batchID),
		logger.Int64("package_id", packageID),
	)

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	if err := svc.repo.SetPackageID(ctx, batchID, packageID); err != nil {
		log.Error(ctx, "repository set package id", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// BulkSetStatus updates each batch in turn. There is no existence check and
// no rollback: a failure partway leaves earlier updates applied.
func (svc *service) BulkSetStatus(ctx context.Context, batchIDs []int64, status string) error {
	const op string = "batch.service.BulkSetStatus"
	log := logger.With(
		logger.Int("number_batch_ids", len(batchIDs)),
		logger.String("status", status),
	)

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	for _, batchID := range batchIDs {
		if err := svc.repo.SetStatus(ctx, batchID, status); err != nil {
			log.Error(ctx, "repository set status",
				logger.Int64("batch_id", batchID),
				logger.ErrorF(err),
			)
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	return nil
}

// Delete returns the batch as it was before removal.
func (svc *service) Delete(ctx context.Context, batchID int64) (*model.Batch, error) {
	const op string = "batch.service.Delete"
	log := logger.With(logger.Int64("batch_id", batchID))

	rdbCtx, rdbCancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer rdbCancel()

	b, err := svc.repo.ByID(rdbCtx, batchID)
	if err != nil {
		log.Error(ctx, "repository batch by id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	wdbCtx, wdbCancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer wdbCancel()

	if err := svc.repo.Delete(wdbCtx, batchID); err != nil {
		log.Error(ctx, "repository delete batch", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return b, nil
}

func (svc *service) IDsByCentra(ctx context.Context, centraID int64) ([]int64, error) {
	const op string = "batch.service.IDsByCentra"
	log := logger.With(logger.Int64("centra_id", centraID))

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	ids, err := svc.repo.IDsByCentra(ctx, centraID)
	if err != nil {
		log.Error(ctx, "repository ids by centra", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return ids, nil
}

func (svc *service) RecentWeightsByCentra(ctx context.Context, centraID int64) ([]model.BatchWeight, error) {
	const op string = "batch.service.RecentWeightsByCentra"
	log := logger.With(logger.Int64("centra_id", centraID))

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	weights, err := svc.repo.RecentWeightsByCentra(ctx, centraID, recentWeightsLimit)
	if err != nil {
		log.Error(ctx, "repository recent weights by centra", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return weights, nil
}
