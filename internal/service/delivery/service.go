package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ilovegaming42069/FinalProjectBackend/internal/logger"
	"github.com/ilovegaming42069/FinalProjectBackend/internal/model"
)

type DeliveryRepository interface {
	List(ctx context.Context) ([]model.Delivery, error)
	ByID(ctx context.Context, id int64) (*model.Delivery, error)
	ByBatchID(ctx context.Context, batchID int64) (*model.Delivery, error)
	Create(ctx context.Context, params model.CreateDeliveryParams) (int64, error)
	SetStatus(ctx context.Context, packageID int64, status string) error
	Complete(ctx context.Context, batchID int64, params model.CompleteDeliveryParams) error
	Delete(ctx context.Context, id int64) error
}

// BatchResolver answers which package a batch is linked to. A nil package ID
// means the batch exists but carries no package yet.
type BatchResolver interface {
	PackageIDByBatch(ctx context.Context, batchID int64) (*int64, error)
}

type service struct {
	repo           DeliveryRepository
	batches        BatchResolver
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewDeliveryService(
	repository DeliveryRepository,
	batches BatchResolver,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		repo:           repository,
		batches:        batches,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

func (svc *service) List(ctx context.Context) ([]model.Delivery, error) {
	const op string = "delivery.service.List"

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	deliveries, err := svc.repo.List(ctx)
	if err != nil {
		logger.Error(ctx, "repository list deliveries", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return deliveries, nil
}

func (svc *service) Create(ctx context.Context, params model.CreateDeliveryParams) (int64, error) {
	const op string = "delivery.service.Create"
	log := logger.With(logger.String("expedition_type", params.ExpeditionType))

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	packageID, err := svc.repo.Create(ctx, params)
	if err != nil {
		log.Error(ctx, "repository create delivery", logger.ErrorF(err))
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return packageID, nil
}

func (svc *service) ByBatch(ctx context.Context, batchID int64) (*model.Delivery, error) {
	const op string = "delivery.service.ByBatch"
	log := logger.With(logger.Int64("batch_id", batchID))

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	d, err := svc.repo.ByBatchID(ctx, batchID)
	if err != nil {
		log.Error(ctx, "repository delivery by batch id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return d, nil
}

func (svc *service) SetStatus(ctx context.Context, packageID int64, status string) error {
	const op string = "delivery.service.SetStatus"
	log := logger.With(
		logger.Int64("package_id", packageID),
		logger.String("status", status),
	)

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	if err := svc.repo.SetStatus(ctx, packageID, status); err != nil {
		log.Error(ctx, "repository set delivery status", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// SetStatusByBatch updates the delivery the batch is linked to. A batch with
// no linked package is refused rather than silently matching nothing.
func (svc *service) SetStatusByBatch(ctx context.Context, batchID int64, status string) error {
	const op string = "delivery.service.SetStatusByBatch"
	log := logger.With(
		logger.Int64("batch_id", batchID),
		logger.String("status", status),
	)

	rdbCtx, rdbCancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer rdbCancel()

	packageID, err := svc.batches.PackageIDByBatch(rdbCtx, batchID)
	if err != nil {
		log.Error(ctx, "resolve package id by batch", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	if packageID == nil {
		log.Error(ctx, "batch has no linked package")
		return fmt.Errorf("%s: %w", op, model.ErrPackageNotFound)
	}

	wdbCtx, wdbCancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer wdbCancel()

	if err := svc.repo.SetStatus(wdbCtx, *packageID, status); err != nil {
		log.Error(ctx, "repository set delivery status", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (svc *service) Complete(ctx context.Context, batchID int64, params model.CompleteDeliveryParams) error {
	const op string = "delivery.service.Complete"
	log := logger.With(logger.Int64("batch_id", batchID))

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	if err := svc.repo.Complete(ctx, batchID, params); err != nil {
		log.Error(ctx, "repository complete delivery", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Delete returns the delivery as it was before removal. Batches pointing at
// the package keep existing with the link cleared.
func (svc *service) Delete(ctx context.Context, packageID int64) (*model.Delivery, error) {
	const op string = "delivery.service.Delete"
	log := logger.With(logger.Int64("package_id", packageID))

	rdbCtx, rdbCancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer rdbCancel()

	d, err := svc.repo.ByID(rdbCtx, packageID)
	if err != nil {
		log.Error(ctx, "repository delivery by id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	wdbCtx, wdbCancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer wdbCancel()

	if err := svc.repo.Delete(wdbCtx, packageID); err != nil {
		log.Error(ctx, "repository delete delivery", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return d, nil
}
