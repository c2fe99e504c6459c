package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ilovegaming42069/FinalProjectBackend/internal/logger"
	"github.com/ilovegaming42069/FinalProjectBackend/internal/model"
)

type CentraRepository interface {
	List(ctx context.Context) ([]model.Centra, error)
	ByID(ctx context.Context, id int64) (*model.Centra, error)
	Create(ctx context.Context, params model.CreateCentraParams) (int64, error)
	UpdatePartial(ctx context.Context, id int64, params model.UpdateCentraParams) error
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo           CentraRepository
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewCentraService(
	repository CentraRepository,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		repo:           repository,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

func (svc *service) List(ctx context.Context) ([]model.Centra, error) {
	const op string = "centra.service.List"

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	centras, err := svc.repo.List(ctx)
	if err != nil {
		logger.Error(ctx, "repository list centras", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return centras, nil
}

func (svc *service) Create(ctx context.Context, params model.CreateCentraParams) (int64, error) {
	const op string = "centra.service.Create"
	log := logger.With(logger.String("centra_name", params.CentraName))

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	centraID, err := svc.repo.Create(ctx, params)
	if err != nil {
		log.Error(ctx, "repository create centra", logger.ErrorF(err))
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return centraID, nil
}

// PartialUpdate applies only the fields set in params and returns the row as
// it looks afterwards. A params with nothing set still answers with the
// current row.
func (svc *service) PartialUpdate(ctx context.Context, centraID int64, params model.UpdateCentraParams) (*model.Centra, error) {
	const op string = "centra.service.PartialUpdate"
	log := logger.With(logger.Int64("centra_id", centraID))

	rdbCtx, rdbCancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer rdbCancel()

	if _, err := svc.repo.ByID(rdbCtx, centraID); err != nil {
		log.Error(ctx, "repository centra by id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	wdbCtx, wdbCancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer wdbCancel()

	if err := svc.repo.UpdatePartial(wdbCtx, centraID, params); err != nil {
		log.Error(ctx, "repository update centra", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	readCtx, readCancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer readCancel()

	c, err := svc.repo.ByID(readCtx, centraID)
	if err != nil {
		log.Error(ctx, "repository centra by id after update", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return c, nil
}

// Delete returns the centra as it was before removal. Centras still
// referenced by batches are refused.
func (svc *service) Delete(ctx context.Context, centraID int64) (*model.Centra, error) {
	const op string = "centra.service.Delete"
	log := logger.With(logger.Int64("centra_id", centraID))

	rdbCtx, rdbCancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer rdbCancel()

	c, err := svc.repo.ByID(rdbCtx, centraID)
	if err != nil {
		log.Error(ctx, "repository centra by id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	wdbCtx, wdbCancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer wdbCancel()

	if err := svc.repo.Delete(wdbCtx, centraID); err != nil {
		log.Error(ctx, "repository delete centra", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return c, nil
}
