package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ilovegaming42069/FinalProjectBackend/internal/model"
)

// The batch table is named batch_id for historical reasons.
const batchTable = "batch_id"

const fkViolation = "23503"

var batchColumns = []string{
	"batch_id",
	"raw_weight",
	"in_time_raw",
	"in_time_wet",
	"out_time_wet",
	"wet_weight",
	"in_time_dry",
	"out_time_dry",
	"dry_weight",
	"in_time_powder",
	"out_time_powder",
	"powder_weight",
	"status",
	"centra_id",
	"package_id",
	"weight_rescale",
}

type repository struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

func NewBatchRepository(pool *pgxpool.Pool) *repository {
	return &repository{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *repository) List(ctx context.Context) ([]model.Batch, error) {
	q := r.sb.
		Select(batchColumns...).
		From(batchTable).
		OrderBy("batch_id")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	batches := make([]model.Batch, 0)
	for rows.Next() {
		var b model.Batch
		if err := scanBatch(rows, &b); err != nil {
			return nil, err
		}
		batches = append(batches, b)
	}

	return batches, rows.Err()
}

func (r *repository) ByID(ctx context.Context, id int64) (*model.Batch, error) {
	q := r.sb.
		Select(batchColumns...).
		From(batchTable).
		Where(sq.Eq{"batch_id": id})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	var b model.Batch
	if err := scanBatch(r.pool.QueryRow(ctx, sqlStr, args...), &b); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBatchNotFound
		}
		return nil, err
	}

	return &b, nil
}

func (r *repository) Create(ctx context.Context, params model.CreateBatchParams) (int64, error) {
	q := r.sb.
		Insert(batchTable).
		Columns("raw_weight", "status", "centra_id", "in_time_raw").
		Values(params.RawWeight, params.Status, params.CentraID, params.InTimeRaw).
		Suffix("RETURNING batch_id")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return 0, err
	}

	var batchID int64
	if err := r.pool.QueryRow(ctx, sqlStr, args...).Scan(&batchID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == fkViolation {
			return 0, model.ErrCentraNotFound
		}
		return 0, err
	}

	return batchID, nil
}

func (r *repository) SetWetStage(ctx context.Context, id int64, params model.SetWetStageParams) error {
	return r.setColumns(ctx, id, sq.Eq{
		"in_time_wet":  params.InTimeWet,
		"out_time_wet": params.OutTimeWet,
		"wet_weight":   params.WetWeight,
	})
}

func (r *repository) SetDryStage(ctx context.Context, id int64, params model.SetDryStageParams) error {
	return r.setColumns(ctx, id, sq.Eq{
		"in_time_dry":  params.InTimeDry,
		"out_time_dry": params.OutTimeDry,
		"dry_weight":   params.DryWeight,
	})
}

func (r *repository) SetPowderStage(ctx context.Context, id int64, params model.SetPowderStageParams) error {
	return r.setColumns(ctx, id, sq.Eq{
		"in_time_powder":  params.InTimePowder,
		"out_time_powder": params.OutTimePowder,
		"powder_weight":   params.PowderWeight,
	})
}

func (r *repository) SetPackageID(ctx context.Context, batchID, packageID int64) error {
	q := r.sb.
		Update(batchTable).
		Set("package_id", packageID).
		Where(sq.Eq{"batch_id": batchID})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return err
	}

	if _, err := r.pool.Exec(ctx, sqlStr, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == fkViolation {
			return model.ErrPackageNotFound
		}
		return err
	}

	return nil
}

// SetStatus intentionally does not check that the row exists: the bulk
// status contract treats unknown IDs as silent no-ops.
func (r *repository) SetStatus(ctx context.Context, batchID int64, status string) error {
	q := r.sb.
		Update(batchTable).
		Set("status", status).
		Where(sq.Eq{"batch_id": batchID})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, sqlStr, args...)
	return err
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	q := r.sb.
		Delete(batchTable).
		Where(sq.Eq{"batch_id": id})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, sqlStr, args...)
	return err
}

func (r *repository) IDsByCentra(ctx context.Context, centraID int64) ([]int64, error) {
	q := r.sb.
		Select("batch_id").
		From(batchTable).
		Where(sq.Eq{"centra_id": centraID}).
		OrderBy("batch_id")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (r *repository) RecentWeightsByCentra(ctx context.Context, centraID int64, limit uint64) ([]model.BatchWeight, error) {
	q := r.sb.
		Select("batch_id", "raw_weight", "in_time_raw").
		From(batchTable).
		Where(sq.Eq{"centra_id": centraID}).
		OrderBy("in_time_raw DESC").
		Limit(limit)

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	weights := make([]model.BatchWeight, 0, limit)
	for rows.Next() {
		var w model.BatchWeight
		if err := rows.Scan(&w.BatchID, &w.RawWeight, &w.InTimeRaw); err != nil {
			return nil, err
		}
		weights = append(weights, w)
	}

	return weights, rows.Err()
}

func (r *repository) PackageIDByBatch(ctx context.Context, batchID int64) (*int64, error) {
	q := r.sb.
		Select("package_id").
		From(batchTable).
		Where(sq.Eq{"batch_id": batchID})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	var packageID *int64
	if err := r.pool.QueryRow(ctx, sqlStr, args...).Scan(&packageID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBatchNotFound
		}
		return nil, err
	}

	return packageID, nil
}

func (r *repository) setColumns(ctx context.Context, id int64, set sq.Eq) error {
	q := r.sb.
		Update(batchTable).
		SetMap(set).
		Where(sq.Eq{"batch_id": id})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, sqlStr, args...)
	return err
}

func scanBatch(row pgx.Row, b *model.Batch) error {
	return row.Scan(
		&b.BatchID,
		&b.RawWeight,
		&b.InTimeRaw,
		&b.InTimeWet,
		&b.OutTimeWet,
		&b.WetWeight,
		&b.InTimeDry,
		&b.OutTimeDry,
		&b.DryWeight,
		&b.InTimePowder,
		&b.OutTimePowder,
		&b.PowderWeight,
		&b.Status,
		&b.CentraID,
		&b.PackageID,
		&b.WeightRescale,
	)
}
