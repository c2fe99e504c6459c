package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ilovegaming42069/FinalProjectBackend/internal/model"
)

const (
	deliveryTable = "delivery"
	batchTable    = "batch_id"
)

var deliveryColumns = []string{
	"package_id",
	"status",
	"in_delivery_time",
	"out_delivery_time",
	"expedition_type",
	"weight_rescale",
}

type repository struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

func NewDeliveryRepository(pool *pgxpool.Pool) *repository {
	return &repository{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *repository) List(ctx context.Context) ([]model.Delivery, error) {
	q := r.sb.
		Select(deliveryColumns...).
		From(deliveryTable).
		OrderBy("package_id")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	deliveries := make([]model.Delivery, 0)
	for rows.Next() {
		var d model.Delivery
		if err := scanDelivery(rows, &d); err != nil {
			return nil, err
		}
		deliveries = append(deliveries, d)
	}

	return deliveries, rows.Err()
}

func (r *repository) ByID(ctx context.Context, id int64) (*model.Delivery, error) {
	q := r.sb.
		Select(deliveryColumns...).
		From(deliveryTable).
		Where(sq.Eq{"package_id": id})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	var d model.Delivery
	if err := scanDelivery(r.pool.QueryRow(ctx, sqlStr, args...), &d); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPackageNotFound
		}
		return nil, err
	}

	return &d, nil
}

// ByBatchID resolves the delivery through the batch row. A missing batch and
// a batch without a package both come back as pgx.ErrNoRows, which matches
// the single "batch not found" answer callers expect.
func (r *repository) ByBatchID(ctx context.Context, batchID int64) (*model.Delivery, error) {
	q := r.sb.
		Select(
			"d.package_id",
			"d.status",
			"d.in_delivery_time",
			"d.out_delivery_time",
			"d.expedition_type",
			"d.weight_rescale",
		).
		From(deliveryTable + " AS d").
		Join(batchTable + " AS b ON b.package_id = d.package_id").
		Where(sq.Eq{"b.batch_id": batchID})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	var d model.Delivery
	if err := scanDelivery(r.pool.QueryRow(ctx, sqlStr, args...), &d); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBatchNotFound
		}
		return nil, err
	}

	return &d, nil
}

func (r *repository) Create(ctx context.Context, params model.CreateDeliveryParams) (int64, error) {
	q := r.sb.
		Insert(deliveryTable).
		Columns("status", "in_delivery_time", "expedition_type").
		Values(params.Status, params.InDeliveryTime, params.ExpeditionType).
		Suffix("RETURNING package_id")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return 0, err
	}

	var packageID int64
	if err := r.pool.QueryRow(ctx, sqlStr, args...).Scan(&packageID); err != nil {
		return 0, err
	}

	return packageID, nil
}

// SetStatus does not verify the package exists. Updates addressed at an
// unknown package are accepted and change nothing.
func (r *repository) SetStatus(ctx context.Context, packageID int64, status string) error {
	q := r.sb.
		Update(deliveryTable).
		Set("status", status).
		Where(sq.Eq{"package_id": packageID})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, sqlStr, args...)
	return err
}

// Complete closes out the delivery addressed through its batch.
func (r *repository) Complete(ctx context.Context, batchID int64, params model.CompleteDeliveryParams) error {
	q := r.sb.
		Update(deliveryTable).
		Set("out_delivery_time", params.OutDeliveryTime).
		Set("weight_rescale", params.WeightRescale).
		Where(sq.Expr(
			"package_id = (SELECT package_id FROM "+batchTable+" WHERE batch_id = ?)",
			batchID,
		))

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, sqlStr, args...)
	return err
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	q := r.sb.
		Delete(deliveryTable).
		Where(sq.Eq{"package_id": id})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, sqlStr, args...)
	return err
}

func scanDelivery(row pgx.Row, d *model.Delivery) error {
	return row.Scan(
		&d.PackageID,
		&d.Status,
		&d.InDeliveryTime,
		&d.OutDeliveryTime,
		&d.ExpeditionType,
		&d.WeightRescale,
	)
}
