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

const centraTable = "centra"

const fkViolation = "23503"

type repository struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

func NewCentraRepository(pool *pgxpool.Pool) *repository {
	return &repository{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *repository) List(ctx context.Context) ([]model.Centra, error) {
	q := r.sb.
		Select("centra_id", "centra_name", "centra_address", "number_of_employees").
		From(centraTable).
		OrderBy("centra_id")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	centras := make([]model.Centra, 0)
	for rows.Next() {
		var c model.Centra
		if err := rows.Scan(&c.CentraID, &c.CentraName, &c.CentraAddress, &c.NumberOfEmployees); err != nil {
			return nil, err
		}
		centras = append(centras, c)
	}

	return centras, rows.Err()
}

func (r *repository) ByID(ctx context.Context, id int64) (*model.Centra, error) {
	q := r.sb.
		Select("centra_id", "centra_name", "centra_address", "number_of_employees").
		From(centraTable).
		Where(sq.Eq{"centra_id": id})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	var c model.Centra
	err = r.pool.QueryRow(ctx, sqlStr, args...).
		Scan(&c.CentraID, &c.CentraName, &c.CentraAddress, &c.NumberOfEmployees)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCentraNotFound
		}
		return nil, err
	}

	return &c, nil
}

func (r *repository) Create(ctx context.Context, params model.CreateCentraParams) (int64, error) {
	q := r.sb.
		Insert(centraTable).
		Columns("centra_name", "centra_address", "number_of_employees").
		Values(params.CentraName, params.CentraAddress, params.NumberOfEmployees).
		Suffix("RETURNING centra_id")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return 0, err
	}

	var centraID int64
	if err := r.pool.QueryRow(ctx, sqlStr, args...).Scan(&centraID); err != nil {
		return 0, err
	}

	return centraID, nil
}

// UpdatePartial applies only the fields present in params. The column set is
// a fixed allow-list; nothing in the request can name a column directly.
func (r *repository) UpdatePartial(ctx context.Context, id int64, params model.UpdateCentraParams) error {
	set := sq.Eq{}

	if params.CentraName != nil {
		set["centra_name"] = *params.CentraName
	}
	if params.CentraAddress != nil {
		set["centra_address"] = *params.CentraAddress
	}
	if params.NumberOfEmployees != nil {
		set["number_of_employees"] = *params.NumberOfEmployees
	}

	if len(set) == 0 {
		return nil
	}

	q := r.sb.
		Update(centraTable).
		SetMap(set).
		Where(sq.Eq{"centra_id": id})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, sqlStr, args...)
	return err
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	q := r.sb.
		Delete(centraTable).
		Where(sq.Eq{"centra_id": id})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return err
	}

	if _, err := r.pool.Exec(ctx, sqlStr, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == fkViolation {
			return model.ErrCentraInUse
		}
		return err
	}

	return nil
}
