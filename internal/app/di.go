package app

import (
	"context"
	"fmt"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/ilovegaming42069/FinalProjectBackend/internal/closer"
	"github.com/ilovegaming42069/FinalProjectBackend/internal/config"
	"github.com/ilovegaming42069/FinalProjectBackend/internal/migrator"
	batchrepo "github.com/ilovegaming42069/FinalProjectBackend/internal/repository/batch"
	centrarepo "github.com/ilovegaming42069/FinalProjectBackend/internal/repository/centra"
	deliveryrepo "github.com/ilovegaming42069/FinalProjectBackend/internal/repository/delivery"
	batchsvc "github.com/ilovegaming42069/FinalProjectBackend/internal/service/batch"
	centrasvc "github.com/ilovegaming42069/FinalProjectBackend/internal/service/centra"
	deliverysvc "github.com/ilovegaming42069/FinalProjectBackend/internal/service/delivery"
	batchhttp "github.com/ilovegaming42069/FinalProjectBackend/internal/transport/http/batch/v1"
	centrahttp "github.com/ilovegaming42069/FinalProjectBackend/internal/transport/http/centra/v1"
	deliveryhttp "github.com/ilovegaming42069/FinalProjectBackend/internal/transport/http/delivery/v1"
)

// BatchRepository is the full store surface the batch side needs; it also
// satisfies deliverysvc.BatchResolver so the delivery service can follow
// batch -> package links.
type BatchRepository interface {
	batchsvc.BatchRepository
	deliverysvc.BatchResolver
}

// Handler is a route group that knows how to attach itself to the router.
type Handler interface {
	Register(r chi.Router)
}

type di struct {
	dbPool   *pgxpool.Pool
	migrator *migrator.Migrator

	batchRepository    BatchRepository
	centraRepository   centrasvc.CentraRepository
	deliveryRepository deliverysvc.DeliveryRepository

	batchService    batchhttp.BatchService
	centraService   centrahttp.CentraService
	deliveryService deliveryhttp.DeliveryService

	batchHandler    Handler
	centraHandler   Handler
	deliveryHandler Handler

	router *chi.Mux
}

func NewDI() *di { return &di{} }

func (d *di) DBPool(ctx context.Context) *pgxpool.Pool {
	if d.dbPool == nil {
		pool, err := pgxpool.New(ctx, config.C().Postgres.DSN())
		if err != nil {
			panic(fmt.Sprintf("failed to create pg pool: %v\n", err))
		}

		closer.AddNamed("PGX Pool",
			func(ctx context.Context) error {
				pool.Close()
				return nil
			})

		if err := pool.Ping(ctx); err != nil {
			panic(fmt.Sprintf("failed to ping db: %v\n", err))
		}

		d.dbPool = pool
	}

	return d.dbPool
}

func (d *di) Migrator(ctx context.Context) *migrator.Migrator {
	if d.migrator == nil {
		d.migrator = migrator.NewMigrator(
			stdlib.OpenDBFromPool(d.DBPool(ctx)),
			config.C().Postgres.MigrationDirectory(),
		)

		closer.AddNamed("Migrator",
			func(ctx context.Context) error {
				return d.migrator.Close()
			})
	}

	return d.migrator
}

func (d *di) BatchRepository(ctx context.Context) BatchRepository {
	if d.batchRepository == nil {
		d.batchRepository = batchrepo.NewBatchRepository(d.DBPool(ctx))
	}

	return d.batchRepository
}

func (d *di) CentraRepository(ctx context.Context) centrasvc.CentraRepository {
	if d.centraRepository == nil {
		d.centraRepository = centrarepo.NewCentraRepository(d.DBPool(ctx))
	}

	return d.centraRepository
}

func (d *di) DeliveryRepository(ctx context.Context) deliverysvc.DeliveryRepository {
	if d.deliveryRepository == nil {
		d.deliveryRepository = deliveryrepo.NewDeliveryRepository(d.DBPool(ctx))
	}

	return d.deliveryRepository
}

func (d *di) BatchService(ctx context.Context) batchhttp.BatchService {
	if d.batchService == nil {
		d.batchService = batchsvc.NewBatchService(
			d.BatchRepository(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.batchService
}

func (d *di) CentraService(ctx context.Context) centrahttp.CentraService {
	if d.centraService == nil {
		d.centraService = centrasvc.NewCentraService(
			d.CentraRepository(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.centraService
}

func (d *di) DeliveryService(ctx context.Context) deliveryhttp.DeliveryService {
	if d.deliveryService == nil {
		d.deliveryService = deliverysvc.NewDeliveryService(
			d.DeliveryRepository(ctx),
			d.BatchRepository(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.deliveryService
}

func (d *di) BatchHandler(ctx context.Context) Handler {
	if d.batchHandler == nil {
		d.batchHandler = batchhttp.NewBatchHandler(d.BatchService(ctx))
	}

	return d.batchHandler
}

func (d *di) CentraHandler(ctx context.Context) Handler {
	if d.centraHandler == nil {
		d.centraHandler = centrahttp.NewCentraHandler(d.CentraService(ctx))
	}

	return d.centraHandler
}

func (d *di) DeliveryHandler(ctx context.Context) Handler {
	if d.deliveryHandler == nil {
		d.deliveryHandler = deliveryhttp.NewDeliveryHandler(d.DeliveryService(ctx))
	}

	return d.deliveryHandler
}

func (d *di) Router(_ context.Context) *chi.Mux {
	if d.router == nil {
		d.router = chi.NewRouter()
	}

	return d.router
}
