package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilovegaming42069/FinalProjectBackend/internal/model"
)

type stubDeliveryService struct {
	list             func(ctx context.Context) ([]model.Delivery, error)
	create           func(ctx context.Context, params model.CreateDeliveryParams) (int64, error)
	byBatch          func(ctx context.Context, batchID int64) (*model.Delivery, error)
	setStatus        func(ctx context.Context, packageID int64, status string) error
	setStatusByBatch func(ctx context.Context, batchID int64, status string) error
	complete         func(ctx context.Context, batchID int64, params model.CompleteDeliveryParams) error
	delete           func(ctx context.Context, packageID int64) (*model.Delivery, error)
}

func (s *stubDeliveryService) List(ctx context.Context) ([]model.Delivery, error) {
	return s.list(ctx)
}

func (s *stubDeliveryService) Create(ctx context.Context, params model.CreateDeliveryParams) (int64, error) {
	return s.create(ctx, params)
}

func (s *stubDeliveryService) ByBatch(ctx context.Context, batchID int64) (*model.Delivery, error) {
	return s.byBatch(ctx, batchID)
}

func (s *stubDeliveryService) SetStatus(ctx context.Context, packageID int64, status string) error {
	return s.setStatus(ctx, packageID, status)
}

func (s *stubDeliveryService) SetStatusByBatch(ctx context.Context, batchID int64, status string) error {
	return s.setStatusByBatch(ctx, batchID, status)
}

func (s *stubDeliveryService) Complete(ctx context.Context, batchID int64, params model.CompleteDeliveryParams) error {
	return s.complete(ctx, batchID, params)
}

func (s *stubDeliveryService) Delete(ctx context.Context, packageID int64) (*model.Delivery, error) {
	return s.delete(ctx, packageID)
}

func newTestRouter(svc DeliveryService) *chi.Mux {
	r := chi.NewRouter()
	NewDeliveryHandler(svc).Register(r)
	return r
}

func doRequest(t *testing.T, r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestListPackages(t *testing.T) {
	t.Parallel()

	inTime := time.Date(2024, 5, 3, 9, 0, 0, 0, time.UTC)
	svc := &stubDeliveryService{
		list: func(ctx context.Context) ([]model.Delivery, error) {
			return []model.Delivery{
				{PackageID: 1, Status: "packed", InDeliveryTime: inTime, ExpeditionType: "truck"},
			}, nil
		},
	}

	rec := doRequest(t, newTestRouter(svc), http.MethodGet, "/packages", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{
		"Package_ID": 1,
		"Status": "packed",
		"InDeliveryTime": "2024-05-03T09:00:00Z",
		"ExpeditionType": "truck"
	}]`, rec.Body.String())
}

func TestCreatePackage(t *testing.T) {
	t.Parallel()

	t.Run("missing fields rejected", func(t *testing.T) {
		t.Parallel()

		svc := &stubDeliveryService{}
		rec := doRequest(t, newTestRouter(svc), http.MethodPost, "/package", `{"Status": "packed"}`)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("success echoes input with generated id", func(t *testing.T) {
		t.Parallel()

		svc := &stubDeliveryService{
			create: func(ctx context.Context, params model.CreateDeliveryParams) (int64, error) {
				assert.Equal(t, "packed", params.Status)
				assert.Equal(t, "truck", params.ExpeditionType)
				return 8, nil
			},
		}

		body := `{"InDeliveryTime": "2024-05-03T09:00:00Z", "ExpeditionType": "truck", "Status": "packed"}`
		rec := doRequest(t, newTestRouter(svc), http.MethodPost, "/package", body)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{
			"Package_ID": 8,
			"Status": "packed",
			"InDeliveryTime": "2024-05-03T09:00:00Z",
			"ExpeditionType": "truck"
		}`, rec.Body.String())
	})
}

func TestUpdatePackageStatus(t *testing.T) {
	t.Parallel()

	svc := &stubDeliveryService{
		setStatus: func(ctx context.Context, packageID int64, status string) error {
			assert.Equal(t, int64(8), packageID)
			assert.Equal(t, "on the way", status)
			return nil
		},
	}

	rec := doRequest(t, newTestRouter(svc), http.MethodPut, "/package/8/status", `{"Status": "on the way"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"Status": "on the way"}`, rec.Body.String())
}

func TestDeliveryByBatch(t *testing.T) {
	t.Parallel()

	t.Run("batch not linked or missing", func(t *testing.T) {
		t.Parallel()

		svc := &stubDeliveryService{
			byBatch: func(ctx context.Context, batchID int64) (*model.Delivery, error) {
				return nil, model.ErrBatchNotFound
			},
		}

		rec := doRequest(t, newTestRouter(svc), http.MethodGet, "/batch/5/delivery", "")

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"detail": "Batch not found"}`, rec.Body.String())
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		inTime := time.Date(2024, 5, 3, 9, 0, 0, 0, time.UTC)
		svc := &stubDeliveryService{
			byBatch: func(ctx context.Context, batchID int64) (*model.Delivery, error) {
				assert.Equal(t, int64(5), batchID)
				return &model.Delivery{PackageID: 8, Status: "packed", InDeliveryTime: inTime, ExpeditionType: "air"}, nil
			},
		}

		rec := doRequest(t, newTestRouter(svc), http.MethodGet, "/batch/5/delivery", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{
			"Package_ID": 8,
			"Status": "packed",
			"InDeliveryTime": "2024-05-03T09:00:00Z",
			"ExpeditionType": "air"
		}`, rec.Body.String())
	})
}

func TestUpdateStatusByBatch(t *testing.T) {
	t.Parallel()

	t.Run("batch without package", func(t *testing.T) {
		t.Parallel()

		svc := &stubDeliveryService{
			setStatusByBatch: func(ctx context.Context, batchID int64, status string) error {
				return model.ErrPackageNotFound
			},
		}

		rec := doRequest(t, newTestRouter(svc), http.MethodPut, "/batch/5/status", `{"Status": "delivered"}`)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"detail": "Package not found"}`, rec.Body.String())
	})

	t.Run("success echoes status", func(t *testing.T) {
		t.Parallel()

		svc := &stubDeliveryService{
			setStatusByBatch: func(ctx context.Context, batchID int64, status string) error {
				assert.Equal(t, int64(5), batchID)
				return nil
			},
		}

		rec := doRequest(t, newTestRouter(svc), http.MethodPut, "/batch/5/status", `{"Status": "delivered"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"Status": "delivered"}`, rec.Body.String())
	})
}

func TestCompleteDelivery(t *testing.T) {
	t.Parallel()

	svc := &stubDeliveryService{
		complete: func(ctx context.Context, batchID int64, params model.CompleteDeliveryParams) error {
			assert.Equal(t, int64(5), batchID)
			assert.Equal(t, int64(95), params.WeightRescale)
			return nil
		},
	}

	body := `{"OutDeliveryTime": "2024-05-04T17:00:00Z", "WeightRescale": 95}`
	rec := doRequest(t, newTestRouter(svc), http.MethodPut, "/batch/5/outdelivery", body)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, body, rec.Body.String())
}

func TestDeletePackage(t *testing.T) {
	t.Parallel()

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		svc := &stubDeliveryService{
			delete: func(ctx context.Context, packageID int64) (*model.Delivery, error) {
				return nil, model.ErrPackageNotFound
			},
		}

		rec := doRequest(t, newTestRouter(svc), http.MethodDelete, "/package/8", "")

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"detail": "Package not found"}`, rec.Body.String())
	})

	t.Run("returns the removed row", func(t *testing.T) {
		t.Parallel()

		inTime := time.Date(2024, 5, 3, 9, 0, 0, 0, time.UTC)
		svc := &stubDeliveryService{
			delete: func(ctx context.Context, packageID int64) (*model.Delivery, error) {
				assert.Equal(t, int64(8), packageID)
				return &model.Delivery{PackageID: 8, Status: "delivered", InDeliveryTime: inTime, ExpeditionType: "truck"}, nil
			},
		}

		rec := doRequest(t, newTestRouter(svc), http.MethodDelete, "/package/8", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{
			"Package_ID": 8,
			"Status": "delivered",
			"InDeliveryTime": "2024-05-03T09:00:00Z",
			"ExpeditionType": "truck"
		}`, rec.Body.String())
	})
}
