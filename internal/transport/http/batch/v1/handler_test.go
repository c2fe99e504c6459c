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

type stubBatchService struct {
	list           func(ctx context.Context) ([]model.Batch, error)
	byID           func(ctx context.Context, batchID int64) (*model.Batch, error)
	create         func(ctx context.Context, params model.CreateBatchParams) (int64, error)
	setWetStage    func(ctx context.Context, batchID int64, params model.SetWetStageParams) error
	setDryStage    func(ctx context.Context, batchID int64, params model.SetDryStageParams) error
	setPowderStage func(ctx context.Context, batchID int64, params model.SetPowderStageParams) error
	linkPackage    func(ctx context.Context, batchID, packageID int64) error
	bulkSetStatus  func(ctx context.Context, batchIDs []int64, status string) error
	delete         func(ctx context.Context, batchID int64) (*model.Batch, error)
	idsByCentra    func(ctx context.Context, centraID int64) ([]int64, error)
	recentWeights  func(ctx context.Context, centraID int64) ([]model.BatchWeight, error)
}

func (s *stubBatchService) List(ctx context.Context) ([]model.Batch, error) {
	return s.list(ctx)
}

func (s *stubBatchService) ByID(ctx context.Context, batchID int64) (*model.Batch, error) {
	return s.byID(ctx, batchID)
}

func (s *stubBatchService) Create(ctx context.Context, params model.CreateBatchParams) (int64, error) {
	return s.create(ctx, params)
}

func (s *stubBatchService) SetWetStage(ctx context.Context, batchID int64, params model.SetWetStageParams) error {
	return s.setWetStage(ctx, batchID, params)
}

func (s *stubBatchService) SetDryStage(ctx context.Context, batchID int64, params model.SetDryStageParams) error {
	return s.setDryStage(ctx, batchID, params)
}

func (s *stubBatchService) SetPowderStage(ctx context.Context, batchID int64, params model.SetPowderStageParams) error {
	return s.setPowderStage(ctx, batchID, params)
}

func (s *stubBatchService) LinkPackage(ctx context.Context, batchID, packageID int64) error {
	return s.linkPackage(ctx, batchID, packageID)
}

func (s *stubBatchService) BulkSetStatus(ctx context.Context, batchIDs []int64, status string) error {
	return s.bulkSetStatus(ctx, batchIDs, status)
}

func (s *stubBatchService) Delete(ctx context.Context, batchID int64) (*model.Batch, error) {
	return s.delete(ctx, batchID)
}

func (s *stubBatchService) IDsByCentra(ctx context.Context, centraID int64) ([]int64, error) {
	return s.idsByCentra(ctx, centraID)
}

func (s *stubBatchService) RecentWeightsByCentra(ctx context.Context, centraID int64) ([]model.BatchWeight, error) {
	return s.recentWeights(ctx, centraID)
}

func newTestRouter(svc BatchService) *chi.Mux {
	r := chi.NewRouter()
	NewBatchHandler(svc).Register(r)
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

func TestListBatches(t *testing.T) {
	t.Parallel()

	inTime := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	svc := &stubBatchService{
		list: func(ctx context.Context) ([]model.Batch, error) {
			return []model.Batch{
				{BatchID: 1, RawWeight: 120, InTimeRaw: inTime, Status: "arrived", CentraID: 3},
			}, nil
		},
	}

	rec := doRequest(t, newTestRouter(svc), http.MethodGet, "/batches", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{
		"Batch_ID": 1,
		"RawWeight": 120,
		"InTimeRaw": "2024-05-01T08:00:00Z",
		"InTimeWet": null,
		"OutTimeWet": null,
		"WetWeight": null,
		"InTimeDry": null,
		"OutTimeDry": null,
		"DryWeight": null,
		"InTimePowder": null,
		"OutTimePowder": null,
		"PowderWeight": null,
		"Status": "arrived",
		"Centra_ID": 3,
		"Package_ID": null,
		"WeightRescale": null
	}]`, rec.Body.String())
}

func TestRawStage(t *testing.T) {
	t.Parallel()

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		svc := &stubBatchService{
			byID: func(ctx context.Context, batchID int64) (*model.Batch, error) {
				return nil, model.ErrBatchNotFound
			},
		}

		rec := doRequest(t, newTestRouter(svc), http.MethodGet, "/batch/7/raw", "")

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"detail": "Batch not found"}`, rec.Body.String())
	})

	t.Run("bad path id", func(t *testing.T) {
		t.Parallel()

		svc := &stubBatchService{}
		rec := doRequest(t, newTestRouter(svc), http.MethodGet, "/batch/abc/raw", "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		inTime := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
		svc := &stubBatchService{
			byID: func(ctx context.Context, batchID int64) (*model.Batch, error) {
				assert.Equal(t, int64(7), batchID)
				return &model.Batch{BatchID: 7, RawWeight: 55, InTimeRaw: inTime, Status: "arrived", CentraID: 1}, nil
			},
		}

		rec := doRequest(t, newTestRouter(svc), http.MethodGet, "/batch/7/raw", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"RawWeight": 55, "InTimeRaw": "2024-05-01T08:00:00Z"}`, rec.Body.String())
	})
}

func TestCreateBatch(t *testing.T) {
	t.Parallel()

	t.Run("missing fields rejected", func(t *testing.T) {
		t.Parallel()

		svc := &stubBatchService{}
		rec := doRequest(t, newTestRouter(svc), http.MethodPost, "/batch", `{"RawWeight": 100}`)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("malformed body rejected", func(t *testing.T) {
		t.Parallel()

		svc := &stubBatchService{}
		rec := doRequest(t, newTestRouter(svc), http.MethodPost, "/batch", `{"RawWeight": `)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown centra", func(t *testing.T) {
		t.Parallel()

		svc := &stubBatchService{
			create: func(ctx context.Context, params model.CreateBatchParams) (int64, error) {
				return 0, model.ErrCentraNotFound
			},
		}

		body := `{"RawWeight": 100, "Status": "arrived", "Centra_ID": 99, "InTimeRaw": "2024-05-01T08:00:00Z"}`
		rec := doRequest(t, newTestRouter(svc), http.MethodPost, "/batch", body)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"detail": "Centra not found"}`, rec.Body.String())
	})

	t.Run("success echoes input with generated id", func(t *testing.T) {
		t.Parallel()

		svc := &stubBatchService{
			create: func(ctx context.Context, params model.CreateBatchParams) (int64, error) {
				assert.Equal(t, int64(100), params.RawWeight)
				assert.Equal(t, "arrived", params.Status)
				assert.Equal(t, int64(3), params.CentraID)
				return 12, nil
			},
		}

		body := `{"RawWeight": 100, "Status": "arrived", "Centra_ID": 3, "InTimeRaw": "2024-05-01T08:00:00Z"}`
		rec := doRequest(t, newTestRouter(svc), http.MethodPost, "/batch", body)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"Batch_ID":12`)
		assert.Contains(t, rec.Body.String(), `"Status":"arrived"`)
	})
}

func TestSetWetStage(t *testing.T) {
	t.Parallel()

	t.Run("echoes the stored triple", func(t *testing.T) {
		t.Parallel()

		svc := &stubBatchService{
			setWetStage: func(ctx context.Context, batchID int64, params model.SetWetStageParams) error {
				assert.Equal(t, int64(4), batchID)
				assert.Equal(t, int64(80), params.WetWeight)
				return nil
			},
		}

		body := `{"InTimeWet": "2024-05-02T08:00:00Z", "OutTimeWet": "2024-05-02T18:00:00Z", "WetWeight": 80}`
		rec := doRequest(t, newTestRouter(svc), http.MethodPut, "/batch/4/wet", body)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{
			"WetWeight": 80,
			"InTimeWet": "2024-05-02T08:00:00Z",
			"OutTimeWet": "2024-05-02T18:00:00Z"
		}`, rec.Body.String())
	})

	t.Run("partial triple rejected", func(t *testing.T) {
		t.Parallel()

		svc := &stubBatchService{}
		rec := doRequest(t, newTestRouter(svc), http.MethodPut, "/batch/4/wet", `{"WetWeight": 80}`)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestLinkPackage(t *testing.T) {
	t.Parallel()

	t.Run("unknown package", func(t *testing.T) {
		t.Parallel()

		svc := &stubBatchService{
			linkPackage: func(ctx context.Context, batchID, packageID int64) error {
				return model.ErrPackageNotFound
			},
		}

		rec := doRequest(t, newTestRouter(svc), http.MethodPut, "/batch/4/package", `{"Package_ID": 9}`)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"detail": "Package not found"}`, rec.Body.String())
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		svc := &stubBatchService{
			linkPackage: func(ctx context.Context, batchID, packageID int64) error {
				assert.Equal(t, int64(4), batchID)
				assert.Equal(t, int64(9), packageID)
				return nil
			},
		}

		rec := doRequest(t, newTestRouter(svc), http.MethodPut, "/batch/4/package", `{"Package_ID": 9}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"Batch_ID": 4, "Package_ID": 9}`, rec.Body.String())
	})
}

func TestBulkSetStatus(t *testing.T) {
	t.Parallel()

	svc := &stubBatchService{
		bulkSetStatus: func(ctx context.Context, batchIDs []int64, status string) error {
			assert.Equal(t, []int64{1, 2, 99}, batchIDs)
			assert.Equal(t, "shipped", status)
			return nil
		},
	}

	body := `{"Batch_IDs": [1, 2, 99], "Status": "shipped"}`
	rec := doRequest(t, newTestRouter(svc), http.MethodPut, "/batches/status", body)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, body, rec.Body.String())
}

func TestDeleteBatch(t *testing.T) {
	t.Parallel()

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		svc := &stubBatchService{
			delete: func(ctx context.Context, batchID int64) (*model.Batch, error) {
				return nil, model.ErrBatchNotFound
			},
		}

		rec := doRequest(t, newTestRouter(svc), http.MethodDelete, "/batch/5", "")

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"detail": "Batch not found"}`, rec.Body.String())
	})

	t.Run("returns the removed row", func(t *testing.T) {
		t.Parallel()

		inTime := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
		svc := &stubBatchService{
			delete: func(ctx context.Context, batchID int64) (*model.Batch, error) {
				return &model.Batch{BatchID: 5, RawWeight: 70, InTimeRaw: inTime, Status: "done", CentraID: 2}, nil
			},
		}

		rec := doRequest(t, newTestRouter(svc), http.MethodDelete, "/batch/5", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"Batch_ID":5`)
		assert.Contains(t, rec.Body.String(), `"Status":"done"`)
	})
}

func TestBatchesByCentra(t *testing.T) {
	t.Parallel()

	svc := &stubBatchService{
		idsByCentra: func(ctx context.Context, centraID int64) ([]int64, error) {
			assert.Equal(t, int64(3), centraID)
			return []int64{10, 11}, nil
		},
	}

	rec := doRequest(t, newTestRouter(svc), http.MethodGet, "/centra/3/batches", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"Batch_ID": 10}, {"Batch_ID": 11}]`, rec.Body.String())
}

func TestWeightsByCentra(t *testing.T) {
	t.Parallel()

	inTime := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	svc := &stubBatchService{
		recentWeights: func(ctx context.Context, centraID int64) ([]model.BatchWeight, error) {
			return []model.BatchWeight{{BatchID: 10, RawWeight: 33, InTimeRaw: inTime}}, nil
		},
	}

	rec := doRequest(t, newTestRouter(svc), http.MethodGet, "/centra/3/batches/weights", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"Batch_ID": 10, "RawWeight": 33, "InTimeRaw": "2024-05-01T08:00:00Z"}]`, rec.Body.String())
}
