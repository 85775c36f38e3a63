package services

import (
	"context"

	"github.com/pgvector/pgvector-go"

	"tago/internal/models/db_models"
	"tago/internal/models/response_models"
)

type fakeLogRepo struct {
	logs     []db_models.TravelLog
	listErr  error
	countErr error
}

func (f *fakeLogRepo) GetAllLogs(ctx context.Context) ([]db_models.TravelLog, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.logs, nil
}

func (f *fakeLogRepo) GetLogsByTripIDs(ctx context.Context, tripIDs []string) ([]db_models.TravelLog, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	wanted := make(map[string]bool, len(tripIDs))
	for _, id := range tripIDs {
		wanted[id] = true
	}
	var out []db_models.TravelLog
	for _, l := range f.logs {
		if wanted[l.TripID] {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLogRepo) CountLogs(ctx context.Context) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return int64(len(f.logs)), nil
}

type fakeEmbeddingRepo struct {
	rows   []db_models.LogEmbedding
	nextID int64
}

func (f *fakeEmbeddingRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.rows)), nil
}

func (f *fakeEmbeddingRepo) ListAll(ctx context.Context) ([]db_models.LogEmbedding, error) {
	return f.rows, nil
}

func (f *fakeEmbeddingRepo) ReplaceAll(ctx context.Context, rows []db_models.LogEmbedding) error {
	f.rows = nil
	for _, row := range rows {
		f.nextID++
		row.ID = f.nextID
		f.rows = append(f.rows, row)
	}
	return nil
}

type fakeEmbedder struct {
	byText map[string][]float32
	queue  [][]float32
	def    []float32
	err    error
	calls  int
}

func (f *fakeEmbedder) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	f.calls++
	if f.err != nil {
		return pgvector.Vector{}, f.err
	}
	if v, ok := f.byText[text]; ok {
		return pgvector.NewVector(v), nil
	}
	if len(f.queue) > 0 {
		v := f.queue[0]
		f.queue = f.queue[1:]
		return pgvector.NewVector(v), nil
	}
	return pgvector.NewVector(f.def), nil
}

func (f *fakeEmbedder) GetEmbeddings(ctx context.Context, texts []string) ([]pgvector.Vector, error) {
	out := make([]pgvector.Vector, len(texts))
	for i, text := range texts {
		vec, err := f.GetEmbedding(ctx, text)
		if err != nil {
			return nil, err
		}
		out[i] = vec
	}
	return out, nil
}

func (f *fakeEmbedder) Close() error { return nil }

type fakeIndex struct {
	snap *Snapshot
	err  error
}

func (f *fakeIndex) Build(ctx context.Context) error        { return nil }
func (f *fakeIndex) EnsureLoaded(ctx context.Context) error { return nil }
func (f *fakeIndex) Snapshot() (*Snapshot, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.snap, nil
}

type fakeProductRepo struct {
	products map[string]*db_models.Product
	prices   map[string][]db_models.PriceOption
	err      error
}

func (f *fakeProductRepo) GetProductWithPrices(ctx context.Context, productID string) (*db_models.Product, []db_models.PriceOption, error) {
	if f.err != nil {
		return nil, nil, f.err
	}
	product, ok := f.products[productID]
	if !ok {
		return nil, nil, nil
	}
	return product, f.prices[productID], nil
}

func (f *fakeProductRepo) CountProducts(ctx context.Context) (int64, error) {
	return int64(len(f.products)), nil
}

func (f *fakeProductRepo) CountPrices(ctx context.Context) (int64, error) {
	var n int64
	for _, rows := range f.prices {
		n += int64(len(rows))
	}
	return n, nil
}

type fakeReport struct {
	report string
	err    error
	called bool
	got    []response_models.RankedProduct
}

func (f *fakeReport) CreateReport(ctx context.Context, products []response_models.RankedProduct) (string, error) {
	f.called = true
	f.got = products
	if f.err != nil {
		return "", f.err
	}
	return f.report, nil
}
