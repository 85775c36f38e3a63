package services

import (
	"context"
	"testing"

	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tago/internal/models/db_models"
	"tago/pkg/utils"
)

func TestIndexService_BuildAndLoad(t *testing.T) {
	logRepo := &fakeLogRepo{logs: []db_models.TravelLog{
		logRow("T1", "서울", "P1", "5"),
		logRow("T2", "부산", "P2", "4"),
	}}
	embRepo := &fakeEmbeddingRepo{}
	embedder := &fakeEmbedder{def: []float32{0.6, 0.8}}

	svc := NewIndexService(logRepo, embRepo, embedder, 0)
	require.NoError(t, svc.EnsureLoaded(context.Background()))

	snap, err := svc.Snapshot()
	require.NoError(t, err)

	// The three sequences stay position-aligned in corpus order.
	assert.Equal(t, []string{"T1", "T2"}, snap.TripIDs)
	require.Len(t, snap.Docs, 2)
	assert.Equal(t, FormatLogSentence(logRepo.logs[0]), snap.Docs[0])
	assert.Equal(t, FormatLogSentence(logRepo.logs[1]), snap.Docs[1])
	require.Len(t, snap.Vectors, 2)
	assert.Equal(t, 2, snap.Dim)
	assert.False(t, snap.Partial)
}

func TestIndexService_SnapshotBeforeLoadFails(t *testing.T) {
	svc := NewIndexService(&fakeLogRepo{}, &fakeEmbeddingRepo{}, &fakeEmbedder{def: []float32{1}}, 0)

	_, err := svc.Snapshot()
	assert.ErrorIs(t, err, utils.ErrIndexUnavailable)
}

func TestIndexService_ReusesPersistedSnapshot(t *testing.T) {
	embRepo := &fakeEmbeddingRepo{rows: []db_models.LogEmbedding{
		{ID: 1, TripID: "T1", Doc: "doc-1", Embedding: pgvector.NewVector([]float32{1, 0})},
		{ID: 2, TripID: "T2", Doc: "doc-2", Embedding: pgvector.NewVector([]float32{0, 1})},
	}}
	logRepo := &fakeLogRepo{logs: []db_models.TravelLog{
		logRow("T1", "서울", "P1", "5"),
		logRow("T2", "부산", "P2", "4"),
	}}
	embedder := &fakeEmbedder{def: []float32{1, 0}}

	svc := NewIndexService(logRepo, embRepo, embedder, 0)
	require.NoError(t, svc.EnsureLoaded(context.Background()))

	// Rows were already persisted, so no embedding call happens on startup.
	assert.Equal(t, 0, embedder.calls)

	snap, err := svc.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, []string{"T1", "T2"}, snap.TripIDs)
}

func TestIndexService_CorpusLimitMarksPartialCoverage(t *testing.T) {
	logRepo := &fakeLogRepo{logs: []db_models.TravelLog{
		logRow("T1", "서울", "P1", "5"),
		logRow("T2", "부산", "P2", "4"),
		logRow("T3", "제주", "P3", "3"),
	}}
	embRepo := &fakeEmbeddingRepo{}
	embedder := &fakeEmbedder{def: []float32{1, 0}}

	svc := NewIndexService(logRepo, embRepo, embedder, 2)
	require.NoError(t, svc.EnsureLoaded(context.Background()))

	snap, err := svc.Snapshot()
	require.NoError(t, err)
	assert.Len(t, snap.TripIDs, 2)
	assert.True(t, snap.Partial)
}

func TestIndexService_BuildRejectsInconsistentDims(t *testing.T) {
	logRepo := &fakeLogRepo{logs: []db_models.TravelLog{
		logRow("T1", "서울", "P1", "5"),
		logRow("T2", "부산", "P2", "4"),
	}}
	embRepo := &fakeEmbeddingRepo{}
	embedder := &fakeEmbedder{queue: [][]float32{{1, 0, 0}, {1, 0}}}

	svc := NewIndexService(logRepo, embRepo, embedder, 0)

	err := svc.Build(context.Background())
	assert.ErrorIs(t, err, utils.ErrDimensionMismatch)
	// The broken snapshot is never persisted.
	assert.Empty(t, embRepo.rows)
}

func TestIndexService_CorruptPersistedSnapshot(t *testing.T) {
	embRepo := &fakeEmbeddingRepo{rows: []db_models.LogEmbedding{
		{ID: 1, TripID: "T1", Doc: "doc-1", Embedding: pgvector.NewVector([]float32{1, 0})},
		{ID: 2, TripID: "T2", Doc: "doc-2", Embedding: pgvector.NewVector([]float32{1, 0, 0})},
	}}
	logRepo := &fakeLogRepo{logs: []db_models.TravelLog{logRow("T1", "서울", "P1", "5")}}

	svc := NewIndexService(logRepo, embRepo, &fakeEmbedder{def: []float32{1, 0}}, 0)

	err := svc.EnsureLoaded(context.Background())
	assert.ErrorIs(t, err, utils.ErrIndexUnavailable)
}

func TestIndexService_EmbeddingFailureDuringBuild(t *testing.T) {
	logRepo := &fakeLogRepo{logs: []db_models.TravelLog{logRow("T1", "서울", "P1", "5")}}
	embedder := &fakeEmbedder{err: assert.AnError}

	svc := NewIndexService(logRepo, &fakeEmbeddingRepo{}, embedder, 0)

	err := svc.Build(context.Background())
	assert.ErrorIs(t, err, utils.ErrEmbeddingFailed)
}
