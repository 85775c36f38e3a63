package services

import (
	"context"
	"log"
	"sync"

	"tago/internal/models/db_models"
	"tago/internal/repositories"
	"tago/pkg/utils"
)

// Snapshot is the in-memory embedding index: three position-aligned sequences
// plus the shared vector dimensionality. Once loaded it is read-only, so
// concurrent request handlers scan it without locking.
type Snapshot struct {
	TripIDs []string
	Docs    []string
	Vectors [][]float32
	Dim     int
	// Partial is set when the persisted snapshot covers fewer rows than the
	// log corpus (a build-time cap was in effect); logs excluded that way can
	// never be ranked.
	Partial bool
}

type IndexServiceInterface interface {
	// Build renders and embeds every travel log and replaces the persisted
	// snapshot wholesale. There is no incremental update path.
	Build(ctx context.Context) error
	// EnsureLoaded loads the persisted snapshot into memory, building it
	// first when absent. Call once at startup, before traffic.
	EnsureLoaded(ctx context.Context) error
	Snapshot() (*Snapshot, error)
}

type IndexService struct {
	logRepo     repositories.LogRepository
	embRepo     repositories.LogEmbeddingRepository
	embedClient utils.EmbeddingClientInterface
	// corpusLimit caps how many logs get embedded (0 = no cap). A cap keeps
	// provider cost down at the price of partial ranking coverage.
	corpusLimit int

	mu       sync.RWMutex
	snapshot *Snapshot
}

const embedBatchSize = 100

func NewIndexService(
	logRepo repositories.LogRepository,
	embRepo repositories.LogEmbeddingRepository,
	embedClient utils.EmbeddingClientInterface,
	corpusLimit int,
) IndexServiceInterface {
	return &IndexService{
		logRepo:     logRepo,
		embRepo:     embRepo,
		embedClient: embedClient,
		corpusLimit: corpusLimit,
	}
}

func (s *IndexService) Build(ctx context.Context) error {
	logs, err := s.logRepo.GetAllLogs(ctx)
	if err != nil {
		log.Printf("Error reading log corpus for index build: %v", err)
		return utils.ErrDatabaseError
	}

	if s.corpusLimit > 0 && len(logs) > s.corpusLimit {
		log.Printf("EMBED_CORPUS_LIMIT=%d active: embedding %d of %d logs, ranking coverage will be partial",
			s.corpusLimit, s.corpusLimit, len(logs))
		logs = logs[:s.corpusLimit]
	}

	rows := make([]db_models.LogEmbedding, 0, len(logs))
	dim := 0

	for start := 0; start < len(logs); start += embedBatchSize {
		end := start + embedBatchSize
		if end > len(logs) {
			end = len(logs)
		}
		batch := logs[start:end]

		docs := make([]string, len(batch))
		for i, l := range batch {
			docs[i] = FormatLogSentence(l)
		}

		vectors, err := s.embedClient.GetEmbeddings(ctx, docs)
		if err != nil {
			log.Printf("Error embedding log batch [%d:%d]: %v", start, end, err)
			return utils.ErrEmbeddingFailed
		}

		for i, vec := range vectors {
			if dim == 0 {
				dim = len(vec.Slice())
			}
			if len(vec.Slice()) != dim {
				log.Printf("Embedding dim %d for trip %q, snapshot dim is %d",
					len(vec.Slice()), batch[i].TripID, dim)
				return utils.ErrDimensionMismatch
			}
			rows = append(rows, db_models.LogEmbedding{
				TripID:    batch[i].TripID,
				Doc:       docs[i],
				Embedding: vec,
			})
		}
	}

	if err := s.embRepo.ReplaceAll(ctx, rows); err != nil {
		log.Printf("Error persisting embedding snapshot: %v", err)
		return utils.ErrDatabaseError
	}

	log.Printf("Embedding snapshot built: %d vectors, dim %d", len(rows), dim)
	return nil
}

func (s *IndexService) EnsureLoaded(ctx context.Context) error {
	count, err := s.embRepo.Count(ctx)
	if err != nil {
		log.Printf("Error checking embedding snapshot: %v", err)
		return utils.ErrIndexUnavailable
	}
	if count == 0 {
		log.Println("No embedding snapshot found, building one (one-time cost)")
		if err := s.Build(ctx); err != nil {
			return err
		}
	}

	rows, err := s.embRepo.ListAll(ctx)
	if err != nil {
		log.Printf("Error loading embedding snapshot: %v", err)
		return utils.ErrIndexUnavailable
	}
	if len(rows) == 0 {
		log.Println("Embedding snapshot is empty after build")
		return utils.ErrIndexUnavailable
	}

	snap := &Snapshot{
		TripIDs: make([]string, len(rows)),
		Docs:    make([]string, len(rows)),
		Vectors: make([][]float32, len(rows)),
		Dim:     len(rows[0].Embedding.Slice()),
	}
	for i, row := range rows {
		vec := row.Embedding.Slice()
		if len(vec) != snap.Dim {
			log.Printf("Corrupt snapshot: row %d has dim %d, expected %d", i, len(vec), snap.Dim)
			return utils.ErrIndexUnavailable
		}
		snap.TripIDs[i] = row.TripID
		snap.Docs[i] = row.Doc
		snap.Vectors[i] = vec
	}

	logCount, err := s.logRepo.CountLogs(ctx)
	if err != nil {
		log.Printf("Error counting log corpus: %v", err)
		return utils.ErrDatabaseError
	}
	snap.Partial = int64(len(rows)) < logCount
	if snap.Partial {
		log.Printf("Embedding snapshot covers %d of %d logs: ranking coverage is partial", len(rows), logCount)
	}

	s.mu.Lock()
	s.snapshot = snap
	s.mu.Unlock()

	log.Printf("Embedding snapshot loaded: %d vectors, dim %d", len(rows), snap.Dim)
	return nil
}

func (s *IndexService) Snapshot() (*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snapshot == nil {
		return nil, utils.ErrIndexUnavailable
	}
	return s.snapshot, nil
}
