package db_models

import (
	"time"

	"github.com/pgvector/pgvector-go"
)

// LogEmbedding is one snapshot row of the travel log index: the trip key, the
// rendered sentence the vector was computed from, and the unit-norm vector
// itself. Row insertion order is the snapshot index order, so the table always
// holds the three sequences position-aligned.
type LogEmbedding struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	TripID    string `gorm:"column:trip_id"`
	Doc       string `gorm:"type:text"`
	Embedding pgvector.Vector `gorm:"type:vector"`
	CreatedAt time.Time       `gorm:"autoCreateTime"`
}

func (LogEmbedding) TableName() string { return "log_embeddings" }
