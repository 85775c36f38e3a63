package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tago/internal/models/db_models"
)

func logRow(tripID, place, productID, satisfaction string) db_models.TravelLog {
	return db_models.TravelLog{
		TripID:            tripID,
		Place:             place,
		ProductID:         productID,
		SatisfactionScore: satisfaction,
	}
}

func TestRankProducts_EmptyFilteredSetReturnsEmpty(t *testing.T) {
	logs := []db_models.TravelLog{
		logRow("T1", "부산", "P1", "5"),
		logRow("T2", "제주", "P2", "4"),
	}

	got := RankProducts(logs, "서울")

	assert.Empty(t, got)
}

func TestRankProducts_NoLogsAtAll(t *testing.T) {
	assert.Empty(t, RankProducts(nil, "서울"))
}

func TestRankProducts_MissingScoreCountsAsZeroInMean(t *testing.T) {
	// One row without a score and one with 4.0: the absent score contributes
	// 0 to the sum but still divides, so the mean is 2.0. Documented policy.
	logs := []db_models.TravelLog{
		logRow("T1", "서울", "P1", ""),
		logRow("T2", "서울", "P1", "4.0"),
	}

	got := RankProducts(logs, "서울")

	assert.Len(t, got, 1)
	assert.Equal(t, "P1", got[0].ProductID)
	assert.InDelta(t, 2.0, got[0].MeanScore, 1e-9)
}

func TestRankProducts_UnparseableScoreCountsAsZero(t *testing.T) {
	logs := []db_models.TravelLog{
		logRow("T1", "서울", "P1", "매우 만족"),
		logRow("T2", "서울", "P1", "3"),
	}

	got := RankProducts(logs, "서울")

	assert.Len(t, got, 1)
	assert.InDelta(t, 1.5, got[0].MeanScore, 1e-9)
}

func TestRankProducts_RegionFilterIsCaseSensitiveExactMatch(t *testing.T) {
	logs := []db_models.TravelLog{
		logRow("T1", "Seoul", "P1", "5"),
		logRow("T2", "seoul", "P2", "5"),
	}

	got := RankProducts(logs, "Seoul")

	assert.Len(t, got, 1)
	assert.Equal(t, "P1", got[0].ProductID)
}

func TestRankProducts_SortsByDescendingMean(t *testing.T) {
	logs := []db_models.TravelLog{
		logRow("T1", "서울", "P1", "3"),
		logRow("T2", "서울", "P2", "5"),
		logRow("T3", "서울", "P3", "4"),
	}

	got := RankProducts(logs, "서울")

	assert.Equal(t, "P2", got[0].ProductID)
	assert.Equal(t, "P3", got[1].ProductID)
	assert.Equal(t, "P1", got[2].ProductID)
}

func TestRankProducts_TiesKeepFirstEncounterOrder(t *testing.T) {
	logs := []db_models.TravelLog{
		logRow("T1", "서울", "P2", "4"),
		logRow("T2", "서울", "P1", "4"),
	}

	got := RankProducts(logs, "서울")

	assert.Equal(t, "P2", got[0].ProductID)
	assert.Equal(t, "P1", got[1].ProductID)
}

func TestRankProducts_CapsAtTopProducts(t *testing.T) {
	logs := []db_models.TravelLog{
		logRow("T1", "서울", "P1", "1"),
		logRow("T2", "서울", "P2", "2"),
		logRow("T3", "서울", "P3", "3"),
		logRow("T4", "서울", "P4", "4"),
		logRow("T5", "서울", "P5", "5"),
		logRow("T6", "서울", "P6", "6"),
	}

	got := RankProducts(logs, "서울")

	assert.Len(t, got, TopProducts)
	assert.Equal(t, "P6", got[0].ProductID)
}
