package services

import (
	"sort"
	"strconv"
	"strings"

	"tago/internal/models/db_models"
)

// TopProducts is how many products the aggregation keeps.
const TopProducts = 5

type ProductScore struct {
	ProductID string
	MeanScore float64
}

// RankProducts filters logs to the exact region (case-sensitive), groups the
// rest by product ID and ranks products by mean satisfaction, descending.
//
// A missing or unparseable satisfaction score contributes 0.0 to the sum but
// still counts in the denominator. That penalizes products with sparse
// satisfaction data and is intentional, documented corpus policy; do not
// "fix" it by excluding such rows.
//
// Ties keep first-encounter order of the product ID. An empty filtered set
// returns an empty slice: no recommendation, not an error.
func RankProducts(logs []db_models.TravelLog, regionFilter string) []ProductScore {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	var order []string

	for _, l := range logs {
		if l.Place != regionFilter {
			continue
		}
		if _, seen := counts[l.ProductID]; !seen {
			order = append(order, l.ProductID)
		}
		sums[l.ProductID] += parseSatisfaction(l.SatisfactionScore)
		counts[l.ProductID]++
	}

	ranked := make([]ProductScore, 0, len(order))
	for _, pid := range order {
		ranked = append(ranked, ProductScore{
			ProductID: pid,
			MeanScore: sums[pid] / float64(counts[pid]),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MeanScore > ranked[j].MeanScore
	})

	if len(ranked) > TopProducts {
		ranked = ranked[:TopProducts]
	}
	return ranked
}

func parseSatisfaction(raw string) float64 {
	score, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0.0
	}
	return score
}
