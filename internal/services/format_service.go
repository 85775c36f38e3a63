package services

import (
	"fmt"

	"tago/internal/models/db_models"
)

// IntentProfile is the query-side view of a trip: the same fields a TravelLog
// carries, minus satisfaction, with multi-value fields already comma-joined.
type IntentProfile struct {
	Place             string
	Days              string
	CompanionRelation string
	CompanionAgeGroup string
	Gender            string
	Age               string
	Category          string
}

// FormatLogSentence renders a historical log as the past-tense sentence the
// corpus is embedded from. The satisfaction clause renders the raw score text
// verbatim and stays in place even when the score is absent (empty text), so
// rendering never fails on sparse rows.
func FormatLogSentence(log db_models.TravelLog) string {
	return fmt.Sprintf(
		"여행자는 %s 지역으로 %s일동안 여행을 갔다. "+
			"함께 간 여행 동행자와는 %s관계이다. "+
			"동행자의 나이는 %s이다. "+
			"여행자의 성별은 %s이며, 나이는 %s대이다. "+
			"전반적으로 여행자의 만족도는 %s점이다. "+
			"여행자의 여행 테마는 %s이다.",
		log.Place, log.Days, log.CompanionRelation, log.CompanionAgeGroup,
		log.Gender, log.Age, log.SatisfactionScore, log.Category,
	)
}

// FormatIntentSentence renders a kiosk intent in future tense, mirroring the
// historical template so query and corpus embeddings live in the same space.
func FormatIntentSentence(q IntentProfile) string {
	return fmt.Sprintf(
		"여행자는 %s 지역으로 %s일동안 여행을 갈 예정이다. "+
			"함께 갈 여행 동행자와는 %s관계이다. "+
			"동행자의 나이는 %s이다. "+
			"여행자의 성별은 %s이며, 나이는 %s대이다. "+
			"여행자가 원하는 여행 테마는 %s이다.",
		q.Place, q.Days, q.CompanionRelation, q.CompanionAgeGroup,
		q.Gender, q.Age, q.Category,
	)
}
