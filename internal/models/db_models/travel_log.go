package db_models

// TravelLog is one historical travel record. TripID is not unique: several
// rows can share the same trip grouping key. Rows are bulk loaded once and
// never updated or deleted afterwards.
type TravelLog struct {
	ID                int64  `gorm:"primaryKey;autoIncrement"`
	TripID            string `gorm:"column:trip_id;index"`
	Place             string
	Days              string
	CompanionRelation string
	CompanionAgeGroup string
	Gender            string
	Age               string
	ProductID         string `gorm:"column:product_id;index"`
	// Raw satisfaction text from the source. May be empty or unparseable;
	// the aggregator decides how that counts, not the model.
	SatisfactionScore string
	Category          string
}

func (TravelLog) TableName() string { return "log_table" }
