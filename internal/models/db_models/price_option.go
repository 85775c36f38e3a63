package db_models

// PriceOption is one price row of a product. PriceText keeps the source text
// verbatim (currency and unit embedded), it is never parsed to a number.
type PriceOption struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	ProductID    string `gorm:"column:product_id;index"`
	OptionName   string
	OptionNameEn string
	AgeType      string
	PriceText    string
}

func (PriceOption) TableName() string { return "prices" }
