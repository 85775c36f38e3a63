package db_models

type Product struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	ProductID   string `gorm:"column:product_id;index"`
	Region      string
	ProductName string
	PlaceType   string
	Category    string
}

func (Product) TableName() string { return "products" }
