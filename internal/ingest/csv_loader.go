package ingest

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/gorm"

	"tago/internal/models/db_models"
	"tago/pkg/utils"
)

const (
	logCSVName     = "log_table.csv"
	productCSVName = "products.csv"
	priceCSVName   = "prices.csv"
)

// Loader bulk-loads the kiosk CSV exports into their tables. Each load is
// idempotent: a table that already holds rows is left untouched, so restarts
// never duplicate the corpus.
type Loader struct {
	db  *gorm.DB
	dir string
}

func NewLoader(db *gorm.DB, dir string) *Loader {
	return &Loader{db: db, dir: dir}
}

func (l *Loader) LoadAll(ctx context.Context) error {
	if err := l.LoadLogs(ctx); err != nil {
		return err
	}
	if err := l.LoadProducts(ctx); err != nil {
		return err
	}
	return l.LoadPrices(ctx)
}

func (l *Loader) LoadLogs(ctx context.Context) error {
	return l.loadTable(ctx, logCSVName, &db_models.TravelLog{}, func(row record) interface{} {
		return &db_models.TravelLog{
			TripID:            row.get("여행 ID"),
			Place:             row.get("관광지"),
			Days:              row.get("여행일수"),
			CompanionRelation: utils.NormalizeMultiValue(row.get("여행 동반자 관계")),
			CompanionAgeGroup: utils.NormalizeMultiValue(row.get("여행 동반자 연령대")),
			Gender:            row.get("성별"),
			Age:               row.get("나이"),
			ProductID:         row.get("product_id"),
			SatisfactionScore: row.get("전반적 만족도 점수"),
			Category:          row.get("카테고리"),
		}
	})
}

func (l *Loader) LoadProducts(ctx context.Context) error {
	return l.loadTable(ctx, productCSVName, &db_models.Product{}, func(row record) interface{} {
		return &db_models.Product{
			ProductID:   row.get("product_id"),
			Region:      row.get("관광지"),
			ProductName: row.get("상품명"),
			PlaceType:   row.get("방문지 유형"),
			Category:    row.get("카테고리"),
		}
	})
}

func (l *Loader) LoadPrices(ctx context.Context) error {
	return l.loadTable(ctx, priceCSVName, &db_models.PriceOption{}, func(row record) interface{} {
		return &db_models.PriceOption{
			ProductID:    row.get("product_id"),
			OptionName:   row.get("옵션명"),
			OptionNameEn: row.get("옵션영어명"),
			AgeType:      row.get("나이"),
			PriceText:    row.get("가격"),
		}
	})
}

// record maps a CSV row by header name.
type record struct {
	header map[string]int
	fields []string
}

func (r record) get(name string) string {
	idx, ok := r.header[name]
	if !ok || idx >= len(r.fields) {
		return ""
	}
	return r.fields[idx]
}

func (l *Loader) loadTable(ctx context.Context, fileName string, model interface{}, convert func(record) interface{}) error {
	path := filepath.Join(l.dir, fileName)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Printf("Ingest source missing, skipping: %s", path)
		return nil
	}

	var count int64
	if err := l.db.WithContext(ctx).Model(model).Count(&count).Error; err != nil {
		return fmt.Errorf("counting rows before ingest: %w", err)
	}
	if count > 0 {
		log.Printf("%s already loaded (%d rows), skipping ingest", fileName, count)
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	headerRow, err := reader.Read()
	if err != nil {
		return fmt.Errorf("reading header of %s: %w", path, err)
	}
	header := make(map[string]int, len(headerRow))
	for i, name := range headerRow {
		// Exports carry a UTF-8 BOM on the first header cell.
		header[strings.TrimPrefix(name, "\uFEFF")] = i
	}

	inserted := 0
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		row := convert(record{header: header, fields: fields})
		if err := l.db.WithContext(ctx).Create(row).Error; err != nil {
			return fmt.Errorf("inserting row from %s: %w", path, err)
		}
		inserted++
	}

	log.Printf("Loaded %d rows from %s", inserted, fileName)
	return nil
}
