package ingredient

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const defaultBatchSize = 500

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Ingredient, error) {
	var ing Ingredient
	err := r.db.WithContext(ctx).First(&ing, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ing, nil
}

// GetByIDs returns the ingredients that exist among ids.
func (r *Repository) GetByIDs(ctx context.Context, ids []int64) ([]Ingredient, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var out []Ingredient
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("name ASC").Find(&out).Error
	return out, err
}

// List returns ingredients ordered by name, optionally restricted to names
// starting with prefix (case-insensitive).
func (r *Repository) List(ctx context.Context, prefix string) ([]Ingredient, error) {
	q := r.db.WithContext(ctx).Model(&Ingredient{})
	if prefix = strings.TrimSpace(prefix); prefix != "" {
		q = q.Where("LOWER(name) LIKE ? ESCAPE '\\'", escapeLike(strings.ToLower(prefix))+"%")
	}
	var out []Ingredient
	err := q.Order("name ASC").Order("measurement_unit ASC").Find(&out).Error
	return out, err
}

// BulkInsert inserts ingredients in batches, skipping (name, unit) pairs that
// already exist. It returns the number of rows actually inserted.
func (r *Repository) BulkInsert(ctx context.Context, items []Ingredient, batchSize int) (int64, error) {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	var inserted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for start := 0; start < len(items); start += batchSize {
			end := min(start+batchSize, len(items))
			batch := items[start:end]
			res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&batch)
			if res.Error != nil {
				return res.Error
			}
			inserted += res.RowsAffected
		}
		return nil
	})
	return inserted, err
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
