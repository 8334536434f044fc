package tag

import (
	"context"
	"errors"

	"foodgram/internal/database"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) List(ctx context.Context) ([]Tag, error) {
	var tags []Tag
	err := r.db.WithContext(ctx).Order("name ASC").Find(&tags).Error
	return tags, err
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Tag, error) {
	var t Tag
	err := r.db.WithContext(ctx).First(&t, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetByIDs returns the tags that exist among ids, ordered by name.
func (r *Repository) GetByIDs(ctx context.Context, ids []int64) ([]Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var tags []Tag
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("name ASC").Find(&tags).Error
	return tags, err
}

func (r *Repository) Create(ctx context.Context, t *Tag) error {
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// EnsureDefaults inserts the tags that do not exist yet and reports how many
// were created.
func (r *Repository) EnsureDefaults(ctx context.Context, tags []Tag) (int64, error) {
	var created int64
	for i := range tags {
		res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&tags[i])
		if res.Error != nil {
			return created, res.Error
		}
		created += res.RowsAffected
	}
	return created, nil
}
