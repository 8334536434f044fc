package follow

import (
	"context"
	"time"

	"foodgram/internal/database"
	"foodgram/internal/pkg/pagination"

	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Exists(ctx context.Context, followerID, authorID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Follow{}).
		Where("follower_id = ? AND author_id = ?", followerID, authorID).
		Count(&count).Error
	return count > 0, err
}

func (r *Repository) Create(ctx context.Context, followerID, authorID int64) error {
	f := &Follow{FollowerID: followerID, AuthorID: authorID, CreatedAt: time.Now()}
	if err := r.db.WithContext(ctx).Create(f).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return ErrAlreadyFollowing
		}
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, followerID, authorID int64) error {
	res := r.db.WithContext(ctx).
		Where("follower_id = ? AND author_id = ?", followerID, authorID).
		Delete(&Follow{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFollowing
	}
	return nil
}

// FollowedAmong reports which of authorIDs followerID is subscribed to.
func (r *Repository) FollowedAmong(ctx context.Context, followerID int64, authorIDs []int64) (map[int64]bool, error) {
	out := make(map[int64]bool, len(authorIDs))
	if len(authorIDs) == 0 {
		return out, nil
	}
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&Follow{}).
		Where("follower_id = ? AND author_id IN ?", followerID, authorIDs).
		Pluck("author_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		out[id] = true
	}
	return out, nil
}

// ListAuthors pages through the authors followerID follows, most recent
// subscription first.
func (r *Repository) ListAuthors(ctx context.Context, followerID int64, p pagination.Params) ([]int64, int64, error) {
	q := r.db.WithContext(ctx).Model(&Follow{}).Where("follower_id = ?", followerID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&Follow{}).
		Where("follower_id = ?", followerID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(p.Limit).
		Offset(p.Offset()).
		Pluck("author_id", &ids).Error
	return ids, total, err
}
