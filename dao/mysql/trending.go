package mysql

import (
	"context"
	"time"

	"bloghive/models"
	"bloghive/trending"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// TrendingStore adapts the gorm layer to the trending storage port.
type TrendingStore struct{}

func NewTrendingStore() TrendingStore {
	return TrendingStore{}
}

var _ trending.Store = TrendingStore{}

func (TrendingStore) ListPublicSince(ctx context.Context, cutoff time.Time) ([]*models.Blog, error) {
	blogs := make([]*models.Blog, 0)
	res := db.WithContext(ctx).
		Where("visibility = ? AND created_at >= ?", models.VisibilityPublic, cutoff).
		Find(&blogs)
	return blogs, errors.Wrap(res.Error, "mysql:TrendingStore:ListPublicSince")
}

func (TrendingStore) GetByBlogID(ctx context.Context, blogID int64) (*models.Blog, error) {
	blog := new(models.Blog)
	res := db.WithContext(ctx).First(blog, "blog_id = ?", blogID)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(res.Error, "mysql:TrendingStore:GetByBlogID")
	}
	return blog, nil
}

// BulkWriteScores applies the per-blog refreshes and the stale reset in one
// transaction, the closest MySQL gets to a single bulk-write round trip.
func (TrendingStore) BulkWriteScores(ctx context.Context, updates []trending.ScoreUpdate, reset trending.StaleReset) error {
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, u := range updates {
			res := tx.Model(&models.Blog{}).Where("blog_id = ?", u.BlogID).Updates(map[string]any{
				"trending_score":            u.Score,
				"trending_score_updated_at": u.UpdatedAt,
			})
			if res.Error != nil {
				return res.Error
			}
		}

		res := tx.Model(&models.Blog{}).
			Where("visibility = ? AND created_at < ? AND trending_score > ?",
				models.VisibilityPublic, reset.Cutoff, reset.MinScore).
			Updates(map[string]any{
				"trending_score":            0,
				"trending_score_updated_at": reset.At,
			})
		return res.Error
	})
	return errors.Wrap(err, "mysql:TrendingStore:BulkWriteScores")
}

func (TrendingStore) WriteScore(ctx context.Context, blogID int64, score float64, at time.Time) error {
	res := db.WithContext(ctx).Model(&models.Blog{}).Where("blog_id = ?", blogID).Updates(map[string]any{
		"trending_score":            score,
		"trending_score_updated_at": at,
	})
	return errors.Wrap(res.Error, "mysql:TrendingStore:WriteScore")
}

func (TrendingStore) CountTrending(ctx context.Context, f trending.ListFilter) (int64, error) {
	var total int64
	res := trendingFilter(db.WithContext(ctx), f).Count(&total)
	return total, errors.Wrap(res.Error, "mysql:TrendingStore:CountTrending")
}

func (TrendingStore) ListTrendingSorted(ctx context.Context, f trending.ListFilter, offset, limit int64) ([]*models.Blog, error) {
	blogs := make([]*models.Blog, 0, limit)
	res := trendingFilter(db.WithContext(ctx), f).
		Order("trending_score DESC").
		Offset(int(offset)).
		Limit(int(limit)).
		Find(&blogs)
	return blogs, errors.Wrap(res.Error, "mysql:TrendingStore:ListTrendingSorted")
}

func trendingFilter(tx *gorm.DB, f trending.ListFilter) *gorm.DB {
	tx = tx.Model(&models.Blog{}).
		Where("visibility = ? AND trending_score >= ?", models.VisibilityPublic, f.MinScore)
	if f.CategoryID != 0 {
		tx = tx.Where("category_id = ?", f.CategoryID)
	}
	return tx
}
