package mysql

import (
	"bloghive/models"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func SelectLike(blogID, userID int64) (*models.BlogLike, error) {
	like := new(models.BlogLike)
	res := db.First(like, "blog_id = ? AND user_id = ?", blogID, userID)
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "mysql:SelectLike")
	}
	return like, nil
}

func CreateLike(blogID, userID int64) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		if res := tx.Create(&models.BlogLike{BlogID: blogID, UserID: userID}); res.Error != nil {
			return res.Error
		}
		return IncrBlogCounter(tx, blogID, "like_count", 1)
	})
	return errors.Wrap(err, "mysql:CreateLike")
}

func DeleteLike(blogID, userID int64) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		if res := tx.Delete(&models.BlogLike{}, "blog_id = ? AND user_id = ?", blogID, userID); res.Error != nil {
			return res.Error
		}
		return IncrBlogCounter(tx, blogID, "like_count", -1)
	})
	return errors.Wrap(err, "mysql:DeleteLike")
}

// SelectLikedBlogIDs returns the blogs a user liked, most recent first.
func SelectLikedBlogIDs(userID int64) ([]string, error) {
	blogIDs := make([]string, 0)
	res := db.Model(&models.BlogLike{}).
		Select("blog_id").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Scan(&blogIDs)
	return blogIDs, errors.Wrap(res.Error, "mysql:SelectLikedBlogIDs")
}
