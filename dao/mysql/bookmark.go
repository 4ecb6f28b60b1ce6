package mysql

import (
	"bloghive/models"

	"github.com/pkg/errors"
)

func SelectBookmark(blogID, userID int64) (*models.Bookmark, error) {
	bookmark := new(models.Bookmark)
	res := db.First(bookmark, "blog_id = ? AND user_id = ?", blogID, userID)
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "mysql:SelectBookmark")
	}
	return bookmark, nil
}

func CreateBookmark(blogID, userID int64) error {
	res := db.Create(&models.Bookmark{BlogID: blogID, UserID: userID})
	return errors.Wrap(res.Error, "mysql:CreateBookmark")
}

func DeleteBookmark(blogID, userID int64) error {
	res := db.Delete(&models.Bookmark{}, "blog_id = ? AND user_id = ?", blogID, userID)
	return errors.Wrap(res.Error, "mysql:DeleteBookmark")
}

func SelectBookmarkedBlogIDs(userID int64) ([]string, error) {
	blogIDs := make([]string, 0)
	res := db.Model(&models.Bookmark{}).
		Select("blog_id").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Scan(&blogIDs)
	return blogIDs, errors.Wrap(res.Error, "mysql:SelectBookmarkedBlogIDs")
}
