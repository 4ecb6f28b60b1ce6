package logic

import (
	"bloghive/dao/mysql"
	bloghive "bloghive/errors"
	"bloghive/models"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ToggleBookmark bookmarks the blog if not bookmarked yet, otherwise removes
// the bookmark. Bookmarks do not feed the trending score.
func ToggleBookmark(blogID, userID int64) (bool, error) {
	if _, err := mysql.SelectBlogByBlogID(blogID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, bloghive.ErrNoSuchBlog
		}
		return false, errors.Wrap(err, "logic:ToggleBookmark: SelectBlogByBlogID")
	}

	_, err := mysql.SelectBookmark(blogID, userID)
	switch {
	case err == nil:
		if err := mysql.DeleteBookmark(blogID, userID); err != nil {
			return false, errors.Wrap(err, "logic:ToggleBookmark: DeleteBookmark")
		}
		return false, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := mysql.CreateBookmark(blogID, userID); err != nil {
			if !mysql.IsDuplicateEntry(err) {
				return false, errors.Wrap(err, "logic:ToggleBookmark: CreateBookmark")
			}
		}
		return true, nil
	default:
		return false, errors.Wrap(err, "logic:ToggleBookmark: SelectBookmark")
	}
}

func GetBookmarkedBlogs(userID int64) ([]*models.BlogDTO, error) {
	blogIDs, err := mysql.SelectBookmarkedBlogIDs(userID)
	if err != nil {
		return nil, errors.Wrap(err, "logic:GetBookmarkedBlogs: SelectBookmarkedBlogIDs")
	}
	if len(blogIDs) == 0 {
		return []*models.BlogDTO{}, nil
	}
	blogs, err := mysql.SelectBlogDTOsByBlogIDs(blogIDs)
	return blogs, errors.Wrap(err, "logic:GetBookmarkedBlogs: SelectBlogDTOsByBlogIDs")
}
