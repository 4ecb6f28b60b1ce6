package mysql

import (
	"bloghive/models"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// CreateComment inserts the comment and bumps the blog's comment counter in
// one transaction.
func CreateComment(comment *models.BlogComment) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		if res := tx.Create(&comment); res.Error != nil {
			return res.Error
		}
		return IncrBlogCounter(tx, comment.BlogID, "comment_count", 1)
	})
	return errors.Wrap(err, "mysql:CreateComment")
}

func SelectCommentByCommentID(commentID int64) (*models.BlogComment, error) {
	comment := new(models.BlogComment)
	res := db.First(comment, "comment_id = ?", commentID)
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "mysql:SelectCommentByCommentID")
	}
	return comment, nil
}

func SelectCommentsByBlogID(blogID int64) ([]*models.CommentDTO, error) {
	sqlStr := `SELECT bc.comment_id,
			bc.blog_id,
			bc.user_id,
			u.user_name,
			u.avatar,
			bc.content,
			bc.created_at
		FROM blog_comments bc
		JOIN users u ON u.user_id = bc.user_id
		WHERE bc.blog_id = ?
		ORDER BY bc.created_at DESC`

	list := make([]*models.CommentDTO, 0)
	res := db.Raw(sqlStr, blogID).Scan(&list)
	return list, errors.Wrap(res.Error, "mysql:SelectCommentsByBlogID")
}

func SelectCommentsByUserID(userID int64) ([]*models.CommentDTO, error) {
	sqlStr := `SELECT bc.comment_id,
			bc.blog_id,
			bc.user_id,
			u.user_name,
			u.avatar,
			bc.content,
			bc.created_at
		FROM blog_comments bc
		JOIN users u ON u.user_id = bc.user_id
		WHERE bc.user_id = ?
		ORDER BY bc.created_at DESC`

	list := make([]*models.CommentDTO, 0)
	res := db.Raw(sqlStr, userID).Scan(&list)
	return list, errors.Wrap(res.Error, "mysql:SelectCommentsByUserID")
}

// DeleteComment removes the comment and decrements the blog's comment
// counter in one transaction.
func DeleteComment(commentID, blogID int64) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		if res := tx.Delete(&models.BlogComment{}, "comment_id = ?", commentID); res.Error != nil {
			return res.Error
		}
		return IncrBlogCounter(tx, blogID, "comment_count", -1)
	})
	return errors.Wrap(err, "mysql:DeleteComment")
}
