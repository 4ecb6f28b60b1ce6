package logic

import (
	"bloghive/dao/mysql"
	bloghive "bloghive/errors"
	"bloghive/internal/utils"
	"bloghive/models"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func AddComment(blogID, userID int64, params *models.ParamCommentCreate) (*models.BlogComment, error) {
	if _, err := mysql.SelectBlogByBlogID(blogID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, bloghive.ErrNoSuchBlog
		}
		return nil, errors.Wrap(err, "logic:AddComment: SelectBlogByBlogID")
	}

	comment := &models.BlogComment{
		CommentID: utils.GenSnowflakeID(),
		BlogID:    blogID,
		UserID:    userID,
		Content:   params.Content,
	}
	if err := mysql.CreateComment(comment); err != nil {
		return nil, errors.Wrap(err, "logic:AddComment: CreateComment")
	}

	BumpBlogScore(blogID)
	return comment, nil
}

func GetBlogComments(blogID int64) ([]*models.CommentDTO, error) {
	if _, err := mysql.SelectBlogByBlogID(blogID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, bloghive.ErrNoSuchBlog
		}
		return nil, errors.Wrap(err, "logic:GetBlogComments: SelectBlogByBlogID")
	}
	comments, err := mysql.SelectCommentsByBlogID(blogID)
	return comments, errors.Wrap(err, "logic:GetBlogComments: SelectCommentsByBlogID")
}

func GetUserComments(userID int64) ([]*models.CommentDTO, error) {
	comments, err := mysql.SelectCommentsByUserID(userID)
	return comments, errors.Wrap(err, "logic:GetUserComments: SelectCommentsByUserID")
}

func DeleteComment(commentID, userID int64) error {
	comment, err := mysql.SelectCommentByCommentID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return bloghive.ErrNoSuchComment
		}
		return errors.Wrap(err, "logic:DeleteComment: SelectCommentByCommentID")
	}
	if comment.UserID != userID {
		return bloghive.ErrNotCommentAuthor
	}

	if err := mysql.DeleteComment(commentID, comment.BlogID); err != nil {
		return errors.Wrap(err, "logic:DeleteComment: DeleteComment")
	}

	BumpBlogScore(comment.BlogID)
	return nil
}
