package mysql

import (
	"strings"

	"bloghive/models"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

const blogDTOColumns = `u.user_id author_id,
			u.user_name author_name,
			u.avatar,
			c.category_id,
			c.category_name,
			c.slug category_slug,
			b.blog_id,
			b.title,
			b.slug,
			b.visibility,
			b.like_count,
			b.comment_count,
			b.share_count,
			b.read_count,
			b.trending_score,
			b.created_at,
			b.updated_at`

func CreateBlog(blog *models.Blog) error {
	res := db.Create(&blog)
	return errors.Wrap(res.Error, "mysql:CreateBlog")
}

func SelectBlogByBlogID(blogID int64) (*models.Blog, error) {
	blog := new(models.Blog)
	res := db.First(blog, "blog_id = ?", blogID)
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "mysql:SelectBlogByBlogID")
	}
	return blog, nil
}

func SelectBlogDTOBySlug(slug string) (*models.BlogDTO, error) {
	detail := new(models.BlogDTO)
	sqlStr := `SELECT ` + blogDTOColumns + `,
			b.content
		FROM blogs b
		JOIN users u ON u.user_id = b.author_id
		JOIN categories c ON c.category_id = b.category_id
		WHERE b.slug = ?`

	res := db.Raw(sqlStr, slug).Scan(detail)
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "mysql:SelectBlogDTOBySlug")
	}
	if detail.BlogID == 0 {
		return nil, errors.Wrap(gorm.ErrRecordNotFound, "mysql:SelectBlogDTOBySlug")
	}
	return detail, nil
}

func SelectPublicBlogList(start, size int64) ([]*models.BlogDTO, error) {
	contentLength := viper.GetInt64("service.blog.content_max_length")
	sqlStr := `SELECT ` + blogDTOColumns + `,
			substr(b.content, 1, ?) content
		FROM blogs b
		JOIN users u ON u.user_id = b.author_id
		JOIN categories c ON c.category_id = b.category_id
		WHERE b.visibility = ?
		ORDER BY b.created_at DESC
		LIMIT ? OFFSET ?`

	list := make([]*models.BlogDTO, 0, size)
	res := db.Raw(sqlStr, contentLength, models.VisibilityPublic, size, start).Scan(&list)
	return list, errors.Wrap(res.Error, "mysql:SelectPublicBlogList")
}

func SelectPublicBlogCount() (int64, error) {
	var total int64
	res := db.Model(&models.Blog{}).Where("visibility = ?", models.VisibilityPublic).Count(&total)
	return total, errors.Wrap(res.Error, "mysql:SelectPublicBlogCount")
}

// SelectBlogsByAuthorID lists an author's blogs, newest first. publicOnly
// hides private blogs for viewers other than the author.
func SelectBlogsByAuthorID(authorID int64, start, size int64, publicOnly bool) ([]*models.BlogDTO, error) {
	contentLength := viper.GetInt64("service.blog.content_max_length")
	sqlStr := `SELECT ` + blogDTOColumns + `,
			substr(b.content, 1, ?) content
		FROM blogs b
		JOIN users u ON u.user_id = b.author_id
		JOIN categories c ON c.category_id = b.category_id
		WHERE b.author_id = ?`
	args := []any{contentLength, authorID}
	if publicOnly {
		sqlStr += ` AND b.visibility = ?`
		args = append(args, models.VisibilityPublic)
	}
	sqlStr += `
		ORDER BY b.created_at DESC
		LIMIT ? OFFSET ?`
	args = append(args, size, start)

	list := make([]*models.BlogDTO, 0, size)
	res := db.Raw(sqlStr, args...).Scan(&list)
	return list, errors.Wrap(res.Error, "mysql:SelectBlogsByAuthorID")
}

func SelectBlogsByCategoryID(categoryID int64, start, size int64) ([]*models.BlogDTO, error) {
	contentLength := viper.GetInt64("service.blog.content_max_length")
	sqlStr := `SELECT ` + blogDTOColumns + `,
			substr(b.content, 1, ?) content
		FROM blogs b
		JOIN users u ON u.user_id = b.author_id
		JOIN categories c ON c.category_id = b.category_id
		WHERE b.category_id = ? AND b.visibility = ?
		ORDER BY b.created_at DESC
		LIMIT ? OFFSET ?`

	list := make([]*models.BlogDTO, 0, size)
	res := db.Raw(sqlStr, contentLength, categoryID, models.VisibilityPublic, size, start).Scan(&list)
	return list, errors.Wrap(res.Error, "mysql:SelectBlogsByCategoryID")
}

// SelectBlogDTOsByBlogIDs returns DTOs in the order of blogIDs.
func SelectBlogDTOsByBlogIDs(blogIDs []string) ([]*models.BlogDTO, error) {
	contentLength := viper.GetInt64("service.blog.content_max_length")
	sqlStr := `SELECT ` + blogDTOColumns + `,
			substr(b.content, 1, ?) content
		FROM blogs b
		JOIN users u ON u.user_id = b.author_id
		JOIN categories c ON c.category_id = b.category_id
		WHERE b.blog_id IN ?
		ORDER BY FIND_IN_SET(b.blog_id, ?)`

	list := make([]*models.BlogDTO, 0, len(blogIDs))
	blogIDsStr := strings.Join(blogIDs, ",")
	res := db.Raw(sqlStr, contentLength, blogIDs, blogIDsStr).Scan(&list)
	return list, errors.Wrap(res.Error, "mysql:SelectBlogDTOsByBlogIDs")
}

// SelectBlogDetailDTOsByBlogIDs is the cache-warming variant of
// SelectBlogDTOsByBlogIDs: same join and ordering, full content instead of
// the list preview, so a warmed entry can serve the detail endpoint.
func SelectBlogDetailDTOsByBlogIDs(blogIDs []string) ([]*models.BlogDTO, error) {
	sqlStr := `SELECT ` + blogDTOColumns + `,
			b.content
		FROM blogs b
		JOIN users u ON u.user_id = b.author_id
		JOIN categories c ON c.category_id = b.category_id
		WHERE b.blog_id IN ?
		ORDER BY FIND_IN_SET(b.blog_id, ?)`

	list := make([]*models.BlogDTO, 0, len(blogIDs))
	res := db.Raw(sqlStr, blogIDs, strings.Join(blogIDs, ",")).Scan(&list)
	return list, errors.Wrap(res.Error, "mysql:SelectBlogDetailDTOsByBlogIDs")
}

func UpdateBlog(blogID int64, fields map[string]any) error {
	res := db.Model(&models.Blog{}).Where("blog_id = ?", blogID).Updates(fields)
	return errors.Wrap(res.Error, "mysql:UpdateBlog")
}

func DeleteBlogByBlogID(tx *gorm.DB, blogID int64) error {
	useDB := getUseDB(tx)
	res := useDB.Delete(&models.Blog{}, "blog_id = ?", blogID)
	return errors.Wrap(res.Error, "mysql:DeleteBlogByBlogID")
}

// IncrBlogCounter adjusts one engagement counter by delta, flooring at 0.
func IncrBlogCounter(tx *gorm.DB, blogID int64, column string, delta int64) error {
	useDB := getUseDB(tx)
	res := useDB.Model(&models.Blog{}).Where("blog_id = ?", blogID).
		Update(column, gorm.Expr("GREATEST(CAST("+column+" AS SIGNED) + ?, 0)", delta))
	return errors.Wrap(res.Error, "mysql:IncrBlogCounter")
}

// AddBlogReads applies accumulated view counts, one row per blog.
func AddBlogReads(reads map[int64]int64) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		for blogID, n := range reads {
			res := tx.Model(&models.Blog{}).Where("blog_id = ?", blogID).
				Update("read_count", gorm.Expr("read_count + ?", n))
			if res.Error != nil {
				return res.Error
			}
		}
		return nil
	})
	return errors.Wrap(err, "mysql:AddBlogReads")
}
