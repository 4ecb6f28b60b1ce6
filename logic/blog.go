package logic

import (
	"time"

	"bloghive/dao/localcache"
	"bloghive/dao/mysql"
	"bloghive/dao/redis"
	bloghive "bloghive/errors"
	"bloghive/internal/utils"
	"bloghive/logger"
	"bloghive/models"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

var blogDetailGrp singleflight.Group

func CreateBlog(authorID int64, params *models.ParamCreateBlog) (*models.Blog, error) {
	if _, err := mysql.SelectCategoryByCategoryID(params.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, bloghive.ErrNoSuchCategory
		}
		return nil, errors.Wrap(err, "logic:CreateBlog: SelectCategoryByCategoryID")
	}

	visibility := params.Visibility
	if visibility == "" {
		visibility = models.VisibilityPublic
	}

	blog := &models.Blog{
		BlogID:     utils.GenSnowflakeID(),
		AuthorID:   authorID,
		CategoryID: params.CategoryID,
		Title:      params.Title,
		Content:    params.Content,
		Slug:       params.Slug,
		Visibility: visibility,
	}

	if err := mysql.CreateBlog(blog); err != nil {
		if mysql.IsDuplicateEntry(err) {
			return nil, bloghive.ErrSlugExist
		}
		return nil, errors.Wrap(err, "logic:CreateBlog: CreateBlog")
	}
	return blog, nil
}

func UpdateBlog(userID, blogID int64, params *models.ParamUpdateBlog) error {
	blog, err := getOwnedBlog(userID, blogID)
	if err != nil {
		return err
	}

	fields := make(map[string]any, 6)
	if params.Title != "" {
		fields["title"] = params.Title
	}
	if params.Content != "" {
		fields["content"] = params.Content
	}
	if params.Slug != "" {
		fields["slug"] = params.Slug
	}
	if params.Visibility != "" {
		fields["visibility"] = params.Visibility
	}
	if params.CategoryID != 0 {
		if _, err := mysql.SelectCategoryByCategoryID(params.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return bloghive.ErrNoSuchCategory
			}
			return errors.Wrap(err, "logic:UpdateBlog: SelectCategoryByCategoryID")
		}
		fields["category_id"] = params.CategoryID
	}
	if len(fields) == 0 {
		return nil
	}
	fields["updated_at"] = time.Now()

	if err := mysql.UpdateBlog(blogID, fields); err != nil {
		if mysql.IsDuplicateEntry(err) {
			return bloghive.ErrSlugExist
		}
		return errors.Wrap(err, "logic:UpdateBlog: UpdateBlog")
	}

	localcache.GetLocalCache().Remove(localcache.BlogKey(blog.Slug))
	return nil
}

func DeleteBlog(userID, blogID int64) error {
	blog, err := getOwnedBlog(userID, blogID)
	if err != nil {
		return err
	}

	if err := mysql.DeleteBlogByBlogID(nil, blogID); err != nil {
		return errors.Wrap(err, "logic:DeleteBlog: DeleteBlogByBlogID")
	}

	localcache.GetLocalCache().Remove(localcache.BlogKey(blog.Slug))
	return nil
}

// GetBlogBySlug returns the blog detail, counting the read at most once per
// viewer per dedup window. Private blogs are only visible to their author.
func GetBlogBySlug(slug string, viewer string, viewerID int64) (*models.BlogDTO, error) {
	detail, err := fetchBlogDetail(slug)
	if err != nil {
		return nil, err
	}

	if detail.Visibility == models.VisibilityPrivate && detail.AuthorID != viewerID {
		return nil, bloghive.ErrNoSuchBlog // do not reveal private blogs
	}

	countBlogRead(detail.BlogID, viewer)
	return detail, nil
}

func fetchBlogDetail(slug string) (*models.BlogDTO, error) {
	blogCache, err := localcache.GetLocalCache().Get(localcache.BlogKey(slug))
	if err == nil { // local cache hit
		return blogCache.(*models.BlogDTO), nil
	}

	timeout := time.Second * time.Duration(viper.GetInt("service.timeout"))
	rps := viper.GetInt("service.rps")
	interval := time.Second / time.Duration(rps)
	_detail, err := utils.SfDoWithTimeout(&blogDetailGrp, slug, timeout, interval, func() (any, error) {
		return mysql.SelectBlogDTOBySlug(slug)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, bloghive.ErrNoSuchBlog
		}
		return nil, errors.Wrap(err, "logic:fetchBlogDetail: SelectBlogDTOBySlug")
	}
	return _detail.(*models.BlogDTO), nil
}

// countBlogRead accumulates the read locally; the flush worker persists the
// counter and refreshes the score afterwards.
func countBlogRead(blogID int64, viewer string) {
	dedupTime := time.Second * time.Duration(viper.GetInt64("service.blog.read_dedup_time"))
	counted, err := redis.MarkBlogRead(viewer, blogID, dedupTime)
	if err != nil {
		logger.Warnf("logic:countBlogRead: MarkBlogRead failed: %v", err)
		return
	}
	if !counted {
		return
	}
	if _, err := localcache.IncrView(blogID, 1); err != nil {
		logger.Warnf("logic:countBlogRead: IncrView failed: %v", err)
	}
}

func GetPublicBlogList(pageNum, pageSize int64) (*models.BlogListDTO, error) {
	start := (pageNum - 1) * pageSize
	blogs, err := mysql.SelectPublicBlogList(start, pageSize)
	if err != nil {
		return nil, errors.Wrap(err, "logic:GetPublicBlogList: SelectPublicBlogList")
	}
	total, err := mysql.SelectPublicBlogCount()
	if err != nil {
		return nil, errors.Wrap(err, "logic:GetPublicBlogList: SelectPublicBlogCount")
	}
	return &models.BlogListDTO{Total: total, Blogs: blogs}, nil
}

func GetUserBlogs(authorID, pageNum, pageSize int64, publicOnly bool) ([]*models.BlogDTO, error) {
	start := (pageNum - 1) * pageSize
	blogs, err := mysql.SelectBlogsByAuthorID(authorID, start, pageSize, publicOnly)
	return blogs, errors.Wrap(err, "logic:GetUserBlogs: SelectBlogsByAuthorID")
}

// ToggleLike likes the blog if the user has not liked it yet, otherwise
// removes the like. Returns the resulting state and counter.
func ToggleLike(blogID, userID int64) (bool, int64, error) {
	if _, err := mysql.SelectBlogByBlogID(blogID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, 0, bloghive.ErrNoSuchBlog
		}
		return false, 0, errors.Wrap(err, "logic:ToggleLike: SelectBlogByBlogID")
	}

	liked := false
	_, err := mysql.SelectLike(blogID, userID)
	switch {
	case err == nil:
		if err := mysql.DeleteLike(blogID, userID); err != nil {
			return false, 0, errors.Wrap(err, "logic:ToggleLike: DeleteLike")
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := mysql.CreateLike(blogID, userID); err != nil {
			if !mysql.IsDuplicateEntry(err) { // racing double-tap, already liked
				return false, 0, errors.Wrap(err, "logic:ToggleLike: CreateLike")
			}
		}
		liked = true
	default:
		return false, 0, errors.Wrap(err, "logic:ToggleLike: SelectLike")
	}

	BumpBlogScore(blogID)

	blog, err := mysql.SelectBlogByBlogID(blogID)
	if err != nil {
		return liked, 0, errors.Wrap(err, "logic:ToggleLike: SelectBlogByBlogID")
	}
	return liked, blog.LikeCount, nil
}

func CheckUserLiked(blogID, userID int64) (bool, error) {
	_, err := mysql.SelectLike(blogID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, errors.Wrap(err, "logic:CheckUserLiked: SelectLike")
	}
	return true, nil
}

// ShareBlog counts one share. There is no share entity, only the counter.
func ShareBlog(blogID int64) (int64, error) {
	if _, err := mysql.SelectBlogByBlogID(blogID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, bloghive.ErrNoSuchBlog
		}
		return 0, errors.Wrap(err, "logic:ShareBlog: SelectBlogByBlogID")
	}

	if err := mysql.IncrBlogCounter(nil, blogID, "share_count", 1); err != nil {
		return 0, errors.Wrap(err, "logic:ShareBlog: IncrBlogCounter")
	}

	BumpBlogScore(blogID)

	blog, err := mysql.SelectBlogByBlogID(blogID)
	if err != nil {
		return 0, errors.Wrap(err, "logic:ShareBlog: SelectBlogByBlogID")
	}
	return blog.ShareCount, nil
}

func GetLikedBlogs(userID int64) ([]*models.BlogDTO, error) {
	blogIDs, err := mysql.SelectLikedBlogIDs(userID)
	if err != nil {
		return nil, errors.Wrap(err, "logic:GetLikedBlogs: SelectLikedBlogIDs")
	}
	if len(blogIDs) == 0 {
		return []*models.BlogDTO{}, nil
	}
	blogs, err := mysql.SelectBlogDTOsByBlogIDs(blogIDs)
	return blogs, errors.Wrap(err, "logic:GetLikedBlogs: SelectBlogDTOsByBlogIDs")
}

func getOwnedBlog(userID, blogID int64) (*models.Blog, error) {
	blog, err := mysql.SelectBlogByBlogID(blogID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, bloghive.ErrNoSuchBlog
		}
		return nil, errors.Wrap(err, "logic:getOwnedBlog: SelectBlogByBlogID")
	}
	if blog.AuthorID != userID {
		return nil, bloghive.ErrNotBlogAuthor
	}
	return blog, nil
}
