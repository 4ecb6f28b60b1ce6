package logic

import (
	"bloghive/dao/mysql"
	bloghive "bloghive/errors"
	"bloghive/internal/utils"
	"bloghive/models"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func CreateCategory(params *models.ParamCreateCategory) (*models.Category, error) {
	category := &models.Category{
		CategoryID:   utils.GenSnowflakeID(),
		CategoryName: params.Name,
		Slug:         params.Slug,
	}
	if err := mysql.InsertCategory(category); err != nil {
		if mysql.IsDuplicateEntry(err) {
			return nil, bloghive.ErrCategoryExist
		}
		return nil, errors.Wrap(err, "logic:CreateCategory: InsertCategory")
	}
	return category, nil
}

func GetCategoryList() ([]*models.CategoryDTO, error) {
	categories, err := mysql.SelectCategoryList()
	return categories, errors.Wrap(err, "logic:GetCategoryList: SelectCategoryList")
}

func GetBlogsByCategorySlug(slug string, pageNum, pageSize int64) ([]*models.BlogDTO, error) {
	category, err := mysql.SelectCategoryBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, bloghive.ErrNoSuchCategory
		}
		return nil, errors.Wrap(err, "logic:GetBlogsByCategorySlug: SelectCategoryBySlug")
	}

	start := (pageNum - 1) * pageSize
	blogs, err := mysql.SelectBlogsByCategoryID(category.CategoryID, start, pageSize)
	return blogs, errors.Wrap(err, "logic:GetBlogsByCategorySlug: SelectBlogsByCategoryID")
}
