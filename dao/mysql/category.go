package mysql

import (
	"bloghive/models"

	"github.com/pkg/errors"
)

func InsertCategory(category *models.Category) error {
	res := db.Create(&category)
	return errors.Wrap(res.Error, "mysql:InsertCategory")
}

func SelectCategoryByCategoryID(categoryID int64) (*models.Category, error) {
	category := new(models.Category)
	res := db.First(category, "category_id = ?", categoryID)
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "mysql:SelectCategoryByCategoryID")
	}
	return category, nil
}

func SelectCategoryBySlug(slug string) (*models.Category, error) {
	category := new(models.Category)
	res := db.First(category, "slug = ?", slug)
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "mysql:SelectCategoryBySlug")
	}
	return category, nil
}

func SelectCategoryList() ([]*models.CategoryDTO, error) {
	list := make([]*models.CategoryDTO, 0)
	res := db.Model(&models.Category{}).
		Select("category_id, category_name, slug").
		Order("category_name").
		Scan(&list)
	return list, errors.Wrap(res.Error, "mysql:SelectCategoryList")
}
