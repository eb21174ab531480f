package sqlitedb

import (
	"context"

	"gorm.io/gorm"

	"github.com/firstpost/journal/internal/models"
	"github.com/firstpost/journal/internal/repository"
)

type categoryRepo struct {
	db *gorm.DB
}

func (r *categoryRepo) List(ctx context.Context) ([]models.Category, error) {
	var cats []models.Category
	err := r.db.WithContext(ctx).Order("name ASC").Find(&cats).Error
	if err != nil {
		return nil, translate(err)
	}
	return cats, nil
}

func (r *categoryRepo) GetByID(ctx context.Context, id string) (*models.Category, error) {
	var cat models.Category
	err := r.db.WithContext(ctx).First(&cat, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &cat, nil
}

func (r *categoryRepo) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var cat models.Category
	err := r.db.WithContext(ctx).First(&cat, "slug = ?", slug).Error
	if err != nil {
		return nil, translate(err)
	}
	return &cat, nil
}

func (r *categoryRepo) Create(ctx context.Context, cat *models.Category) error {
	return translate(r.db.WithContext(ctx).Create(cat).Error)
}

func (r *categoryRepo) Update(ctx context.Context, cat *models.Category) error {
	res := r.db.WithContext(ctx).Model(&models.Category{}).
		Where("id = ?", cat.ID).
		Updates(map[string]interface{}{"name": cat.Name, "slug": cat.Slug})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes the category only. Posts keep their dangling reference
// and render as Uncategorized.
func (r *categoryRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&models.Category{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
