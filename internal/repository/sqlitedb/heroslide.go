package sqlitedb

import (
	"context"

	"gorm.io/gorm"

	"github.com/firstpost/journal/internal/models"
	"github.com/firstpost/journal/internal/repository"
)

type heroSlideRepo struct {
	db *gorm.DB
}

func (r *heroSlideRepo) ListAll(ctx context.Context) ([]models.HeroSlide, error) {
	var slides []models.HeroSlide
	err := r.db.WithContext(ctx).
		Order("sort_order ASC, created_at DESC").
		Find(&slides).Error
	if err != nil {
		return nil, translate(err)
	}
	return slides, nil
}

func (r *heroSlideRepo) ListActive(ctx context.Context) ([]models.HeroSlide, error) {
	var slides []models.HeroSlide
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC, created_at DESC").
		Find(&slides).Error
	if err != nil {
		return nil, translate(err)
	}
	return slides, nil
}

func (r *heroSlideRepo) GetByID(ctx context.Context, id string) (*models.HeroSlide, error) {
	var slide models.HeroSlide
	err := r.db.WithContext(ctx).First(&slide, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &slide, nil
}

func (r *heroSlideRepo) Create(ctx context.Context, slide *models.HeroSlide) error {
	return translate(r.db.WithContext(ctx).Create(slide).Error)
}

func (r *heroSlideRepo) Update(ctx context.Context, slide *models.HeroSlide) error {
	res := r.db.WithContext(ctx).Model(&models.HeroSlide{}).
		Where("id = ?", slide.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(slide)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *heroSlideRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&models.HeroSlide{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
