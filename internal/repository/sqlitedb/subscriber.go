package sqlitedb

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/firstpost/journal/internal/models"
	"github.com/firstpost/journal/internal/repository"
)

type subscriberRepo struct {
	db *gorm.DB
}

func (r *subscriberRepo) Create(ctx context.Context, sub *models.Subscriber) error {
	return translate(r.db.WithContext(ctx).Create(sub).Error)
}

func (r *subscriberRepo) GetByID(ctx context.Context, id string) (*models.Subscriber, error) {
	var sub models.Subscriber
	err := r.db.WithContext(ctx).First(&sub, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &sub, nil
}

func (r *subscriberRepo) GetByEmail(ctx context.Context, email string) (*models.Subscriber, error) {
	var sub models.Subscriber
	err := r.db.WithContext(ctx).First(&sub, "email = ?", email).Error
	if err != nil {
		return nil, translate(err)
	}
	return &sub, nil
}

func (r *subscriberRepo) SetActive(ctx context.Context, id string, active bool) error {
	res := r.db.WithContext(ctx).Model(&models.Subscriber{}).
		Where("id = ?", id).
		Update("is_active", active)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *subscriberRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&models.Subscriber{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *subscriberRepo) List(ctx context.Context, filter repository.SubscriberFilter) ([]models.Subscriber, error) {
	query := r.db.WithContext(ctx).Model(&models.Subscriber{})

	if q := strings.TrimSpace(filter.Search); q != "" {
		query = query.Where("lower(email) LIKE ?", "%"+strings.ToLower(q)+"%")
	}
	switch filter.Status {
	case "active":
		query = query.Where("is_active = ?", true)
	case "blocked":
		query = query.Where("is_active = ?", false)
	}

	var subs []models.Subscriber
	err := query.Order("created_at DESC").Find(&subs).Error
	if err != nil {
		return nil, translate(err)
	}
	return subs, nil
}

func (r *subscriberRepo) ListActive(ctx context.Context) ([]models.Subscriber, error) {
	var subs []models.Subscriber
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&subs).Error
	if err != nil {
		return nil, translate(err)
	}
	return subs, nil
}

func (r *subscriberRepo) Stats(ctx context.Context) (repository.SubscriberStats, error) {
	var stats repository.SubscriberStats

	if err := r.db.WithContext(ctx).Model(&models.Subscriber{}).Count(&stats.Total).Error; err != nil {
		return stats, translate(err)
	}
	if err := r.db.WithContext(ctx).Model(&models.Subscriber{}).
		Where("is_active = ?", true).Count(&stats.Active).Error; err != nil {
		return stats, translate(err)
	}
	stats.Blocked = stats.Total - stats.Active
	return stats, nil
}
