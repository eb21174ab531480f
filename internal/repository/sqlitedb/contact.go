package sqlitedb

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/firstpost/journal/internal/models"
	"github.com/firstpost/journal/internal/repository"
)

type contactRepo struct {
	db *gorm.DB
}

func (r *contactRepo) Create(ctx context.Context, contact *models.Contact) error {
	return translate(r.db.WithContext(ctx).Create(contact).Error)
}

func (r *contactRepo) List(ctx context.Context, search string) ([]models.Contact, error) {
	query := r.db.WithContext(ctx).Model(&models.Contact{})
	if q := strings.TrimSpace(search); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		query = query.Where("lower(name) LIKE ? OR lower(email) LIKE ? OR lower(message) LIKE ?", like, like, like)
	}

	var contacts []models.Contact
	err := query.Order("created_at DESC").Find(&contacts).Error
	if err != nil {
		return nil, translate(err)
	}
	return contacts, nil
}

func (r *contactRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&models.Contact{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *contactRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Contact{}).Count(&count).Error
	return count, translate(err)
}
