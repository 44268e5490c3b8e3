package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"eibs-cms/model"
)

type PageRepository interface {
	GetAll(lang string) ([]model.Page, error)
	GetBySlug(slug string) (*model.Page, error)
	GetByID(id uuid.UUID) (*model.Page, error)
	Create(page *model.Page) error
	Update(id uuid.UUID, updates map[string]interface{}) (*model.Page, error)
	Delete(id uuid.UUID) error
	Count() (int64, error)
}

type pgPageRepo struct {
	db *gorm.DB
}

func NewPageRepository(db *gorm.DB) PageRepository {
	return &pgPageRepo{db: db}
}

func (r *pgPageRepo) GetAll(lang string) ([]model.Page, error) {
	var out []model.Page
	q := r.db.Order("updated_at DESC")
	if lang != "" {
		q = q.Where("lang = ?", lang)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *pgPageRepo) GetBySlug(slug string) (*model.Page, error) {
	var p model.Page
	if err := r.db.Where("slug = ?", slug).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *pgPageRepo) GetByID(id uuid.UUID) (*model.Page, error) {
	var p model.Page
	if err := r.db.First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *pgPageRepo) Create(page *model.Page) error {
	return r.db.Create(page).Error
}

func (r *pgPageRepo) Update(id uuid.UUID, updates map[string]interface{}) (*model.Page, error) {
	tx := r.db.Model(&model.Page{}).Where("id = ?", id).Updates(updates)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(id)
}

func (r *pgPageRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Page{}, "id = ?", id).Error
}

func (r *pgPageRepo) Count() (int64, error) {
	var n int64
	err := r.db.Model(&model.Page{}).Count(&n).Error
	return n, err
}
