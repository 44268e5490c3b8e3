package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"eibs-cms/model"
)

type BlogPostRepository interface {
	GetAll(lang, status string) ([]model.BlogPost, error)
	GetBySlug(slug string) (*model.BlogPost, error)
	GetByID(id uuid.UUID) (*model.BlogPost, error)
	Create(post *model.BlogPost) error
	Update(id uuid.UUID, updates map[string]interface{}) (*model.BlogPost, error)
	Delete(id uuid.UUID) error
	Count() (int64, error)
}

type pgBlogPostRepo struct {
	db *gorm.DB
}

func NewBlogPostRepository(db *gorm.DB) BlogPostRepository {
	return &pgBlogPostRepo{db: db}
}

func (r *pgBlogPostRepo) GetAll(lang, status string) ([]model.BlogPost, error) {
	var out []model.BlogPost
	q := r.db.Order("created_at DESC")
	if lang != "" {
		q = q.Where("lang = ?", lang)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *pgBlogPostRepo) GetBySlug(slug string) (*model.BlogPost, error) {
	var p model.BlogPost
	if err := r.db.Where("slug = ?", slug).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *pgBlogPostRepo) GetByID(id uuid.UUID) (*model.BlogPost, error) {
	var p model.BlogPost
	if err := r.db.First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *pgBlogPostRepo) Create(post *model.BlogPost) error {
	return r.db.Create(post).Error
}

func (r *pgBlogPostRepo) Update(id uuid.UUID, updates map[string]interface{}) (*model.BlogPost, error) {
	tx := r.db.Model(&model.BlogPost{}).Where("id = ?", id).Updates(updates)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(id)
}

func (r *pgBlogPostRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.BlogPost{}, "id = ?", id).Error
}

func (r *pgBlogPostRepo) Count() (int64, error) {
	var n int64
	err := r.db.Model(&model.BlogPost{}).Count(&n).Error
	return n, err
}
