package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"eibs-cms/model"
)

type CaseStudyRepository interface {
	GetAll(lang string) ([]model.CaseStudy, error)
	GetFeatured(lang string) ([]model.CaseStudy, error)
	GetBySlug(slug string) (*model.CaseStudy, error)
	GetByID(id uuid.UUID) (*model.CaseStudy, error)
	Create(cs *model.CaseStudy) error
	Update(id uuid.UUID, updates map[string]interface{}) (*model.CaseStudy, error)
	Delete(id uuid.UUID) error
	Count() (int64, error)
}

type pgCaseStudyRepo struct {
	db *gorm.DB
}

func NewCaseStudyRepository(db *gorm.DB) CaseStudyRepository {
	return &pgCaseStudyRepo{db: db}
}

func (r *pgCaseStudyRepo) GetAll(lang string) ([]model.CaseStudy, error) {
	var out []model.CaseStudy
	q := r.db.Order("year DESC")
	if lang != "" {
		q = q.Where("lang = ?", lang)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *pgCaseStudyRepo) GetFeatured(lang string) ([]model.CaseStudy, error) {
	var out []model.CaseStudy
	q := r.db.Where("featured = ?", true).Order("year DESC")
	if lang != "" {
		q = q.Where("lang = ?", lang)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *pgCaseStudyRepo) GetBySlug(slug string) (*model.CaseStudy, error) {
	var cs model.CaseStudy
	if err := r.db.Where("slug = ?", slug).First(&cs).Error; err != nil {
		return nil, err
	}
	return &cs, nil
}

func (r *pgCaseStudyRepo) GetByID(id uuid.UUID) (*model.CaseStudy, error) {
	var cs model.CaseStudy
	if err := r.db.First(&cs, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &cs, nil
}

func (r *pgCaseStudyRepo) Create(cs *model.CaseStudy) error {
	return r.db.Create(cs).Error
}

// Update merges the supplied columns into the record. UpdatedAt refreshes
// automatically via autoUpdateTime.
func (r *pgCaseStudyRepo) Update(id uuid.UUID, updates map[string]interface{}) (*model.CaseStudy, error) {
	tx := r.db.Model(&model.CaseStudy{}).Where("id = ?", id).Updates(updates)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(id)
}

func (r *pgCaseStudyRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.CaseStudy{}, "id = ?", id).Error
}

func (r *pgCaseStudyRepo) Count() (int64, error) {
	var n int64
	err := r.db.Model(&model.CaseStudy{}).Count(&n).Error
	return n, err
}
