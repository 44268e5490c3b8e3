package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"eibs-cms/model"
)

type ContactSubmissionRepository interface {
	GetAll() ([]model.ContactSubmission, error)
	Create(sub *model.ContactSubmission) error
	UpdateStatus(id uuid.UUID, status model.SubmissionStatus) error
	Count() (int64, error)
}

type pgContactSubmissionRepo struct {
	db *gorm.DB
}

func NewContactSubmissionRepository(db *gorm.DB) ContactSubmissionRepository {
	return &pgContactSubmissionRepo{db: db}
}

func (r *pgContactSubmissionRepo) GetAll() ([]model.ContactSubmission, error) {
	var out []model.ContactSubmission
	if err := r.db.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *pgContactSubmissionRepo) Create(sub *model.ContactSubmission) error {
	return r.db.Create(sub).Error
}

func (r *pgContactSubmissionRepo) UpdateStatus(id uuid.UUID, status model.SubmissionStatus) error {
	return r.db.Model(&model.ContactSubmission{}).Where("id = ?", id).
		Update("status", status).Error
}

func (r *pgContactSubmissionRepo) Count() (int64, error) {
	var n int64
	err := r.db.Model(&model.ContactSubmission{}).Count(&n).Error
	return n, err
}
