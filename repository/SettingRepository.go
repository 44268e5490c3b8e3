package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"eibs-cms/model"
)

type SettingRepository interface {
	Get(key string) (*model.Setting, error)
	Upsert(setting *model.Setting) error
}

type pgSettingRepo struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &pgSettingRepo{db: db}
}

func (r *pgSettingRepo) Get(key string) (*model.Setting, error) {
	var s model.Setting
	if err := r.db.First(&s, "key = ?", key).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *pgSettingRepo) Upsert(setting *model.Setting) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(setting).Error
}
