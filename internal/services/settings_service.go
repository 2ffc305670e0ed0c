package services

import (
	"errors"

	"github.com/mykweza/kweza-backend/internal/models"
	"gorm.io/gorm"
)

// SettingsService wraps the settings table so low_revenue_mode is an injected
// dependency rather than a row read ad hoc by whoever needs it.
type SettingsService struct {
	db *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{db: db}
}

// LowRevenueMode reports the advisory payout-pressure flag. A missing row
// reads as false.
func (s *SettingsService) LowRevenueMode() (bool, error) {
	var setting models.Setting
	err := s.db.First(&setting, "key = ?", models.SettingLowRevenueMode).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return setting.Value == "true", nil
}

// SetLowRevenueMode stores the flag as a boolean string.
func (s *SettingsService) SetLowRevenueMode(enabled bool) error {
	value := "false"
	if enabled {
		value = "true"
	}
	return s.db.Save(&models.Setting{
		Key:   models.SettingLowRevenueMode,
		Value: value,
	}).Error
}
