package models

const SettingLowRevenueMode = "low_revenue_mode"

type Setting struct {
	Key   string `gorm:"primaryKey;size:100" json:"key"`
	Value string `gorm:"size:255" json:"value"`
}
