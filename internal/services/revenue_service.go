package services

import (
	"github.com/mykweza/kweza-backend/internal/dto"
	"github.com/mykweza/kweza-backend/internal/models"
	"gorm.io/gorm"
)

type RevenueService struct {
	db       *gorm.DB
	settings *SettingsService
}

func NewRevenueService(db *gorm.DB, settings *SettingsService) *RevenueService {
	return &RevenueService{db: db, settings: settings}
}

// List returns all revenue rows joined with the submitter's current name.
func (s *RevenueService) List() ([]dto.RevenueWithSubmitter, error) {
	var rows []dto.RevenueWithSubmitter
	err := s.db.Table("revenue").
		Select("revenue.*, users.name AS submitter_name").
		Joins("LEFT JOIN users ON users.id = revenue.submitted_by").
		Order("revenue.submitted_at DESC").
		Scan(&rows).Error
	return rows, err
}

// Create appends a revenue row; branch defaults to System for console entries.
func (s *RevenueService) Create(amount float64, branch, month, year string, submittedBy uint) (*models.Revenue, error) {
	if branch == "" {
		branch = "System"
	}

	row := models.Revenue{
		Branch:      branch,
		Amount:      amount,
		Month:       month,
		Year:        year,
		SubmittedBy: &submittedBy,
	}
	if err := s.db.Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Summary aggregates the dashboard figures: total revenue, committed payouts
// (payout rows plus user compensation), paid payouts, remaining funds and the
// low revenue flag.
func (s *RevenueService) Summary() (*dto.SummaryResponse, error) {
	var totalRevenue, totalPayouts, totalUserPayouts, totalPaid float64

	if err := s.db.Model(&models.Revenue{}).
		Select("COALESCE(SUM(amount), 0)").Scan(&totalRevenue).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Payout{}).
		Select("COALESCE(SUM(amount), 0)").Scan(&totalPayouts).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.User{}).
		Select("COALESCE(SUM(salary + bonus + dividends), 0)").Scan(&totalUserPayouts).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Payout{}).Where("status = ?", "paid").
		Select("COALESCE(SUM(amount), 0)").Scan(&totalPaid).Error; err != nil {
		return nil, err
	}

	lowRevenueMode, err := s.settings.LowRevenueMode()
	if err != nil {
		return nil, err
	}

	committed := totalPayouts + totalUserPayouts
	return &dto.SummaryResponse{
		TotalRevenue:   totalRevenue,
		TotalPayouts:   committed,
		TotalPaid:      totalPaid,
		RemainingFunds: totalRevenue - committed,
		LowRevenueMode: lowRevenueMode,
	}, nil
}
