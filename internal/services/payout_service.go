package services

import (
	"errors"

	"github.com/mykweza/kweza-backend/internal/auth"
	"github.com/mykweza/kweza-backend/internal/dto"
	"github.com/mykweza/kweza-backend/internal/models"
	"gorm.io/gorm"
)

var ErrPayoutNotFound = errors.New("Payout not found")

type PayoutService struct {
	db *gorm.DB
}

func NewPayoutService(db *gorm.DB) *PayoutService {
	return &PayoutService{db: db}
}

// ListForRole returns all payouts for roles that may view everything and only
// the caller's own rows otherwise.
func (s *PayoutService) ListForRole(userID uint, role string) ([]models.Payout, error) {
	query := s.db.Model(&models.Payout{})
	if !auth.Can(role, auth.PermViewAllPayouts) {
		query = query.Where("user_id = ?", userID)
	}

	var rows []models.Payout
	err := query.Order("id DESC").Find(&rows).Error
	return rows, err
}

// ExportRows returns payouts joined with member identity for the CSV export,
// scoped the same way as ListForRole.
func (s *PayoutService) ExportRows(userID uint, role string) ([]dto.PayoutWithMember, error) {
	query := s.db.Table("payouts").
		Select("payouts.*, users.name AS member_name, users.member_id AS member_id").
		Joins("JOIN users ON users.id = payouts.user_id")
	if !auth.Can(role, auth.PermViewAllPayouts) {
		query = query.Where("payouts.user_id = ?", userID)
	}

	var rows []dto.PayoutWithMember
	err := query.Scan(&rows).Error
	return rows, err
}

// ListWithMembers returns every payout with the member's identity for the
// super-admin console.
func (s *PayoutService) ListWithMembers() ([]dto.PayoutWithMember, error) {
	var rows []dto.PayoutWithMember
	err := s.db.Table("payouts").
		Select("payouts.*, users.name AS member_name, users.member_id AS member_id").
		Joins("JOIN users ON users.id = payouts.user_id").
		Order("payouts.id DESC").
		Scan(&rows).Error
	return rows, err
}

func (s *PayoutService) Create(req *dto.PayoutRequest) (*models.Payout, error) {
	status := req.Status
	if status == "" {
		status = "pending"
	}

	payout := models.Payout{
		UserID: req.UserID,
		Type:   req.Type,
		Amount: req.Amount,
		Status: status,
		Month:  req.Month,
		Year:   req.Year,
	}
	if err := s.db.Create(&payout).Error; err != nil {
		return nil, err
	}
	return &payout, nil
}

func (s *PayoutService) Update(id uint, req *dto.PayoutRequest) error {
	result := s.db.Model(&models.Payout{}).Where("id = ?", id).Updates(map[string]interface{}{
		"type":   req.Type,
		"amount": req.Amount,
		"month":  req.Month,
		"year":   req.Year,
		"status": req.Status,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPayoutNotFound
	}
	return nil
}

func (s *PayoutService) Delete(id uint) error {
	result := s.db.Delete(&models.Payout{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPayoutNotFound
	}
	return nil
}
