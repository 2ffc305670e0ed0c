package services

import (
	"errors"
	"fmt"

	"github.com/mykweza/kweza-backend/internal/dto"
	"github.com/mykweza/kweza-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrMemberIDTaken          = errors.New("Member ID already exists")
	ErrInvalidCompensation    = errors.New("Salary, bonus and dividends must be non-negative numbers")
	ErrUserFieldsRequired     = errors.New("Member ID, name, role and PIN are required")
	ErrCompensationUserAbsent = errors.New("User not found")
)

// UserService covers the super-admin console's user CRUD and the Financial
// Manager's compensation screen.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) ListMembers() ([]models.User, error) {
	var users []models.User
	err := s.db.Order("name ASC").Find(&users).Error
	return users, err
}

func (s *UserService) Create(req *dto.CreateUserRequest) (*models.User, error) {
	if req.MemberID == "" || req.Name == "" || req.Role == "" || req.PIN == "" {
		return nil, ErrUserFieldsRequired
	}

	var existing models.User
	if err := s.db.Where("member_id = ?", req.MemberID).First(&existing).Error; err == nil {
		return nil, ErrMemberIDTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.PIN), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash PIN: %w", err)
	}

	user := models.User{
		MemberID:            req.MemberID,
		Name:                req.Name,
		Role:                req.Role,
		SubRole:             req.SubRole,
		PIN:                 string(hash),
		Branch:              req.Branch,
		Email:               req.Email,
		CanReceiveDividends: req.CanReceiveDividends,
		DividendFeePaid:     req.DividendFeePaid,
		Salary:              req.Salary,
		Bonus:               req.Bonus,
		Dividends:           req.Dividends,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) Update(id uint, req *dto.UpdateUserRequest) error {
	result := s.db.Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":                  req.Name,
		"role":                  req.Role,
		"sub_role":              req.SubRole,
		"branch":                req.Branch,
		"email":                 req.Email,
		"can_receive_dividends": req.CanReceiveDividends,
		"dividend_fee_paid":     req.DividendFeePaid,
		"salary":                req.Salary,
		"bonus":                 req.Bonus,
		"dividends":             req.Dividends,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// Delete removes the user and every dependent row in one transaction. Revenue
// rows survive with the submitter unlinked; they are the financial record.
func (s *UserService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.Payout{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.WithdrawalRequest{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Notification{}).Error; err != nil {
			return err
		}
		if err := tx.Where("reporter_id = ?", id).Delete(&models.Complaint{}).Error; err != nil {
			return err
		}
		if err := tx.Where("developer_id = ?", id).Delete(&models.WeeklyReport{}).Error; err != nil {
			return err
		}
		if err := tx.Where("submitted_by = ?", id).Delete(&models.BranchDetailedReport{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Revenue{}).Where("submitted_by = ?", id).Update("submitted_by", nil).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.User{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrUserNotFound
		}
		return nil
	})
}

// CompensationMembers lists every user's payroll figures for the compensation
// screen.
func (s *UserService) CompensationMembers() ([]dto.CompensationMember, error) {
	var rows []dto.CompensationMember
	err := s.db.Model(&models.User{}).
		Select("id, member_id, name, role, branch, salary, bonus, dividends").
		Order("name ASC").
		Scan(&rows).Error
	return rows, err
}

// SetCompensation updates the payroll figures; all three must be non-negative.
func (s *UserService) SetCompensation(id uint, salary, bonus, dividends float64) error {
	if salary < 0 || bonus < 0 || dividends < 0 {
		return ErrInvalidCompensation
	}

	result := s.db.Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"salary":    salary,
		"bonus":     bonus,
		"dividends": dividends,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCompensationUserAbsent
	}
	return nil
}
