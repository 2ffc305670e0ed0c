package services

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mykweza/kweza-backend/internal/config"
	"github.com/mykweza/kweza-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Both login failures answer 401; the messages stay distinct on purpose, the
// way the product has always worded them.
var (
	ErrUserNotFound = errors.New("User not found")
	ErrInvalidPIN   = errors.New("Invalid PIN")
	ErrIncorrectPIN = errors.New("Current PIN is incorrect")
)

const tokenTTL = 24 * time.Hour

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

// Login verifies the member id and PIN and returns the user with a signed
// session token valid for 24 hours. Expired tokens mean a full re-login;
// there is no refresh flow.
func (s *AuthService) Login(memberID, pin string) (*models.User, string, error) {
	var user models.User
	if err := s.db.Where("member_id = ?", memberID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrUserNotFound
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PIN), []byte(pin)); err != nil {
		return nil, "", ErrInvalidPIN
	}

	token, err := s.generateToken(&user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign token: %w", err)
	}
	return &user, token, nil
}

func (s *AuthService) generateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":       strconv.FormatUint(uint64(user.ID), 10),
		"member_id": user.MemberID,
		"role":      user.Role,
		"iat":       now.Unix(),
		"exp":       now.Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *AuthService) Me(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateProfile changes email and the notification toggle; theme_mode is only
// touched when a valid value is supplied.
func (s *AuthService) UpdateProfile(userID uint, email string, notificationsEnabled bool, themeMode string) error {
	updates := map[string]interface{}{
		"email":                 email,
		"notifications_enabled": notificationsEnabled,
	}
	if mode := normalizeTheme(themeMode); mode != "" {
		updates["theme_mode"] = mode
	}
	return s.db.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error
}

// SetTheme stores light or dark, defaulting anything else to dark.
func (s *AuthService) SetTheme(userID uint, themeMode string) (string, error) {
	mode := normalizeTheme(themeMode)
	if mode == "" {
		mode = "dark"
	}
	err := s.db.Model(&models.User{}).Where("id = ?", userID).Update("theme_mode", mode).Error
	return mode, err
}

func normalizeTheme(mode string) string {
	switch mode {
	case "light", "dark":
		return mode
	}
	return ""
}

// ChangePIN re-verifies the current PIN before storing a new hash. A wrong
// current PIN leaves the stored hash untouched.
func (s *AuthService) ChangePIN(userID uint, oldPIN, newPIN string) error {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PIN), []byte(oldPIN)); err != nil {
		return ErrIncorrectPIN
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPIN), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash PIN: %w", err)
	}

	return s.db.Model(&models.User{}).Where("id = ?", userID).Update("pin", string(hash)).Error
}
