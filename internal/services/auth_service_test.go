package services

import (
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mykweza/kweza-backend/internal/config"
	"github.com/mykweza/kweza-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func createUserWithPIN(t *testing.T, db *gorm.DB, memberID, role, pin string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash PIN: %v", err)
	}
	user := models.User{
		MemberID: memberID,
		Name:     "Test Member",
		Role:     role,
		PIN:      string(hash),
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	return &user
}

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "test-secret"}
}

func TestAuthService_Login_Success(t *testing.T) {
	db := setupTestDB(t)
	service := NewAuthService(db, testConfig())
	createUserWithPIN(t, db, "MEM-2025-001", models.RoleCoreTeam, "1234")

	user, token, err := service.Login("MEM-2025-001", "1234")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if user.MemberID != "MEM-2025-001" {
		t.Errorf("Expected MEM-2025-001, got %s", user.MemberID)
	}
	if token == "" {
		t.Fatal("Expected a signed token")
	}

	parsed, err := jwt.Parse(token, func(tok *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("Expected valid token, got %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)
	if claims["member_id"] != "MEM-2025-001" {
		t.Errorf("Expected member_id claim, got %v", claims["member_id"])
	}
	if claims["role"] != models.RoleCoreTeam {
		t.Errorf("Expected role claim, got %v", claims["role"])
	}
}

func TestAuthService_Login_DistinctFailures(t *testing.T) {
	db := setupTestDB(t)
	service := NewAuthService(db, testConfig())
	createUserWithPIN(t, db, "MEM-2025-001", models.RoleCoreTeam, "1234")

	if _, _, err := service.Login("NOPE-0000-000", "1234"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Expected ErrUserNotFound, got %v", err)
	}
	if _, _, err := service.Login("MEM-2025-001", "9999"); !errors.Is(err, ErrInvalidPIN) {
		t.Errorf("Expected ErrInvalidPIN, got %v", err)
	}
}

func TestAuthService_ChangePIN(t *testing.T) {
	db := setupTestDB(t)
	service := NewAuthService(db, testConfig())
	user := createUserWithPIN(t, db, "MEM-2025-001", models.RoleCoreTeam, "1234")

	var before models.User
	db.First(&before, user.ID)

	if err := service.ChangePIN(user.ID, "wrong", "5678"); !errors.Is(err, ErrIncorrectPIN) {
		t.Fatalf("Expected ErrIncorrectPIN, got %v", err)
	}

	var after models.User
	db.First(&after, user.ID)
	if after.PIN != before.PIN {
		t.Error("Expected stored hash unchanged after failed change")
	}

	if err := service.ChangePIN(user.ID, "1234", "5678"); err != nil {
		t.Fatalf("ChangePIN failed: %v", err)
	}
	if _, _, err := service.Login("MEM-2025-001", "5678"); err != nil {
		t.Errorf("Expected login with new PIN, got %v", err)
	}
	if _, _, err := service.Login("MEM-2025-001", "1234"); !errors.Is(err, ErrInvalidPIN) {
		t.Errorf("Expected old PIN rejected, got %v", err)
	}
}

func TestAuthService_SetTheme_DefaultsToDark(t *testing.T) {
	db := setupTestDB(t)
	service := NewAuthService(db, testConfig())
	user := createUserWithPIN(t, db, "MEM-2025-001", models.RoleCoreTeam, "1234")

	mode, err := service.SetTheme(user.ID, "neon")
	if err != nil {
		t.Fatalf("SetTheme failed: %v", err)
	}
	if mode != "dark" {
		t.Errorf("Expected unknown theme to store dark, got %q", mode)
	}

	mode, _ = service.SetTheme(user.ID, "light")
	if mode != "light" {
		t.Errorf("Expected light, got %q", mode)
	}
}
