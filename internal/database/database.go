package database

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/mykweza/kweza-backend/internal/config"
	"github.com/mykweza/kweza-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func Connect(cfg *config.Config) error {
	var err error
	DB, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	slog.Info("database connected")
	return nil
}

// Migrate runs AutoMigrate for all models and applies the data back-fills the
// schema depends on: legacy withdrawal rows stored as "approved" and the
// low_revenue_mode settings row.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Payout{},
		&models.WithdrawalRequest{},
		&models.Revenue{},
		&models.Complaint{},
		&models.WeeklyReport{},
		&models.BranchDetailedReport{},
		&models.Notification{},
		&models.Setting{},
		&models.SystemLog{},
	); err != nil {
		return err
	}

	if err := db.Model(&models.WithdrawalRequest{}).
		Where("status = ?", "approved").
		Update("status", models.WithdrawalAccepted).Error; err != nil {
		return err
	}

	return db.Where(models.Setting{Key: models.SettingLowRevenueMode}).
		Attrs(models.Setting{Value: "false"}).
		FirstOrCreate(&models.Setting{}).Error
}

func Ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
