package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/lamaran-inc/lamaran/internal/infrastructure/persistence/models"
	"github.com/lamaran-inc/lamaran/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.CategoryModel{},
		&models.TagModel{},
		&models.ThemeModel{},
		&models.ThemeCategoryModel{},
		&models.ThemeTagModel{},
		&models.ServiceModel{},
		&models.ServiceSettingsModel{},
		&models.PricingPlanModel{},
		&models.PricingSettingsModel{},
		&models.TestimonialModel{},
		&models.TestimonialSettingsModel{},
		&models.UserModel{},
	)
	require.NoError(t, err)

	return db
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}
