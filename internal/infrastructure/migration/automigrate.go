package migration

import (
	"github.com/lamaran-inc/lamaran/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
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
	}
}
