package config

import (
	"food-ordering-api/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedRolesAndCountries inserts the fixed role and country lookup rows.
// Idempotent: existing rows are left untouched, so it is safe to run on
// every boot before serving traffic.
func SeedRolesAndCountries(db *gorm.DB) error {
	for _, name := range models.AllRoles {
		role := models.Role{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&role).Error; err != nil {
			return err
		}
	}
	for _, name := range models.AllCountries {
		country := models.Country{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&country).Error; err != nil {
			return err
		}
	}
	zap.L().Info("seeded roles and countries")
	return nil
}
