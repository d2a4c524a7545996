package database

import (
	"os"

	"backend/internal/model"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedSuperAdmin creates the bootstrap super-admin account when the users
// table is empty. Credentials come from SEED_ADMIN_EMAIL / SEED_ADMIN_PASSWORD,
// with development defaults.
func SeedSuperAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	email := os.Getenv("SEED_ADMIN_EMAIL")
	if email == "" {
		email = "admin@elegantleather.com"
	}
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "ChangeMe123!"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &model.User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Super",
		LastName:  "Admin",
		Username:  "superadmin",
		Role:      model.RoleSuperAdmin,
		Status:    model.UserStatusActive,
	}

	if err := db.Create(admin).Error; err != nil {
		return err
	}

	log.Info().Str("email", email).Msg("seeded bootstrap super admin")
	return nil
}
