package database

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"learnhub/auth"
	"learnhub/logger"
	"learnhub/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

//go:embed seed.yaml
var defaultSeed []byte

// SeedData is the document accepted by Seed.
type SeedData struct {
	Users []struct {
		Email    string `yaml:"email"`
		FullName string `yaml:"full_name"`
		Password string `yaml:"password"`
		IsAdmin  bool   `yaml:"is_admin"`
	} `yaml:"users"`
	Categories []struct {
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
	} `yaml:"categories"`
}

// LoadSeed reads the seed document at path, or the built-in one when path is empty.
func LoadSeed(path string) (*SeedData, error) {
	raw := defaultSeed
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
		raw = b
	}

	var seed SeedData
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	for _, u := range seed.Users {
		if u.Email == "" || u.Password == "" {
			return nil, errors.New("parse seed file: every user needs an email and a password")
		}
	}
	for _, c := range seed.Categories {
		if c.Name == "" {
			return nil, errors.New("parse seed file: every category needs a name")
		}
	}
	return &seed, nil
}

// Seed inserts the users and categories of seed that do not exist yet. Existing rows are left alone.
func Seed(db *gorm.DB, seed *SeedData, cost int, log *logger.Logger) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, u := range seed.Users {
			var count int64
			if err := tx.Model(&models.User{}).Where("email = ?", u.Email).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}

			hashed, err := auth.HashPassword(u.Password, cost)
			if err != nil {
				return err
			}
			user := models.User{
				Email:          u.Email,
				FullName:       u.FullName,
				HashedPassword: hashed,
				IsActive:       true,
				IsAdmin:        u.IsAdmin,
			}
			if err := tx.Create(&user).Error; err != nil {
				return fmt.Errorf("seed user %s: %w", u.Email, err)
			}
			log.Info("Created seed user", "user_id", user.ID, "admin", user.IsAdmin)
		}

		for _, c := range seed.Categories {
			var count int64
			if err := tx.Model(&models.Category{}).Where("name = ?", c.Name).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}
			category := models.Category{Name: c.Name, Description: c.Description}
			if err := tx.Create(&category).Error; err != nil {
				return fmt.Errorf("seed category %s: %w", c.Name, err)
			}
			log.Info("Created seed category", "name", c.Name)
		}
		return nil
	})
}
