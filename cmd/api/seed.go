package main

import (
	"fmt"
	"log"

	"github.com/royvishalprakash-maker/FG-Stock-Board/internal/database"
	"github.com/royvishalprakash-maker/FG-Stock-Board/internal/models"
	"github.com/royvishalprakash-maker/FG-Stock-Board/internal/utils"
)

// seedUsers creates the demo operator accounts when the user table is
// empty, one per role. Passwords are meant to be rotated immediately on a
// real deployment.
func seedUsers(db *database.DB) error {
	var count int64
	if err := db.Model(&models.UserAuth{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seeds := []struct {
		username string
		password string
		name     string
		role     string
	}{
		{"Vishal", "master123", "Vishal", models.RoleMaster},
		{"Kittu", "input123", "Kittu", models.RoleInput},
		{"1306764", "output123", "Operator 1306764", models.RoleOutput},
	}

	for _, s := range seeds {
		hash, err := utils.HashPassword(s.password)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", s.username, err)
		}
		user := models.UserAuth{
			Username: s.username,
			Password: hash,
			Name:     s.name,
			Role:     s.role,
		}
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("create user %s: %w", s.username, err)
		}
	}

	log.Printf("👤 Seeded %d demo users (change the default passwords!)", len(seeds))
	return nil
}
