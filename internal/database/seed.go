package database

import (
	"errors"
	"fmt"
	"strings"

	"frugalfolio/internal/models"

	"gorm.io/gorm"
)

const purchaseBatchSize = 200

// SeedUser returns the user with the given name, creating it when missing.
func (db *DB) SeedUser(username, role string) (*models.User, error) {
	var existing models.User
	err := db.DB.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up user %s: %w", username, err)
	}

	user := &models.User{Username: username, Role: role}
	if err := db.DB.Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user %s: %w", username, err)
	}
	return user, nil
}

// EnsureCategories returns categories keyed by upper-cased name, creating
// the ones that do not exist yet.
func (db *DB) EnsureCategories(names []string) (map[string]models.Category, error) {
	return ensureCategories(db.DB, names)
}

func ensureCategories(tx *gorm.DB, names []string) (map[string]models.Category, error) {
	wanted := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		key := strings.ToUpper(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		wanted = append(wanted, key)
	}

	result := make(map[string]models.Category, len(wanted))
	if len(wanted) == 0 {
		return result, nil
	}

	var existing []models.Category
	if err := tx.Where("name IN ?", wanted).Find(&existing).Error; err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	for _, c := range existing {
		result[c.Name] = c
	}

	for _, name := range wanted {
		if _, ok := result[name]; ok {
			continue
		}
		category := models.Category{Name: name}
		if err := tx.Create(&category).Error; err != nil {
			return nil, fmt.Errorf("failed to create category %s: %w", name, err)
		}
		result[name] = category
	}

	return result, nil
}

// InsertPurchases stores purchases and their category assignments. Category
// entries only need a Name; they are resolved to stored rows first.
func (db *DB) InsertPurchases(purchases []models.Purchase) error {
	if len(purchases) == 0 {
		return nil
	}

	return db.DB.Transaction(func(tx *gorm.DB) error {
		var names []string
		for _, p := range purchases {
			for _, c := range p.Categories {
				names = append(names, c.Name)
			}
		}

		categories, err := ensureCategories(tx, names)
		if err != nil {
			return err
		}

		for i := range purchases {
			resolved := make([]models.Category, 0, len(purchases[i].Categories))
			for _, c := range purchases[i].Categories {
				if stored, ok := categories[strings.ToUpper(strings.TrimSpace(c.Name))]; ok {
					resolved = append(resolved, stored)
				}
			}
			purchases[i].Categories = resolved
		}

		if err := tx.CreateInBatches(purchases, purchaseBatchSize).Error; err != nil {
			return fmt.Errorf("failed to insert purchases: %w", err)
		}
		return nil
	})
}
