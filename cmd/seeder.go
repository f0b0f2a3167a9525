package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		_, db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		if clearData {
			for _, table := range []string{"borrow_records", "inventories", "users"} {
				if err := db.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear table %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		password := "password"
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), cfg.Security.BCryptCost)

		users := []struct {
			Username string
			Role     string
		}{
			{"admin", "admin"},
			{"budi", "student"},
			{"siti", "student"},
		}

		for _, u := range users {
			var exists int
			row := db.Raw("SELECT 1 FROM users WHERE username = ?", u.Username).Row()
			if err := row.Scan(&exists); err == nil {
				fmt.Printf("user %s already exists, skipping\n", u.Username)
				continue
			}

			if err := db.Exec("INSERT INTO users (username, password, role, created_at, updated_at) VALUES (?, ?, ?, now(), now())", u.Username, string(hash), u.Role).Error; err != nil {
				log.Fatalf("failed to insert user %s: %v", u.Username, err)
			}
			fmt.Printf("Seeded user: %s (%s)\n", u.Username, u.Role)
		}

		items := []struct {
			Name     string
			Category string
			Location string
			Quantity int
		}{
			{"Proyektor Epson", "elektronik", "lab komputer", 3},
			{"Laptop Lenovo", "elektronik", "lab komputer", 5},
			{"Mikroskop", "alat lab", "lab biologi", 10},
			{"Bola Basket", "olahraga", "gudang olahraga", 6},
			{"Kamera Canon", "elektronik", "ruang media", 2},
		}

		for _, it := range items {
			var exists int
			row := db.Raw("SELECT 1 FROM inventories WHERE name = ?", it.Name).Row()
			if err := row.Scan(&exists); err == nil {
				fmt.Printf("inventory %s already exists, skipping\n", it.Name)
				continue
			}

			if err := db.Exec("INSERT INTO inventories (name, category, location, quantity, created_at, updated_at) VALUES (?, ?, ?, ?, now(), now())", it.Name, it.Category, it.Location, it.Quantity).Error; err != nil {
				log.Fatalf("failed to insert inventory %s: %v", it.Name, err)
			}
			fmt.Printf("Seeded inventory: %s (qty %d)\n", it.Name, it.Quantity)
		}

		fmt.Println("Seeding completed")
	},
}
