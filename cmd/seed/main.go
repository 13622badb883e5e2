package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"giftly/internal/gifts"
	"giftly/internal/shared/config"
	"giftly/internal/shared/database"
	"giftly/internal/tags"
	"giftly/internal/users"
)

// seedGift mirrors the catalog JSON file layout
type seedGift struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceRange  struct {
		Min float64 `json:"min"`
		Max float64 `json:"max"`
	} `json:"priceRange"`
	Link     string   `json:"link"`
	IsHidden bool     `json:"isHidden"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

type Seeder struct {
	db *database.DB
}

func main() {
	giftsFile := flag.String("gifts", "data/gifts.json", "path to the gifts catalog JSON file")
	flag.Parse()

	fmt.Println("Starting Giftly database seeder...")

	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	fmt.Println("Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}

	fmt.Println("Seeding catalog...")
	count, err := seeder.SeedGifts(*giftsFile)
	if err != nil {
		log.Fatalf("Failed to seed gifts: %v", err)
	}
	fmt.Printf("Seeded %d gifts\n", count)

	fmt.Println("Seeding demo user...")
	if err := seeder.SeedDemoUser(); err != nil {
		log.Fatalf("Failed to seed demo user: %v", err)
	}

	fmt.Println("Seeding completed! Database is ready.")
}

// CleanDatabase truncates all tables in reverse dependency order
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"bookmarks",
		"wishlist_items",
		"wishlists",
		"gift_tags",
		"gifts",
		"tags",
		"users",
	}

	for _, table := range tables {
		if err := s.db.GetPostgreSQL().Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clean table %s: %w", table, err)
		}
	}
	return nil
}

// SeedGifts loads the catalog JSON and upserts every gift. Running the
// seeder twice yields the same catalog; the upsert keys on slug.
func (s *Seeder) SeedGifts(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read gifts file: %w", err)
	}

	var seedGifts []seedGift
	if err := json.Unmarshal(data, &seedGifts); err != nil {
		return 0, fmt.Errorf("failed to parse gifts file: %w", err)
	}

	tagsRepo := tags.NewRepository(s.db.GetPostgreSQL())
	giftsRepo := gifts.NewRepository(s.db.GetPostgreSQL(), tagsRepo)

	ctx := context.Background()
	for _, gift := range seedGifts {
		_, err := giftsRepo.Upsert(ctx, gifts.UpsertGiftRequest{
			Slug:        gift.Slug,
			Name:        gift.Name,
			Description: gift.Description,
			PriceRange:  gifts.PriceRange{Min: gift.PriceRange.Min, Max: gift.PriceRange.Max},
			Link:        gift.Link,
			IsHidden:    gift.IsHidden,
			Category:    gift.Category,
			Tags:        gift.Tags,
		})
		if err != nil {
			return 0, fmt.Errorf("failed to upsert gift %s: %w", gift.Slug, err)
		}
	}

	return len(seedGifts), nil
}

// SeedDemoUser creates a password-login account for local testing
func (s *Seeder) SeedDemoUser() error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	name := "Demo User"
	user := &users.User{
		ID:       uuid.New(),
		Email:    "demo@giftly.local",
		Name:     &name,
		Password: string(hashedPassword),
	}
	return s.db.GetPostgreSQL().Create(user).Error
}
