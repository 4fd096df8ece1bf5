package main

import (
	"context"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"

	"clearplot/internal/config"
	"clearplot/internal/db"
	"clearplot/internal/model"
	"clearplot/internal/repository"
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Listing{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	listingRepo := repository.NewListingRepository(gormDB)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), 10)
	if err != nil {
		log.Fatalf("Failed to hash demo password: %v", err)
	}

	users := []*model.User{
		{Name: "Asha Verma", Email: "asha@example.com", PasswordHash: string(hash)},
		{Name: "Rohan Mehta", Email: "rohan@example.com", PasswordHash: string(hash)},
	}
	for _, u := range users {
		if existing, err := userRepo.FindByEmail(ctx, u.Email); err == nil {
			u.ID = existing.ID
			log.Printf("User %s already present, skipping", u.Email)
			continue
		}
		if err := userRepo.Create(ctx, u); err != nil {
			log.Fatalf("Failed to seed user %s: %v", u.Email, err)
		}
	}

	listings := []*model.Listing{
		{
			UserID:         users[0].ID,
			ListingType:    model.ListingTypeBuy,
			PropertyType:   "Apartment",
			City:           "Pune",
			Area:           1150,
			Bedrooms:       2,
			Latitude:       18.5204,
			Longitude:      73.8567,
			Price:          7200000,
			PredictedPrice: 7200000,
			Description:    "Bright 2BHK close to the IT corridor.",
			BinaryFeatures: datatypes.NewJSONType(model.FeatureMap{
				"Gymnasium":    model.FeatureYes,
				"CarParking":   model.FeatureYes,
				"SwimmingPool": model.FeatureNo,
			}),
		},
		{
			UserID:         users[1].ID,
			ListingType:    model.ListingTypeRent,
			PropertyType:   "Villa",
			City:           "Bangalore",
			Area:           2400,
			Bedrooms:       4,
			Latitude:       12.9716,
			Longitude:      77.5946,
			Price:          95000,
			PredictedPrice: 28500,
			Description:    "Furnished villa with landscaped garden.",
			BinaryFeatures: datatypes.NewJSONType(model.FeatureMap{
				"LandscapedGardens": model.FeatureYes,
				"PowerBackup":       model.FeatureYes,
				"Wifi":              model.FeatureYes,
			}),
		},
	}

	seeded := 0
	for _, l := range listings {
		if err := listingRepo.Create(ctx, l); err != nil {
			log.Printf("Failed to seed listing in %s: %v", l.City, err)
			continue
		}
		seeded++
	}

	log.Printf("Seed completed: %d users, %d listings", len(users), seeded)
}
