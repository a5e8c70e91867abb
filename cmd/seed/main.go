package main

import (
	"context"
	"errors"
	"log"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"greencart/internal/config"
	"greencart/internal/db"
	"greencart/internal/model"
	"greencart/internal/repository"
)

const seedPassword = "password123"

type seedProduct struct {
	name        string
	description string
	price       string
}

var seedUsers = []struct {
	name  string
	email string
	role  string
}{
	{"Marie Dupont", "marie@greencart.local", model.RoleProducer},
	{"Jean Martin", "jean@greencart.local", model.RoleConsumer},
	{"Admin", "admin@greencart.local", model.RoleAdmin},
}

var seedProducts = []seedProduct{
	{"Panier de legumes", "Legumes de saison, recolte de la semaine", "14.50"},
	{"Miel toutes fleurs", "Pot de 500g", "8.00"},
	{"Oeufs plein air", "Boite de 12", "4.20"},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
		&model.Review{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), 10)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}

	var producer *model.User
	created := 0
	for _, su := range seedUsers {
		existing, err := userRepo.FindByEmail(ctx, su.email)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("Failed to check user %s: %v", su.email, err)
		}
		if existing == nil {
			existing = &model.User{
				Name:         su.name,
				Email:        su.email,
				PasswordHash: string(hash),
				Role:         su.role,
			}
			if err := userRepo.Create(ctx, existing); err != nil {
				log.Fatalf("Failed to create user %s: %v", su.email, err)
			}
			created++
		}
		if su.role == model.RoleProducer {
			producer = existing
		}
	}
	log.Printf("Users seeded (%d new)", created)

	existingCatalog, err := productRepo.ListByProducer(ctx, producer.ID)
	if err != nil {
		log.Fatalf("Failed to list producer catalog: %v", err)
	}
	have := make(map[string]bool, len(existingCatalog))
	for _, p := range existingCatalog {
		have[p.Name] = true
	}

	created = 0
	for _, sp := range seedProducts {
		if have[sp.name] {
			continue
		}
		price, err := decimal.NewFromString(sp.price)
		if err != nil {
			log.Fatalf("Invalid seed price %q: %v", sp.price, err)
		}
		product := &model.Product{
			ProducerID:  producer.ID,
			Name:        sp.name,
			Description: sp.description,
			Price:       price,
		}
		if err := productRepo.Create(ctx, product); err != nil {
			log.Fatalf("Failed to create product %s: %v", sp.name, err)
		}
		created++
	}
	log.Printf("Catalog seeded (%d new)", created)

	log.Println("Seed completed successfully!")
}
