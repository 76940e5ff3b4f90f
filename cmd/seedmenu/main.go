// cmd/seedmenu/main.go — seeds the demo menu.
// Usage: go run ./cmd/seedmenu
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/HafizMudassirHusain/AL-Backend/internal/core/domain"
	mongodb "github.com/HafizMudassirHusain/AL-Backend/internal/infrastructure/db/mongo"
	"github.com/HafizMudassirHusain/AL-Backend/internal/pkg/config"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx := context.Background()
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatalf("mongodb connect error: %v", err)
	}
	defer func() { _ = client.Disconnect(ctx) }()

	if err := db.Collection("menus").Drop(ctx); err != nil {
		log.Fatalf("drop error: %v", err)
	}

	items := []domain.MenuItem{
		{
			Name:        "Zinger Burger",
			Category:    "Burgers",
			Price:       350,
			Image:       "https://example.com/zinger.jpg",
			Description: "Crispy fried chicken burger",
		},
		{
			Name:        "Chicken Pizza",
			Category:    "Pizza",
			Price:       800,
			Image:       "https://example.com/pizza.jpg",
			Description: "Cheesy chicken pizza",
		},
	}

	repo := mongodb.NewMenuRepository(db)
	for _, item := range items {
		if _, err := repo.Insert(ctx, &item); err != nil {
			log.Fatalf("insert error: %v", err)
		}
	}

	fmt.Printf("seeded %d menu items\n", len(items))
}
