// Standalone seeding script. Prefer SEED=true on the API binary; this exists
// for seeding a database without starting the server.
// Usage: go run scripts/seed/main.go
package main

import (
	"fmt"
	"log"

	"github.com/cloudnine/sleep-debt-api/internal/config"
	"github.com/cloudnine/sleep-debt-api/internal/domain"
	"github.com/cloudnine/sleep-debt-api/internal/seed"
)

func main() {
	cfg := config.Load()

	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}

	var users []domain.User
	if err := db.Order("created_at").Find(&users).Error; err != nil {
		log.Fatalf("Failed to list seeded users: %v", err)
	}

	fmt.Println("\nSample user IDs for testing:")
	for _, user := range users {
		fmt.Printf("  %s (%s, goal=%s)\n", user.ID, user.Timezone, user.TrackingGoal)
	}
}
