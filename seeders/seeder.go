package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedCategories fills the global equipment category dictionary. Existing
// names are left untouched, so re-running is safe.
func SeedCategories(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("seeding equipment categories...")

	if err := seedCategories(ctx, db); err != nil {
		log.Fatalf("failed to seed equipment categories: %v", err)
	}
	log.Println("equipment categories seeded")
}

// SeedDemo creates a demo company with a manager, a technician team and
// a few pieces of equipment to click around with.
func SeedDemo(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("seeding demo company...")

	if err := seedDemoCompany(ctx, db); err != nil {
		log.Fatalf("failed to seed demo company: %v", err)
	}
	log.Println("demo company seeded")
}
