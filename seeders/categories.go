package seeders

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var categoryNames = []string{
	"Machinery",
	"Electrical",
	"HVAC",
	"IT Hardware",
	"Vehicles",
	"Tooling",
}

func seedCategories(ctx context.Context, db *pgxpool.Pool) error {
	for _, name := range categoryNames {
		_, err := db.Exec(ctx,
			`INSERT INTO equipment_categories (id, name) VALUES ($1, $2)
			 ON CONFLICT (name) DO NOTHING`,
			uuid.New(), name)
		if err != nil {
			return err
		}
	}
	return nil
}
