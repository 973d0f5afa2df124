package seeders

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

const demoCompanyName = "Acme Manufacturing"

// seedDemoCompany is idempotent: if the demo company already exists the
// whole seeder is skipped.
func seedDemoCompany(ctx context.Context, db *pgxpool.Pool) error {
	var existing uuid.UUID
	err := db.QueryRow(ctx, `SELECT id FROM companies WHERE name = $1`, demoCompanyName).Scan(&existing)
	if err == nil {
		return nil
	}
	if err != pgx.ErrNoRows {
		return err
	}

	companyID := uuid.New()
	if _, err := db.Exec(ctx,
		`INSERT INTO companies (id, name) VALUES ($1, $2)`,
		companyID, demoCompanyName); err != nil {
		return err
	}

	departmentID := uuid.New()
	if _, err := db.Exec(ctx,
		`INSERT INTO departments (id, name, company_id) VALUES ($1, $2, $3)`,
		departmentID, "Production", companyID); err != nil {
		return err
	}

	teamID := uuid.New()
	if _, err := db.Exec(ctx,
		`INSERT INTO teams (id, name, description, company_id)
		 VALUES ($1, $2, $3, $4)`,
		teamID, "Mechanical Crew", "Default maintenance team", companyID); err != nil {
		return err
	}

	if _, err := db.Exec(ctx,
		`INSERT INTO workcenters (id, name, code, company_id)
		 VALUES ($1, $2, $3, $4) ON CONFLICT (code) DO NOTHING`,
		uuid.New(), "Assembly Line 1", "WC-A1", companyID); err != nil {
		return err
	}

	password, err := bcrypt.GenerateFromPassword([]byte("changeme123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := []struct {
		name  string
		email string
		role  string
	}{
		{"Dana Miller", "manager@acme.example", "manager"},
		{"Lee Ortiz", "technician@acme.example", "technician"},
		{"Sam Carter", "employee@acme.example", "employee"},
	}
	for _, u := range users {
		if _, err := db.Exec(ctx,
			`INSERT INTO users (id, full_name, email, hashed_password, role, company_id, department_id, team_id)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			 ON CONFLICT (email) DO NOTHING`,
			uuid.New(), u.name, u.email, string(password), u.role,
			companyID, departmentID, teamID); err != nil {
			return err
		}
	}

	var machineryID uuid.UUID
	if err := db.QueryRow(ctx,
		`SELECT id FROM equipment_categories WHERE name = $1`, "Machinery").Scan(&machineryID); err != nil {
		// categories not seeded yet, skip the equipment block
		return nil
	}

	equipment := []struct {
		name   string
		serial string
	}{
		{"Hydraulic Press", "HP-2031-001"},
		{"CNC Lathe", "CL-1188-002"},
	}
	for _, e := range equipment {
		if _, err := db.Exec(ctx,
			`INSERT INTO equipment (id, name, serial_number, location, category_id, department_id, company_id, team_id)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			 ON CONFLICT (serial_number) DO NOTHING`,
			uuid.New(), e.name, e.serial, "Hall B", machineryID,
			departmentID, companyID, teamID); err != nil {
			return err
		}
	}

	return nil
}
