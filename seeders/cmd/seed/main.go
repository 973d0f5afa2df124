package main

import (
	"flag"
	"log"

	"maintenance-system/pkg/config"
	"maintenance-system/pkg/database/postgresql"
	"maintenance-system/seeders"
)

func main() {
	runCategories := flag.Bool("categories", false, "seed the global equipment category dictionary")
	runDemo := flag.Bool("demo", false, "seed a demo company with users, a team and equipment")
	runAll := flag.Bool("all", false, "run every seeder")
	flag.Parse()

	if !*runCategories && !*runDemo && !*runAll {
		log.Println("no seeder selected")
		flag.PrintDefaults()
		return
	}

	cfg := config.New()
	if err := postgresql.Migrate(cfg.Postgres.DSN); err != nil {
		log.Fatalf("failed to apply migrations: %v", err)
	}

	db := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer db.Close()

	if *runCategories || *runAll {
		seeders.SeedCategories(db)
	}
	if *runDemo || *runAll {
		seeders.SeedDemo(db)
	}
}
