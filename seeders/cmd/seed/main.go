package main

import (
	"flag"
	"log"

	"repair-tracking/pkg/config"
	"repair-tracking/pkg/database/postgresql"
	"repair-tracking/seeders"
)

func main() {
	runDictionaries := flag.Bool("dictionaries", false, "seed the fault type catalog")
	runAdmin := flag.Bool("admin", false, "create the bootstrap admin user (ADMIN_USERNAME / ADMIN_PASSWORD)")
	runAll := flag.Bool("all", false, "run every seeder")
	flag.Parse()

	if !*runDictionaries && !*runAdmin && !*runAll {
		log.Println("no seeder selected")
		flag.PrintDefaults()
		return
	}

	cfg := config.New()
	db := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer db.Close()

	if *runDictionaries || *runAll {
		seeders.SeedDictionaries(db)
	}
	if *runAdmin || *runAll {
		if err := seeders.SeedAdminUser(db); err != nil {
			log.Fatalf("failed to seed admin user: %v", err)
		}
	}
}
