package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/phoneyourrep/pyr-backend/internal/db"
	"github.com/phoneyourrep/pyr-backend/internal/reps"
	"github.com/phoneyourrep/pyr-backend/internal/reps/shapefile"
)

// Census TIGER attribute carrying the district code, per product.
var codeFields = map[string]string{
	"cd":   "CD118FP",
	"sldu": "SLDUST",
	"sldl": "SLDLST",
}

func main() {
	file := flag.String("file", "", "path to a TIGER boundary shapefile (.shp)")
	product := flag.String("product", "cd", "boundary product: cd, sldu or sldl")
	flag.Parse()

	if *file == "" {
		log.Fatal("-file is required")
	}
	codeField, ok := codeFields[*product]
	if !ok {
		log.Fatalf("unknown product %q (want cd, sldu or sldl)", *product)
	}

	_ = godotenv.Load(".env.local")
	db.Connect()
	reps.Init()

	records, err := shapefile.ReadDistricts(*file, codeField)
	if err != nil {
		log.Fatalf("read shapefile: %v", err)
	}

	var loaded, skipped int
	for _, rec := range records {
		var stateID string
		err := db.DB.Raw(
			`SELECT id FROM reps.states WHERE state_code = ?`, rec.StateFIPS,
		).Scan(&stateID).Error
		if err != nil || stateID == "" {
			skipped++
			continue
		}

		code := reps.NormalizeDistrictCode(rec.Code)
		if *product == "cd" {
			err = db.DB.Exec(`
				INSERT INTO reps.districts (code, state_id, geom)
				VALUES (?, ?, ST_Multi(ST_GeomFromEWKB(?)))
				ON CONFLICT (code, state_id)
				DO UPDATE SET geom = EXCLUDED.geom
			`, code, stateID, rec.Geom).Error
		} else {
			chamber := "upper"
			if *product == "sldl" {
				chamber = "lower"
			}
			err = db.DB.Exec(`
				INSERT INTO reps.state_districts (name, chamber, state_id, geom)
				VALUES (?, ?, ?, ST_Multi(ST_GeomFromEWKB(?)))
				ON CONFLICT (name, chamber, state_id)
				DO UPDATE SET geom = EXCLUDED.geom
			`, code, chamber, stateID, rec.Geom).Error
		}
		if err != nil {
			log.Printf("insert district %s/%s: %v", rec.StateFIPS, rec.Code, err)
			skipped++
			continue
		}
		loaded++
	}

	fmt.Printf("Loaded %d districts (%d skipped) from %s\n", loaded, skipped, *file)
}
