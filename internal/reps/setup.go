package reps

import (
	"log"

	"github.com/phoneyourrep/pyr-backend/internal/db"
	"github.com/phoneyourrep/pyr-backend/internal/reps/geocoding"
	"github.com/phoneyourrep/pyr-backend/internal/reps/provider"

	// Import providers to register them via init()
	_ "github.com/phoneyourrep/pyr-backend/internal/reps/civicinfo"
	_ "github.com/phoneyourrep/pyr-backend/internal/reps/openstates"
)

// Geocode is the active geocoding adapter, nil when no API key is set.
var Geocode Geocoder

// FederalProvider and StateProvider are the active external representative
// sources. Either may be nil when its key is missing; sync paths skip nil
// providers.
var (
	FederalProvider provider.RepProvider
	StateProvider   provider.RepProvider
)

func Init() {
	// Ensure the reps schema exists
	if err := db.EnsureSchema(db.DB, "reps"); err != nil {
		log.Fatal("Failed to ensure schema reps: ", err)
	}

	if err := db.DB.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		log.Fatal("Failed to enable uuid-ossp extension:", err)
	}
	if err := db.DB.Exec(`CREATE EXTENSION IF NOT EXISTS postgis`).Error; err != nil {
		log.Fatal("Failed to enable postgis extension:", err)
	}

	if err := db.DB.AutoMigrate(
		&State{},
		&District{},
		&StateDistrict{},
		&Rep{},
		&StateRep{},
		&OfficeLocation{},
	); err != nil {
		log.Fatal("Failed to auto-migrate tables", err)
	}

	// Geocoding adapter (optional)
	gc, err := geocoding.NewClient()
	if err != nil {
		log.Printf("[reps] WARNING: geocoding client init failed: %v", err)
	} else if gc == nil {
		log.Printf("[reps] no geocoding key set; address lookups disabled")
	} else {
		Geocode = gc
	}

	// External representative sources (both optional)
	cfg := provider.LoadFromEnv()

	FederalProvider, err = provider.NewProvider(cfg, provider.ProviderCivicInfo)
	if err != nil {
		log.Printf("[reps] WARNING: civicinfo provider disabled: %v", err)
		FederalProvider = nil
	} else {
		log.Printf("[reps] initialized %s provider", FederalProvider.Name())
	}

	StateProvider, err = provider.NewProvider(cfg, provider.ProviderOpenStates)
	if err != nil {
		log.Printf("[reps] WARNING: openstates provider disabled: %v", err)
		StateProvider = nil
	} else {
		log.Printf("[reps] initialized %s provider", StateProvider.Name())
	}
}
