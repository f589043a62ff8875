package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/phoneyourrep/pyr-backend/internal/db"
	"github.com/phoneyourrep/pyr-backend/internal/reps"
	"github.com/phoneyourrep/pyr-backend/internal/reps/openstates"
)

func main() {
	stateAbbr := flag.String("state", "", "2-letter state abbreviation to sync")
	all := flag.Bool("all", false, "sync every state in the store")
	flag.Parse()

	if *stateAbbr == "" && !*all {
		log.Fatal("pass -state=XX or -all")
	}

	_ = godotenv.Load(".env.local")
	db.Connect()
	reps.Init()

	ctx := context.Background()

	if *all {
		if err := reps.SyncAll(ctx); err != nil {
			log.Fatalf("sync all: %v", err)
		}
		fmt.Println("Synced all states")
		return
	}

	abbr := strings.ToUpper(*stateAbbr)
	state, err := reps.StateByAbbr(ctx, abbr)
	if err != nil {
		log.Fatalf("state lookup: %v", err)
	}
	if state == nil {
		log.Fatalf("unknown state %q", abbr)
	}

	// Refresh chamber display titles first so new state reps render with
	// the right chamber names.
	if osp, ok := reps.StateProvider.(*openstates.OpenStatesProvider); ok {
		upper, lower, err := osp.ChamberTitles(ctx, abbr)
		if err != nil {
			log.Printf("chamber titles for %s: %v", abbr, err)
		} else if err := reps.UpdateChamberTitles(ctx, state, upper, lower); err != nil {
			log.Printf("update chamber titles: %v", err)
		}
	}

	if err := reps.SyncState(ctx, *state); err != nil {
		log.Fatalf("sync %s: %v", abbr, err)
	}
	fmt.Printf("Synced %s\n", abbr)
}
