package reps

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-yaml"
	"github.com/google/uuid"
	"github.com/phoneyourrep/pyr-backend/internal/db"
	"gorm.io/gorm"
)

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeJSONStatus(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// respond writes v as JSON unless the client asked for YAML via
// ?format=yaml or an Accept header. The YAML index format predates the JSON
// one and some consumers still rely on it.
func respond(w http.ResponseWriter, r *http.Request, v any) {
	format := r.URL.Query().Get("format")
	accept := r.Header.Get("Accept")
	if format == "yaml" || strings.Contains(accept, "yaml") {
		w.Header().Set("Content-Type", "application/yaml")
		out, err := yaml.Marshal(v)
		if err != nil {
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		_, _ = w.Write(out)
		return
	}
	writeJSON(w, v)
}

// GetReps answers the three read paths on one route: by address, by ad-hoc
// coordinates, or — with no query — a random sample. "No reps found" is an
// empty list, never an error; the error payload is reserved for the
// random-sample-on-empty-store case.
func GetReps(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	if address := q.Get("address"); address != "" {
		lookup, err := ResolveAddress(ctx, Geocode, address)
		if errors.Is(err, ErrNoGeocode) {
			log.Printf("[reps] address %q not geocoded: %v", address, err)
			respond(w, r, []RepOut{})
			return
		}
		if err != nil {
			log.Printf("[reps] address lookup failed: %v", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		respond(w, r, lookup.Assemble())
		return
	}

	latStr, lngStr := q.Get("lat"), q.Get("long")
	if latStr != "" && lngStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lng, lngErr := strconv.ParseFloat(lngStr, 64)
		if latErr != nil || lngErr != nil {
			http.Error(w, "Invalid lat/long parameters", http.StatusBadRequest)
			return
		}
		lookup, err := ResolveCoordinates(ctx, lat, lng)
		if err != nil {
			log.Printf("[reps] coordinate lookup failed: %v", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		respond(w, r, lookup.Assemble())
		return
	}

	rep, err := RandomRep(ctx)
	if errors.Is(err, ErrRepNotFound) {
		respond(w, r, EmptyStoreError())
		return
	}
	if err != nil {
		log.Printf("[reps] random rep failed: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	respond(w, r, []RepOut{AssembleRep(*rep, rep.OfficeLocations)})
}

// GetRepByID fetches one rep by bioguide id. No query point is available, so
// offices keep their stored order.
func GetRepByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rep, err := RepByBioguide(r.Context(), id)
	if errors.Is(err, ErrRepNotFound) {
		http.Error(w, "Rep not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("[reps] rep %q lookup failed: %v", id, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	respond(w, r, AssembleRep(*rep, rep.OfficeLocations))
}

// CreateRep inserts a rep directly, bypassing reconciliation. Used by admin
// tooling for seats the external sources are missing.
func CreateRep(w http.ResponseWriter, r *http.Request) {
	var rep Rep
	if err := json.NewDecoder(r.Body).Decode(&rep); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := db.DB.WithContext(r.Context()).
		Omit("State", "District").Create(&rep).Error; err != nil {
		log.Printf("[reps] create failed: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSONStatus(w, http.StatusCreated, AssembleRep(rep, rep.OfficeLocations))
}

// UpdateRep applies a partial update to a rep by bioguide id.
func UpdateRep(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rep, err := RepByBioguide(r.Context(), id)
	if errors.Is(err, ErrRepNotFound) {
		http.Error(w, "Rep not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	var changes map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&changes); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	delete(changes, "id")
	delete(changes, "bioguide_id")

	if len(changes) > 0 {
		if err := db.DB.WithContext(r.Context()).Model(rep).Updates(changes).Error; err != nil {
			log.Printf("[reps] update %q failed: %v", id, err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
	}

	respond(w, r, AssembleRep(*rep, rep.OfficeLocations))
}

// DeleteRep removes a rep and its office locations.
func DeleteRep(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rep, err := RepByBioguide(r.Context(), id)
	if errors.Is(err, ErrRepNotFound) {
		http.Error(w, "Rep not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	err = db.DB.WithContext(r.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("rep_id = ? AND rep_type = ?", rep.ID, "rep").
			Delete(&OfficeLocation{}).Error; err != nil {
			return err
		}
		return tx.Delete(rep).Error
	})
	if err != nil {
		log.Printf("[reps] delete %q failed: %v", id, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CreateOfficeLocation attaches an office to a rep by bioguide id.
func CreateOfficeLocation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rep, err := RepByBioguide(r.Context(), id)
	if errors.Is(err, ErrRepNotFound) {
		http.Error(w, "Rep not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	var office OfficeLocation
	if err := json.NewDecoder(r.Body).Decode(&office); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	office.ID = uuid.Nil
	office.RepID = rep.ID
	office.RepType = "rep"

	if err := db.DB.WithContext(r.Context()).Create(&office).Error; err != nil {
		log.Printf("[reps] create office failed: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSONStatus(w, http.StatusCreated, office)
}

// DeleteOfficeLocation removes a single office location by id.
func DeleteOfficeLocation(w http.ResponseWriter, r *http.Request) {
	officeID, err := uuid.Parse(chi.URLParam(r, "officeID"))
	if err != nil {
		http.Error(w, "Invalid office id", http.StatusBadRequest)
		return
	}

	result := db.DB.WithContext(r.Context()).
		Where("id = ?", officeID).Delete(&OfficeLocation{})
	if result.Error != nil {
		log.Printf("[reps] delete office failed: %v", result.Error)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if result.RowsAffected == 0 {
		http.Error(w, "Office location not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetStateReps answers the state-legislator read path by address or
// coordinates.
func GetStateReps(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	var lookup Lookup
	var err error

	if address := q.Get("address"); address != "" {
		lookup, err = ResolveAddress(ctx, Geocode, address)
		if errors.Is(err, ErrNoGeocode) {
			respond(w, r, []RepOut{})
			return
		}
	} else {
		lat, latErr := strconv.ParseFloat(q.Get("lat"), 64)
		lng, lngErr := strconv.ParseFloat(q.Get("long"), 64)
		if latErr != nil || lngErr != nil {
			http.Error(w, "Missing address or lat/long parameters", http.StatusBadRequest)
			return
		}
		lookup, err = ResolveCoordinates(ctx, lat, lng)
	}
	if err != nil {
		log.Printf("[state_reps] lookup failed: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	out := make([]RepOut, 0, len(lookup.StateReps))
	for _, rep := range lookup.StateReps {
		ranked := RankOffices(rep.OfficeLocations, lookup.Lat, lookup.Lng, DefaultOfficeRadiusMeters)
		out = append(out, AssembleStateRep(rep, ranked))
	}
	respond(w, r, out)
}

// TriggerSync kicks off reconciliation for one state in the background.
// The fetch-and-merge can take minutes against the external APIs, so the
// handler returns 202 immediately.
func TriggerSync(w http.ResponseWriter, r *http.Request) {
	abbr := strings.ToUpper(r.URL.Query().Get("state"))
	if len(abbr) != 2 {
		http.Error(w, "Missing or invalid state parameter", http.StatusBadRequest)
		return
	}

	state, err := StateByAbbr(r.Context(), abbr)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if state == nil {
		http.Error(w, "Unknown state", http.StatusNotFound)
		return
	}

	go func() {
		if err := SyncState(context.Background(), *state); err != nil {
			log.Printf("[sync] state %s failed: %v", abbr, err)
		}
	}()

	writeJSONStatus(w, http.StatusAccepted, map[string]string{"status": "sync started", "state": abbr})
}
