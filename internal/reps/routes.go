package reps

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func SetupRoutes() http.Handler {
	r := chi.NewRouter()

	// Public routes
	r.Get("/", GetReps)
	r.Get("/{id}", GetRepByID)

	// Admin/tooling routes
	r.Post("/", CreateRep)
	r.Patch("/{id}", UpdateRep)
	r.Delete("/{id}", DeleteRep)
	r.Post("/{id}/office_locations", CreateOfficeLocation)
	r.Delete("/office_locations/{officeID}", DeleteOfficeLocation)
	r.Post("/sync", TriggerSync)

	return r
}

func SetupStateRoutes() http.Handler {
	r := chi.NewRouter()

	r.Get("/", GetStateReps)

	return r
}
