package restapi

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"nenserver/database"
	"nenserver/models"
)

const apiVersion = "1.0.0"

// API holds the handler dependencies. The store is injected at construction;
// handlers never reach for ambient state.
type API struct {
	store      *database.Store
	corsOrigin string
}

func NewAPI(store *database.Store, corsOrigin string) *API {
	if corsOrigin == "" {
		corsOrigin = "*"
	}
	return &API{store: store, corsOrigin: corsOrigin}
}

// Router mounts every endpoint under /api.
func (api *API) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(api.standardHeaders)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", api.RootHandler)
		r.Get("/health", api.HealthHandler)

		r.Post("/characters", api.CreateCharacterHandler)
		r.Get("/characters", api.ListCharactersHandler)
		r.Get("/characters/{id}", api.GetCharacterHandler)
		r.Put("/characters/{id}", api.UpdateCharacterHandler)
		r.Delete("/characters/{id}", api.DeleteCharacterHandler)

		r.Post("/rolls", api.CreateRollHandler)
		r.Get("/rolls", api.ListRollsHandler)
		r.Delete("/rolls", api.ClearRollsHandler)

		r.Post("/threats", api.CreateThreatHandler)
		r.Get("/threats", api.ListThreatsHandler)
		r.Get("/threats/{id}", api.GetThreatHandler)
		r.Put("/threats/{id}", api.UpdateThreatHandler)
		r.Delete("/threats/{id}", api.DeleteThreatHandler)
		r.Post("/threats/import/{id}", api.ImportThreatHandler)

		r.Post("/campaigns", api.CreateCampaignHandler)
		r.Get("/campaigns", api.ListCampaignsHandler)
		r.Post("/campaigns/join", api.JoinCampaignHandler)
		r.Get("/campaigns/{id}", api.GetCampaignHandler)
		r.Put("/campaigns/{id}", api.UpdateCampaignHandler)
		r.Delete("/campaigns/{id}", api.DeleteCampaignHandler)
		r.Post("/campaigns/{id}/leave", api.LeaveCampaignHandler)
		r.Get("/campaigns/{id}/character/{userId}", api.GetCampaignCharacterHandler)
		r.Put("/campaigns/{id}/character/{characterId}", api.UpdateCampaignCharacterHandler)
		r.Post("/campaigns/{id}/rolls", api.CreateCampaignRollHandler)
		r.Get("/campaigns/{id}/rolls", api.ListCampaignRollsHandler)
		r.Get("/campaigns/{id}/player-stats", api.PlayerStatsHandler)
	})

	return r
}

func (api *API) standardHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Server", "NenServer")
		w.Header().Set("Access-Control-Allow-Origin", api.corsOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// JSON helper methods to not repeat the same code in every handler

// Sends a JSON response with the given status code and payload.
func sendJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("ERROR: could not write json response: %v", err)
	}
}

// Sends an error response with the given status code and message.
func sendError(w http.ResponseWriter, statusCode int, message string) {
	sendJSON(w, statusCode, map[string]string{"error": message})
}

// Maps a workflow error onto its HTTP status. Store failures without a
// taxonomy kind are logged and hidden behind the fallback message.
func sendStoreError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, database.ErrNotFound):
		sendError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, database.ErrForbidden):
		sendError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, database.ErrConflict), errors.Is(err, database.ErrInvalidOperation):
		sendError(w, http.StatusBadRequest, err.Error())
	default:
		log.Printf("ERROR: %s: %v", fallback, err)
		sendError(w, http.StatusInternalServerError, fallback)
	}
}

// Parses skip/limit query params. The limit is capped to keep a single
// request from dragging an entire collection into memory.
func listParams(r *http.Request) (skip, limit int64) {
	skip = 0
	limit = 50

	if v := r.URL.Query().Get("skip"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n >= 0 {
			skip = n
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > 100 {
		limit = 100
	}
	return skip, limit
}

func (api *API) RootHandler(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, http.StatusOK, map[string]string{
		"message": "Hunter x Nen RPG System API",
		"version": apiVersion,
	})
}

// Handles the health check endpoint to verify if the database is reachable.
// If the DB has gone down this returns 503 so clients know the service is
// not operational.
func (api *API) HealthHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := api.store.Client().Ping(ctx, nil); err != nil {
		sendError(w, http.StatusServiceUnavailable, "database is not available")
		return
	}

	sendJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": models.Timestamp(),
	})
}
