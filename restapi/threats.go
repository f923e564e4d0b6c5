package restapi

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"nenserver/models"
)

type CreateThreatRequest struct {
	CampaignID string `json:"campaignId"`
	Name       string `json:"name"`
}

func (api *API) CreateThreatHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateThreatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if req.CampaignID == "" || req.Name == "" {
		sendError(w, http.StatusBadRequest, "campaignId and name are required")
		return
	}

	threat := models.NewThreat(req.CampaignID, req.Name)
	if _, err := api.store.Threats().InsertOne(r.Context(), threat); err != nil {
		log.Printf("ERROR: could not insert threat: %v", err)
		sendError(w, http.StatusInternalServerError, "Failed to create threat")
		return
	}

	sendJSON(w, http.StatusOK, threat)
}

func (api *API) ListThreatsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	skip, limit := listParams(r)

	campaignID := r.URL.Query().Get("campaignId")
	if campaignID == "" {
		sendError(w, http.StatusBadRequest, "campaignId is required")
		return
	}

	cursor, err := api.store.Threats().Find(ctx, bson.M{"campaignId": campaignID},
		options.Find().SetSkip(skip).SetLimit(limit))
	if err != nil {
		log.Printf("ERROR: could not query threats: %v", err)
		sendError(w, http.StatusInternalServerError, "Could not retrieve threats")
		return
	}
	defer cursor.Close(ctx)

	threats := []models.Threat{}
	if err := cursor.All(ctx, &threats); err != nil {
		log.Printf("ERROR: could not decode threats: %v", err)
		sendError(w, http.StatusInternalServerError, "Could not read threats from database")
		return
	}

	sendJSON(w, http.StatusOK, threats)
}

func (api *API) GetThreatHandler(w http.ResponseWriter, r *http.Request) {
	threat, err := api.store.FindThreat(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		sendStoreError(w, err, "Could not retrieve threat")
		return
	}

	sendJSON(w, http.StatusOK, threat)
}

func (api *API) UpdateThreatHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var patch models.ThreatPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	// an empty $set is a mongo error, and a no-op patch should still 404 on
	// a missing threat, so only fire the update when there is something to set
	if set := patch.Updates(); len(set) > 0 {
		res, err := api.store.Threats().UpdateOne(r.Context(), bson.M{"id": id}, bson.M{"$set": set})
		if err != nil {
			log.Printf("ERROR: could not update threat %s: %v", id, err)
			sendError(w, http.StatusInternalServerError, "Failed to update threat")
			return
		}
		if res.MatchedCount == 0 {
			sendError(w, http.StatusNotFound, "Threat not found")
			return
		}
	}

	threat, err := api.store.FindThreat(r.Context(), id)
	if err != nil {
		sendStoreError(w, err, "Could not retrieve threat")
		return
	}

	sendJSON(w, http.StatusOK, threat)
}

func (api *API) DeleteThreatHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	res, err := api.store.Threats().DeleteOne(r.Context(), bson.M{"id": id})
	if err != nil {
		log.Printf("ERROR: could not delete threat %s: %v", id, err)
		sendError(w, http.StatusInternalServerError, "Failed to delete threat")
		return
	}
	if res.DeletedCount == 0 {
		sendError(w, http.StatusNotFound, "Threat not found")
		return
	}

	sendJSON(w, http.StatusOK, map[string]string{"message": "Threat deleted successfully"})
}

// Clones a threat from one campaign into another.
func (api *API) ImportThreatHandler(w http.ResponseWriter, r *http.Request) {
	targetCampaignID := r.URL.Query().Get("targetCampaignId")
	if targetCampaignID == "" {
		sendError(w, http.StatusBadRequest, "targetCampaignId is required")
		return
	}

	clone, err := api.store.ImportThreat(r.Context(), chi.URLParam(r, "id"), targetCampaignID)
	if err != nil {
		sendStoreError(w, err, "Failed to import threat")
		return
	}

	sendJSON(w, http.StatusOK, clone)
}
