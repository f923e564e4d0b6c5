package restapi

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"nenserver/database"
	"nenserver/models"
)

func (api *API) CreateCampaignHandler(w http.ResponseWriter, r *http.Request) {
	var req models.CampaignCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if req.Name == "" || req.MasterID == "" {
		sendError(w, http.StatusBadRequest, "name and masterId are required")
		return
	}

	campaign := models.NewCampaign(req)
	if _, err := api.store.Campaigns().InsertOne(r.Context(), campaign); err != nil {
		log.Printf("ERROR: could not insert campaign: %v", err)
		sendError(w, http.StatusInternalServerError, "Failed to create campaign")
		return
	}

	sendJSON(w, http.StatusOK, campaign)
}

// Lists the campaigns a user belongs to, each tagged with their role in it.
func (api *API) ListCampaignsHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		sendError(w, http.StatusBadRequest, "userId is required")
		return
	}

	skip, limit := listParams(r)
	campaigns, err := api.store.GetUserCampaigns(r.Context(), userID, skip, limit)
	if err != nil {
		log.Printf("ERROR: could not query campaigns for user %s: %v", userID, err)
		sendError(w, http.StatusInternalServerError, "Could not retrieve campaigns")
		return
	}

	sendJSON(w, http.StatusOK, campaigns)
}

func (api *API) GetCampaignHandler(w http.ResponseWriter, r *http.Request) {
	campaign, err := api.store.FindCampaign(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		sendStoreError(w, err, "Could not retrieve campaign")
		return
	}

	sendJSON(w, http.StatusOK, campaign)
}

func (api *API) UpdateCampaignHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var patch models.CampaignPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	set := patch.Updates()
	set["updatedAt"] = models.Timestamp()

	res, err := api.store.Campaigns().UpdateOne(r.Context(), bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		log.Printf("ERROR: could not update campaign %s: %v", id, err)
		sendError(w, http.StatusInternalServerError, "Failed to update campaign")
		return
	}
	if res.MatchedCount == 0 {
		sendError(w, http.StatusNotFound, "Campaign not found")
		return
	}

	campaign, err := api.store.FindCampaign(r.Context(), id)
	if err != nil {
		sendStoreError(w, err, "Could not retrieve campaign")
		return
	}

	sendJSON(w, http.StatusOK, campaign)
}

func (api *API) DeleteCampaignHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	masterID := r.URL.Query().Get("masterId")

	if err := api.store.DeleteCampaign(r.Context(), id, masterID); err != nil {
		sendStoreError(w, err, "Failed to delete campaign")
		return
	}

	sendJSON(w, http.StatusOK, map[string]string{"message": "Campaign deleted successfully"})
}

func (api *API) JoinCampaignHandler(w http.ResponseWriter, r *http.Request) {
	var req database.JoinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if req.InviteCode == "" || req.OdiserID == "" || req.CharacterID == "" {
		sendError(w, http.StatusBadRequest, "inviteCode, odiserId and characterId are required")
		return
	}

	result, err := api.store.JoinCampaign(r.Context(), req)
	if err != nil {
		sendStoreError(w, err, "Failed to join campaign")
		return
	}

	sendJSON(w, http.StatusOK, map[string]interface{}{
		"success":     true,
		"campaignId":  result.CampaignID,
		"characterId": result.CharacterID,
	})
}

func (api *API) LeaveCampaignHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	userID := r.URL.Query().Get("userId")

	if userID == "" {
		sendError(w, http.StatusBadRequest, "userId is required")
		return
	}

	if err := api.store.LeaveCampaign(r.Context(), id, userID); err != nil {
		sendStoreError(w, err, "Failed to leave campaign")
		return
	}

	sendJSON(w, http.StatusOK, map[string]string{"message": "Left campaign successfully"})
}

func (api *API) GetCampaignCharacterHandler(w http.ResponseWriter, r *http.Request) {
	char, err := api.store.GetCampaignCharacter(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "userId"))
	if err != nil {
		sendStoreError(w, err, "Could not retrieve campaign character")
		return
	}

	sendJSON(w, http.StatusOK, char)
}

// Replaces the snapshot's whole data payload. Unlike the other PUTs this is
// not a merge; the campaign copy is owned by the campaign and gets swapped
// wholesale.
func (api *API) UpdateCampaignCharacterHandler(w http.ResponseWriter, r *http.Request) {
	campaignID := chi.URLParam(r, "id")
	characterID := chi.URLParam(r, "characterId")

	var data map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	updated, err := api.store.UpdateCampaignCharacter(r.Context(), campaignID, characterID, data)
	if err != nil {
		sendStoreError(w, err, "Failed to update campaign character")
		return
	}

	sendJSON(w, http.StatusOK, updated)
}

type CreateCampaignRollRequest struct {
	OdiserID      string                 `json:"odiserId"`
	OdiserName    string                 `json:"odiserName"`
	CharacterName string                 `json:"characterName"`
	RollData      map[string]interface{} `json:"rollData"`
}

func (api *API) CreateCampaignRollHandler(w http.ResponseWriter, r *http.Request) {
	campaignID := chi.URLParam(r, "id")

	var req CreateCampaignRollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if req.RollData == nil {
		req.RollData = map[string]interface{}{}
	}

	roll := models.CampaignRoll{
		ID:            uuid.NewString(),
		CampaignID:    campaignID,
		OdiserID:      req.OdiserID,
		OdiserName:    req.OdiserName,
		CharacterName: req.CharacterName,
		RollData:      req.RollData,
		Timestamp:     models.Timestamp(),
	}

	if _, err := api.store.CampaignRolls().InsertOne(r.Context(), roll); err != nil {
		log.Printf("ERROR: could not insert campaign roll: %v", err)
		sendError(w, http.StatusInternalServerError, "Failed to record campaign roll")
		return
	}

	sendJSON(w, http.StatusOK, roll)
}

func (api *API) ListCampaignRollsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	campaignID := chi.URLParam(r, "id")
	_, limit := listParams(r)

	findOptions := options.Find().SetSort(bson.M{"timestamp": -1}).SetLimit(limit)
	cursor, err := api.store.CampaignRolls().Find(ctx, bson.M{"campaignId": campaignID}, findOptions)
	if err != nil {
		log.Printf("ERROR: could not query campaign rolls: %v", err)
		sendError(w, http.StatusInternalServerError, "Could not retrieve campaign rolls")
		return
	}
	defer cursor.Close(ctx)

	rolls := []models.CampaignRoll{}
	if err := cursor.All(ctx, &rolls); err != nil {
		log.Printf("ERROR: could not decode campaign rolls: %v", err)
		sendError(w, http.StatusInternalServerError, "Could not read campaign rolls from database")
		return
	}

	sendJSON(w, http.StatusOK, rolls)
}

func (api *API) PlayerStatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := api.store.GetPlayerStats(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		log.Printf("ERROR: could not compute player stats: %v", err)
		sendError(w, http.StatusInternalServerError, "Could not retrieve player stats")
		return
	}

	sendJSON(w, http.StatusOK, stats)
}
