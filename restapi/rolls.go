package restapi

import (
	"encoding/json"
	"log"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"nenserver/models"
)

// Rolls are recorded as the client computed them; the server never rerolls
// or validates the math, it only keeps the history.

func (api *API) CreateRollHandler(w http.ResponseWriter, r *http.Request) {
	var req models.RollCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if req.CharacterID == "" {
		sendError(w, http.StatusBadRequest, "characterId is required")
		return
	}

	roll := models.NewRollRecord(req)
	if _, err := api.store.Rolls().InsertOne(r.Context(), roll); err != nil {
		log.Printf("ERROR: could not insert roll: %v", err)
		sendError(w, http.StatusInternalServerError, "Failed to record roll")
		return
	}

	sendJSON(w, http.StatusOK, roll)
}

func (api *API) ListRollsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	_, limit := listParams(r)

	filter := bson.M{}
	if characterID := r.URL.Query().Get("characterId"); characterID != "" {
		filter["characterId"] = characterID
	}

	findOptions := options.Find().SetSort(bson.M{"timestamp": -1}).SetLimit(limit)
	cursor, err := api.store.Rolls().Find(ctx, filter, findOptions)
	if err != nil {
		log.Printf("ERROR: could not query rolls: %v", err)
		sendError(w, http.StatusInternalServerError, "Could not retrieve roll history")
		return
	}
	defer cursor.Close(ctx)

	rolls := []models.RollRecord{}
	if err := cursor.All(ctx, &rolls); err != nil {
		log.Printf("ERROR: could not decode rolls: %v", err)
		sendError(w, http.StatusInternalServerError, "Could not read roll history from database")
		return
	}

	sendJSON(w, http.StatusOK, rolls)
}

// Clears roll history, either for a single character or across the board.
func (api *API) ClearRollsHandler(w http.ResponseWriter, r *http.Request) {
	filter := bson.M{}
	if characterID := r.URL.Query().Get("characterId"); characterID != "" {
		filter["characterId"] = characterID
	}

	if _, err := api.store.Rolls().DeleteMany(r.Context(), filter); err != nil {
		log.Printf("ERROR: could not clear rolls: %v", err)
		sendError(w, http.StatusInternalServerError, "Failed to clear roll history")
		return
	}

	sendJSON(w, http.StatusOK, map[string]string{"message": "Roll history cleared"})
}
