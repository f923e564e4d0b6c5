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

type CreateCharacterRequest struct {
	Name   string `json:"name"`
	UserID string `json:"userId"`
}

func (api *API) CreateCharacterHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateCharacterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if req.Name == "" {
		sendError(w, http.StatusBadRequest, "Name is required")
		return
	}

	character := models.NewCharacter(req.Name, req.UserID)
	if _, err := api.store.Characters().InsertOne(r.Context(), character); err != nil {
		log.Printf("ERROR: could not insert character: %v", err)
		sendError(w, http.StatusInternalServerError, "Failed to create character")
		return
	}

	sendJSON(w, http.StatusOK, character)
}

func (api *API) ListCharactersHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	skip, limit := listParams(r)

	filter := bson.M{}
	if userID := r.URL.Query().Get("userId"); userID != "" {
		filter["userId"] = userID
	}

	cursor, err := api.store.Characters().Find(ctx, filter, options.Find().SetSkip(skip).SetLimit(limit))
	if err != nil {
		log.Printf("ERROR: could not query characters: %v", err)
		sendError(w, http.StatusInternalServerError, "Could not retrieve characters")
		return
	}
	defer cursor.Close(ctx)

	characters := []models.Character{}
	if err := cursor.All(ctx, &characters); err != nil {
		log.Printf("ERROR: could not decode characters: %v", err)
		sendError(w, http.StatusInternalServerError, "Could not read characters from database")
		return
	}

	sendJSON(w, http.StatusOK, characters)
}

func (api *API) GetCharacterHandler(w http.ResponseWriter, r *http.Request) {
	character, err := api.store.FindCharacter(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		sendStoreError(w, err, "Could not retrieve character")
		return
	}

	sendJSON(w, http.StatusOK, character)
}

// Merges the allow-listed fields of the patch into the stored document and
// returns the updated sheet.
func (api *API) UpdateCharacterHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var patch models.CharacterPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	set := patch.Updates()
	set["updatedAt"] = models.Timestamp()

	res, err := api.store.Characters().UpdateOne(r.Context(), bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		log.Printf("ERROR: could not update character %s: %v", id, err)
		sendError(w, http.StatusInternalServerError, "Failed to update character")
		return
	}
	if res.MatchedCount == 0 {
		sendError(w, http.StatusNotFound, "Character not found")
		return
	}

	character, err := api.store.FindCharacter(r.Context(), id)
	if err != nil {
		sendStoreError(w, err, "Could not retrieve character")
		return
	}

	sendJSON(w, http.StatusOK, character)
}

func (api *API) DeleteCharacterHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	res, err := api.store.Characters().DeleteOne(r.Context(), bson.M{"id": id})
	if err != nil {
		log.Printf("ERROR: could not delete character %s: %v", id, err)
		sendError(w, http.StatusInternalServerError, "Failed to delete character")
		return
	}
	if res.DeletedCount == 0 {
		sendError(w, http.StatusNotFound, "Character not found")
		return
	}

	sendJSON(w, http.StatusOK, map[string]string{"message": "Character deleted successfully"})
}
