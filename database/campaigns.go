package database

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"nenserver/models"
)

// Campaign membership workflow. These are the only operations touching more
// than one document; everything else in the API is a single-document CRUD
// call made directly from the handlers.

type JoinRequest struct {
	InviteCode  string `json:"inviteCode"`
	OdiserID    string `json:"odiserId"`
	OdiserName  string `json:"odiserName"`
	OdiserEmail string `json:"odiserEmail"`
	CharacterID string `json:"characterId"`
}

type JoinResult struct {
	CampaignID  string
	CharacterID string
}

// JoinCampaign validates an invite code and adds the user to the campaign,
// snapshotting their character into a campaign-private copy.
//
// The two writes (snapshot insert, then membership push) are not atomic. A
// crash between them leaves an orphaned campaign character with no player
// entry. This window is accepted; campaign membership is low-stakes enough
// that a transaction isn't worth requiring a replica set.
func (s *Store) JoinCampaign(ctx context.Context, req JoinRequest) (JoinResult, error) {
	var campaign models.Campaign
	err := s.Campaigns().FindOne(ctx, bson.M{"inviteCode": req.InviteCode}).Decode(&campaign)
	if err == mongo.ErrNoDocuments {
		return JoinResult{}, notFound("Invalid invite code")
	}
	if err != nil {
		return JoinResult{}, err
	}

	if campaign.MasterID == req.OdiserID {
		return JoinResult{}, invalidOperation("You are the master of this campaign")
	}

	for _, id := range campaign.PlayerIDs {
		if id == req.OdiserID {
			return JoinResult{}, conflict("You are already in this campaign")
		}
	}

	var original bson.M
	err = s.Characters().FindOne(ctx, bson.M{"id": req.CharacterID}).Decode(&original)
	if err == mongo.ErrNoDocuments {
		return JoinResult{}, notFound("Character not found")
	}
	if err != nil {
		return JoinResult{}, err
	}
	delete(original, "_id")

	// deep copy so the snapshot never shares nested maps/slices with the
	// source document
	snapshot := bson.M{}
	if err := copier.CopyWithOption(&snapshot, &original, copier.Option{DeepCopy: true}); err != nil {
		return JoinResult{}, err
	}

	now := models.Timestamp()
	campaignChar := models.CampaignCharacter{
		ID:                  uuid.NewString(),
		CampaignID:          campaign.ID,
		OriginalCharacterID: req.CharacterID,
		OdiserID:            req.OdiserID,
		Data:                snapshot,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if _, err := s.CampaignCharacters().InsertOne(ctx, campaignChar); err != nil {
		return JoinResult{}, err
	}

	characterName, _ := original["name"].(string)
	newPlayer := models.CampaignPlayer{
		OdiserID:      req.OdiserID,
		OdiserName:    req.OdiserName,
		OdiserEmail:   req.OdiserEmail,
		CharacterID:   campaignChar.ID,
		CharacterName: characterName,
		JoinedAt:      now,
	}

	_, err = s.Campaigns().UpdateOne(ctx,
		bson.M{"id": campaign.ID},
		bson.M{
			"$push": bson.M{
				"playerIds": req.OdiserID,
				"players":   newPlayer,
			},
			"$set": bson.M{"updatedAt": models.Timestamp()},
		},
	)
	if err != nil {
		return JoinResult{}, err
	}

	return JoinResult{CampaignID: campaign.ID, CharacterID: campaignChar.ID}, nil
}

// LeaveCampaign removes the player's membership entry, their id from the
// flat index, and their campaign character. Rejoining later produces a
// fresh snapshot; nothing from the old membership is kept.
func (s *Store) LeaveCampaign(ctx context.Context, campaignID, userID string) error {
	var campaign models.Campaign
	err := s.Campaigns().FindOne(ctx, bson.M{"id": campaignID}).Decode(&campaign)
	if err == mongo.ErrNoDocuments {
		return notFound("Campaign not found")
	}
	if err != nil {
		return err
	}

	if userID == campaign.MasterID {
		return invalidOperation("Master cannot leave the campaign")
	}

	_, err = s.Campaigns().UpdateOne(ctx,
		bson.M{"id": campaignID},
		bson.M{
			"$pull": bson.M{
				"playerIds": userID,
				"players":   bson.M{"odiserId": userID},
			},
			"$set": bson.M{"updatedAt": models.Timestamp()},
		},
	)
	if err != nil {
		return err
	}

	_, err = s.CampaignCharacters().DeleteMany(ctx, bson.M{"campaignId": campaignID, "odiserId": userID})
	return err
}

// DeleteCampaign removes a campaign and cascade-deletes everything scoped
// to it. The cascade is idempotent: every collection is attempted even when
// a step matches nothing, so a retry after a partial failure finishes the
// cleanup.
func (s *Store) DeleteCampaign(ctx context.Context, campaignID, masterID string) error {
	var campaign models.Campaign
	err := s.Campaigns().FindOne(ctx, bson.M{"id": campaignID}).Decode(&campaign)
	if err == mongo.ErrNoDocuments {
		return notFound("Campaign not found")
	}
	if err != nil {
		return err
	}

	if campaign.MasterID != masterID {
		return forbidden("Only the master can delete the campaign")
	}

	if _, err := s.Campaigns().DeleteOne(ctx, bson.M{"id": campaignID}); err != nil {
		return err
	}

	scope := bson.M{"campaignId": campaignID}
	if _, err := s.CampaignCharacters().DeleteMany(ctx, scope); err != nil {
		log.Printf("WARN: campaign %s deleted, but campaign character cleanup failed: %v", campaignID, err)
	}
	if _, err := s.Threats().DeleteMany(ctx, scope); err != nil {
		log.Printf("WARN: campaign %s deleted, but threat cleanup failed: %v", campaignID, err)
	}
	if _, err := s.CampaignRolls().DeleteMany(ctx, scope); err != nil {
		log.Printf("WARN: campaign %s deleted, but campaign roll cleanup failed: %v", campaignID, err)
	}

	return nil
}

// UpdateCampaignCharacter replaces the snapshot's entire data payload. This
// is deliberately not a merge: once snapshotted, the campaign copy is
// wholesale replaceable and owes nothing to the original character.
func (s *Store) UpdateCampaignCharacter(ctx context.Context, campaignID, characterID string, data map[string]interface{}) (models.CampaignCharacter, error) {
	res, err := s.CampaignCharacters().UpdateOne(ctx,
		bson.M{"id": characterID, "campaignId": campaignID},
		bson.M{"$set": bson.M{"data": data, "updatedAt": models.Timestamp()}},
	)
	if err != nil {
		return models.CampaignCharacter{}, err
	}
	if res.MatchedCount == 0 {
		return models.CampaignCharacter{}, notFound("Campaign character not found")
	}

	var updated models.CampaignCharacter
	if err := s.CampaignCharacters().FindOne(ctx, bson.M{"id": characterID}).Decode(&updated); err != nil {
		return models.CampaignCharacter{}, err
	}
	return updated, nil
}

// GetCampaignCharacter returns the snapshot a user plays with in a campaign.
// A user holds at most one per campaign.
func (s *Store) GetCampaignCharacter(ctx context.Context, campaignID, userID string) (models.CampaignCharacter, error) {
	var char models.CampaignCharacter
	err := s.CampaignCharacters().FindOne(ctx, bson.M{"campaignId": campaignID, "odiserId": userID}).Decode(&char)
	if err == mongo.ErrNoDocuments {
		return models.CampaignCharacter{}, notFound("Campaign character not found")
	}
	if err != nil {
		return models.CampaignCharacter{}, err
	}
	return char, nil
}

// PlayerStats is one row of the master's overview table.
type PlayerStats struct {
	OdiserID      string               `json:"odiserId"`
	CharacterID   string               `json:"characterId"`
	CharacterName string               `json:"characterName"`
	PV            models.ResourceValue `json:"pv"`
	PA            models.ResourceValue `json:"pa"`
	UpdatedAt     string               `json:"updatedAt"`
}

// GetPlayerStats projects a summary for every campaign character in the
// campaign. Missing names fall back to "Unknown" and missing resource
// blocks to zeroed pools, so partially-filled snapshots still render.
func (s *Store) GetPlayerStats(ctx context.Context, campaignID string) ([]PlayerStats, error) {
	projection := bson.M{
		"_id":               0,
		"odiserId":          1,
		"id":                1,
		"data.name":         1,
		"data.resources.pv": 1,
		"data.resources.pa": 1,
		"updatedAt":         1,
	}

	cursor, err := s.CampaignCharacters().Find(ctx,
		bson.M{"campaignId": campaignID},
		options.Find().SetProjection(projection).SetLimit(100),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	stats := []PlayerStats{}
	for cursor.Next(ctx) {
		var char models.CampaignCharacter
		if err := cursor.Decode(&char); err != nil {
			log.Printf("ERROR: failed to decode campaign character for stats: %v", err)
			continue
		}

		entry := PlayerStats{
			OdiserID:      char.OdiserID,
			CharacterID:   char.ID,
			CharacterName: "Unknown",
			UpdatedAt:     char.UpdatedAt,
		}
		if name, ok := char.Data["name"].(string); ok && name != "" {
			entry.CharacterName = name
		}
		if resources, ok := asDoc(char.Data["resources"]); ok {
			entry.PV = decodeResourceValue(resources["pv"])
			entry.PA = decodeResourceValue(resources["pa"])
		}

		stats = append(stats, entry)
	}

	return stats, cursor.Err()
}

func decodeResourceValue(v interface{}) models.ResourceValue {
	m, ok := asDoc(v)
	if !ok {
		return models.ResourceValue{}
	}
	return models.ResourceValue{
		Current: asInt(m["current"]),
		Max:     asInt(m["max"]),
	}
}

// asDoc normalizes the two document types the driver hands back for
// embedded documents depending on the ancestor type.
func asDoc(v interface{}) (map[string]interface{}, bool) {
	switch m := v.(type) {
	case bson.M:
		return m, true
	case map[string]interface{}:
		return m, true
	default:
		return nil, false
	}
}

// asInt flattens the numeric types the driver may hand back for a plain
// JSON number.
func asInt(v interface{}) int {
	switch n := v.(type) {
	case int32:
		return int(n)
	case int64:
		return int(n)
	case int:
		return n
	case float64:
		return int(n)
	default:
		return 0
	}
}

// CampaignSummary is a campaign row in a user's campaign list, tagged with
// the role the user has in it.
type CampaignSummary struct {
	ID          string                  `json:"id" bson:"id"`
	Name        string                  `json:"name" bson:"name"`
	Description string                  `json:"description" bson:"description"`
	InviteCode  string                  `json:"inviteCode" bson:"inviteCode"`
	Players     []models.CampaignPlayer `json:"players" bson:"players"`
	PlayerIDs   []string                `json:"playerIds" bson:"playerIds"`
	MasterID    string                  `json:"masterId" bson:"masterId"`
	MasterName  string                  `json:"masterName" bson:"masterName"`
	Role        string                  `json:"role" bson:"-"`
}

// GetUserCampaigns returns the campaigns the user masters followed by the
// ones they play in.
func (s *Store) GetUserCampaigns(ctx context.Context, userID string, skip, limit int64) ([]CampaignSummary, error) {
	asMaster, err := s.findCampaignSummaries(ctx, bson.M{"masterId": userID}, "master", skip, limit)
	if err != nil {
		return nil, err
	}

	asPlayer, err := s.findCampaignSummaries(ctx, bson.M{"playerIds": userID}, "player", skip, limit)
	if err != nil {
		return nil, err
	}

	return append(asMaster, asPlayer...), nil
}

func (s *Store) findCampaignSummaries(ctx context.Context, filter bson.M, role string, skip, limit int64) ([]CampaignSummary, error) {
	cursor, err := s.Campaigns().Find(ctx, filter, options.Find().SetSkip(skip).SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	summaries := []CampaignSummary{}
	for cursor.Next(ctx) {
		var summary CampaignSummary
		if err := cursor.Decode(&summary); err != nil {
			log.Printf("ERROR: failed to decode campaign summary: %v", err)
			continue
		}
		summary.Role = role
		summaries = append(summaries, summary)
	}

	return summaries, cursor.Err()
}
