package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"nenserver/models"
)

// Convenience lookups shared by the handlers, to keep the not-found
// translation in one place.

func (s *Store) FindCharacter(ctx context.Context, id string) (models.Character, error) {
	var character models.Character
	err := s.Characters().FindOne(ctx, bson.M{"id": id}).Decode(&character)
	if err == mongo.ErrNoDocuments {
		return models.Character{}, notFound("Character not found")
	}
	if err != nil {
		return models.Character{}, err
	}
	return character, nil
}

func (s *Store) FindCampaign(ctx context.Context, id string) (models.Campaign, error) {
	var campaign models.Campaign
	err := s.Campaigns().FindOne(ctx, bson.M{"id": id}).Decode(&campaign)
	if err == mongo.ErrNoDocuments {
		return models.Campaign{}, notFound("Campaign not found")
	}
	if err != nil {
		return models.Campaign{}, err
	}
	return campaign, nil
}

func (s *Store) FindThreat(ctx context.Context, id string) (models.Threat, error) {
	var threat models.Threat
	err := s.Threats().FindOne(ctx, bson.M{"id": id}).Decode(&threat)
	if err == mongo.ErrNoDocuments {
		return models.Threat{}, notFound("Threat not found")
	}
	if err != nil {
		return models.Threat{}, err
	}
	return threat, nil
}

// ImportThreat clones a threat into another campaign. Everything except the
// id, campaign scope and creation time carries over.
func (s *Store) ImportThreat(ctx context.Context, threatID, targetCampaignID string) (models.Threat, error) {
	source, err := s.FindThreat(ctx, threatID)
	if err != nil {
		return models.Threat{}, err
	}

	var clone models.Threat
	if err := copier.CopyWithOption(&clone, &source, copier.Option{DeepCopy: true}); err != nil {
		return models.Threat{}, err
	}
	clone.ID = uuid.NewString()
	clone.CampaignID = targetCampaignID
	clone.CreatedAt = models.Timestamp()

	if _, err := s.Threats().InsertOne(ctx, clone); err != nil {
		return models.Threat{}, err
	}
	return clone, nil
}
