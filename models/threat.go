package models

import "github.com/google/uuid"

type ThreatCombat struct {
	Damage string `json:"damage" bson:"damage"`
}

// Threat is a campaign-scoped NPC/monster sheet. It shares the resource and
// attribute shape of a character but carries a flat combat damage expression
// and free-text abilities instead of equipment.
type Threat struct {
	ID         string `json:"id" bson:"id"`
	CampaignID string `json:"campaignId" bson:"campaignId"`
	CreatedAt  string `json:"createdAt" bson:"createdAt"`

	Name             string             `json:"name" bson:"name"`
	Resources        CharacterResources `json:"resources" bson:"resources"`
	Attributes       Attributes         `json:"attributes" bson:"attributes"`
	Skills           map[string]int     `json:"skills" bson:"skills"`
	DueloAttribute   string             `json:"dueloAttribute" bson:"dueloAttribute"`
	Nen              NenSystem          `json:"nen" bson:"nen"`
	Combat           ThreatCombat       `json:"combat" bson:"combat"`
	GeneralAbilities string             `json:"generalAbilities" bson:"generalAbilities"`
}

func NewThreat(campaignID, name string) Threat {
	return Threat{
		ID:         uuid.NewString(),
		CampaignID: campaignID,
		CreatedAt:  Timestamp(),
		Name:       name,
		Resources:  DefaultCharacterResources(),
		Attributes: DefaultAttributes(),
		Skills: map[string]int{
			"Duelo":           0,
			"Vontade":         0,
			"Reflexos":        0,
			"Robustez":        0,
			"Caça":            0,
			"Controle de Nen": 0,
		},
		DueloAttribute: "FOR",
		Nen:            DefaultNenSystem(),
		Combat:         ThreatCombat{Damage: "2d8+5"},
	}
}
