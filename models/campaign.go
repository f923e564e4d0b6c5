package models

import (
	"math/rand"

	"github.com/google/uuid"
)

const inviteCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateInviteCode returns a 6-character code drawn uniformly from
// letters and digits. This is the only invite code generator; every
// campaign gets its code from here.
func GenerateInviteCode() string {
	code := make([]byte, 6)
	for i := range code {
		code[i] = inviteCodeAlphabet[rand.Intn(len(inviteCodeAlphabet))]
	}
	return string(code)
}

// CampaignPlayer links a joined user to the campaign character created for
// them in this campaign.
type CampaignPlayer struct {
	OdiserID      string `json:"odiserId" bson:"odiserId"`
	OdiserName    string `json:"odiserName" bson:"odiserName"`
	OdiserEmail   string `json:"odiserEmail" bson:"odiserEmail"`
	CharacterID   string `json:"characterId" bson:"characterId"`
	CharacterName string `json:"characterName" bson:"characterName"`
	JoinedAt      string `json:"joinedAt" bson:"joinedAt"`
}

// Campaign is a shared session owned by one master. playerIds mirrors the
// players list and exists purely for fast membership queries; the membership
// workflow keeps the two in sync.
type Campaign struct {
	ID          string           `json:"id" bson:"id"`
	Name        string           `json:"name" bson:"name"`
	Description string           `json:"description" bson:"description"`
	MasterID    string           `json:"masterId" bson:"masterId"`
	MasterName  string           `json:"masterName" bson:"masterName"`
	MasterEmail string           `json:"masterEmail" bson:"masterEmail"`
	InviteCode  string           `json:"inviteCode" bson:"inviteCode"`
	Players     []CampaignPlayer `json:"players" bson:"players"`
	PlayerIDs   []string         `json:"playerIds" bson:"playerIds"`
	CreatedAt   string           `json:"createdAt" bson:"createdAt"`
	UpdatedAt   string           `json:"updatedAt" bson:"updatedAt"`
}

type CampaignCreate struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	MasterID    string `json:"masterId"`
	MasterName  string `json:"masterName"`
	MasterEmail string `json:"masterEmail"`
}

func NewCampaign(in CampaignCreate) Campaign {
	now := Timestamp()
	return Campaign{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		MasterID:    in.MasterID,
		MasterName:  in.MasterName,
		MasterEmail: in.MasterEmail,
		InviteCode:  GenerateInviteCode(),
		Players:     []CampaignPlayer{},
		PlayerIDs:   []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// CampaignCharacter is a campaign-private snapshot of a character, made at
// join time. After creation its data payload is independent of the source
// character; edits to either side do not propagate to the other.
type CampaignCharacter struct {
	ID                  string                 `json:"id" bson:"id"`
	CampaignID          string                 `json:"campaignId" bson:"campaignId"`
	OriginalCharacterID string                 `json:"originalCharacterId" bson:"originalCharacterId"`
	OdiserID            string                 `json:"odiserId" bson:"odiserId"`
	Data                map[string]interface{} `json:"data" bson:"data"`
	CreatedAt           string                 `json:"createdAt" bson:"createdAt"`
	UpdatedAt           string                 `json:"updatedAt" bson:"updatedAt"`
}
