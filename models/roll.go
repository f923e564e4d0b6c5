package models

import "github.com/google/uuid"

// RollRecord is an append-only log entry for a client-computed dice roll.
// The server never recomputes or mutates it.
type RollRecord struct {
	ID             string `json:"id" bson:"id"`
	CharacterID    string `json:"characterId" bson:"characterId"`
	CharacterName  string `json:"characterName" bson:"characterName"`
	Rolls          []int  `json:"rolls" bson:"rolls"`
	Highest        int    `json:"highest" bson:"highest"`
	AttributeValue int    `json:"attributeValue" bson:"attributeValue"`
	SkillBonus     int    `json:"skillBonus" bson:"skillBonus"`
	SkillName      string `json:"skillName" bson:"skillName"`
	AttributeName  string `json:"attributeName" bson:"attributeName"`
	PenaltyApplied bool   `json:"penaltyApplied" bson:"penaltyApplied"`
	PenaltyValue   int    `json:"penaltyValue" bson:"penaltyValue"`
	BaseResult     int    `json:"baseResult" bson:"baseResult"`
	FinalResult    int    `json:"finalResult" bson:"finalResult"`
	IsCritical     bool   `json:"isCritical" bson:"isCritical"`
	IsCriticalFail bool   `json:"isCriticalFail" bson:"isCriticalFail"`
	Timestamp      string `json:"timestamp" bson:"timestamp"`
}

// RollCreate is the client payload for recording a roll; the server assigns
// the id and timestamp.
type RollCreate struct {
	CharacterID    string `json:"characterId"`
	CharacterName  string `json:"characterName"`
	Rolls          []int  `json:"rolls"`
	Highest        int    `json:"highest"`
	AttributeValue int    `json:"attributeValue"`
	SkillBonus     int    `json:"skillBonus"`
	SkillName      string `json:"skillName"`
	AttributeName  string `json:"attributeName"`
	PenaltyApplied bool   `json:"penaltyApplied"`
	PenaltyValue   int    `json:"penaltyValue"`
	BaseResult     int    `json:"baseResult"`
	FinalResult    int    `json:"finalResult"`
	IsCritical     bool   `json:"isCritical"`
	IsCriticalFail bool   `json:"isCriticalFail"`
}

func NewRollRecord(in RollCreate) RollRecord {
	return RollRecord{
		ID:             uuid.NewString(),
		CharacterID:    in.CharacterID,
		CharacterName:  in.CharacterName,
		Rolls:          in.Rolls,
		Highest:        in.Highest,
		AttributeValue: in.AttributeValue,
		SkillBonus:     in.SkillBonus,
		SkillName:      in.SkillName,
		AttributeName:  in.AttributeName,
		PenaltyApplied: in.PenaltyApplied,
		PenaltyValue:   in.PenaltyValue,
		BaseResult:     in.BaseResult,
		FinalResult:    in.FinalResult,
		IsCritical:     in.IsCritical,
		IsCriticalFail: in.IsCriticalFail,
		Timestamp:      Timestamp(),
	}
}

// CampaignRoll is a roll made inside a campaign session, visible to the
// master. rollData is kept opaque since different clients report different
// shapes.
type CampaignRoll struct {
	ID            string                 `json:"id" bson:"id"`
	CampaignID    string                 `json:"campaignId" bson:"campaignId"`
	OdiserID      string                 `json:"odiserId" bson:"odiserId"`
	OdiserName    string                 `json:"odiserName" bson:"odiserName"`
	CharacterName string                 `json:"characterName" bson:"characterName"`
	RollData      map[string]interface{} `json:"rollData" bson:"rollData"`
	Timestamp     string                 `json:"timestamp" bson:"timestamp"`
}
