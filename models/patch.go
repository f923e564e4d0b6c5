package models

import "go.mongodb.org/mongo-driver/bson"

// Patch types are the allow-listed update payloads for the PUT endpoints.
// Only fields present in the request body are merged into the stored
// document; everything else is left untouched. Fields like id, createdAt,
// inviteCode and the membership lists are deliberately absent so a generic
// update can never corrupt them.

type CharacterPatch struct {
	UserID       *string                       `json:"userId,omitempty"`
	Name         *string                       `json:"name,omitempty"`
	Level        *int                          `json:"level,omitempty"`
	Origin       *string                       `json:"origin,omitempty"`
	Classes      *[]string                     `json:"classes,omitempty"`
	CustomClass  *string                       `json:"customClass,omitempty"`
	Attributes   *Attributes                   `json:"attributes,omitempty"`
	Resources    *CharacterResources           `json:"resources,omitempty"`
	Skills       *map[string]int               `json:"skills,omitempty"`
	Factions     *map[string]FactionReputation `json:"factions,omitempty"`
	Nen          *NenSystem                    `json:"nen,omitempty"`
	Weapons      *[]Weapon                     `json:"weapons,omitempty"`
	Inventory    *[]InventoryItem              `json:"inventory,omitempty"`
	Lore         *Lore                         `json:"lore,omitempty"`
	ClassAbility *string                       `json:"classAbility,omitempty"`
	Beasts       *[]Beast                      `json:"beasts,omitempty"`
}

func (p CharacterPatch) Updates() bson.M {
	set := bson.M{}
	setIf(set, "userId", p.UserID)
	setIf(set, "name", p.Name)
	setIf(set, "level", p.Level)
	setIf(set, "origin", p.Origin)
	setIf(set, "classes", p.Classes)
	setIf(set, "customClass", p.CustomClass)
	setIf(set, "attributes", p.Attributes)
	setIf(set, "resources", p.Resources)
	setIf(set, "skills", p.Skills)
	setIf(set, "factions", p.Factions)
	setIf(set, "nen", p.Nen)
	setIf(set, "weapons", p.Weapons)
	setIf(set, "inventory", p.Inventory)
	setIf(set, "lore", p.Lore)
	setIf(set, "classAbility", p.ClassAbility)
	setIf(set, "beasts", p.Beasts)
	return set
}

type ThreatPatch struct {
	Name             *string             `json:"name,omitempty"`
	Resources        *CharacterResources `json:"resources,omitempty"`
	Attributes       *Attributes         `json:"attributes,omitempty"`
	Skills           *map[string]int     `json:"skills,omitempty"`
	DueloAttribute   *string             `json:"dueloAttribute,omitempty"`
	Nen              *NenSystem          `json:"nen,omitempty"`
	Combat           *ThreatCombat       `json:"combat,omitempty"`
	GeneralAbilities *string             `json:"generalAbilities,omitempty"`
}

func (p ThreatPatch) Updates() bson.M {
	set := bson.M{}
	setIf(set, "name", p.Name)
	setIf(set, "resources", p.Resources)
	setIf(set, "attributes", p.Attributes)
	setIf(set, "skills", p.Skills)
	setIf(set, "dueloAttribute", p.DueloAttribute)
	setIf(set, "nen", p.Nen)
	setIf(set, "combat", p.Combat)
	setIf(set, "generalAbilities", p.GeneralAbilities)
	return set
}

type CampaignPatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	MasterName  *string `json:"masterName,omitempty"`
	MasterEmail *string `json:"masterEmail,omitempty"`
}

func (p CampaignPatch) Updates() bson.M {
	set := bson.M{}
	setIf(set, "name", p.Name)
	setIf(set, "description", p.Description)
	setIf(set, "masterName", p.MasterName)
	setIf(set, "masterEmail", p.MasterEmail)
	return set
}

func setIf[T any](set bson.M, key string, v *T) {
	if v != nil {
		set[key] = *v
	}
}
