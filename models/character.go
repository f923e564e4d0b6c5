package models

import (
	"time"

	"github.com/google/uuid"
)

type Weapon struct {
	ID         string `json:"id" bson:"id"`
	Name       string `json:"name" bson:"name"`
	DamageType string `json:"damageType" bson:"damageType"`
	Damage     string `json:"damage" bson:"damage"`
	Critical   string `json:"critical" bson:"critical"`
}

type InventoryItem struct {
	ID      string  `json:"id" bson:"id"`
	Name    string  `json:"name" bson:"name"`
	Details string  `json:"details" bson:"details"`
	Weight  float64 `json:"weight" bson:"weight"`
}

type Lore struct {
	OriginAbility string `json:"originAbility" bson:"originAbility"`
	History       string `json:"history" bson:"history"`
	Personality   string `json:"personality" bson:"personality"`
	Appearance    string `json:"appearance" bson:"appearance"`
	Objectives    string `json:"objectives" bson:"objectives"`
	Notes         string `json:"notes" bson:"notes"`
}

type Character struct {
	ID        string `json:"id" bson:"id"`
	CreatedAt string `json:"createdAt" bson:"createdAt"`
	UpdatedAt string `json:"updatedAt" bson:"updatedAt"`
	UserID    string `json:"userId" bson:"userId"`

	// identification
	Name        string   `json:"name" bson:"name"`
	Level       int      `json:"level" bson:"level"`
	Origin      string   `json:"origin" bson:"origin"`
	Classes     []string `json:"classes" bson:"classes"`
	CustomClass string   `json:"customClass" bson:"customClass"`

	// stats
	Attributes Attributes         `json:"attributes" bson:"attributes"`
	Resources  CharacterResources `json:"resources" bson:"resources"`
	Skills     map[string]int     `json:"skills" bson:"skills"`

	Factions map[string]FactionReputation `json:"factions" bson:"factions"`

	Nen NenSystem `json:"nen" bson:"nen"`

	// equipment
	Weapons   []Weapon        `json:"weapons" bson:"weapons"`
	Inventory []InventoryItem `json:"inventory" bson:"inventory"`

	// lore
	Lore         Lore   `json:"lore" bson:"lore"`
	ClassAbility string `json:"classAbility" bson:"classAbility"`

	Beasts []Beast `json:"beasts" bson:"beasts"`
}

// Timestamp formats the current UTC time the way documents store it.
// Fixed-width microseconds keep the strings lexicographically sortable,
// which the roll history endpoints rely on.
func Timestamp() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000000Z07:00")
}

// NewCharacter builds a structurally complete character sheet: every nested
// block is initialized so the stored document never has missing sub-structures.
func NewCharacter(name, userID string) Character {
	now := Timestamp()
	return Character{
		ID:         uuid.NewString(),
		CreatedAt:  now,
		UpdatedAt:  now,
		UserID:     userID,
		Name:       name,
		Level:      1,
		Classes:    []string{},
		Attributes: DefaultAttributes(),
		Resources:  DefaultCharacterResources(),
		Skills:     DefaultSkills(),
		Factions:   DefaultFactions(),
		Nen:        DefaultNenSystem(),
		Weapons:    []Weapon{},
		Inventory:  []InventoryItem{},
		Beasts:     []Beast{},
	}
}

// DefaultSkills is the fixed skill list every new character starts with.
func DefaultSkills() map[string]int {
	return map[string]int{
		"Atletismo": 0, "Duelo": 0, "Robustez": 0, "Resistência": 0,
		"Furtividade": 0, "Acrobacia": 0, "Reflexos": 0, "Pontaria": 0, "Roubo": 0,
		"Caça": 0, "Investigação": 0, "Medicina": 0, "Profissão": 0, "Astúcia": 0,
		"Persuasão": 0, "Intimidação": 0, "Vontade": 0, "Intuição": 0, "Tenacidade": 0,
		"Controle de Nen": 0,
	}
}

// DefaultFactions is the fixed reputation sheet every new character starts with.
func DefaultFactions() map[string]FactionReputation {
	factions := []string{
		"hunter_association",
		"phantom_troupe",
		"zoldyck_family",
		"mafia",
		"world_government",
		"chimera_ants",
		"kurta_clan",
		"ninja_clans",
		"nen_community",
		"specific_kingdoms",
	}

	out := make(map[string]FactionReputation, len(factions))
	for _, f := range factions {
		out[f] = FactionReputation{}
	}
	return out
}
