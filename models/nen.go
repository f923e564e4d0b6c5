package models

import "github.com/google/uuid"

type BasicTechniques struct {
	Ten   string `json:"ten" bson:"ten"`
	Ren   string `json:"ren" bson:"ren"`
	Zetsu string `json:"zetsu" bson:"zetsu"`
}

// Hatsu is a custom Nen ability created by the player.
type Hatsu struct {
	ID          string `json:"id" bson:"id"`
	Name        string `json:"name" bson:"name"`
	Type        string `json:"type" bson:"type"`
	Category    string `json:"category" bson:"category"`
	Range       string `json:"range" bson:"range"`
	Cost        int    `json:"cost" bson:"cost"`
	Duration    string `json:"duration" bson:"duration"`
	Target      string `json:"target" bson:"target"`
	Execution   string `json:"execution" bson:"execution"`
	Description string `json:"description" bson:"description"`
}

type NenSystem struct {
	HatsuType          string          `json:"hatsuType" bson:"hatsuType"`
	BasicTechniques    BasicTechniques `json:"basicTechniques" bson:"basicTechniques"`
	AdvancedTechniques map[string]bool `json:"advancedTechniques" bson:"advancedTechniques"`
	Hatsus             []Hatsu         `json:"hatsus" bson:"hatsus"`
}

func NewHatsu() Hatsu {
	return Hatsu{ID: uuid.NewString(), Category: "Base"}
}

// DefaultNenSystem starts every basic technique at Amador and every
// advanced technique locked.
func DefaultNenSystem() NenSystem {
	return NenSystem{
		BasicTechniques: BasicTechniques{Ten: "Amador", Ren: "Amador", Zetsu: "Amador"},
		AdvancedTechniques: map[string]bool{
			"Gyô - Percepção": false,
			"Gyô - Ataque":    false,
			"Gyô - Defesa":    false,
			"In":              false,
			"En":              false,
			"Shu":             false,
			"Ken":             false,
		},
		Hatsus: []Hatsu{},
	}
}
