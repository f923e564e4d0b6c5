package models

import "github.com/google/uuid"

type BeastAbility struct {
	ID          string `json:"id" bson:"id"`
	Name        string `json:"name" bson:"name"`
	Cost        int    `json:"cost" bson:"cost"`
	Description string `json:"description" bson:"description"`
}

type BeastActions struct {
	Attack string `json:"attack" bson:"attack"`
	Heal   string `json:"heal" bson:"heal"`
}

type BeastResources struct {
	PV ResourceValue `json:"pv" bson:"pv"`
	// PE only exists for wild beasts
	PE          *ResourceValue `json:"pe,omitempty" bson:"pe,omitempty"`
	Resistances Resistances    `json:"resistances" bson:"resistances"`
}

// Beast is a companion creature owned by a character, either a tamed wild
// beast or a Nen beast.
type Beast struct {
	ID         string         `json:"id" bson:"id"`
	Type       string         `json:"type" bson:"type"`
	Name       string         `json:"name" bson:"name"`
	Attributes Attributes     `json:"attributes" bson:"attributes"`
	Resources  BeastResources `json:"resources" bson:"resources"`
	Skills     map[string]int `json:"skills" bson:"skills"`
	Actions    BeastActions   `json:"actions" bson:"actions"`
	Abilities  []BeastAbility `json:"abilities" bson:"abilities"`
}

func NewBeast() Beast {
	return Beast{
		ID:         uuid.NewString(),
		Type:       "wild",
		Attributes: DefaultAttributes(),
		Resources:  BeastResources{PV: DefaultResourceValue()},
		Skills:     map[string]int{},
		Actions:    BeastActions{Attack: "1d6", Heal: "1d4"},
		Abilities:  []BeastAbility{},
	}
}
