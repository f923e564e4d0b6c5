package models

// ResourceValue is a current/max pair used for PV and PA pools.
type ResourceValue struct {
	Current int `json:"current" bson:"current"`
	Max     int `json:"max" bson:"max"`
}

type Resistances struct {
	Cortante   int `json:"cortante" bson:"cortante"`
	Perfurante int `json:"perfurante" bson:"perfurante"`
	Impacto    int `json:"impacto" bson:"impacto"`
	Elemental  int `json:"elemental" bson:"elemental"`
}

type CharacterResources struct {
	PV          ResourceValue `json:"pv" bson:"pv"`
	PA          ResourceValue `json:"pa" bson:"pa"`
	Defense     int           `json:"defense" bson:"defense"`
	Resistances Resistances   `json:"resistances" bson:"resistances"`
}

type Attributes struct {
	FOR int `json:"FOR" bson:"FOR"`
	VIG int `json:"VIG" bson:"VIG"`
	DEX int `json:"DEX" bson:"DEX"`
	INT int `json:"INT" bson:"INT"`
	CAR int `json:"CAR" bson:"CAR"`
}

type FactionReputation struct {
	Value int    `json:"value" bson:"value"`
	Notes string `json:"notes" bson:"notes"`
}

// DefaultResourceValue starts both pools at 10/10.
func DefaultResourceValue() ResourceValue {
	return ResourceValue{Current: 10, Max: 10}
}

func DefaultCharacterResources() CharacterResources {
	return CharacterResources{
		PV:      DefaultResourceValue(),
		PA:      DefaultResourceValue(),
		Defense: 10,
	}
}

func DefaultAttributes() Attributes {
	return Attributes{FOR: 1, VIG: 1, DEX: 1, INT: 1, CAR: 1}
}
