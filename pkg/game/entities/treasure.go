package entities

import (
	"math/rand"
)

// Treasure is a collected valuable. Heart marks the unique diamond.
type Treasure struct {
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"value" yaml:"value"`
	Heart bool   `json:"heart,omitempty" yaml:"heart,omitempty"`
}

// TreasureCatalogue lists what a treasure room can hold. Names are gotext keys.
var TreasureCatalogue = []Treasure{
	{Name: "TREASURE_GOLD_COINS", Value: 50},
	{Name: "TREASURE_SILVER_CHALICE", Value: 75},
	{Name: "TREASURE_BRONZE_HELM", Value: 40},
	{Name: "TREASURE_JADE_FIGURINE", Value: 120},
	{Name: "TREASURE_RUBY_RING", Value: 150},
}

// HeartOfTheMinotaur is found on the diamond cell.
var HeartOfTheMinotaur = Treasure{Name: "TREASURE_HEART", Value: 500, Heart: true}

// RandomTreasure picks a catalogue entry
func RandomTreasure(r *rand.Rand) Treasure {
	return TreasureCatalogue[r.Intn(len(TreasureCatalogue))]
}
