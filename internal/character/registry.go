// Package character is the registry of available character operators.
package character

import (
	"fmt"

	"github.com/sant0-9/mien/internal/character/endora"
	"github.com/sant0-9/mien/internal/operator"
)

// Info describes one registered character.
type Info struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Type          string `json:"type"`
	Source        string `json:"source"`
	CoreWorldview string `json:"core_worldview"`
	Available     bool   `json:"available"`
	Status        string `json:"status,omitempty"`
}

// Characters lists all registered characters in presentation order.
var Characters = []Info{
	{
		ID:            "endora",
		Name:          "Endora",
		Type:          "sitcom_character",
		Source:        "Bewitched (1960s-70s)",
		CoreWorldview: "Aristocratic supernatural authority",
		Available:     true,
	},
	{
		ID:            "mork",
		Name:          "Mork",
		Type:          "sitcom_character",
		Source:        "Mork & Mindy (1970s-80s)",
		CoreWorldview: "Alien absurdist sincerity",
		Available:     false,
		Status:        "planned",
	},
}

// GetInfo returns registry info for a character ID, or nil if unknown.
func GetInfo(id string) *Info {
	for _, c := range Characters {
		if c.ID == id {
			return &c
		}
	}
	return nil
}

// New constructs the operator implementation for a character ID.
func New(id string) (operator.Character, error) {
	info := GetInfo(id)
	if info == nil {
		return nil, fmt.Errorf("unknown character %q", id)
	}
	if !info.Available {
		return nil, fmt.Errorf("character %q is not yet available (status: %s)", id, info.Status)
	}

	switch id {
	case "endora":
		return endora.New()
	default:
		return nil, fmt.Errorf("character %q has no operator implementation", id)
	}
}
