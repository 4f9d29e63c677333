package entities

import (
	"errors"
	"strings"
)

var ErrUnknownZone = errors.New("unknown zone")

// Zone is a delivery zone with its fractional surcharge over base price plus modifiers.
type Zone struct {
	Name      string  `json:"name"`
	Surcharge float64 `json:"surcharge"`
}

const (
	ZoneNorte   = "Zona Norte"
	ZoneCentral = "Zona Central"
	ZoneSur     = "Zona Sur"
	ZoneAustral = "Zona Austral"
)

var zones = []Zone{
	{Name: ZoneNorte, Surcharge: 0.10},
	{Name: ZoneCentral, Surcharge: 0},
	{Name: ZoneSur, Surcharge: 0.05},
	{Name: ZoneAustral, Surcharge: 0.15},
}

// Zones lists the delivery zones in north-to-south order.
func Zones() []Zone {
	out := make([]Zone, len(zones))
	copy(out, zones)
	return out
}

// LookupZone matches names case-insensitively and ignores surrounding spaces.
// "austral" and "Zona Austral" both resolve to the same zone.
func LookupZone(name string) (Zone, error) {
	n := strings.ToLower(strings.Join(strings.Fields(name), " "))
	if n == "" {
		return Zone{}, ErrUnknownZone
	}
	for _, z := range zones {
		full := strings.ToLower(z.Name)
		if n == full || "zona "+n == full {
			return z, nil
		}
	}
	return Zone{}, ErrUnknownZone
}
