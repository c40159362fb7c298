// internal/defs/types.go
package defs

// UpgradeTrack names one of the independent tower upgrade lines.
type UpgradeTrack string

const (
	UpgradeRange    UpgradeTrack = "range"
	UpgradePower    UpgradeTrack = "power"
	UpgradeAccuracy UpgradeTrack = "accuracy"
	UpgradeFireRate UpgradeTrack = "fire_rate"
)

// AllTracks lists the upgrade tracks in menu order.
var AllTracks = []UpgradeTrack{UpgradeRange, UpgradePower, UpgradeAccuracy, UpgradeFireRate}

// Label returns the short menu caption of a track.
func (t UpgradeTrack) Label() string {
	switch t {
	case UpgradeRange:
		return "Range"
	case UpgradePower:
		return "Strength"
	case UpgradeAccuracy:
		return "Accuracy"
	case UpgradeFireRate:
		return "Speed"
	default:
		return string(t)
	}
}

// Valid reports whether t is one of AllTracks.
func (t UpgradeTrack) Valid() bool {
	for _, known := range AllTracks {
		if t == known {
			return true
		}
	}
	return false
}
