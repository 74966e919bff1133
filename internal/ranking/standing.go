package ranking

import "time"

// Medal is the score tier of a ranking entry.
type Medal string

const (
	MedalGold          Medal = "gold"
	MedalSilver        Medal = "silver"
	MedalBronze        Medal = "bronze"
	MedalParticipation Medal = "participation"
)

// Badge highlights how a game was played.
type Badge string

const (
	BadgeStrategist Badge = "strategist" // many combos
	BadgeQuick      Badge = "quick"      // some combos
	BadgeLightning  Badge = "lightning"  // finished within a minute
	BadgeEnduring   Badge = "enduring"
)

// Score and combo thresholds, inclusive.
const (
	goldScore       = 3000
	silverScore     = 2000
	bronzeScore     = 1000
	strategistCombo = 12
	quickCombo      = 6
	lightningTime   = time.Minute
)

// Standing is the classification shown next to a ranking entry.
type Standing struct {
	Medal Medal
	Badge Badge
}

// Classify returns the medal and badge earned by r.
func Classify(r Record) Standing {
	return Standing{Medal: medalFor(r.Score), Badge: badgeFor(r)}
}

func medalFor(score int) Medal {
	switch {
	case score >= goldScore:
		return MedalGold
	case score >= silverScore:
		return MedalSilver
	case score >= bronzeScore:
		return MedalBronze
	default:
		return MedalParticipation
	}
}

func badgeFor(r Record) Badge {
	switch {
	case r.Combos >= strategistCombo:
		return BadgeStrategist
	case r.Combos >= quickCombo:
		return BadgeQuick
	}
	if d, ok := ParseElapsed(r.ElapsedTime); ok && d <= lightningTime {
		return BadgeLightning
	}
	return BadgeEnduring
}

// Symbol returns a short terminal marker for the medal.
func (m Medal) Symbol() string {
	switch m {
	case MedalGold:
		return "★"
	case MedalSilver:
		return "☆"
	case MedalBronze:
		return "◆"
	default:
		return "·"
	}
}
