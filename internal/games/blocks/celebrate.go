package blocks

import "math/rand"

// celebrations holds the banner phrases per number of rows cleared at once.
var celebrations = map[int][]string{
	1: {"Clean line!", "The party starts!", "Stylish stroke!", "Gem of a move."},
	2: {"Double clear!", "Smooth combo!", "Sharp cut!", "Fortress rising!"},
	3: {"Brutal triple!", "Arcade triple!", "Tactical play!", "Free-falling bricks!"},
	4: {"Legendary four!", "Four in one blow!", "Galactic combo!", "Master of blocks!"},
}

const fallbackCelebration = "Nice play!"

// celebration picks a banner phrase for a clear of count rows.
func celebration(count int, rng *rand.Rand) string {
	phrases := celebrations[count]
	if len(phrases) == 0 {
		return fallbackCelebration
	}
	if rng == nil {
		return phrases[0]
	}
	return phrases[rng.Intn(len(phrases))]
}
