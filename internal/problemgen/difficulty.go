package problemgen

import "fmt"

// Difficulty names a preset coordinate profile.
type Difficulty string

const (
	// DifficultyEasy keeps every coordinate in the first quadrant.
	DifficultyEasy Difficulty = "easy"

	// DifficultyMedium spans all four quadrants on a smaller grid.
	DifficultyMedium Difficulty = "medium"

	// DifficultyHard spans all four quadrants on the full grid.
	DifficultyHard Difficulty = "hard"
)

// Difficulties lists the presets in ascending order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ParseDifficulty resolves a difficulty from CLI/config input.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return Difficulty(s), nil
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, medium, or hard)", s)
}

// Profile bounds problem generation for one difficulty. Range is the
// display bound of the grid; MinCoord and MaxCoord bound generated
// coordinates on both axes. The coordinate bounds never exceed Range,
// so every generated point is drawable.
type Profile struct {
	Range    int
	MinCoord int
	MaxCoord int
}

var profiles = map[Difficulty]Profile{
	DifficultyEasy:   {Range: 5, MinCoord: 0, MaxCoord: 5},
	DifficultyMedium: {Range: 6, MinCoord: -6, MaxCoord: 6},
	DifficultyHard:   {Range: 10, MinCoord: -10, MaxCoord: 10},
}

// ProfileFor returns the preset profile for a difficulty. Unknown
// difficulties fall back to medium; parsing at the flag boundary keeps
// that path unreachable in practice.
func ProfileFor(d Difficulty) Profile {
	if p, ok := profiles[d]; ok {
		return p
	}
	return profiles[DifficultyMedium]
}
