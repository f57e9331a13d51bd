package config

import "fmt"

// DifficultyPreset selects a round length.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// presetSeconds maps each preset to its round length.
var presetSeconds = map[DifficultyPreset]int{
	DifficultyEasy:   20,
	DifficultyNormal: 10,
	DifficultyHard:   5,
}

// ParsePreset converts a CLI value to a preset. The empty string means
// "keep the config file's value" and returns an empty preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return "", nil
	}
	p := DifficultyPreset(s)
	if _, ok := presetSeconds[p]; !ok {
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
	return p, nil
}

// ApplyPreset sets the round length for a difficulty preset.
// An empty or unknown preset leaves the config unchanged.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	if seconds, ok := presetSeconds[preset]; ok {
		cfg.Countdown.InitialSeconds = seconds
	}
}
