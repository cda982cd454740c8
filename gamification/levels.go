package gamification

import "fin-arcade-api/models"

// XP thresholds per level. Each threshold is an inclusive lower bound.
var LevelThresholds = map[models.Level]int{
	models.LevelBeginner:     0,
	models.LevelIntermediate: 1000,
	models.LevelAdvanced:     3000,
	models.LevelExpert:       7000,
}

var levelOrder = []models.Level{
	models.LevelBeginner,
	models.LevelIntermediate,
	models.LevelAdvanced,
	models.LevelExpert,
}

// expertSpan is the normalization range used above the top threshold, since
// there is no higher level to interpolate toward.
const expertSpan = 1000

// LevelFromXP returns the highest level whose threshold is at or below xp.
func LevelFromXP(xp int) models.Level {
	if xp >= LevelThresholds[models.LevelExpert] {
		return models.LevelExpert
	}
	if xp >= LevelThresholds[models.LevelAdvanced] {
		return models.LevelAdvanced
	}
	if xp >= LevelThresholds[models.LevelIntermediate] {
		return models.LevelIntermediate
	}
	return models.LevelBeginner
}

// XPForNextLevel returns the XP still needed to reach the next threshold,
// or 0 at the top level.
func XPForNextLevel(xp int) int {
	current := LevelFromXP(xp)
	for i, level := range levelOrder {
		if level == current {
			if i == len(levelOrder)-1 {
				return 0
			}
			return LevelThresholds[levelOrder[i+1]] - xp
		}
	}
	return 0
}

// ProgressToNextLevel returns how far xp has advanced between the current
// level's threshold and the next, as a percentage clamped to [0,100].
func ProgressToNextLevel(xp int) float64 {
	current := LevelFromXP(xp)
	currentThreshold := LevelThresholds[current]

	nextThreshold := currentThreshold + expertSpan
	for i, level := range levelOrder {
		if level == current && i < len(levelOrder)-1 {
			nextThreshold = LevelThresholds[levelOrder[i+1]]
			break
		}
	}

	progress := float64(xp-currentThreshold) / float64(nextThreshold-currentThreshold) * 100
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}
