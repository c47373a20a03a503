package service

import "gameverse-api/internal/domain"

// CalculatePoints maps (game, placement, kills) to points:
// max(0, 25-placement) + kills. The game parameter is accepted for a future
// per-game scoring table but every title currently scores identically.
// Inputs are validated upstream (placement >= 1, kills >= 0).
func CalculatePoints(game domain.Game, placement, kills int) int {
	placementPoints := 25 - placement
	if placementPoints < 0 {
		placementPoints = 0
	}
	return placementPoints + kills
}
