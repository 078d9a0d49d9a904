package game

import "math"

// aimIterations bounds the refinement of the intercept time
const aimIterations = 5

// PredictiveAim returns the point where a projectile fired from shooter at projectileSpeed
// meets a target moving with constant velocity targetVel.
func PredictiveAim(shooter, target, targetVel Vec2, projectileSpeed float64) Vec2 {
	// Stationary target
	if math.Abs(targetVel.X) < 0.1 && math.Abs(targetVel.Y) < 0.1 {
		return target
	}

	distance := shooter.Distance(target)
	if distance < 1.0 || projectileSpeed <= 0 {
		return target
	}

	// Solve |target + vel*t - shooter| = speed*t by fixed-point iteration
	t := distance / projectileSpeed
	for i := 0; i < aimIterations; i++ {
		predicted := target.Add(targetVel.Scale(t))
		newT := shooter.Distance(predicted) / projectileSpeed
		if math.Abs(newT-t) < 0.001 {
			break
		}
		t = newT
	}

	return target.Add(targetVel.Scale(t))
}
