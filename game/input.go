package game

// MoveIntent is the directional input for one tick
type MoveIntent struct {
	Up, Down, Left, Right bool
}

// Vector converts the intent into a unit (or zero) direction. Diagonals are normalized.
func (m MoveIntent) Vector() Vec2 {
	var v Vec2
	if m.Up {
		v.Y--
	}
	if m.Down {
		v.Y++
	}
	if m.Left {
		v.X--
	}
	if m.Right {
		v.X++
	}
	return v.Normalize()
}

// InputSource is queried once per tick for the local player's movement
type InputSource interface {
	Intent() MoveIntent
}

// StaticInput always returns the same intent. Used by tests and the headless runner.
type StaticInput struct {
	Move MoveIntent
}

func (s *StaticInput) Intent() MoveIntent {
	return s.Move
}
