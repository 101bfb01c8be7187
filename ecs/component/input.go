package component

// Intent is the raw per-frame input sampled by a frontend.
type Intent struct {
	Up, Down, Left, Right bool
	Fire                  bool
	ToggleMode            bool

	// AimX/AimY pick an 8-way facing in Ground mode; each is -1, 0 or 1.
	AimX, AimY int

	// HasAim with AimAngle overrides every other aiming rule.
	HasAim   bool
	AimAngle float64
}

// Move returns the raw movement direction, each axis in [-1, 1].
func (i Intent) Move() (x, y float64) {
	if i.Left {
		x--
	}
	if i.Right {
		x++
	}
	if i.Up {
		y--
	}
	if i.Down {
		y++
	}
	return x, y
}

var InputComponent = NewComponent[Intent]()
