package component

import "image/color"

// Appearance is how frontends draw an entity. Radius is the drawn size, not
// the hurtbox.
type Appearance struct {
	Color  color.NRGBA
	Radius float64
}

var AppearanceComponent = NewComponent[Appearance]()
