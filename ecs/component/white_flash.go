package component

// WhiteFlash makes an entity render as full white while active. It is added
// when the entity takes damage and decays in real time.
type WhiteFlash struct {
	// Remaining seconds of the whole effect
	Remaining float64
	// Interval in seconds between toggles of the white-on state
	Interval float64
	// internal timer counting toward the next toggle
	Timer float64
	// On determines whether the entity should currently be drawn white
	On bool
}

// HitFlashDuration and HitFlashInterval are the flash applied on damage.
const (
	HitFlashDuration = 0.3
	HitFlashInterval = 0.05
)

var WhiteFlashComponent = NewComponent[WhiteFlash]()
