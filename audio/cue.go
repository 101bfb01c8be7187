package audio

import "github.com/milk9111/downtoearth/ecs"

// Cue is a short sound effect.
type Cue int

const (
	CueShot        Cue = iota // player gun
	CueEnemyShot              // enemy direct or radial fire
	CueBeamWarning            // lingering beam locks on
	CueBeamFire               // lingering beam fires
	CueHit                    // projectile hit
	CueContact                // body collision
	CueExplosion              // enemy destroyed
	CueGameOver               // player destroyed
	cueCount
)

var cueNames = [...]string{"shot", "enemy_shot", "beam_warning", "beam_fire", "hit", "contact", "explosion", "game_over"}

func (c Cue) String() string {
	if c < 0 || c >= cueCount {
		return "unknown"
	}
	return cueNames[c]
}

// CueFor maps a frame event to its sound.
func CueFor(t ecs.EventType) (Cue, bool) {
	switch t {
	case ecs.EventPlayerFired:
		return CueShot, true
	case ecs.EventEnemyFired:
		return CueEnemyShot, true
	case ecs.EventBeamWarning:
		return CueBeamWarning, true
	case ecs.EventBeamFired:
		return CueBeamFire, true
	case ecs.EventProjectileHit:
		return CueHit, true
	case ecs.EventContactDamage:
		return CueContact, true
	case ecs.EventEntityDied:
		return CueExplosion, true
	case ecs.EventPlayerDied:
		return CueGameOver, true
	}
	return 0, false
}

// Cues returns the distinct cues for a frame's events in first-seen order.
// A burst of twelve shots is one sound, not twelve.
func Cues(events []ecs.Event) []Cue {
	var seen [cueCount]bool
	var out []Cue
	for _, e := range events {
		c, ok := CueFor(e.Type)
		if !ok || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
