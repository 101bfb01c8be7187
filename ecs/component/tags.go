package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

// EnemyTag marks hostiles and records which archetype built them.
type EnemyTag struct {
	Archetype string
}

var EnemyTagComponent = NewComponent[EnemyTag]()
