package component

import core "github.com/milk9111/downtoearth/component"

var HealthComponent = NewComponent[core.Health]()
