package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// Expr is a number written either literally or as a tengo expression over the
// playfield size, e.g. "width * 0.85".
type Expr string

func (e *Expr) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expression must be a scalar", value.Line)
	}
	*e = Expr(strings.TrimSpace(value.Value))
	return nil
}

type PointSpec struct {
	X Expr `yaml:"x"`
	Y Expr `yaml:"y"`
}

type HurtboxSpec struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
}

type GunSpec struct {
	FireRate        float64 `yaml:"fire_rate"`
	ProjectileSpeed float64 `yaml:"projectile_speed"`
	Offset          float64 `yaml:"offset"`
}

type PlayerSpec struct {
	Name    string      `yaml:"name"`
	Speed   float64     `yaml:"speed"`
	Radius  float64     `yaml:"radius"`
	Health  int         `yaml:"health"`
	Mode    string      `yaml:"mode"`
	Hurtbox HurtboxSpec `yaml:"hurtbox"`
	Gun     GunSpec     `yaml:"gun"`
	Color   YAMLColor   `yaml:"color"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// PatternSpec configures one firing strategy. Kind is "direct", "radial",
// "beam" or "none"; only the fields of that kind are read.
type PatternSpec struct {
	Kind            string  `yaml:"kind"`
	FireRate        float64 `yaml:"fire_rate"`
	ProjectileSpeed float64 `yaml:"projectile_speed"`
	ActiveRadius    float64 `yaml:"active_radius"`
	Always          bool    `yaml:"always"`
	Count           int     `yaml:"count"`
	Interval        float64 `yaml:"interval"`
	Warning         float64 `yaml:"warning"`
	Duration        float64 `yaml:"duration"`
}

type WanderSpec struct {
	MinInterval float64   `yaml:"min_interval"`
	MaxInterval float64   `yaml:"max_interval"`
	Spread      float64   `yaml:"spread_degrees"`
	Goal        PointSpec `yaml:"goal"`
}

type EnemySpec struct {
	Name    string       `yaml:"name"`
	Speed   float64      `yaml:"speed"`
	Health  int          `yaml:"health"`
	Hurtbox HurtboxSpec  `yaml:"hurtbox"`
	Pattern *PatternSpec `yaml:"pattern"`
	Wander  WanderSpec   `yaml:"wander"`
	Color   YAMLColor    `yaml:"color"`
}

type ArchetypeSpec struct {
	Enemies []EnemySpec `yaml:"enemies"`
}

// LoadArchetypes reads enemies.yaml keyed by archetype name.
func LoadArchetypes() (map[string]EnemySpec, error) {
	spec, err := LoadSpec[ArchetypeSpec]("enemies.yaml")
	if err != nil {
		return nil, err
	}
	out := make(map[string]EnemySpec, len(spec.Enemies))
	for _, e := range spec.Enemies {
		if _, dup := out[e.Name]; dup {
			return nil, fmt.Errorf("prefabs: enemies.yaml: duplicate archetype %q", e.Name)
		}
		out[e.Name] = e
	}
	return out, nil
}

// RouteSpec is a patrol route. Waypoints come from Points, or from a tengo
// script in scripts/ that assigns a `points` array of [x, y] pairs.
type RouteSpec struct {
	Speed  float64         `yaml:"speed"`
	Loop   bool            `yaml:"loop"`
	Points []PointSpec     `yaml:"points"`
	Script string          `yaml:"script"`
	Params map[string]Expr `yaml:"params"`
}

type SpawnSpec struct {
	Archetype string       `yaml:"archetype"`
	At        PointSpec    `yaml:"at"`
	Route     string       `yaml:"route"`
	Speed     float64      `yaml:"speed"`
	Pattern   *PatternSpec `yaml:"pattern"`
}

type PlayerSpawnSpec struct {
	Prefab string    `yaml:"prefab"`
	At     PointSpec `yaml:"at"`
}

type StageSpec struct {
	Name   string               `yaml:"name"`
	Width  float64              `yaml:"width"`
	Height float64              `yaml:"height"`
	Seed   uint64               `yaml:"seed"`
	Player PlayerSpawnSpec      `yaml:"player"`
	Routes map[string]RouteSpec `yaml:"routes"`
	Spawns []SpawnSpec          `yaml:"spawns"`
}

func LoadStageSpec(name string) (*StageSpec, error) {
	file := name
	if !isSpecFile(file) {
		file += ".yaml"
	}
	spec, err := LoadSpec[StageSpec](file)
	if err != nil {
		return nil, err
	}
	if spec.Name == "" {
		spec.Name = strings.TrimSuffix(file, ".yaml")
	}
	return &spec, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// Or returns the configured colour, or fallback when none was set.
func (c YAMLColor) Or(fallback color.NRGBA) color.NRGBA {
	if c.Color == nil {
		return fallback
	}
	return color.NRGBAModel.Convert(c.Color).(color.NRGBA)
}
