// Package scene loads scene descriptions and turns them into live objects
// bound to a physics backend.
package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"DreamVilla/internal/physics"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

const DefaultFixedStep = 1.0 / 60

// Description is the on-disk form of a scene
type Description struct {
	Physics PhysicsData  `json:"physics" yaml:"physics"`
	Objects []ObjectData `json:"objects" yaml:"objects"`
}

type PhysicsData struct {
	Backend   string     `json:"backend" yaml:"backend"`
	Gravity   [3]float32 `json:"gravity" yaml:"gravity"`
	FixedStep float32    `json:"fixedStep" yaml:"fixedStep"`
}

type ObjectData struct {
	Name       string          `json:"name" yaml:"name"`
	Tag        string          `json:"tag" yaml:"tag"`
	Active     *bool           `json:"active,omitempty" yaml:"active,omitempty"`
	Position   [3]float32      `json:"position" yaml:"position"`
	Material   MaterialData    `json:"material" yaml:"material"`
	PickRadius float32         `json:"pickRadius,omitempty" yaml:"pickRadius,omitempty"`
	Body       *BodyData       `json:"body,omitempty" yaml:"body,omitempty"`
	Components []ComponentData `json:"components" yaml:"components"`
}

type MaterialData struct {
	Color string `json:"color" yaml:"color"`
}

type BodyData struct {
	Mass           float32 `json:"mass" yaml:"mass"`
	Radius         float32 `json:"radius" yaml:"radius"`
	LinearDamping  float32 `json:"linearDamping" yaml:"linearDamping"`
	AngularDamping float32 `json:"angularDamping" yaml:"angularDamping"`
}

type ComponentData struct {
	Type  string         `json:"type" yaml:"type"`
	Props map[string]any `json:"props" yaml:"props"`
}

func (d BodyData) spec(pos mgl32.Vec3) physics.BodySpec {
	return physics.BodySpec{
		Position:       pos,
		Mass:           d.Mass,
		Radius:         d.Radius,
		LinearDamping:  d.LinearDamping,
		AngularDamping: d.AngularDamping,
	}
}

// IsSceneFile reports whether path has an extension Load understands
func IsSceneFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}

// Load reads and validates a scene file. JSON is decoded by the YAML decoder,
// which accepts it as a subset.
func Load(path string) (*Description, error) {
	if !IsSceneFile(path) {
		return nil, fmt.Errorf("unsupported scene file %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}
	desc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return desc, nil
}

func Parse(data []byte) (*Description, error) {
	var desc Description
	if err := yaml.Unmarshal(data, &desc); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	desc.applyDefaults()
	if err := desc.Validate(); err != nil {
		return nil, err
	}
	return &desc, nil
}

func (d *Description) applyDefaults() {
	if d.Physics.FixedStep == 0 {
		d.Physics.FixedStep = DefaultFixedStep
	}
	if d.Physics.Backend == "" {
		d.Physics.Backend = physics.BackendRigid
	}
}

func (d *Description) Validate() error {
	switch d.Physics.Backend {
	case physics.BackendRigid, physics.BackendPlanar:
	default:
		return fmt.Errorf("unknown physics backend %q", d.Physics.Backend)
	}
	if d.Physics.FixedStep < 0 {
		return fmt.Errorf("fixedStep must be positive, got %v", d.Physics.FixedStep)
	}

	seen := make(map[string]bool, len(d.Objects))
	for i, obj := range d.Objects {
		if obj.Name == "" {
			return fmt.Errorf("object %d has no name", i)
		}
		if seen[obj.Name] {
			return fmt.Errorf("duplicate object name %q", obj.Name)
		}
		seen[obj.Name] = true

		if obj.PickRadius < 0 {
			return fmt.Errorf("object %q: negative pickRadius %v", obj.Name, obj.PickRadius)
		}
		if obj.Body != nil && obj.Body.Mass < 0 {
			return fmt.Errorf("object %q: negative mass %v", obj.Name, obj.Body.Mass)
		}
		for j, comp := range obj.Components {
			if comp.Type == "" {
				return fmt.Errorf("object %q: component %d has no type", obj.Name, j)
			}
		}
	}
	return nil
}
