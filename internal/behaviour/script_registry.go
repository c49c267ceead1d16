package behaviour

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

// ScriptConstructor builds a component from the props of a scene entry
type ScriptConstructor func(props map[string]any) Component

// ScriptRegistry maps component names used in scene files to constructors.
// Each engine owns its own registry.
type ScriptRegistry struct {
	constructors map[string]ScriptConstructor
}

func NewScriptRegistry() *ScriptRegistry {
	return &ScriptRegistry{constructors: make(map[string]ScriptConstructor)}
}

func (r *ScriptRegistry) Register(name string, constructor ScriptConstructor) {
	r.constructors[name] = constructor
}

func (r *ScriptRegistry) Available() []string {
	names := make([]string, 0, len(r.constructors))
	for name := range r.constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Create returns nil when no constructor is registered under name
func (r *ScriptRegistry) Create(name string, props map[string]any) Component {
	if constructor, exists := r.constructors[name]; exists {
		if props == nil {
			props = map[string]any{}
		}
		return constructor(props)
	}
	return nil
}

// PropFloat reads a numeric prop. Scene decoders produce int or float64
// depending on how the number was written.
func PropFloat(props map[string]any, key string, fallback float32) float32 {
	if f, ok := toFloat(props[key]); ok {
		return f
	}
	return fallback
}

func PropString(props map[string]any, key, fallback string) string {
	if v, ok := props[key].(string); ok {
		return v
	}
	return fallback
}

// PropVec3 reads either a three element list or an {x, y, z} map.
func PropVec3(props map[string]any, key string, fallback mgl32.Vec3) mgl32.Vec3 {
	switch v := props[key].(type) {
	case []any:
		if len(v) != 3 {
			return fallback
		}
		var out mgl32.Vec3
		for i := range out {
			f, ok := toFloat(v[i])
			if !ok {
				return fallback
			}
			out[i] = f
		}
		return out
	case map[string]any:
		out := fallback
		for i, axis := range []string{"x", "y", "z"} {
			if f, ok := toFloat(v[axis]); ok {
				out[i] = f
			}
		}
		return out
	}
	return fallback
}

func toFloat(v any) (float32, bool) {
	switch n := v.(type) {
	case float64:
		return float32(n), true
	case float32:
		return n, true
	case int:
		return float32(n), true
	case int64:
		return float32(n), true
	}
	return 0, false
}
