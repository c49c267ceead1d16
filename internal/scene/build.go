package scene

import (
	"fmt"

	"DreamVilla/internal/behaviour"
	"DreamVilla/internal/buoyancy"
	"DreamVilla/internal/logger"
	"DreamVilla/internal/physics"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// BodyUser is implemented by components that push on their object's body
type BodyUser interface {
	UseBody(sink buoyancy.ForceSink)
}

// RigUser is implemented by components that need to find other objects by name
type RigUser interface {
	UseRig(lookup func(name string) *behaviour.GameObject)
}

// Scene is a built, running scene
type Scene struct {
	Objects   *behaviour.ComponentManager
	Physics   physics.Backend
	FixedStep float32
	bodies    map[string]physics.Handle
}

// Body returns the physics handle of the named object, if it has one
func (s *Scene) Body(name string) physics.Handle {
	return s.bodies[name]
}

// Build creates every object in desc with its body and components. Components
// are created from reg and receive their dependencies before the objects are
// registered.
func Build(desc *Description, reg *behaviour.ScriptRegistry) (*Scene, error) {
	g := desc.Physics.Gravity
	backend, err := physics.NewBackend(desc.Physics.Backend, mgl32.Vec3{g[0], g[1], g[2]})
	if err != nil {
		return nil, err
	}

	s := &Scene{
		Objects:   behaviour.NewComponentManager(),
		Physics:   backend,
		FixedStep: desc.Physics.FixedStep,
		bodies:    make(map[string]physics.Handle),
	}

	objects := make([]*behaviour.GameObject, 0, len(desc.Objects))
	byName := make(map[string]*behaviour.GameObject, len(desc.Objects))
	lookup := func(name string) *behaviour.GameObject {
		return byName[name]
	}

	for _, data := range desc.Objects {
		obj := behaviour.NewGameObject(data.Name)
		obj.Tag = data.Tag
		if data.Active != nil {
			obj.Active = *data.Active
		}
		obj.Transform.SetPosition(mgl32.Vec3{data.Position[0], data.Position[1], data.Position[2]})
		obj.Material.Color = data.Material.Color
		obj.PickRadius = data.PickRadius

		var handle physics.Handle
		if data.Body != nil {
			handle = backend.AddBody(data.Body.spec(obj.Transform.Position))
			s.bodies[data.Name] = handle
			obj.AddComponent(physics.NewRigidbody(handle))
		}

		for _, cd := range data.Components {
			comp := reg.Create(cd.Type, cd.Props)
			if comp == nil {
				return nil, fmt.Errorf("object %q: unknown component %q", data.Name, cd.Type)
			}
			if u, ok := comp.(BodyUser); ok {
				if handle == nil {
					logger.Log.Warn("Component needs a body but object has none",
						zap.String("object", data.Name),
						zap.String("component", cd.Type))
				} else {
					u.UseBody(handle)
				}
			}
			if u, ok := comp.(RigUser); ok {
				u.UseRig(lookup)
			}
			checkComponent(data.Name, comp)
			obj.AddComponent(comp)
		}

		objects = append(objects, obj)
		byName[obj.Name] = obj
	}

	categories := make(map[behaviour.ComponentType]int)
	for _, obj := range objects {
		for _, comp := range obj.Components {
			category := behaviour.GetComponentCategory(comp)
			categories[category]++
			logger.Log.Debug("Component attached",
				zap.String("object", obj.Name),
				zap.String("component", behaviour.GetComponentTypeName(comp)),
				zap.String("category", string(category)))
		}
		s.Objects.RegisterGameObject(obj)
	}

	logger.Log.Info("Scene built",
		zap.Int("objects", len(objects)),
		zap.Int("bodies", len(s.bodies)),
		zap.Int("scripts", categories[behaviour.ComponentTypeScript]),
		zap.Int("physics", categories[behaviour.ComponentTypePhysics]),
		zap.Int("animations", categories[behaviour.ComponentTypeAnimation]),
		zap.Int("custom", categories[behaviour.ComponentTypeCustom]),
		zap.String("backend", desc.Physics.Backend))
	return s, nil
}

type buoyant interface {
	BuoyancyConfig() buoyancy.Config
}

// checkComponent warns about settings that make a component misbehave without
// stopping the scene from loading.
func checkComponent(object string, comp behaviour.Component) {
	b, ok := comp.(buoyant)
	if !ok {
		return
	}
	cfg := b.BuoyancyConfig()
	if cfg.Radius <= 0 || cfg.Strength < 0 {
		logger.Log.Warn("Suspicious buoyancy settings",
			zap.String("object", object),
			zap.Float32("radius", cfg.Radius),
			zap.Float32("strength", cfg.Strength))
	}
}
