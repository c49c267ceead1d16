package scripts

import (
	"DreamVilla/internal/behaviour"
	"DreamVilla/internal/buoyancy"
)

// FloatingObject pushes its body up while it sits near or below the water
// surface. It does nothing until a body is attached.
type FloatingObject struct {
	behaviour.BaseComponent
	Config buoyancy.Config
	Body   buoyancy.ForceSink
}

func newFloatingObject(props map[string]any) behaviour.Component {
	return &FloatingObject{
		Config: buoyancy.Config{
			Radius:        behaviour.PropFloat(props, "radius", buoyancy.DefaultRadius),
			Strength:      behaviour.PropFloat(props, "strength", buoyancy.DefaultStrength),
			WaterSurfaceY: behaviour.PropFloat(props, "waterY", buoyancy.DefaultWaterSurfaceY),
		},
	}
}

// UseBody attaches the force sink of the object's physics body
func (f *FloatingObject) UseBody(sink buoyancy.ForceSink) {
	f.Body = sink
}

func (f *FloatingObject) BuoyancyConfig() buoyancy.Config {
	return f.Config
}

// FixedUpdate runs after every physics step. The force is consumed by the
// next step.
func (f *FloatingObject) FixedUpdate(dt float32) {
	if f.Body == nil {
		return
	}
	buoyancy.Step(f.Config, f.GetGameObject().Transform.Position, f.Body)
}

func (f *FloatingObject) GetTypeName() string {
	return FloatingObjectName
}

func (f *FloatingObject) GetComponentType() behaviour.ComponentType {
	return behaviour.ComponentTypeScript
}
