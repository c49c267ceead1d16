package scripts

import (
	"DreamVilla/internal/animation"
	"DreamVilla/internal/behaviour"

	"github.com/go-gl/mathgl/mgl32"
)

const teleportAnimation = "teleport"

// TeleportPad moves the player rig to Target when clicked
type TeleportPad struct {
	behaviour.BaseComponent
	Target   mgl32.Vec3
	RigName  string
	Duration float32
	Easing   string

	lookup func(name string) *behaviour.GameObject
}

func newTeleportPad(props map[string]any) behaviour.Component {
	return &TeleportPad{
		Target:   behaviour.PropVec3(props, "target", mgl32.Vec3{}),
		RigName:  behaviour.PropString(props, "rig", "rig"),
		Duration: behaviour.PropFloat(props, "duration", 0.5),
		Easing:   behaviour.PropString(props, "easing", "easeInOutQuad"),
	}
}

// UseRig sets how the pad finds the rig at click time
func (p *TeleportPad) UseRig(lookup func(name string) *behaviour.GameObject) {
	p.lookup = lookup
}

func (p *TeleportPad) OnClick() {
	if p.lookup == nil {
		return
	}
	rig := p.lookup(p.RigName)
	if rig == nil {
		return
	}

	// Restart rather than stack when clicked mid-flight
	rig.RemoveComponentByName(animation.NamePrefix + teleportAnimation)

	from := rig.Transform.Position
	rig.AddComponent(animation.NewTween(teleportAnimation, from, p.Target, p.Duration, p.Easing))
}

func (p *TeleportPad) GetTypeName() string {
	return TeleportPadName
}

func (p *TeleportPad) GetComponentType() behaviour.ComponentType {
	return behaviour.ComponentTypeScript
}
