package physics

import (
	"DreamVilla/internal/behaviour"
)

// Rigidbody ties a game object to a physics body. After every fixed step the
// body's pose is copied into the object's transform.
type Rigidbody struct {
	behaviour.BaseComponent
	Handle Handle
}

func NewRigidbody(h Handle) *Rigidbody {
	return &Rigidbody{Handle: h}
}

func (r *Rigidbody) Awake() {
	r.sync()
}

func (r *Rigidbody) FixedUpdate(dt float32) {
	r.sync()
}

func (r *Rigidbody) sync() {
	obj := r.GetGameObject()
	if obj == nil || r.Handle == nil {
		return
	}
	obj.Transform.SetPosition(r.Handle.Position())
	obj.Transform.SetRotation(r.Handle.Rotation())
}

func (r *Rigidbody) GetTypeName() string {
	return "rigidbody"
}

func (r *Rigidbody) GetComponentType() behaviour.ComponentType {
	return behaviour.ComponentTypePhysics
}
