package behaviour

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Component is the base interface for all components
// Components can be attached to game objects
type Component interface {
	// Lifecycle methods
	Awake()                 // Called when component is attached
	Start()                 // Called when the owning object is registered
	Update(dt float32)      // Called every frame with the frame time in seconds
	FixedUpdate(dt float32) // Called after every fixed physics step
	OnDestroy()             // Called when component/object is destroyed

	// Component info
	GetEnabled() bool
	SetEnabled(bool)
	GetGameObject() *GameObject
	SetGameObject(*GameObject)
}

// TypedComponent is a component that can be looked up by name
type TypedComponent interface {
	Component
	GetTypeName() string
}

// Clickable components react to a pointer click on their object
type Clickable interface {
	OnClick()
}

// BaseComponent provides default implementations for all Component methods
// Scripts embed this to only override methods they need
type BaseComponent struct {
	enabled    bool
	gameObject *GameObject
}

func (c *BaseComponent) Awake()                 {}
func (c *BaseComponent) Start()                 {}
func (c *BaseComponent) Update(dt float32)      {}
func (c *BaseComponent) FixedUpdate(dt float32) {}
func (c *BaseComponent) OnDestroy()             {}

func (c *BaseComponent) GetEnabled() bool {
	return c.enabled
}

func (c *BaseComponent) SetEnabled(enabled bool) {
	c.enabled = enabled
}

func (c *BaseComponent) GetGameObject() *GameObject {
	return c.gameObject
}

func (c *BaseComponent) SetGameObject(obj *GameObject) {
	c.gameObject = obj
}

// Transform is the world pose of a game object
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

func (t *Transform) SetPosition(pos mgl32.Vec3) {
	t.Position = pos
}

func (t *Transform) SetRotation(rot mgl32.Quat) {
	t.Rotation = rot
}

func (t *Transform) SetScale(scale mgl32.Vec3) {
	t.Scale = scale
}

// SetYaw replaces the rotation with a rotation of angle radians around Y.
func (t *Transform) SetYaw(angle float32) {
	t.SetRotation(mgl32.QuatRotate(angle, mgl32.Vec3{0, 1, 0}))
}

// Material holds the display attributes scripts are allowed to change
type Material struct {
	Color string // "#rrggbb"
}

// SetColor stores an RGB colour with channels in [0,1] as "#rrggbb".
func (m *Material) SetColor(r, g, b float32) {
	m.Color = fmt.Sprintf("#%02x%02x%02x", channelByte(r), channelByte(g), channelByte(b))
}

func channelByte(v float32) uint8 {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return uint8(math.Round(float64(v) * 255))
}

// GameObject represents a node in the scene
type GameObject struct {
	Name       string
	Tag        string
	Active     bool
	Transform  *Transform
	Material   *Material
	Components []Component
	// PickRadius is the click sphere around the position, 0 disables picking.
	PickRadius float32
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		Name:       name,
		Active:     true,
		Components: make([]Component, 0),
		Material:   &Material{},
		Transform: &Transform{
			Position: mgl32.Vec3{0, 0, 0},
			Rotation: mgl32.QuatIdent(),
			Scale:    mgl32.Vec3{1, 1, 1},
		},
	}
}

func (obj *GameObject) AddComponent(component Component) {
	component.SetGameObject(obj)
	component.SetEnabled(true)
	obj.Components = append(obj.Components, component)
	component.Awake()
}

// GetComponent returns the first component whose type name matches
func (obj *GameObject) GetComponent(typeName string) Component {
	for _, comp := range obj.Components {
		if typed, ok := comp.(TypedComponent); ok && typed.GetTypeName() == typeName {
			return comp
		}
	}
	return nil
}

func (obj *GameObject) GetComponents(typeName string) []Component {
	var result []Component
	for _, comp := range obj.Components {
		if typed, ok := comp.(TypedComponent); ok && typed.GetTypeName() == typeName {
			result = append(result, comp)
		}
	}
	return result
}

func (obj *GameObject) RemoveComponent(component Component) {
	for i, comp := range obj.Components {
		if comp == component {
			comp.OnDestroy()
			comp.SetEnabled(false)
			obj.Components = append(obj.Components[:i:i], obj.Components[i+1:]...)
			return
		}
	}
}

// RemoveComponentByName removes the first component with the given type name
// and reports whether one was found.
func (obj *GameObject) RemoveComponentByName(typeName string) bool {
	comp := obj.GetComponent(typeName)
	if comp == nil {
		return false
	}
	obj.RemoveComponent(comp)
	return true
}

// Click forwards a click to every enabled clickable component
func (obj *GameObject) Click() {
	if !obj.Active {
		return
	}
	for _, comp := range obj.snapshot() {
		if !comp.GetEnabled() {
			continue
		}
		if c, ok := comp.(Clickable); ok {
			c.OnClick()
		}
	}
}

// snapshot lets components add or remove components while being iterated
func (obj *GameObject) snapshot() []Component {
	return append([]Component(nil), obj.Components...)
}

func (obj *GameObject) internalUpdate(dt float32) {
	if !obj.Active {
		return
	}

	for _, comp := range obj.snapshot() {
		if comp.GetEnabled() {
			comp.Update(dt)
		}
	}
}

func (obj *GameObject) internalFixedUpdate(dt float32) {
	if !obj.Active {
		return
	}

	for _, comp := range obj.snapshot() {
		if comp.GetEnabled() {
			comp.FixedUpdate(dt)
		}
	}
}

func (obj *GameObject) internalStart() {
	if !obj.Active {
		return
	}

	for _, comp := range obj.Components {
		if comp.GetEnabled() {
			comp.Start()
		}
	}
}

func (obj *GameObject) Destroy() {
	for _, comp := range obj.Components {
		comp.OnDestroy()
	}
	obj.Active = false
}
