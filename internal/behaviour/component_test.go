package behaviour

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewGameObject(t *testing.T) {
	obj := NewGameObject("TestObject")

	if obj == nil {
		t.Fatal("NewGameObject returned nil")
	}

	if obj.Name != "TestObject" {
		t.Errorf("Expected name 'TestObject', got '%s'", obj.Name)
	}

	if !obj.Active {
		t.Error("New GameObject should be active by default")
	}

	if obj.Transform == nil {
		t.Fatal("Transform should not be nil")
	}

	if obj.Material == nil {
		t.Fatal("Material should not be nil")
	}

	if obj.Transform.Position != (mgl32.Vec3{0, 0, 0}) {
		t.Errorf("Expected position (0,0,0), got %v", obj.Transform.Position)
	}

	if obj.Transform.Scale != (mgl32.Vec3{1, 1, 1}) {
		t.Errorf("Expected scale (1,1,1), got %v", obj.Transform.Scale)
	}
}

func TestTransformSetPosition(t *testing.T) {
	transform := &Transform{
		Position: mgl32.Vec3{0, 0, 0},
		Scale:    mgl32.Vec3{1, 1, 1},
	}

	transform.SetPosition(mgl32.Vec3{10, 20, 30})

	if transform.Position != (mgl32.Vec3{10, 20, 30}) {
		t.Errorf("Expected position (10,20,30), got %v", transform.Position)
	}
}

func TestTransformSetYaw(t *testing.T) {
	transform := &Transform{Rotation: mgl32.QuatIdent()}

	transform.SetYaw(mgl32.DegToRad(90))

	forward := transform.Rotation.Rotate(mgl32.Vec3{0, 0, -1})
	if !forward.ApproxEqualThreshold(mgl32.Vec3{-1, 0, 0}, 1e-5) {
		t.Errorf("Expected forward (-1,0,0) after 90 degree yaw, got %v", forward)
	}
}

func TestMaterialSetColor(t *testing.T) {
	m := &Material{}

	m.SetColor(0.1, 0.6, 0.9)
	if m.Color != "#1a99e5" {
		t.Errorf("Expected '#1a99e5', got '%s'", m.Color)
	}

	m.SetColor(-1, 2, 0)
	if m.Color != "#00ff00" {
		t.Errorf("Expected clamped '#00ff00', got '%s'", m.Color)
	}
}

type MockComponent struct {
	BaseComponent
	name         string
	startCalled  bool
	updateCalled bool
	fixedCalled  bool
	destroyed    bool
	clicks       int
	lastDt       float32
}

func (m *MockComponent) Start() {
	m.startCalled = true
}

func (m *MockComponent) Update(dt float32) {
	m.updateCalled = true
	m.lastDt = dt
}

func (m *MockComponent) FixedUpdate(dt float32) {
	m.fixedCalled = true
}

func (m *MockComponent) OnDestroy() {
	m.destroyed = true
}

func (m *MockComponent) OnClick() {
	m.clicks++
}

func (m *MockComponent) GetTypeName() string {
	return m.name
}

func TestGameObjectAddComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &MockComponent{}

	obj.AddComponent(comp)

	if len(obj.Components) != 1 {
		t.Errorf("Expected 1 component, got %d", len(obj.Components))
	}

	if comp.GetGameObject() != obj {
		t.Error("Component's GameObject reference not set correctly")
	}

	if !comp.GetEnabled() {
		t.Error("Added component should be enabled")
	}
}

func TestGameObjectRemoveComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &MockComponent{}

	obj.AddComponent(comp)
	obj.RemoveComponent(comp)

	if len(obj.Components) != 0 {
		t.Errorf("Expected 0 components after removal, got %d", len(obj.Components))
	}
	if !comp.destroyed {
		t.Error("OnDestroy should be called on removal")
	}
	if comp.GetEnabled() {
		t.Error("Removed component should be disabled")
	}
}

func TestGameObjectGetComponentByName(t *testing.T) {
	obj := NewGameObject("Test")
	a := &MockComponent{name: "a"}
	b := &MockComponent{name: "b"}
	obj.AddComponent(a)
	obj.AddComponent(b)

	if obj.GetComponent("b") != b {
		t.Error("GetComponent should match on type name")
	}
	if obj.GetComponent("missing") != nil {
		t.Error("GetComponent should return nil for unknown names")
	}
	if len(obj.GetComponents("a")) != 1 {
		t.Errorf("Expected 1 component named 'a', got %d", len(obj.GetComponents("a")))
	}
}

func TestGameObjectRemoveComponentByName(t *testing.T) {
	obj := NewGameObject("Test")
	a := &MockComponent{name: "a"}
	obj.AddComponent(a)

	if !obj.RemoveComponentByName("a") {
		t.Error("RemoveComponentByName should report removal")
	}
	if obj.RemoveComponentByName("a") {
		t.Error("Second removal should report false")
	}
	if len(obj.Components) != 0 {
		t.Errorf("Expected 0 components, got %d", len(obj.Components))
	}
}

func TestGameObjectClick(t *testing.T) {
	obj := NewGameObject("Pad")
	enabled := &MockComponent{}
	disabled := &MockComponent{}
	obj.AddComponent(enabled)
	obj.AddComponent(disabled)
	disabled.SetEnabled(false)

	obj.Click()

	if enabled.clicks != 1 {
		t.Errorf("Expected 1 click, got %d", enabled.clicks)
	}
	if disabled.clicks != 0 {
		t.Error("Disabled component should not receive clicks")
	}
}

type selfRemovingComponent struct {
	BaseComponent
	updates int
}

func (s *selfRemovingComponent) Update(dt float32) {
	s.updates++
	s.GetGameObject().RemoveComponent(s)
}

func TestComponentCanRemoveItselfDuringUpdate(t *testing.T) {
	obj := NewGameObject("Test")
	self := &selfRemovingComponent{}
	after := &MockComponent{}
	obj.AddComponent(self)
	obj.AddComponent(after)

	obj.internalUpdate(0.016)
	obj.internalUpdate(0.016)

	if self.updates != 1 {
		t.Errorf("Expected 1 update before removal, got %d", self.updates)
	}
	if !after.updateCalled {
		t.Error("Component after the removed one should still be updated")
	}
}

type physicsMock struct {
	BaseComponent
}

func (p *physicsMock) GetComponentType() ComponentType {
	return ComponentTypePhysics
}

func TestComponentCategoryAndName(t *testing.T) {
	named := &MockComponent{name: "named"}
	plain := &physicsMock{}

	if GetComponentTypeName(named) != "named" {
		t.Errorf("Expected 'named', got '%s'", GetComponentTypeName(named))
	}
	if GetComponentTypeName(plain) != "Unknown" {
		t.Errorf("Expected 'Unknown', got '%s'", GetComponentTypeName(plain))
	}
	if GetComponentCategory(named) != ComponentTypeCustom {
		t.Errorf("Uncategorized component should be Custom, got %s", GetComponentCategory(named))
	}
	if GetComponentCategory(plain) != ComponentTypePhysics {
		t.Errorf("Expected Physics, got %s", GetComponentCategory(plain))
	}
}
