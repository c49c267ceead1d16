package behaviour

// ComponentType defines the category of a component
type ComponentType string

const (
	ComponentTypeScript    ComponentType = "Script"
	ComponentTypePhysics   ComponentType = "Physics"
	ComponentTypeAnimation ComponentType = "Animation"
	ComponentTypeCustom    ComponentType = "Custom"
)

// CategorizedComponent reports which category it belongs to
type CategorizedComponent interface {
	GetComponentType() ComponentType
}

// Helper function to get component type name
func GetComponentTypeName(comp Component) string {
	if typed, ok := comp.(TypedComponent); ok {
		return typed.GetTypeName()
	}
	return "Unknown"
}

// Helper function to get component category
func GetComponentCategory(comp Component) ComponentType {
	if c, ok := comp.(CategorizedComponent); ok {
		return c.GetComponentType()
	}
	return ComponentTypeCustom
}
