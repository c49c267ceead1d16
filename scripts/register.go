// Package scripts contains the behaviour components that can be attached to
// scene objects by name.
package scripts

import (
	"DreamVilla/internal/behaviour"
)

const (
	WaterMotionName    = "water-motion"
	FloatingObjectName = "floating-object"
	TeleportPadName    = "teleport-pad"
	CarBobName         = "car-bob"
)

// Register adds every built-in script to reg
func Register(reg *behaviour.ScriptRegistry) {
	reg.Register(WaterMotionName, newWaterMotion)
	reg.Register(FloatingObjectName, newFloatingObject)
	reg.Register(TeleportPadName, newTeleportPad)
	reg.Register(CarBobName, newCarBob)
}

// NewRegistry returns a registry holding the built-in scripts
func NewRegistry() *behaviour.ScriptRegistry {
	reg := behaviour.NewScriptRegistry()
	Register(reg)
	return reg
}
