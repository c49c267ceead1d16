package scripts

import (
	"math"

	"DreamVilla/internal/behaviour"
)

const (
	carBobFrequency  = 0.4
	carBobAmplitude  = 0.03
	carSwayFrequency = 0.6
	carSwayAmplitude = 0.03
)

// CarBob makes a parked car breathe slightly up and down
type CarBob struct {
	behaviour.BaseComponent
	baseY   float32
	elapsed float32
}

func newCarBob(props map[string]any) behaviour.Component {
	return &CarBob{}
}

func (c *CarBob) Awake() {
	c.baseY = c.GetGameObject().Transform.Position.Y()
	c.elapsed = 0
}

func (c *CarBob) Update(dt float32) {
	if dt == 0 {
		return
	}
	c.elapsed += dt
	e := float64(c.elapsed)

	transform := c.GetGameObject().Transform
	transform.Position[1] = c.baseY + float32(math.Sin(e*carBobFrequency))*carBobAmplitude
	transform.SetYaw(carSwayAmplitude * float32(math.Sin(e*carSwayFrequency)))
}

func (c *CarBob) GetTypeName() string {
	return CarBobName
}

func (c *CarBob) GetComponentType() behaviour.ComponentType {
	return behaviour.ComponentTypeScript
}
