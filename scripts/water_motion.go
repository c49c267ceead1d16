package scripts

import (
	"math"

	"DreamVilla/internal/behaviour"

	perlin "github.com/aquilax/go-perlin"
)

// WaterMotion gently bobs a water surface and shifts its colour over time
type WaterMotion struct {
	behaviour.BaseComponent
	Amplitude float32
	Speed     float32
	Ripple    float32 // Extra Perlin noise on top of the sine bob, 0 disables it
	Seed      int64

	baseY   float32
	elapsed float32
	noise   *perlin.Perlin
}

func newWaterMotion(props map[string]any) behaviour.Component {
	return &WaterMotion{
		Amplitude: behaviour.PropFloat(props, "amplitude", 0.08),
		Speed:     behaviour.PropFloat(props, "speed", 0.5),
		Ripple:    behaviour.PropFloat(props, "ripple", 0),
		Seed:      int64(behaviour.PropFloat(props, "seed", 1)),
	}
}

func (w *WaterMotion) Awake() {
	w.baseY = w.GetGameObject().Transform.Position.Y()
	w.elapsed = 0
	if w.Ripple != 0 {
		w.noise = perlin.NewPerlin(2, 2, 3, w.Seed)
	}
}

func (w *WaterMotion) Update(dt float32) {
	if dt == 0 {
		return
	}
	w.elapsed += dt
	phase := float64(w.elapsed * w.Speed)

	offset := float32(math.Sin(phase)) * w.Amplitude
	if w.noise != nil {
		offset += w.Ripple * float32(w.noise.Noise1D(phase))
	}
	obj := w.GetGameObject()
	obj.Transform.Position[1] = w.baseY + offset

	// Shimmer
	t := float32(math.Sin(phase*0.7)+1) / 2
	obj.Material.SetColor(0.1+0.05*t, 0.6+0.1*t, 0.9+0.05*t)
}

func (w *WaterMotion) GetTypeName() string {
	return WaterMotionName
}

func (w *WaterMotion) GetComponentType() behaviour.ComponentType {
	return behaviour.ComponentTypeScript
}
