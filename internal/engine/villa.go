package engine

import (
	"context"
	"errors"
	"time"

	"DreamVilla/internal/behaviour"
	"DreamVilla/internal/logger"
	"DreamVilla/internal/scene"

	"go.uber.org/zap"
)

const (
	DefaultFrameRate   = 60
	DefaultMaxSubSteps = 5
)

type Options struct {
	FrameRate   int     // Frames per second of the driver loop
	FixedStep   float32 // Physics step in seconds, 0 uses the scene value
	MaxSubSteps int     // Physics steps allowed per frame before time is dropped
	Realtime    bool    // Pace frames with a wall clock ticker
	Watch       bool    // Reload the scene when its file changes
}

// Villa drives a scene: variable rate updates for scripts, fixed rate steps
// for physics.
type Villa struct {
	Registry *behaviour.ScriptRegistry
	Scene    *scene.Scene

	opts        Options
	scenePath   string
	accumulator float32
	frame       int
	clicks      map[int][]string
	onFrame     func(frame int, dt float32)
}

func NewVilla(reg *behaviour.ScriptRegistry, opts Options) *Villa {
	if opts.FrameRate <= 0 {
		opts.FrameRate = DefaultFrameRate
	}
	if opts.MaxSubSteps <= 0 {
		opts.MaxSubSteps = DefaultMaxSubSteps
	}
	return &Villa{
		Registry: reg,
		opts:     opts,
		clicks:   make(map[int][]string),
	}
}

// LoadScene loads and builds the scene at path, replacing the current one.
// On error the current scene keeps running.
func (v *Villa) LoadScene(path string) error {
	desc, err := scene.Load(path)
	if err != nil {
		return err
	}
	s, err := scene.Build(desc, v.Registry)
	if err != nil {
		return err
	}
	v.scenePath = path
	v.SetScene(s)
	logger.Log.Info("Scene loaded", zap.String("path", path))
	return nil
}

func (v *Villa) Reload() error {
	if v.scenePath == "" {
		return errors.New("no scene file to reload")
	}
	return v.LoadScene(v.scenePath)
}

func (v *Villa) SetScene(s *scene.Scene) {
	if v.Scene != nil {
		v.Scene.Objects.Clear()
	}
	v.Scene = s
	v.accumulator = 0
}

// SetOnFrameCallback sets a callback that is called after every frame
func (v *Villa) SetOnFrameCallback(callback func(frame int, dt float32)) {
	v.onFrame = callback
}

// Frame returns the number of frames ticked so far
func (v *Villa) Frame() int {
	return v.frame
}

func (v *Villa) fixedStep() float32 {
	if v.opts.FixedStep > 0 {
		return v.opts.FixedStep
	}
	if v.Scene != nil && v.Scene.FixedStep > 0 {
		return v.Scene.FixedStep
	}
	return scene.DefaultFixedStep
}

// Tick advances the scene by one frame of dt seconds
func (v *Villa) Tick(dt float32) {
	defer func() { v.frame++ }()
	if v.Scene == nil {
		return
	}

	v.Scene.Objects.UpdateAll(dt)

	step := v.fixedStep()
	v.accumulator += dt
	steps := 0
	for v.accumulator >= step {
		if steps == v.opts.MaxSubSteps {
			logger.Log.Debug("Dropping physics time",
				zap.Int("frame", v.frame),
				zap.Float32("dropped", v.accumulator))
			v.accumulator = 0
			break
		}
		v.Scene.Physics.Step(step)
		v.Scene.Objects.FixedUpdateAll(step)
		v.accumulator -= step
		steps++
	}
}

// Click delivers a click to the named object now
func (v *Villa) Click(name string) bool {
	if v.Scene == nil {
		return false
	}
	ok := v.Scene.Objects.Click(name)
	if !ok {
		logger.Log.Warn("Click on unknown object", zap.String("object", name))
	}
	return ok
}

// ClickRay picks the closest pickable object along the ray and clicks it.
// It returns the picked object's name.
func (v *Villa) ClickRay(ray behaviour.Ray) (string, bool) {
	if v.Scene == nil {
		return "", false
	}
	obj, dist := v.Scene.Objects.Pick(ray)
	if obj == nil {
		return "", false
	}
	logger.Log.Debug("Ray picked object", zap.String("object", obj.Name), zap.Float32("distance", dist))
	obj.Click()
	return obj.Name, true
}

// ScheduleClick queues a click to be delivered before the given frame
func (v *Villa) ScheduleClick(frame int, name string) {
	v.clicks[frame] = append(v.clicks[frame], name)
}

// Run ticks frames until ctx is cancelled or, when frames > 0, that many
// frames have run.
func (v *Villa) Run(ctx context.Context, frames int) error {
	dt := 1 / float32(v.opts.FrameRate)

	var (
		reload    <-chan string
		watchErrs <-chan error
	)
	if v.opts.Watch && v.scenePath != "" {
		w, err := scene.NewWatcher(v.scenePath)
		if err != nil {
			return err
		}
		defer w.Close()
		reload = w.Events
		watchErrs = w.Errors
	}

	var tick <-chan time.Time
	if v.opts.Realtime {
		ticker := time.NewTicker(time.Second / time.Duration(v.opts.FrameRate))
		defer ticker.Stop()
		tick = ticker.C
	}

	for ran := 0; frames <= 0 || ran < frames; ran++ {
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		v.pollWatcher(reload, watchErrs)

		for _, name := range v.clicks[v.frame] {
			v.Click(name)
		}
		delete(v.clicks, v.frame)

		v.Tick(dt)

		if v.onFrame != nil {
			v.onFrame(v.frame, dt)
		}
	}
	return nil
}

// pollWatcher handles at most one pending watcher event without blocking
func (v *Villa) pollWatcher(reload <-chan string, errs <-chan error) {
	select {
	case path := <-reload:
		logger.Log.Info("Scene file changed, reloading", zap.String("path", path))
		if err := v.Reload(); err != nil {
			logger.Log.Error("Reload failed, keeping current scene", zap.Error(err))
		}
	case err := <-errs:
		logger.Log.Warn("Scene watcher error", zap.Error(err))
	default:
	}
}
