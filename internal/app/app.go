package app

import (
	"log"
	"time"

	"eldritch-cube/internal/anim"
	"eldritch-cube/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// FrameRenderer is the draw contract the frame driver renders through
type FrameRenderer interface {
	Render(model mgl32.Mat4, dt float64) error
}

// Surface is the window-system surface the frame driver waits on and
// presents into
type Surface interface {
	WaitEvents(timeout time.Duration)
	ShouldClose() bool
	Present()
}

// App owns the frame loop. Single-threaded and event-driven: each iteration
// blocks in the wait primitive, classifies the wake-up as one event, and
// applies the effects the state machine asks for.
type App struct {
	surface  Surface
	renderer FrameRenderer
	spinner  *anim.Spinner
	pacer    *Pacer

	state    State
	lastTick time.Time
}

// New creates the app around a surface and a renderer
func New(surface Surface, renderer FrameRenderer) *App {
	return &App{
		surface:  surface,
		renderer: renderer,
		spinner:  anim.NewSpinner(),
		pacer:    NewPacer(),
		state:    StateRunning,
		lastTick: time.Now(),
	}
}

// Run drives the loop until a close request. A failed draw or present aborts
// the loop and surfaces as the returned error.
func (a *App) Run() error {
	if err := a.dispatch(EventInitialized); err != nil {
		return err
	}
	for a.state == StateRunning {
		a.surface.WaitEvents(time.Until(a.pacer.Deadline()))
		if err := a.dispatch(a.classifyWakeup(time.Now())); err != nil {
			return err
		}
	}
	return nil
}

// classifyWakeup decides which event a return from the wait primitive
// represents. Close wins over an elapsed timer; anything else (input, focus
// changes) is ignored.
func (a *App) classifyWakeup(now time.Time) Event {
	if a.surface.ShouldClose() {
		return EventCloseRequested
	}
	if !now.Before(a.pacer.Deadline()) {
		return EventTimerElapsed
	}
	return EventIgnored
}

func (a *App) dispatch(ev Event) error {
	next, effects := Step(a.state, ev)
	a.state = next
	for _, effect := range effects {
		switch effect {
		case EffectRenderFrame:
			if err := a.renderFrame(); err != nil {
				return err
			}
		case EffectArmTimer:
			a.pacer.Rearm(time.Now())
		case EffectStopLoop:
			// state is terminal; GPU resources are released by the owner
			// once Run returns
		}
	}
	return nil
}

func (a *App) renderFrame() error {
	profiling.ResetFrame()
	start := time.Now()
	dt := start.Sub(a.lastTick).Seconds()
	a.lastTick = start

	err := func() error {
		defer profiling.Track("renderer.Render")()
		return a.renderer.Render(a.spinner.Model(), dt)
	}()
	if err != nil {
		return err
	}

	func() { defer profiling.Track("glfw.SwapBuffers")(); a.surface.Present() }()

	a.spinner.Advance()

	if d := time.Since(start); d > a.pacer.Period() {
		log.Printf("Slow frame: %v. Top tasks: %s", d, profiling.TopN(5))
	}
	return nil
}
