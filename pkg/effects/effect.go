// Package effects drives the animated background scenes of the web pages.
//
// Every scene is owned by an Effect that runs its render loop until it is
// stopped or its context is cancelled. Frames are handed to a Sink, which
// usually writes them to the browser.
package effects

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

const (
	// DefaultFPS is the frame rate used when none is configured.
	DefaultFPS = 30

	// MaxFPS is the highest frame rate an effect renders at.
	MaxFPS = 1000
)

// ErrRunning is returned when starting an effect that is already running.
var ErrRunning = errors.New("effect is already running")

// Sink receives the frames of a running effect. A non-nil error stops the
// effect.
type Sink func(ctx context.Context, frame Frame) error

// Effect runs the render loop of a scene.
type Effect struct {
	scene    Scene
	interval time.Duration
	sink     Sink
	paused   atomic.Bool

	mu       sync.Mutex
	viewport Viewport
	camera   Camera
	cancel   context.CancelFunc
	done     chan struct{}
	err      error
}

// NewEffect returns a stopped effect rendering scene at fps frames per second.
// The frame rate is capped at MaxFPS.
func NewEffect(scene Scene, viewport Viewport, fps int, sink Sink) *Effect {
	if fps <= 0 {
		fps = DefaultFPS
	}
	fps = min(fps, MaxFPS)

	return &Effect{
		scene:    scene,
		interval: max(time.Second/time.Duration(fps), time.Millisecond),
		sink:     sink,
		viewport: viewport,
	}
}

// Scene returns the scene the effect renders.
func (e *Effect) Scene() Scene {
	return e.scene
}

// Start initializes the scene and starts the render loop. The loop runs until
// Stop is called, ctx is cancelled or the sink fails.
func (e *Effect) Start(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cancel != nil {
		select {
		case <-e.done:
			e.cancel()
		default:
			return ErrRunning
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	e.cancel = cancel
	e.done = make(chan struct{})
	e.err = nil

	first := e.scene.Init(e.viewport)
	e.camera = first.Camera

	go e.run(ctx, e.done, first)
	return nil
}

func (e *Effect) run(ctx context.Context, done chan struct{}, first Frame) {
	defer close(done)

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	var tick uint64
	frame := first
	for {
		if err := e.emit(ctx, frame, tick); err != nil {
			if ctx.Err() == nil {
				e.mu.Lock()
				e.err = err
				e.mu.Unlock()
			}
			return
		}

	wait:
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if !e.paused.Load() {
					break wait
				}
			}
		}

		tick++
		frame = e.scene.Step()
	}
}

func (e *Effect) emit(ctx context.Context, frame Frame, tick uint64) error {
	e.mu.Lock()
	camera := e.camera.fit(e.viewport)
	e.mu.Unlock()

	frame.Scene = e.scene.Name()
	frame.Tick = tick
	frame.Camera = camera

	return e.sink(ctx, frame)
}

// Stop cancels the render loop and waits for it to finish. Stopping a
// stopped effect does nothing.
func (e *Effect) Stop() {
	e.mu.Lock()
	cancel, done := e.cancel, e.done
	e.cancel = nil
	e.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	<-done
}

// Done returns a channel that is closed when the render loop ends. It is nil
// before the first Start.
func (e *Effect) Done() <-chan struct{} {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.done
}

// Err returns the sink error that ended the last render loop.
func (e *Effect) Err() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.err
}

// Pause suspends or resumes rendering. A paused effect keeps its loop but
// emits no frames.
func (e *Effect) Pause(paused bool) {
	e.paused.Store(paused)
}

// Paused reports whether rendering is suspended.
func (e *Effect) Paused() bool {
	return e.paused.Load()
}

// Resize sets the viewport size used for the following frames.
func (e *Effect) Resize(width, height int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.viewport.Width = width
	e.viewport.Height = height
}

// Viewport returns the current viewport.
func (e *Effect) Viewport() Viewport {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.viewport
}
