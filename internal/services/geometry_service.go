package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/wailsapp/wails/v2/pkg/logger"

	"floatclock/internal/models"
	"floatclock/internal/platform"
)

// GeometryService keeps windowPosition and windowSize in step with the window.
// Move and resize notifications each have their own debouncer: a burst of
// notifications produces one update once the window has been still for the
// quiet period.
type GeometryService struct {
	window platform.Window
	prefs  PreferencesService
	log    logger.Logger

	debounceMove   func(func())
	debounceResize func(func())

	mu       sync.Mutex
	stopped  bool
	lastPos  models.WindowPosition
	lastSize models.WindowSize
	cancel   context.CancelFunc
	watching sync.WaitGroup
}

func NewGeometryService(window platform.Window, prefs PreferencesService, log logger.Logger, quiet time.Duration) *GeometryService {
	return &GeometryService{
		window:         window,
		prefs:          prefs,
		log:            log,
		debounceMove:   debounce.New(quiet),
		debounceResize: debounce.New(quiet),
	}
}

// Restore moves and sizes the window to the saved geometry, if any.
func (g *GeometryService) Restore(s models.Settings) {
	if s.WindowPosition != nil {
		g.window.SetPosition(s.WindowPosition.X, s.WindowPosition.Y)
	}
	if s.WindowSize != nil {
		g.window.SetSize(s.WindowSize.Width, s.WindowSize.Height)
	}
	g.mu.Lock()
	g.lastPos.X, g.lastPos.Y = g.window.Position()
	g.lastSize.Width, g.lastSize.Height = g.window.Size()
	g.mu.Unlock()
}

// OnMoved records that the window moved. Ignored until preferences are Ready.
func (g *GeometryService) OnMoved() {
	if !g.active() {
		return
	}
	g.debounceMove(g.captureMove)
}

// OnResized records that the window was resized. Ignored until preferences are Ready.
func (g *GeometryService) OnResized() {
	if !g.active() {
		return
	}
	g.debounceResize(g.captureResize)
}

func (g *GeometryService) active() bool {
	g.mu.Lock()
	stopped := g.stopped
	g.mu.Unlock()
	return !stopped && g.prefs.State() == StateReady
}

func (g *GeometryService) captureMove() {
	if !g.active() {
		return
	}
	x, y := g.window.Position()
	if _, err := g.prefs.Update(models.SettingsPatch{WindowPosition: &models.WindowPosition{X: x, Y: y}}); err != nil {
		g.log.Error(fmt.Sprintf("geometry: save position: %v", err))
	}
}

func (g *GeometryService) captureResize() {
	if !g.active() {
		return
	}
	w, h := g.window.Size()
	if _, err := g.prefs.Update(models.SettingsPatch{WindowSize: &models.WindowSize{Width: w, Height: h}}); err != nil {
		g.log.Error(fmt.Sprintf("geometry: save size: %v", err))
	}
}

// Watch polls the window geometry and turns changes into OnMoved / OnResized
// notifications. The Wails v2 runtime has no move or resize events.
func (g *GeometryService) Watch(ctx context.Context, interval time.Duration) {
	g.mu.Lock()
	if g.stopped || g.cancel != nil {
		g.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	g.cancel = cancel
	g.watching.Add(1)
	g.mu.Unlock()

	go func() {
		defer g.watching.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				g.poll()
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (g *GeometryService) poll() {
	x, y := g.window.Position()
	w, h := g.window.Size()

	g.mu.Lock()
	moved := x != g.lastPos.X || y != g.lastPos.Y
	resized := w != g.lastSize.Width || h != g.lastSize.Height
	g.lastPos = models.WindowPosition{X: x, Y: y}
	g.lastSize = models.WindowSize{Width: w, Height: h}
	g.mu.Unlock()

	if moved {
		g.OnMoved()
	}
	if resized {
		g.OnResized()
	}
}

// Stop ends polling and discards pending debounced captures.
func (g *GeometryService) Stop() {
	g.mu.Lock()
	g.stopped = true
	cancel := g.cancel
	g.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	g.watching.Wait()
}
