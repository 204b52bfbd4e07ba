package charts

import (
	"fmt"
	"sync"

	"github.com/spendlens/backend/pkg/analysis"
)

// Instance is a chart drawn on a surface.
type Instance interface {
	Destroy()
}

// Surface draws chart configurations onto a target identified by a canvas ID.
type Surface interface {
	Draw(canvasID string, cfg *Config) (Instance, error)
}

// Board keeps track of the chart drawn on every canvas of a surface.
//
// Drawing onto a canvas that already holds a chart destroys the previous
// chart first, so a canvas never holds more than one chart.
type Board struct {
	mu        sync.Mutex
	surface   Surface
	instances map[string]Instance
}

// NewBoard returns a Board drawing onto surface.
func NewBoard(surface Surface) *Board {
	return &Board{
		surface:   surface,
		instances: make(map[string]Instance),
	}
}

// Draw draws cfg onto the canvas. A nil cfg clears the canvas.
func (b *Board) Draw(canvasID string, cfg *Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if previous, ok := b.instances[canvasID]; ok {
		previous.Destroy()
		delete(b.instances, canvasID)
	}

	if cfg == nil {
		return nil
	}

	instance, err := b.surface.Draw(canvasID, cfg)
	if err != nil {
		return fmt.Errorf("drawing %s chart on %s: %w", cfg.Type, canvasID, err)
	}
	b.instances[canvasID] = instance

	return nil
}

// DrawSummary draws both dashboard charts. A chart whose data is empty is
// left untouched.
func (b *Board) DrawSummary(summary analysis.Summary) error {
	if cfg, ok := Bar(summary.MonthlySpending); ok {
		if err := b.Draw(MonthlyCanvas, cfg); err != nil {
			return err
		}
	}

	if cfg, ok := Pie(summary.CategoryTotals); ok {
		if err := b.Draw(CategoryCanvas, cfg); err != nil {
			return err
		}
	}

	return nil
}

// Instance returns the chart currently drawn on the canvas.
func (b *Board) Instance(canvasID string) (Instance, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	instance, ok := b.instances[canvasID]
	return instance, ok
}

// Clear destroys all charts.
func (b *Board) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for id, instance := range b.instances {
		instance.Destroy()
		delete(b.instances, id)
	}
}
