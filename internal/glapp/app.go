//go:build ebiten

package glapp

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"lifecal/internal/grid"
	"lifecal/internal/life"
	"lifecal/internal/surface"
)

// Game adapts the simulation controller to the ebiten.Game interface. The
// frame loop is the cooperative host: a FixedStep accumulator decides when
// a frame should fire the scheduled tick.
type Game struct {
	ctrl   *life.Controller
	cal    *surface.Calendar
	loop   *life.LoopScheduler
	pacer  *life.FixedStep
	layout Layout

	buf   []byte
	img   *ebiten.Image
	scale int
	fill  int
}

// NewGame wires a controller and its calendar into an ebiten game.
func NewGame(ctrl *life.Controller, cal *surface.Calendar, loop *life.LoopScheduler, pacer *life.FixedStep, scale, fill int) (*Game, error) {
	keys := cal.Keys()
	if len(keys) == 0 {
		return nil, fmt.Errorf("empty calendar")
	}
	layout, ok := NewLayout(keys[0], len(keys))
	if !ok {
		return nil, fmt.Errorf("malformed first key %q", keys[0])
	}
	if scale < 1 {
		scale = 8
	}
	return &Game{
		ctrl:   ctrl,
		cal:    cal,
		loop:   loop,
		pacer:  pacer,
		layout: layout,
		buf:    make([]byte, GridRows*layout.Weeks*4),
		img:    ebiten.NewImage(layout.Weeks, GridRows),
		scale:  scale,
		fill:   fill,
	}, nil
}

// Update handles input and fires due ticks.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.ctrl.Stop()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.ctrl.Running() {
			g.ctrl.Stop()
		} else {
			g.ctrl.Start()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.ctrl.Step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.ctrl.Randomize(g.fill)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.ctrl.Clear()
	}

	if g.pacer.ShouldStep() {
		g.loop.Fire()
	}
	return nil
}

// Draw renders the calendar pixels and a status line.
func (g *Game) Draw(screen *ebiten.Image) {
	colorAt := func(k grid.Key) surface.Color {
		c, _ := g.cal.Color(k)
		return c
	}
	FillRGBA(g.buf, g.cal.Keys(), colorAt, g.layout)
	g.img.WritePixels(g.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.img, op)

	st := g.ctrl.Stats()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("gen %d  pop %d", st.Generations, g.ctrl.Population()))
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.layout.Weeks * g.scale, GridRows * g.scale
}
