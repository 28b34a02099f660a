// Package loop hosts a hero jump session in an ANSI terminal. It runs the
// Input → Animate → Timers → Draw cycle, turns the session's commands into
// sprite animations and feeds sprite geometry back to the collision check.
package loop

import (
	"bufio"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/tomz197/herojump/internal/config"
	"github.com/tomz197/herojump/internal/draw"
	"github.com/tomz197/herojump/internal/game"
	"github.com/tomz197/herojump/internal/input"
	"github.com/tomz197/herojump/internal/object"
	"github.com/tomz197/herojump/internal/timer"
)

// Options configures a Host.
type Options struct {
	TermSizeFunc draw.TermSizeFunc // Defaults to the size of os.Stdout
	Tuning       config.Tuning     // Zero value means config.Default()
	Logger       *log.Logger       // Discarded when nil
	Renderer     *lipgloss.Renderer

	// Inactivity limits on the setup and game over screens. Zero disables.
	InactivityWarn       time.Duration
	InactivityDisconnect time.Duration
}

// Host owns one session and everything needed to show it on a terminal.
// It implements game.Presenter and game.BoundsSource.
type Host struct {
	opts    Options
	log     *log.Logger
	sched   *timer.Scheduler
	session *game.Session

	hero     *object.Hero
	obstacle *object.Obstacle
	ground   *object.Ground
	effects  []object.Object
	toSpawn  []object.Object

	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter
	termSizeFunc draw.TermSizeFunc
	styles       styles

	snap       game.Snapshot
	result     *game.Result
	name       nameField
	message    string // Validation feedback on the setup screen
	prevScreen screen

	now       time.Time
	lastInput time.Time
	inactive  bool
	running   bool
}

var (
	_ game.Presenter    = (*Host)(nil)
	_ game.BoundsSource = (*Host)(nil)
)

// NewHost creates a host showing the setup screen. now seeds the host clock.
func NewHost(w io.Writer, opts Options, now time.Time) *Host {
	if opts.Tuning == (config.Tuning{}) {
		opts.Tuning = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}

	termWidth, termHeight := draw.SizeOrDefault(termSizeFunc)
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, ViewWidth, ViewHeight)
	canvas.SetOffset(offsetCol, offsetRow)

	h := &Host{
		opts:         opts,
		log:          logger,
		sched:        timer.New(now),
		hero:         object.NewHero(HeroX, GroundY, opts.Tuning.JumpDuration()),
		obstacle:     object.NewObstacle(ViewWidth, GroundY, ObstacleSize),
		ground:       &object.Ground{Y: GroundY, Width: ViewWidth},
		canvas:       canvas,
		chunkWriter:  draw.NewChunkWriter(w, offsetCol, offsetRow),
		termSizeFunc: termSizeFunc,
		styles:       newStyles(renderer),
		now:          now,
		lastInput:    now,
		running:      true,
	}
	h.session = game.NewSession(opts.Tuning, h.sched, h, h, game.Options{Logger: logger})
	h.snap = h.session.Snapshot()
	h.hero.OnLanded = h.session.JumpCompleted
	h.obstacle.OnCycleDone = h.session.ObstacleCycleCompleted
	return h
}

// Run starts the frame loop. Blocks until the player quits, the input stream
// closes or the inactivity limit is reached.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	h := NewHost(w, opts, time.Now())
	stream := input.StartStream(r)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	for h.Running() {
		frameStart := time.Now()

		h.Frame(frameStart, input.ReadInput(stream))
		if err := h.Draw(); err != nil {
			return err
		}

		// Sleep until the next frame, or earlier if a timer is due before it.
		sleep := TargetFrameTime - time.Since(frameStart)
		if next, ok := h.sched.Next(); ok {
			sleep = min(sleep, time.Until(next))
		}
		if sleep > 0 {
			time.Sleep(sleep)
		}
	}

	h.log.Debug("frame loop stopped", "phase", h.session.Phase(), "xp", h.snap.Experience)
	draw.ClearScreen(w)
	return nil
}

// Running reports whether the loop should keep going.
func (h *Host) Running() bool {
	return h.running
}

// Session exposes the hosted session.
func (h *Host) Session() *game.Session {
	return h.session
}

// Frame advances the host to now: input first, then animation, then due timers.
func (h *Host) Frame(now time.Time, in input.Input) {
	delta := now.Sub(h.now)
	h.now = now

	h.processInput(in)
	if !h.running {
		return
	}
	h.updateScreen()
	h.animate(delta)
	h.sched.RunDue(now)
}

func (h *Host) processInput(in input.Input) {
	if in.Interrupt || in.Closed {
		h.running = false
		return
	}

	phase := h.session.Phase()
	if len(in.Pressed) > 0 && h.inactive {
		// The key that dismisses the warning does nothing else.
		h.lastInput = h.now
		h.inactive = false
		return
	}
	if len(in.Pressed) > 0 || phase == game.PhaseRunning || phase == game.PhaseGrace {
		h.lastInput = h.now
	}
	if h.opts.InactivityDisconnect > 0 && h.now.Sub(h.lastInput) > h.opts.InactivityDisconnect {
		h.log.Debug("disconnecting inactive player", "idle", h.now.Sub(h.lastInput))
		h.running = false
		return
	}
	if h.opts.InactivityWarn > 0 && h.now.Sub(h.lastInput) > h.opts.InactivityWarn {
		h.inactive = true
	}

	switch phase {
	case game.PhaseSetup:
		h.name.Type(in.Typed)
		if in.Enter {
			h.start()
		}
	case game.PhaseRunning, game.PhaseGrace:
		switch {
		case in.Quit:
			h.running = false
		case in.Escape:
			h.backToSetup()
		case in.Jump:
			h.session.Jump()
		}
	case game.PhaseEnded:
		switch {
		case in.Quit:
			h.running = false
		case in.Enter || in.Space:
			h.backToSetup()
		}
	}
}

func (h *Host) start() {
	err := h.session.Start(h.name.String())
	switch {
	case err == nil:
		h.message = ""
		h.result = nil
	case errors.Is(err, game.ErrEmptyHeroName):
		h.message = "Enter a hero name to start"
	default:
		h.message = err.Error()
	}
}

func (h *Host) backToSetup() {
	h.session.Restart()
	h.name.Set(h.session.State().HeroName)
	h.result = nil
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area (e.g. old borders or offset content).
func (h *Host) updateScreen() {
	termWidth, termHeight, err := h.termSizeFunc()
	if err != nil || termWidth <= 0 || termHeight <= 0 {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth != h.canvas.TerminalWidth() || renderHeight != h.canvas.TerminalHeight() ||
		offsetCol != h.canvas.OffsetCol() || offsetRow != h.canvas.OffsetRow() {
		h.chunkWriter.ClearScreen()
		h.prevScreen = screenNone
	}

	h.canvas.Resize(renderWidth, renderHeight)
	h.canvas.SetOffset(offsetCol, offsetRow)
	h.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(termWidth, MaxTermWidth)
	renderHeight = min(termHeight, MaxTermHeight)
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}

// animate moves every sprite by delta. Sprite callbacks may call into the session.
func (h *Host) animate(delta time.Duration) {
	ctx := object.UpdateContext{Delta: delta, Spawner: h}

	_, _ = h.hero.Update(ctx)
	_, _ = h.obstacle.Update(ctx)

	kept := h.effects[:0]
	for _, obj := range h.effects {
		remove, err := obj.Update(ctx)
		if err != nil {
			h.log.Warn("effect update", "err", err)
		}
		if remove {
			object.ReleaseObject(obj)
			continue
		}
		kept = append(kept, obj)
	}
	h.effects = append(kept, h.toSpawn...)
	h.toSpawn = h.toSpawn[:0]
}

// Spawn queues an effect to be added after the current update.
func (h *Host) Spawn(obj object.Object) {
	h.toSpawn = append(h.toSpawn, obj)
}

// Render stores the snapshot the next frame draws from.
func (h *Host) Render(s game.Snapshot) {
	h.snap = s
}

// ObstacleVisual starts or stops the obstacle traversal.
func (h *Host) ObstacleVisual(c game.ObstacleCommand) {
	switch {
	case !c.Visible:
		h.obstacle.Hide()
	case c.Restart || !h.obstacle.Moving():
		h.obstacle.Launch(c.CycleSeconds)
	}
}

// HeroVisual starts or cancels the jump arc and the hit animation.
func (h *Host) HeroVisual(c game.HeroCommand) {
	if c.Jumping {
		h.hero.Jump()
	} else {
		h.hero.Land()
	}
	h.hero.SetHit(c.Hit)
}

// SessionEnded keeps the final report for the game over screen.
func (h *Host) SessionEnded(r game.Result) {
	h.result = &r
	h.log.Debug("session ended", "hero", r.HeroName, "rank", r.Rank, "xp", r.Experience)
}

// CurrentBounds reports sprite geometry to the collision check.
func (h *Host) CurrentBounds() game.Bounds {
	return game.Bounds{Hero: h.hero.Bounds(), Obstacle: h.obstacle.Bounds()}
}
