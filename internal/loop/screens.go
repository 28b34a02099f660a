package loop

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tomz197/herojump/internal/game"
	"github.com/tomz197/herojump/internal/level"
	"github.com/tomz197/herojump/internal/object"
)

type styles struct {
	title    lipgloss.Style
	subtitle lipgloss.Style
	label    lipgloss.Style
	value    lipgloss.Style
	warn     lipgloss.Style
	prompt   lipgloss.Style
	field    lipgloss.Style
	panel    lipgloss.Style
	line     lipgloss.Style // Fixed-width centered line, overwrites what was there
}

func newStyles(r *lipgloss.Renderer) styles {
	gold := lipgloss.Color("#FFD166")
	return styles{
		title:    r.NewStyle().Bold(true).Foreground(gold),
		subtitle: r.NewStyle().Italic(true).Foreground(lipgloss.Color("#8D99AE")),
		label:    r.NewStyle().Foreground(lipgloss.Color("#8D99AE")),
		value:    r.NewStyle().Bold(true),
		warn:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF476F")),
		prompt:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#06D6A0")),
		field: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(gold).
			Padding(0, 1).
			Width(MaxNameLength + 3),
		panel: r.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(gold).
			Padding(1, 4).
			Align(lipgloss.Center),
		line: r.NewStyle().Width(44).Align(lipgloss.Center),
	}
}

// figlet "small"
var titleArt = []string{
	`  _  _  ___  ___   ___         _  _   _  __  __  ___  `,
	` | || || __|| _ \ / _ \     _ | || | | ||  \/  || _ \ `,
	` | __ || _| |   /| (_) |   | || || |_| || |\/| ||  _/ `,
	` |_||_||___||_|_\ \___/     \__/  \___/ |_|  |_||_|   `,
}

var gameOverArt = []string{
	`   ___   _   __  __ ___    _____   _____ ___  `,
	`  / __| /_\ |  \/  | __|  / _ \ \ / / __| _ \ `,
	` | (_ |/ _ \| |\/| | _|  | (_) \ V /| _||   / `,
	`  \___/_/ \_\_|  |_|___|  \___/ \_/ |___|_|_\ `,
}

// Draw writes the current frame to the terminal.
func (h *Host) Draw() error {
	// On screen transitions, do a full terminal clear
	// so UI elements from the previous screen don't persist.
	scr := screenFor(h.session.Phase(), h.inactive)
	if scr != h.prevScreen {
		h.chunkWriter.ClearScreen()
		h.canvas.ForceRedraw()
		h.prevScreen = scr
	}

	h.canvas.Clear()
	ctx := object.DrawContext{Canvas: h.canvas}
	sprites := []object.Object{h.ground, h.obstacle, h.hero}
	for _, obj := range append(sprites, h.effects...) {
		if err := obj.Draw(ctx); err != nil {
			return err
		}
	}
	h.canvas.Render(h.chunkWriter)

	// Draw border when terminal exceeds max render resolution
	h.canvas.RenderBorder(h.chunkWriter)

	h.drawUI(scr)
	return h.chunkWriter.Flush()
}

// drawUI draws the text overlay for the current screen.
func (h *Host) drawUI(scr screen) {
	width := h.canvas.TerminalWidth()
	centerY := h.canvas.TerminalHeight() / 2

	switch scr {
	case screenSetup:
		h.drawSetupScreen(width, centerY)
	case screenPlaying:
		h.drawPlayingHUD(width)
	case screenGameOver:
		h.drawGameOverScreen(width, centerY)
	case screenInactive:
		h.drawInactivityScreen(width, centerY)
	}
}

// blinkOn drives blinking prompts and the name cursor.
func (h *Host) blinkOn() bool {
	return h.now.UnixMilli()/600%2 == 0
}

// drawSetupScreen draws the title, the name field and the controls.
func (h *Host) drawSetupScreen(width, centerY int) {
	cw := h.chunkWriter
	row := max(centerY-11, 1)

	cw.WriteCentered(width, row, h.styles.title.Render(strings.Join(titleArt, "\n")))
	row += len(titleArt) + 1

	cw.WriteCentered(width, row, h.styles.subtitle.Render("~ Jump the obstacles, climb the ranks ~"))
	row += 2

	cw.WriteCentered(width, row, h.styles.label.Render("Hero name"))
	row++

	cursor := " "
	if h.blinkOn() {
		cursor = "_"
	}
	cw.WriteCentered(width, row, h.styles.field.Render(h.name.String()+cursor))
	row += 3

	cw.WriteCentered(width, row, h.styles.line.Inherit(h.styles.warn).Render(h.message))
	row += 2

	controls := []string{
		"SPACE/W/K/Up  . . . . Jump",
		"ESC  . . . .  Back to menu",
		"Ctrl-C  . . . . . . . Quit",
	}
	cw.WriteCentered(width, row, strings.Join(controls, "\n"))
	row += len(controls) + 1

	prompt := ""
	if h.blinkOn() {
		prompt = ">>  Type your name and press ENTER  <<"
	}
	cw.WriteCentered(width, row, h.styles.line.Inherit(h.styles.prompt).Render(prompt))
}

// drawPlayingHUD draws hero, experience, rank and lives.
// Text fields use fixed-width formatting so shrinking values don't leave
// residual characters on screen.
func (h *Host) drawPlayingHUD(width int) {
	cw := h.chunkWriter
	s := h.snap

	left := h.styles.label.Render("Hero ") + h.styles.value.Width(MaxNameLength).Render(s.HeroName)
	cw.WriteAt(2, 1, left)

	center := fmt.Sprintf("%s %-7d %s %-10s",
		h.styles.label.Render("XP"), s.Experience,
		h.styles.label.Render("Rank"), s.Rank)
	cw.WriteAt(max((width-lipgloss.Width(center))/2+1, 1), 1, center)

	lives := h.styles.label.Render("Lives ") + hearts(s.Lives, s.MaxLives)
	cw.WriteAt(max(width-lipgloss.Width(lives), 1), 1, lives)

	hint := nextRankHint(s.Experience)
	switch {
	case s.Invincible:
		hint = h.styles.warn.Render("Ouch! Invincible for a moment")
	case s.LastLife:
		hint = h.styles.warn.Render("LAST LIFE!")
	}
	cw.WriteCentered(width, 2, h.styles.line.Render(hint))
}

func hearts(lives, maxLives int) string {
	lives = max(lives, 0)
	return strings.TrimSpace(strings.Repeat("♥ ", lives) + strings.Repeat("♡ ", max(maxLives-lives, 0)))
}

func nextRankHint(xp int) string {
	name, remaining, ok := level.Next(xp)
	if !ok {
		return "Top rank reached"
	}
	return fmt.Sprintf("%d XP to %s", remaining, name)
}

// finalReport is the one-line result shown when the session ends.
func finalReport(r game.Result) string {
	return fmt.Sprintf("Game Over! Rank: %s | XP: %d", r.Rank, r.Experience)
}

// drawGameOverScreen draws the final rank and experience.
func (h *Host) drawGameOverScreen(width, centerY int) {
	cw := h.chunkWriter
	row := max(centerY-9, 1)

	cw.WriteCentered(width, row, h.styles.warn.Render(strings.Join(gameOverArt, "\n")))
	row += len(gameOverArt) + 1

	result := game.Result{HeroName: h.snap.HeroName, Rank: h.snap.Rank, Experience: h.snap.Experience}
	if h.result != nil {
		result = *h.result
	}
	panel := h.styles.panel.Render(lipgloss.JoinVertical(lipgloss.Center,
		h.styles.label.Render("Hero ")+h.styles.value.Render(result.HeroName),
		"",
		h.styles.title.Render(finalReport(result)),
	))
	cw.WriteCentered(width, row, panel)
	row += lipgloss.Height(panel) + 1

	prompt := ""
	if h.blinkOn() {
		prompt = ">>  Press ENTER to play again  <<"
	}
	cw.WriteCentered(width, row, h.styles.line.Inherit(h.styles.prompt).Render(prompt))
	cw.WriteCentered(width, row+2, "Q to quit")
}

// drawInactivityScreen draws the inactivity warning screen.
func (h *Host) drawInactivityScreen(width, centerY int) {
	cw := h.chunkWriter
	cw.WriteCentered(width, centerY-2, h.styles.warn.Render("INACTIVITY WARNING"))

	left := int((h.opts.InactivityDisconnect - h.now.Sub(h.lastInput)).Seconds())
	msg := fmt.Sprintf("You have been inactive for too long. You will be disconnected in %3d seconds.", max(left, 0))
	cw.WriteCentered(width, centerY, msg)

	cw.WriteCentered(width, centerY+2, "Press any key to continue")
}
