package loop

import "github.com/tomz197/herojump/internal/game"

// screen is what the terminal is currently showing. A change of screen
// triggers a full clear so text from the previous one does not persist.
type screen int

const (
	screenNone screen = iota
	screenSetup
	screenPlaying
	screenGameOver
	screenInactive
)

func screenFor(phase game.Phase, inactive bool) screen {
	if inactive {
		return screenInactive
	}
	switch phase {
	case game.PhaseRunning, game.PhaseGrace:
		return screenPlaying
	case game.PhaseEnded:
		return screenGameOver
	default:
		return screenSetup
	}
}

// nameField is the hero name being typed on the setup screen.
type nameField struct {
	runes []rune
}

// Type applies typed runes in order: '\b' erases, anything else is appended
// while the field has room.
func (f *nameField) Type(rs []rune) {
	for _, r := range rs {
		switch {
		case r == '\b':
			f.Backspace()
		case len(f.runes) < MaxNameLength:
			f.runes = append(f.runes, r)
		}
	}
}

// Backspace removes the last rune.
func (f *nameField) Backspace() {
	if len(f.runes) > 0 {
		f.runes = f.runes[:len(f.runes)-1]
	}
}

// Set replaces the field content, truncating to MaxNameLength.
func (f *nameField) Set(s string) {
	f.runes = f.runes[:0]
	f.Type([]rune(s))
}

func (f *nameField) String() string {
	return string(f.runes)
}
