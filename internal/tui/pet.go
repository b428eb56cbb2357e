package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/yamakei/pawdoro/internal/engine"
)

// appearanceKind tags how a mode's pet is rendered.
type appearanceKind int

const (
	appearanceAnimated appearanceKind = iota
	appearanceStatic
	appearancePlaceholder
)

// appearance is the resolved look for one mode: an animated frame set,
// a single static frame, or a placeholder glyph.
type appearance struct {
	kind   appearanceKind
	frames []string
	art    string
	glyph  string
	// stride is how many heartbeats pass between frame advances, so
	// each mode keeps its own animation speed on the shared one-second
	// tick.
	stride int
}

var petFrames = map[engine.Mode][]string{
	engine.ModeCoding: {
		"  /\\_/\\\n ( o.o )  ⌨\n  > ^ <",
		"  /\\_/\\\n ( o.o ) ⌨\n  > ^ <~",
		"  /\\_/\\\n ( -.- )  ⌨\n  > ^ <",
	},
	engine.ModeWorkout: {
		"  /\\_/\\\n ( >o< )\n  /|_|\\",
		"  /\\_/\\\n ( >o< )\n \\_|_|_/",
		"  /\\_/\\\n ( >~< )\n  /|_|\\",
	},
	engine.ModePTE: {
		"  /\\_/\\\n ( o.o )  📖\n  > - <",
		"  /\\_/\\\n ( o.o ) 📖\n  > - <",
		"  /\\_/\\\n ( ^.^ )  📖\n  > - <",
	},
}

var petStatic = map[engine.Mode]string{
	engine.ModeJobApps: "  /\\_/\\\n ( o_o )  ✉\n  >===<",
}

var petStrides = map[engine.Mode]int{
	engine.ModeCoding:  1,
	engine.ModePTE:     3,
	engine.ModeJobApps: 3,
}

const defaultStride = 2

// resolveAppearance walks the fallback chain once per mode change:
// animated frames, else static art, else a placeholder glyph.
func resolveAppearance(mode engine.Mode) appearance {
	stride, ok := petStrides[mode]
	if !ok {
		stride = defaultStride
	}

	if frames, ok := petFrames[mode]; ok && len(frames) > 0 {
		return appearance{kind: appearanceAnimated, frames: frames, stride: stride}
	}
	if art, ok := petStatic[mode]; ok && art != "" {
		return appearance{kind: appearanceStatic, art: art, stride: stride}
	}
	return appearance{kind: appearancePlaceholder, glyph: "🐶", stride: stride}
}

// pingPongIndex maps a monotonically increasing step onto the sequence
// 0,1,...,n-1,n-2,...,1,0,1,... so the animation sweeps back and forth.
func pingPongIndex(step, n int) int {
	if n <= 1 {
		return 0
	}
	period := 2 * (n - 1)
	pos := step % period
	if pos >= n {
		pos = period - pos
	}
	return pos
}

// petModel renders the companion for the active mode.
type petModel struct {
	mode engine.Mode
	look appearance
	step int
	tick int
}

func newPetModel(mode engine.Mode) petModel {
	return petModel{mode: mode, look: resolveAppearance(mode)}
}

// setMode re-resolves the appearance; a no-op when the mode is
// unchanged so the animation does not restart on every refresh.
func (p *petModel) setMode(mode engine.Mode) {
	if mode == p.mode {
		return
	}
	p.mode = mode
	p.look = resolveAppearance(mode)
	p.step = 0
	p.tick = 0
}

// advance moves the animation forward by one heartbeat.
func (p *petModel) advance() {
	if p.look.kind != appearanceAnimated {
		return
	}
	p.tick++
	if p.tick%p.look.stride == 0 {
		p.step++
	}
}

func (p *petModel) currentFrame() string {
	switch p.look.kind {
	case appearanceAnimated:
		return p.look.frames[pingPongIndex(p.step, len(p.look.frames))]
	case appearanceStatic:
		return p.look.art
	default:
		return p.look.glyph
	}
}

func (p petModel) view() string {
	return lipgloss.NewStyle().
		Foreground(modeColor(p.mode)).
		Render(p.currentFrame())
}
