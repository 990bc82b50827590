package scene

import (
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/troligtvis/lavafloor/obj"
)

const (
	menuTitle = "Lava floor"
	menuHint  = "Press space to begin"
)

// Menu is the title screen. Space starts the level.
type Menu struct {
	ui    *ebitenui.UI
	pulse *gween.Sequence
	alpha float32
	done  bool
}

func NewMenu() *Menu {
	pulse := gween.NewSequence(
		gween.New(1, 0.35, 0.9, ease.InOutQuad),
		gween.New(0.35, 1, 0.9, ease.InOutQuad),
	)
	pulse.SetLoop(-1)
	return &Menu{pulse: pulse, alpha: 1}
}

func (m *Menu) Name() string {
	return "menu"
}

func (m *Menu) Update(dt float64) Transition {
	m.alpha, _, _ = m.pulse.Update(float32(dt))
	if m.ui != nil {
		m.ui.Update()
	}
	if m.done {
		return SwitchTo(KindLevel)
	}
	return Stay()
}

func (m *Menu) HandleKey(ev obj.KeyEvent) {
	if ev.Key == ebiten.KeySpace && ev.Pressed && !ev.Repeat {
		m.done = true
	}
}

// HintAlpha is the current opacity of the start hint.
func (m *Menu) HintAlpha() float32 {
	return m.alpha
}

func (m *Menu) Draw(screen *ebiten.Image) {
	if m.ui == nil {
		m.ui = newMenuUI()
	}
	m.ui.Draw(screen)
	drawHint(screen, menuHint, m.alpha)
}
