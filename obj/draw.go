package obj

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"
)

var (
	PlatformColor = colornames.Slategray
	PlayerColor   = colornames.Crimson
)

// DrawBox fills bb shifted by offset.
func DrawBox(screen *ebiten.Image, bb cp.BB, offset cp.Vector, clr color.Color) {
	x := bb.L + offset.X
	y := bb.B + offset.Y
	vector.FillRect(screen, float32(x), float32(y), float32(bb.R-bb.L), float32(bb.T-bb.B), clr, false)
}

func (p *Platform) Draw(screen *ebiten.Image, offset cp.Vector) {
	DrawBox(screen, p.bounds, offset, PlatformColor)
}

func (p *Player) Draw(screen *ebiten.Image, offset cp.Vector) {
	DrawBox(screen, p.Bounds(), offset, PlayerColor)
}
