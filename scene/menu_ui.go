package scene

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/troligtvis/lavafloor/common"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	titleColor = color.NRGBA{R: 192, G: 128, B: 64, A: 255}
	hintColor  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

var (
	titleFace ebtext.Face
	hintFace  ebtext.Face
)

// menuFaces loads the menu fonts, falling back to the built-in bitmap font.
func menuFaces() (ebtext.Face, ebtext.Face) {
	if titleFace != nil {
		return titleFace, hintFace
	}
	src, err := ebtext.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		fallback := ebtext.NewGoXFace(basicfont.Face7x13)
		titleFace, hintFace = fallback, fallback
		return titleFace, hintFace
	}
	titleFace = &ebtext.GoTextFace{Source: src, Size: 56}
	hintFace = &ebtext.GoTextFace{Source: src, Size: 36}
	return titleFace, hintFace
}

// newMenuUI builds the title panel centered on screen.
func newMenuUI() *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x10, G: 0x08, B: 0x04, A: 255})

	face, _ := menuFaces()

	title := widget.NewText(
		widget.TextOpts.Text(menuTitle, &face, titleColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 40, Bottom: 40, Left: 60, Right: 60}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(title)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}

// drawHint draws text centered below the title panel with the given opacity.
func drawHint(screen *ebiten.Image, s string, alpha float32) {
	_, face := menuFaces()
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(common.BaseWidth/2, common.BaseHeight/2+90)
	op.ColorScale.ScaleWithColor(hintColor)
	op.ColorScale.ScaleAlpha(alpha)
	op.PrimaryAlign = ebtext.AlignCenter
	ebtext.Draw(screen, s, face, op)
}
