package ui

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

// GameOverPanel is the centered win/lose panel with a Restart button
type GameOverPanel struct {
	ui     *ebitenui.UI
	title  *widget.Text
	detail *widget.Text

	restartClicked bool
}

// NewGameOverPanel builds the panel for a screen of the given size
func NewGameOverPanel(screenW, screenH int) *GameOverPanel {
	p := &GameOverPanel{}

	panelImg := imageui.NewNineSliceColor(color.NRGBA{A: 200})
	btnIdle := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x55, A: 255})
	btnHover := imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x88, A: 255})

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	p.title = widget.NewText(
		widget.TextOpts.Text("", &face, colornames.White),
		widget.TextOpts.WidgetOpts(center),
	)
	p.detail = widget.NewText(
		widget.TextOpts.Text("", &face, colornames.Lightgray),
		widget.TextOpts.WidgetOpts(center),
	)

	restartBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnIdle, Hover: btnHover, Pressed: btnHover}),
		widget.ButtonOpts.Text("Restart (R)", &face, &widget.ButtonTextColor{Idle: colornames.White}),
		widget.ButtonOpts.WidgetOpts(center),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			p.restartClicked = true
		}),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(12),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(screenW/3, screenH/4),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	panel.AddChild(p.title)
	panel.AddChild(p.detail)
	panel.AddChild(restartBtn)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)

	p.ui = &ebitenui.UI{Container: root}
	return p
}

// SetResult updates the panel text for a finished round
func (p *GameOverPanel) SetResult(won bool, score int) {
	p.title.Label, p.detail.Label = ResultText(won, score)
	p.restartClicked = false
}

// Update processes mouse input for the panel
func (p *GameOverPanel) Update() {
	p.ui.Update()
}

// Draw renders the panel on top of the frame
func (p *GameOverPanel) Draw(screen *ebiten.Image) {
	p.ui.Draw(screen)
}

// RestartClicked reports and clears a click on the Restart button
func (p *GameOverPanel) RestartClicked() bool {
	clicked := p.restartClicked
	p.restartClicked = false
	return clicked
}

// ResultText returns the panel title and detail line
func ResultText(won bool, score int) (title, detail string) {
	if won {
		return "YOU WIN!", fmt.Sprintf("All coins collected - score %d", score)
	}
	return "GAME OVER", fmt.Sprintf("Final score %d", score)
}
