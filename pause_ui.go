package main

import (
	"image/color"
	"log"
	"sync"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/eliko/common"
	"github.com/milk9111/eliko/ecs"
	"golang.design/x/clipboard"
	"golang.org/x/image/font/basicfont"
)

var (
	clipboardOnce sync.Once
	clipboardErr  error
)

// Menu is the overlay shown while paused and after game over.
type Menu struct {
	g  *Game
	ui *ebitenui.UI

	title   *widget.Text
	summary *widget.Text

	resume  *widget.Button
	mute    *widget.Button
	restart *widget.Button
	lang    *widget.Button
	copy    *widget.Button

	copied bool
}

// NewMenu builds a centered panel of colored nine-slice buttons labelled
// with the built-in basic font, so no theme fonts need loading.
func NewMenu(g *Game) *Menu {
	m := &Menu{g: g}

	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x0b, G: 0x12, B: 0x20, A: 210})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x1e, G: 0x3a, B: 0x5f, A: 255})
	btnHover := imageui.NewNineSliceColor(color.NRGBA{R: 0x25, G: 0x63, B: 0xeb, A: 255})

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	m.title = widget.NewText(
		widget.TextOpts.Text("", &face, white),
		widget.TextOpts.WidgetOpts(center),
	)
	m.summary = widget.NewText(
		widget.TextOpts.Text("", &face, color.NRGBA{R: 0xfd, G: 0xe0, B: 0x47, A: 0xff}),
		widget.TextOpts.WidgetOpts(center),
	)

	button := func(onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: btnHover, Pressed: btnHover}),
			widget.ButtonOpts.Text("", &face, btnTextColor),
			widget.ButtonOpts.TextPadding(&widget.Insets{Left: 16, Right: 16, Top: 6, Bottom: 6}),
			widget.ButtonOpts.WidgetOpts(center),
			widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) { onClick() }),
		)
	}
	m.resume = button(g.TogglePause)
	m.mute = button(g.ToggleMute)
	m.restart = button(g.Restart)
	m.lang = button(g.CycleLanguage)
	m.copy = button(m.copyScore)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/2, common.BaseHeight/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(m.title, m.summary, m.resume, m.restart, m.mute, m.lang, m.copy)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)

	m.ui = &ebitenui.UI{Container: root}
	m.Refresh()
	return m
}

// Refresh relabels the overlay for the current language and state.
func (m *Menu) Refresh() {
	s := Lookup(m.g.lang())
	over := m.g.world.State == ecs.GameOver

	m.title.Label = s.HUD.Paused
	m.summary.Label = ""
	if over {
		m.title.Label = s.HUD.GameOver
		m.summary.Label = m.g.Summary()
	}

	m.resume.GetWidget().Visibility = widget.Visibility_Show
	if over {
		m.resume.GetWidget().Visibility = widget.Visibility_Hide
	}

	m.resume.SetText(s.Resume)
	m.restart.SetText(s.Restart)
	m.lang.SetText(s.Language)
	if m.g.settings.Muted {
		m.mute.SetText(s.Unmute)
	} else {
		m.mute.SetText(s.Mute)
	}
	if m.copied && over {
		m.copy.SetText(s.Copied)
	} else {
		m.copied = false
		m.copy.SetText(s.CopyScore)
	}
}

func (m *Menu) Update() {
	m.ui.Update()
}

func (m *Menu) Draw(screen *ebiten.Image) {
	m.ui.Draw(screen)
}

func (m *Menu) copyScore() {
	clipboardOnce.Do(func() {
		clipboardErr = clipboard.Init()
		if clipboardErr != nil {
			log.Printf("menu: clipboard unavailable: %v", clipboardErr)
		}
	})
	if clipboardErr != nil {
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(m.g.Summary()))
	m.copied = true
	m.Refresh()
}
