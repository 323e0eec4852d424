package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"os"

	cfg "github.com/automoto/trajectory/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// MenuUI holds the ebitenui interface for the main menu
type MenuUI struct {
	UI *ebitenui.UI

	// OnSelect is called with the variant the player picked.
	OnSelect func(cfg.VariantID)

	preferred cfg.VariantID
	hintLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewMenuUI creates the main menu. preferred is highlighted as the
// default choice.
func NewMenuUI(preferred cfg.VariantID, onSelect func(cfg.VariantID)) *MenuUI {
	mui := &MenuUI{
		OnSelect:  onSelect,
		preferred: preferred,
	}

	mui.loadFonts()
	mui.buildUI()

	return mui
}

func (mui *MenuUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	mui.titleFace = &text.GoTextFace{Source: fontSource, Size: 48}
	mui.normalFace = &text.GoTextFace{Source: fontSource, Size: 22}
	mui.smallFace = &text.GoTextFace{Source: fontSource, Size: 14}
}

func (mui *MenuUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{10, 10, 25, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("TRAJECTORY", &mui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))

	for _, entry := range cfg.SettingsMenu.Entries {
		contentContainer.AddChild(mui.variantButton(entry))
	}

	mui.hintLabel = widget.NewLabel(
		widget.LabelOpts.Text(mui.hintFor(mui.preferred), &mui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{180, 180, 200, 255},
		}),
	)
	contentContainer.AddChild(mui.hintLabel)

	if cfg.Debug.Seed != 0 {
		contentContainer.AddChild(widget.NewLabel(
			widget.LabelOpts.Text(fmt.Sprintf("seed %d", cfg.Debug.Seed), &mui.smallFace, &widget.LabelColor{
				Idle: color.RGBA{120, 120, 140, 255},
			}),
		))
	}

	contentContainer.AddChild(widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(220, 40)),
		widget.ButtonOpts.Image(mui.buttonImage(false)),
		widget.ButtonOpts.Text("Exit", &mui.normalFace, mui.buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			os.Exit(0)
		}),
	))

	rootContainer.AddChild(contentContainer)

	mui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (mui *MenuUI) variantButton(entry cfg.MenuEntry) *widget.Button {
	v := entry.Variant
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(220, 40),
			widget.WidgetOpts.CursorEnterHandler(func(args *widget.WidgetCursorEnterEventArgs) {
				mui.hintLabel.Label = mui.hintFor(v)
			}),
		),
		widget.ButtonOpts.Image(mui.buttonImage(v == mui.preferred)),
		widget.ButtonOpts.Text(entry.Label, &mui.normalFace, mui.buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if mui.OnSelect != nil {
				mui.OnSelect(v)
			}
		}),
	)
}

func (mui *MenuUI) hintFor(v cfg.VariantID) string {
	for _, e := range cfg.SettingsMenu.Entries {
		if e.Variant == v {
			return e.Hint
		}
	}
	return ""
}

func (mui *MenuUI) buttonImage(highlight bool) *widget.ButtonImage {
	idle := color.RGBA{60, 60, 80, 255}
	if highlight {
		idle = color.RGBA{40, 100, 40, 255}
	}
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(idle),
		Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

func (mui *MenuUI) buttonTextColor() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{
		Idle:    color.RGBA{255, 255, 255, 255},
		Hover:   color.RGBA{255, 255, 200, 255},
		Pressed: color.RGBA{200, 200, 200, 255},
	}
}

// Update runs the ebitenui input handling
func (mui *MenuUI) Update() {
	mui.UI.Update()
}

// Draw renders the menu
func (mui *MenuUI) Draw(screen *ebiten.Image) {
	mui.UI.Draw(screen)
}
