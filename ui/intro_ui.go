package ui

import (
	"bytes"
	"fmt"
	"image/color"

	cfg "github.com/playpop/wordpop/config"
	"github.com/playpop/wordpop/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// IntroUI holds the ebitenui interface for the intro screen
type IntroUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnPlay func()

	// Widget references for updates
	cloudsButton     *widget.Button
	soundButton      *widget.Button
	fullscreenButton *widget.Button

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face

	initialized bool
}

// NewIntroUI creates the intro screen UI
func NewIntroUI(onPlay func()) *IntroUI {
	iui := &IntroUI{
		OnPlay: onPlay,
	}

	iui.loadFonts()
	iui.buildUI()

	return iui
}

func (iui *IntroUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	iui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   42,
	}
	iui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   16,
	}
}

func (iui *IntroUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text(cfg.Menu.Title, &iui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	subtitleLabel := widget.NewLabel(
		widget.LabelOpts.Text(cfg.Menu.Subtitle, &iui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{220, 235, 255, 255},
		}),
	)
	contentContainer.AddChild(subtitleLabel)

	playButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(160, 36),
		),
		widget.ButtonOpts.Image(iui.playButtonImage()),
		widget.ButtonOpts.Text("PLAY", &iui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			iui.OnPlay()
		}),
	)
	contentContainer.AddChild(playButton)

	iui.cloudsButton = iui.toggleButton("", func() {
		systems.CloudsEnabled = !systems.CloudsEnabled
		systems.SaveCurrentSettings()
		iui.UpdateUI()
	})
	contentContainer.AddChild(iui.cloudsButton)

	iui.soundButton = iui.toggleButton("", func() {
		systems.SoundEnabled = !systems.SoundEnabled
		systems.SaveCurrentSettings()
		iui.UpdateUI()
	})
	contentContainer.AddChild(iui.soundButton)

	iui.fullscreenButton = iui.toggleButton("", func() {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
		systems.SaveCurrentSettings()
		iui.UpdateUI()
	})
	contentContainer.AddChild(iui.fullscreenButton)

	rootContainer.AddChild(contentContainer)

	iui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (iui *IntroUI) toggleButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(160, 28),
		),
		widget.ButtonOpts.Image(iui.buttonImage()),
		widget.ButtonOpts.Text(label, &iui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (iui *IntroUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 90, 140, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 115, 170, 255})
	pressed := image.NewNineSliceColor(color.RGBA{45, 70, 110, 255})

	return &widget.ButtonImage{
		Idle:    idle,
		Hover:   hover,
		Pressed: pressed,
	}
}

func (iui *IntroUI) playButtonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{40, 120, 50, 255})
	hover := image.NewNineSliceColor(color.RGBA{60, 150, 70, 255})
	pressed := image.NewNineSliceColor(color.RGBA{30, 95, 40, 255})

	return &widget.ButtonImage{
		Idle:    idle,
		Hover:   hover,
		Pressed: pressed,
	}
}

// UpdateUI refreshes the toggle labels from the live settings.
func (iui *IntroUI) UpdateUI() {
	if tw := iui.cloudsButton.Text(); tw != nil {
		tw.Label = fmt.Sprintf("CLOUDS: %s", onOff(systems.CloudsEnabled))
	}
	if tw := iui.soundButton.Text(); tw != nil {
		tw.Label = fmt.Sprintf("SOUND: %s", onOff(systems.SoundEnabled))
	}
	if tw := iui.fullscreenButton.Text(); tw != nil {
		tw.Label = fmt.Sprintf("FULLSCREEN: %s", onOff(ebiten.IsFullscreen()))
	}
}

func onOff(v bool) string {
	if v {
		return "ON"
	}
	return "OFF"
}

// Update runs the ebitenui event pass each frame.
func (iui *IntroUI) Update() {
	iui.UI.Update()
	// Update UI state on first frame after widgets are validated
	if !iui.initialized {
		iui.initialized = true
		iui.UpdateUI()
	}
}
