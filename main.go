package main

import (
	"image"
	"log"

	"github.com/playpop/wordpop/config"
	"github.com/playpop/wordpop/fonts"
	"github.com/playpop/wordpop/scenes"
	"github.com/playpop/wordpop/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	fonts.LoadFontWithSize(fonts.HUD, goregular.TTF, config.HUD.FontSize)
	fonts.LoadFontWithSize(fonts.Letter, goregular.TTF, config.Balloon.FontSize)
	fonts.LoadFontWithSize(fonts.Message, goregular.TTF, config.Message.FontSize)
	fonts.LoadFontWithSize(fonts.Title, goregular.TTF, 48)

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewIntroScene(g)

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.Menu.Title)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(saved)
	}

	systems.InitAudio()

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
