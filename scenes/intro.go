package scenes

import (
	"image/color"
	"sync"

	"github.com/playpop/wordpop/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// IntroScene is the title screen. No gameplay systems run while it is
// active; the game loop only exists inside PlayingScene.
type IntroScene struct {
	sceneChanger SceneChanger
	introUI      *ui.IntroUI
	once         sync.Once
	shouldPlay   bool
}

// NewIntroScene creates the intro scene
func NewIntroScene(sc SceneChanger) *IntroScene {
	return &IntroScene{sceneChanger: sc}
}

func (is *IntroScene) Update() {
	is.once.Do(is.configure)

	is.introUI.Update()

	if is.shouldPlay {
		is.sceneChanger.ChangeScene(NewPlayingScene(is.sceneChanger))
	}
}

func (is *IntroScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{70, 130, 200, 255})

	if is.introUI == nil {
		return
	}
	is.introUI.UI.Draw(screen)
}

func (is *IntroScene) configure() {
	is.introUI = ui.NewIntroUI(func() { is.shouldPlay = true })
}
