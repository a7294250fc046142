package scenes

import (
	"math/rand"
	"sync"
	"time"

	"github.com/playpop/wordpop/assets"
	cfg "github.com/playpop/wordpop/config"
	"github.com/playpop/wordpop/systems"
	"github.com/playpop/wordpop/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlayingScene runs the actual game: spawn, motion, hit-testing, HUD.
// Leaving the scene discards its ECS entirely, so no gameplay callback can
// outlive the session.
type PlayingScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewPlayingScene creates a fresh playing scene. Session state starts from
// scratch every time: score zero, baseline speed, empty pool.
func NewPlayingScene(sc SceneChanger) *PlayingScene {
	return &PlayingScene{sceneChanger: sc}
}

func (ps *PlayingScene) Update() {
	ps.once.Do(ps.configure)

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		ps.sceneChanger.ChangeScene(NewIntroScene(ps.sceneChanger))
		return
	}

	ps.ecs.Update()
}

func (ps *PlayingScene) Draw(screen *ebiten.Image) {
	// Clear to the sky's top color so a skipped background frame never
	// flashes white.
	screen.Fill(cfg.Sky.Top)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlayingScene) configure() {
	// Bake balloon sprites up front to avoid first-spawn lag (important
	// for WASM).
	assets.PreloadBalloonSprites()

	e := ecs.NewECS(donburi.NewWorld())

	// Space extends below the screen so just-spawned balloons are inside.
	factory.CreateSpace(e, cfg.C.Width, cfg.C.Height+160, 32, 32)

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := 0; i < cfg.Cloud.Count; i++ {
		factory.CreateCloud(e, r)
	}

	// Input runs first so a tap is resolved against the pool the player
	// saw on the previous frame.
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateSpawn)
	e.AddSystem(systems.UpdateBalloons)
	e.AddSystem(systems.UpdateClouds)
	e.AddSystem(systems.UpdateMessage)

	e.AddRenderer(cfg.LayerBackground, systems.DrawSky)
	e.AddRenderer(cfg.LayerBackground, systems.DrawClouds)
	e.AddRenderer(cfg.LayerBalloons, systems.DrawBalloons)
	e.AddRenderer(cfg.LayerHUD, systems.DrawHUD)
	e.AddRenderer(cfg.LayerOverlay, systems.DrawMessage)

	// Fresh session: score reset included.
	systems.ResetRound(e, false)

	ps.ecs = e
}
