package systems

import (
	"math"
	"math/rand"
	"time"

	"github.com/playpop/wordpop/archetypes"
	"github.com/playpop/wordpop/components"
	cfg "github.com/playpop/wordpop/config"
	"github.com/playpop/wordpop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Shared RNG for spawn decisions. Tests pass their own seeded *rand.Rand to
// the lower-level helpers instead.
var rng = rand.New(rand.NewSource(time.Now().UnixNano()))

// Reward is the score gained per correct pop at the given speed.
func Reward(speed float64) int {
	return cfg.Score.BaseReward + int(math.Floor(cfg.Score.SpeedBonus*speed))
}

// GetOrCreateSession returns the singleton session and progress state,
// creating them at initial values on first use.
func GetOrCreateSession(e *ecs.ECS) (*components.SessionData, *components.ProgressData) {
	entry, ok := components.Session.First(e.World)
	if !ok {
		entry = archetypes.Session.Spawn(e)
		components.Session.SetValue(entry, components.SessionData{
			Speed: cfg.Speed.Baseline,
		})
		components.Progress.SetValue(entry, components.ProgressData{})
	}
	return components.Session.Get(entry), components.Progress.Get(entry)
}

// ResetRound returns the session to its initial state: cursor and spawn
// timer to zero, speed to baseline, pool and message cleared. The score is
// kept only for fresh-round transitions (scene entry, restart); a wrong
// letter always resets it.
func ResetRound(e *ecs.ECS, keepScore bool) {
	session, progress := GetOrCreateSession(e)
	progress.Cursor = 0
	session.Speed = cfg.Speed.Baseline
	session.SpawnTimer = 0
	if !keepScore {
		session.Score = 0
	}
	ClearBalloons(e)
	ClearMessage(e)
}

// ClearBalloons removes every live balloon, committing the removals once
// after the scan.
func ClearBalloons(e *ecs.ECS) {
	var doomed []*donburi.Entry
	tags.Balloon.Each(e.World, func(entry *donburi.Entry) {
		doomed = append(doomed, entry)
	})
	for _, entry := range doomed {
		removeBalloon(e, entry)
	}
}

// removeBalloon detaches the balloon's hit object from the space and
// destroys the entity.
func removeBalloon(e *ecs.ECS, entry *donburi.Entry) {
	if entry.HasComponent(components.Object) {
		obj := components.Object.Get(entry)
		if obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	entry.Remove()
}
