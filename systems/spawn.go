package systems

import (
	"math/rand"

	"github.com/playpop/wordpop/components"
	cfg "github.com/playpop/wordpop/config"
	"github.com/playpop/wordpop/systems/factory"
	"github.com/playpop/wordpop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSpawn advances the spawn timer and creates a new balloon once the
// speed-scaled interval has elapsed, as long as the pool is below the hard
// cap. The interval tightens as the game speeds up.
func UpdateSpawn(e *ecs.ECS) {
	session, _ := GetOrCreateSession(e)
	session.SpawnTimer++

	interval := cfg.Spawn.BaseInterval / (session.Speed / cfg.Speed.Baseline)
	if session.SpawnTimer < interval {
		return
	}

	live := LiveLetters(e)
	if len(live) >= cfg.Balloon.MaxLive {
		// Over the cap; the timer keeps running so a slot frees up into an
		// immediate spawn.
		return
	}

	letter := ChooseLetter(RequiredLetter(e), toSet(live), DistinctLetters(cfg.Word.Target), rng)
	factory.CreateBalloon(e, letter, session.Speed, rng)
	session.SpawnTimer = 0
}

// ChooseLetter picks the letter for the next balloon. If the currently
// required letter is not among the live unpopped balloons it must be chosen,
// so the player can never be starved of it. Otherwise any distinct letter of
// the target word is equally likely, regardless of how often it repeats in
// the word.
func ChooseLetter(required rune, live map[rune]bool, distinct []rune, r *rand.Rand) rune {
	if !live[required] {
		return required
	}
	return distinct[r.Intn(len(distinct))]
}

// DistinctLetters collapses the word to its unique letters, in first-seen
// order.
func DistinctLetters(word string) []rune {
	seen := map[rune]bool{}
	var letters []rune
	for _, l := range word {
		if !seen[l] {
			seen[l] = true
			letters = append(letters, l)
		}
	}
	return letters
}

// LiveLetters returns the letters of all live, unpopped balloons. The slice
// length doubles as the live balloon count for the spawn cap.
func LiveLetters(e *ecs.ECS) []rune {
	var letters []rune
	tags.Balloon.Each(e.World, func(entry *donburi.Entry) {
		b := components.Balloon.Get(entry)
		if !b.Popped {
			letters = append(letters, b.Letter)
		}
	})
	return letters
}

func toSet(letters []rune) map[rune]bool {
	set := make(map[rune]bool, len(letters))
	for _, l := range letters {
		set[l] = true
	}
	return set
}
