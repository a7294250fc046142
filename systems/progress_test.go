package systems

import (
	"math/rand"
	"testing"

	cfg "github.com/playpop/wordpop/config"
	"github.com/playpop/wordpop/systems/factory"
)

// withTargetWord swaps the configured word for a test and restores it.
func withTargetWord(t *testing.T, word string) {
	t.Helper()
	old := cfg.Word.Target
	cfg.Word.Target = word
	t.Cleanup(func() { cfg.Word.Target = old })
}

func TestCorrectHitAdvancesCursorAndScores(t *testing.T) {
	e := newTestECS()
	session, progress := GetOrCreateSession(e)

	ApplyHit(e, 'B')

	if progress.Cursor != 1 {
		t.Errorf("expected cursor 1, got %d", progress.Cursor)
	}
	want := cfg.Score.BaseReward + 5 // floor(5 * 1.0)
	if session.Score != want {
		t.Errorf("expected score %d, got %d", want, session.Score)
	}
	if session.Speed != cfg.Speed.Baseline {
		t.Errorf("speed must not change mid-word, got %v", session.Speed)
	}
	if IsMessageActive(e) {
		t.Error("no message should show for a mid-word hit")
	}
}

func TestRoundCompleteScenario(t *testing.T) {
	withTargetWord(t, "AB")
	e := newTestECS()
	session, progress := GetOrCreateSession(e)
	r := rand.New(rand.NewSource(3))

	factory.CreateBalloon(e, 'A', session.Speed, r)
	ApplyHit(e, 'A')
	if progress.Cursor != 1 || session.Score != 15 {
		t.Fatalf("after A: cursor=%d score=%d, want 1/15", progress.Cursor, session.Score)
	}

	factory.CreateBalloon(e, 'B', session.Speed, r)
	ApplyHit(e, 'B')

	if progress.Cursor != 0 {
		t.Errorf("cursor must wrap to 0 on round complete, got %d", progress.Cursor)
	}
	if session.Score != 30 {
		t.Errorf("expected score 30, got %d", session.Score)
	}
	if want := cfg.Speed.Baseline + cfg.Speed.Increment; session.Speed != want {
		t.Errorf("expected speed %v, got %v", want, session.Speed)
	}
	if n := len(LiveLetters(e)); n != 0 {
		t.Errorf("pool must be cleared on round complete, %d balloons remain", n)
	}
	if !IsMessageActive(e) {
		t.Error("success message should be active")
	}
	if got := getOrCreateMessageState(e).Text; got != cfg.Message.SuccessText {
		t.Errorf("expected success message, got %q", got)
	}
}

func TestWrongHitFullyResets(t *testing.T) {
	withTargetWord(t, "AB")
	e := newTestECS()
	session, progress := GetOrCreateSession(e)
	r := rand.New(rand.NewSource(3))

	ApplyHit(e, 'A')
	session.Speed = 2.5
	factory.CreateBalloon(e, 'A', session.Speed, r)

	// Cursor now expects B; popping an A is a miss.
	ApplyHit(e, 'A')

	if progress.Cursor != 0 {
		t.Errorf("expected cursor 0, got %d", progress.Cursor)
	}
	if session.Score != 0 {
		t.Errorf("expected score 0, got %d", session.Score)
	}
	if session.Speed != cfg.Speed.Baseline {
		t.Errorf("expected baseline speed, got %v", session.Speed)
	}
	if n := len(LiveLetters(e)); n != 0 {
		t.Errorf("pool must be cleared on a miss, %d balloons remain", n)
	}
	if got := getOrCreateMessageState(e).Text; got != cfg.Message.FailureText {
		t.Errorf("expected failure message, got %q", got)
	}
}

func TestScoreAfterConsecutiveHitsAtConstantSpeed(t *testing.T) {
	withTargetWord(t, "AAAAAA")
	e := newTestECS()
	session, _ := GetOrCreateSession(e)
	session.Speed = 1.5

	n := 4
	for i := 0; i < n; i++ {
		ApplyHit(e, 'A')
	}

	want := n * (cfg.Score.BaseReward + 7) // floor(5 * 1.5) = 7
	if session.Score != want {
		t.Errorf("expected score %d after %d hits, got %d", want, n, session.Score)
	}
}

func TestResetRoundKeepScore(t *testing.T) {
	e := newTestECS()
	session, progress := GetOrCreateSession(e)
	r := rand.New(rand.NewSource(9))

	ApplyHit(e, 'B')
	session.Speed = 3.0
	session.SpawnTimer = 17
	factory.CreateBalloon(e, 'A', session.Speed, r)
	ShowMessage(e, "x", cfg.White, 50)
	scoreBefore := session.Score

	ResetRound(e, true)

	if session.Score != scoreBefore {
		t.Errorf("keep-score reset changed score: %d -> %d", scoreBefore, session.Score)
	}
	if progress.Cursor != 0 || session.Speed != cfg.Speed.Baseline || session.SpawnTimer != 0 {
		t.Errorf("cursor/speed/timer not reset: %d %v %v",
			progress.Cursor, session.Speed, session.SpawnTimer)
	}
	if len(LiveLetters(e)) != 0 {
		t.Error("pool not cleared")
	}
	if IsMessageActive(e) {
		t.Error("message not cleared")
	}

	ResetRound(e, false)
	if session.Score != 0 {
		t.Errorf("expected zeroed score, got %d", session.Score)
	}
}

func TestRewardFormula(t *testing.T) {
	cases := []struct {
		speed float64
		want  int
	}{
		{1.0, 15},
		{1.5, 17},
		{2.0, 20},
		{2.5, 22},
	}
	for _, tc := range cases {
		if got := Reward(tc.speed); got != tc.want {
			t.Errorf("Reward(%v) = %d, want %d", tc.speed, got, tc.want)
		}
	}
}
