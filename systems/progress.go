package systems

import (
	cfg "github.com/playpop/wordpop/config"
	"github.com/yohamta/donburi/ecs"
)

// ApplyHit drives the progress state machine with the letter of a popped
// balloon. The balloon itself has already been removed by the caller.
//
// Correct letter mid-word: cursor advances and the speed-scaled reward is
// added. Correct final letter: same reward, then the round completes with
// the cursor back to 0, speed up, pool cleared, success message. Any wrong
// letter is a full reset: cursor, score and speed to initial values, pool
// cleared, failure message.
func ApplyHit(e *ecs.ECS, letter rune) {
	session, progress := GetOrCreateSession(e)
	word := []rune(cfg.Word.Target)
	required := word[progress.Cursor]

	if letter != required {
		ResetRound(e, false)
		ShowMessage(e, cfg.Message.FailureText, cfg.Message.FailureColor, cfg.Message.FailureDuration)
		PlayBuzz()
		return
	}

	session.Score += Reward(session.Speed)
	progress.Cursor++

	if progress.Cursor == len(word) {
		// Round complete. The cursor never rests at len(word).
		progress.Cursor = 0
		session.Speed += cfg.Speed.Increment
		ClearBalloons(e)
		ShowMessage(e, cfg.Message.SuccessText, cfg.Message.SuccessColor, cfg.Message.SuccessDuration)
		PlayFanfare()
		return
	}

	PlayPop()
}

// RequiredLetter is the letter the progress cursor currently demands.
func RequiredLetter(e *ecs.ECS) rune {
	_, progress := GetOrCreateSession(e)
	return []rune(cfg.Word.Target)[progress.Cursor]
}
