package systems

import (
	"math"

	cfg "github.com/playpop/wordpop/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SoundEnabled gates all SFX; persisted with the intro settings.
var SoundEnabled = true

var (
	audioContext *audio.Context
	popPCM       []byte
	buzzPCM      []byte
	fanfarePCM   []byte
)

// InitAudio creates the audio context and synthesizes the three effect
// samples. All SFX are generated, no audio files are shipped.
func InitAudio() {
	if audioContext != nil {
		return
	}
	audioContext = audio.NewContext(cfg.Audio.SampleRate)

	popPCM = synthTone(cfg.Audio.PopFreq, cfg.Audio.PopLen, 0.6)
	buzzPCM = synthTone(cfg.Audio.BuzzFreq, cfg.Audio.BuzzLen, 0.5)

	// Rising major arpeggio for the round-complete fanfare.
	noteLen := cfg.Audio.FanfareLen / 3
	for _, freq := range []float64{523.25, 659.25, 783.99} {
		fanfarePCM = append(fanfarePCM, synthTone(freq, noteLen, 0.5)...)
	}
}

// PlayPop plays the correct-hit blip.
func PlayPop() { playPCM(popPCM) }

// PlayBuzz plays the wrong-letter buzz.
func PlayBuzz() { playPCM(buzzPCM) }

// PlayFanfare plays the round-complete arpeggio.
func PlayFanfare() { playPCM(fanfarePCM) }

func playPCM(pcm []byte) {
	if !SoundEnabled || audioContext == nil || len(pcm) == 0 {
		return
	}
	p := audioContext.NewPlayerFromBytes(pcm)
	p.Play()
}

// synthTone renders a sine tone with an exponential decay envelope as
// 16-bit little-endian stereo PCM.
func synthTone(freq, seconds, volume float64) []byte {
	rate := cfg.Audio.SampleRate
	n := int(float64(rate) * seconds)
	pcm := make([]byte, n*4)

	for i := 0; i < n; i++ {
		t := float64(i) / float64(rate)
		env := math.Exp(-6 * t / seconds)
		v := int16(math.Sin(2*math.Pi*freq*t) * env * volume * math.MaxInt16)

		pcm[i*4] = byte(v)
		pcm[i*4+1] = byte(v >> 8)
		pcm[i*4+2] = byte(v)
		pcm[i*4+3] = byte(v >> 8)
	}
	return pcm
}
