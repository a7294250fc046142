package config

import "image/color"

// WordConfig holds the target word the player spells out
type WordConfig struct {
	Target      string // Uppercase letters only
	Placeholder rune   // Shown in the HUD for letters not yet spelled
}

// SpeedConfig controls the game speed scalar
type SpeedConfig struct {
	Baseline  float64 // Starting speed, restored on a wrong letter
	Increment float64 // Added each time the word is fully spelled
}

// BalloonConfig contains balloon entity configuration
type BalloonConfig struct {
	// Body shape (logical pixels, before per-balloon jitter)
	RadiusX float64
	RadiusY float64

	// Per-balloon randomization
	SizeJitter     float64 // Fraction of base radius, +/-
	VelocityJitter float64 // Added to the speed-derived rise velocity

	// Knot below the body, also a valid hit region
	KnotWidth  float64
	KnotHeight float64

	OutlineWidth float32

	// Letter glyph
	FontSize     float64
	ShadowOffset float64

	// Hard cap on concurrently live balloons
	MaxLive int

	// Spawn scale-in tween
	PopInDuration float32
}

// SpawnConfig controls spawn cadence
type SpawnConfig struct {
	// Ticks between spawns at baseline speed; the effective interval is
	// BaseInterval / (speed / baseline)
	BaseInterval float64
}

// ScoreConfig controls the per-hit reward
type ScoreConfig struct {
	BaseReward int
	// Reward per hit is BaseReward + floor(SpeedBonus * speed)
	SpeedBonus float64
}

// CloudConfig contains background cloud field configuration
type CloudConfig struct {
	Count      int
	RadiusXMin float64
	RadiusXMax float64
	AspectY    float64 // Vertical radius as a fraction of horizontal
	DriftMin   float64 // Px per tick
	DriftMax   float64
	OpacityMin float64
	OpacityMax float64
}

// MessageConfig contains transient feedback message configuration
type MessageConfig struct {
	SuccessText     string
	SuccessColor    color.RGBA
	SuccessDuration int // Ticks
	FailureText     string
	FailureColor    color.RGBA
	FailureDuration int // Ticks
	FadeTail        int // Ticks of alpha fade-out at the end of a message
	FontSize        float64
}

// HUDConfig contains score chip and progress readout configuration
type HUDConfig struct {
	Margin       float64
	ChipPadding  float64
	ChipRadius   float64
	ChipColor    color.RGBA
	ScoreColor   color.RGBA
	RevealedCol  color.RGBA
	PlaceholdCol color.RGBA
	FontSize     float64
}

// MenuConfig contains intro screen configuration
type MenuConfig struct {
	Title    string
	Subtitle string
}

// AudioConfig contains procedural SFX configuration
type AudioConfig struct {
	SampleRate int
	PopFreq    float64
	PopLen     float64 // Seconds
	BuzzFreq   float64
	BuzzLen    float64
	FanfareLen float64
}

// SkyConfig contains the background gradient colors
type SkyConfig struct {
	Top    color.RGBA
	Bottom color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Word WordConfig
var Speed SpeedConfig
var Balloon BalloonConfig
var Spawn SpawnConfig
var Score ScoreConfig
var Cloud CloudConfig
var Message MessageConfig
var HUD HUDConfig
var Menu MenuConfig
var Audio AudioConfig
var Sky SkyConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Green        = color.RGBA{R: 46, G: 160, B: 67, A: 255}
	Red          = color.RGBA{R: 220, G: 38, B: 38, A: 255}
	ChipGray     = color.RGBA{R: 30, G: 30, B: 40, A: 200}
	FaintWhite   = color.RGBA{R: 255, G: 255, B: 255, A: 120}
	ShadowBlack  = color.RGBA{R: 0, G: 0, B: 0, A: 160}
	SkyTopBlue   = color.RGBA{R: 110, G: 180, B: 250, A: 255}
	SkyHazeWhite = color.RGBA{R: 225, G: 242, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 480,
	}

	Word = WordConfig{
		Target:      "BALLOON",
		Placeholder: '_',
	}

	Speed = SpeedConfig{
		Baseline:  1.0,
		Increment: 0.5,
	}

	Balloon = BalloonConfig{
		RadiusX:        26.0,
		RadiusY:        32.0,
		SizeJitter:     0.2,
		VelocityJitter: 0.5,
		KnotWidth:      12.0,
		KnotHeight:     10.0,
		OutlineWidth:   1.5,
		FontSize:       24.0,
		ShadowOffset:   2.0,
		MaxLive:        12,
		PopInDuration:  0.25,
	}

	Spawn = SpawnConfig{
		BaseInterval: 45.0, // 0.75s at baseline speed
	}

	Score = ScoreConfig{
		BaseReward: 10,
		SpeedBonus: 5.0,
	}

	Cloud = CloudConfig{
		Count:      6,
		RadiusXMin: 40.0,
		RadiusXMax: 80.0,
		AspectY:    0.55,
		DriftMin:   0.2,
		DriftMax:   0.6,
		OpacityMin: 0.45,
		OpacityMax: 0.85,
	}

	Message = MessageConfig{
		SuccessText:     "YOU SPELLED IT!",
		SuccessColor:    Green,
		SuccessDuration: 150,
		FailureText:     "WRONG LETTER!",
		FailureColor:    Red,
		FailureDuration: 75,
		FadeTail:        30,
		FontSize:        36.0,
	}

	HUD = HUDConfig{
		Margin:       10.0,
		ChipPadding:  8.0,
		ChipRadius:   10.0,
		ChipColor:    ChipGray,
		ScoreColor:   White,
		RevealedCol:  White,
		PlaceholdCol: FaintWhite,
		FontSize:     18.0,
	}

	Menu = MenuConfig{
		Title:    "WORDPOP",
		Subtitle: "Pop the balloons in order to spell the word",
	}

	Audio = AudioConfig{
		SampleRate: 44100,
		PopFreq:    880.0,
		PopLen:     0.08,
		BuzzFreq:   110.0,
		BuzzLen:    0.25,
		FanfareLen: 0.45,
	}

	Sky = SkyConfig{
		Top:    SkyTopBlue,
		Bottom: SkyHazeWhite,
	}
}
