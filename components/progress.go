package components

import "github.com/yohamta/donburi"

// ProgressData is a singleton tracking the next required letter of the
// target word. Cursor is always in [0, len(word)); reaching the end of the
// word resets it to 0 within the same hit.
type ProgressData struct {
	Cursor int
}

var Progress = donburi.NewComponentType[ProgressData]()
