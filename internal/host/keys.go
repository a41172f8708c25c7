package host

// KeyCode identifies a physical key. Values follow GLFW numbering.
type KeyCode int

const (
	KeySpace  KeyCode = 32
	KeyNum0   KeyCode = 48
	KeyNum1   KeyCode = 49
	KeyNum2   KeyCode = 50
	KeyNum3   KeyCode = 51
	KeyA      KeyCode = 65
	KeyD      KeyCode = 68
	KeyE      KeyCode = 69
	KeyP      KeyCode = 80
	KeyQ      KeyCode = 81
	KeyR      KeyCode = 82
	KeyS      KeyCode = 83
	KeyW      KeyCode = 87
	KeyGrave  KeyCode = 96
	KeyEscape KeyCode = 256
	KeyEnter  KeyCode = 257
	KeyRight  KeyCode = 262
	KeyLeft   KeyCode = 263
	KeyDown   KeyCode = 264
	KeyUp     KeyCode = 265
	KeyShift  KeyCode = 340
)

var keyNames = map[KeyCode]string{
	KeySpace:  "Space",
	KeyNum0:   "0",
	KeyNum1:   "1",
	KeyNum2:   "2",
	KeyNum3:   "3",
	KeyA:      "A",
	KeyD:      "D",
	KeyE:      "E",
	KeyP:      "P",
	KeyQ:      "Q",
	KeyR:      "R",
	KeyS:      "S",
	KeyW:      "W",
	KeyGrave:  "Grave",
	KeyEscape: "Escape",
	KeyEnter:  "Enter",
	KeyRight:  "Right",
	KeyLeft:   "Left",
	KeyDown:   "Down",
	KeyUp:     "Up",
	KeyShift:  "Shift",
}

// String returns a human-readable name for the key.
func (k KeyCode) String() string {
	if n, ok := keyNames[k]; ok {
		return n
	}
	return "Unknown"
}

// ParseKey resolves a key name as produced by String.
func ParseKey(name string) (KeyCode, bool) {
	for k, n := range keyNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}
