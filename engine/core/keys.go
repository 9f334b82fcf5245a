package core

// Key is a physical key code. Printable keys use their ASCII value.
type Key uint16

const (
	KeyNull         Key = 0
	KeyEscape       Key = '\033'
	KeyBacktick     Key = '`'
	Key0            Key = '0'
	Key1            Key = '1'
	Key2            Key = '2'
	Key3            Key = '3'
	Key4            Key = '4'
	Key5            Key = '5'
	Key6            Key = '6'
	Key7            Key = '7'
	Key8            Key = '8'
	Key9            Key = '9'
	KeyMinus        Key = '-'
	KeyEquals       Key = '='
	KeyBackspace    Key = '\b'
	KeyTab          Key = '\t'
	KeySpace        Key = ' '
	KeyA            Key = 'a'
	KeyB            Key = 'b'
	KeyC            Key = 'c'
	KeyD            Key = 'd'
	KeyE            Key = 'e'
	KeyF            Key = 'f'
	KeyG            Key = 'g'
	KeyH            Key = 'h'
	KeyI            Key = 'i'
	KeyJ            Key = 'j'
	KeyK            Key = 'k'
	KeyL            Key = 'l'
	KeyM            Key = 'm'
	KeyN            Key = 'n'
	KeyO            Key = 'o'
	KeyP            Key = 'p'
	KeyQ            Key = 'q'
	KeyR            Key = 'r'
	KeyS            Key = 's'
	KeyT            Key = 't'
	KeyU            Key = 'u'
	KeyV            Key = 'v'
	KeyW            Key = 'w'
	KeyX            Key = 'x'
	KeyY            Key = 'y'
	KeyZ            Key = 'z'
	KeyPeriod       Key = '.'
	KeyComma        Key = ','
	KeySlash        Key = '/'
	KeyBracket      Key = '['
	KeyCloseBracket Key = ']'
	KeySemicolon    Key = ';'
	KeyApostrophe   Key = '\''
	KeyBackslash    Key = '\\'
	KeyReturn       Key = '\n'
	KeyEnter            = KeyReturn
	KeyDelete       Key = '\177'
)

// Non-printable keys continue after KeyDelete.
const (
	KeyF1 Key = KeyDelete + 1 + iota
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyF21
	KeyF22
	KeyF23
	KeyF24
	KeyF25
	KeyCapsLock
	KeyShiftLeft
	KeyControlLeft
	KeyAltLeft
	KeySuperLeft
	KeyShiftRight
	KeyControlRight
	KeyAltRight
	KeySuperRight
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyInsert
	KeyMenu
	KeyEnd
	KeyHome
	KeyPageUp
	KeyPageDown
	KeyNumLock
	KeyKPSlash
	KeyKPMultiply
	KeyKPPlus
	KeyKPMinus
	KeyKPEqual
	KeyKP1
	KeyKP2
	KeyKP3
	KeyKP4
	KeyKP5
	KeyKP6
	KeyKP7
	KeyKP8
	KeyKP9
	KeyKP0
	KeyKPPeriod
	KeyKPReturn
	KeyScrollLock
	KeyPrintScreen
	KeyPause
	KeyWorld1
	KeyWorld2
)

// KeyLast bounds the key state tables.
const KeyLast Key = 256

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseLeft MouseButton = iota
	MouseMiddle
	MouseRight
	MouseMisc1
	MouseMisc2
	MouseMisc3
	MouseMisc4
	MouseMisc5
	MouseFinal
)

// Mod is a keyboard modifier bitmask.
type Mod uint8

const (
	ModNone       Mod = 0
	ModCapsLock   Mod = 1 << 0
	ModNumLock    Mod = 1 << 1
	ModControl    Mod = 1 << 2
	ModAlt        Mod = 1 << 3
	ModShift      Mod = 1 << 4
	ModSuper      Mod = 1 << 5
	ModScrollLock Mod = 1 << 6
)

// Cursor is a standard mouse cursor shape.
type Cursor uint8

const (
	CursorNormal Cursor = iota
	CursorArrow
	CursorIBeam
	CursorCrosshair
	CursorPointingHand
	CursorResizeEW
	CursorResizeNS
	CursorResizeNWSE
	CursorResizeNESW
	CursorResizeAll
	CursorNotAllowed
	CursorCount
)
