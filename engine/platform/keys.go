package platform

import (
	"unicode"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hubastard/hoglib/engine/core"
)

var keyTable = map[glfw.Key]core.Key{
	glfw.KeyEscape:       core.KeyEscape,
	glfw.KeyGraveAccent:  core.KeyBacktick,
	glfw.Key0:            core.Key0,
	glfw.Key1:            core.Key1,
	glfw.Key2:            core.Key2,
	glfw.Key3:            core.Key3,
	glfw.Key4:            core.Key4,
	glfw.Key5:            core.Key5,
	glfw.Key6:            core.Key6,
	glfw.Key7:            core.Key7,
	glfw.Key8:            core.Key8,
	glfw.Key9:            core.Key9,
	glfw.KeyMinus:        core.KeyMinus,
	glfw.KeyEqual:        core.KeyEquals,
	glfw.KeyBackspace:    core.KeyBackspace,
	glfw.KeyTab:          core.KeyTab,
	glfw.KeySpace:        core.KeySpace,
	glfw.KeyA:            core.KeyA,
	glfw.KeyB:            core.KeyB,
	glfw.KeyC:            core.KeyC,
	glfw.KeyD:            core.KeyD,
	glfw.KeyE:            core.KeyE,
	glfw.KeyF:            core.KeyF,
	glfw.KeyG:            core.KeyG,
	glfw.KeyH:            core.KeyH,
	glfw.KeyI:            core.KeyI,
	glfw.KeyJ:            core.KeyJ,
	glfw.KeyK:            core.KeyK,
	glfw.KeyL:            core.KeyL,
	glfw.KeyM:            core.KeyM,
	glfw.KeyN:            core.KeyN,
	glfw.KeyO:            core.KeyO,
	glfw.KeyP:            core.KeyP,
	glfw.KeyQ:            core.KeyQ,
	glfw.KeyR:            core.KeyR,
	glfw.KeyS:            core.KeyS,
	glfw.KeyT:            core.KeyT,
	glfw.KeyU:            core.KeyU,
	glfw.KeyV:            core.KeyV,
	glfw.KeyW:            core.KeyW,
	glfw.KeyX:            core.KeyX,
	glfw.KeyY:            core.KeyY,
	glfw.KeyZ:            core.KeyZ,
	glfw.KeyPeriod:       core.KeyPeriod,
	glfw.KeyComma:        core.KeyComma,
	glfw.KeySlash:        core.KeySlash,
	glfw.KeyLeftBracket:  core.KeyBracket,
	glfw.KeyRightBracket: core.KeyCloseBracket,
	glfw.KeySemicolon:    core.KeySemicolon,
	glfw.KeyApostrophe:   core.KeyApostrophe,
	glfw.KeyBackslash:    core.KeyBackslash,
	glfw.KeyEnter:        core.KeyReturn,
	glfw.KeyDelete:       core.KeyDelete,
	glfw.KeyF1:           core.KeyF1,
	glfw.KeyF2:           core.KeyF2,
	glfw.KeyF3:           core.KeyF3,
	glfw.KeyF4:           core.KeyF4,
	glfw.KeyF5:           core.KeyF5,
	glfw.KeyF6:           core.KeyF6,
	glfw.KeyF7:           core.KeyF7,
	glfw.KeyF8:           core.KeyF8,
	glfw.KeyF9:           core.KeyF9,
	glfw.KeyF10:          core.KeyF10,
	glfw.KeyF11:          core.KeyF11,
	glfw.KeyF12:          core.KeyF12,
	glfw.KeyF13:          core.KeyF13,
	glfw.KeyF14:          core.KeyF14,
	glfw.KeyF15:          core.KeyF15,
	glfw.KeyF16:          core.KeyF16,
	glfw.KeyF17:          core.KeyF17,
	glfw.KeyF18:          core.KeyF18,
	glfw.KeyF19:          core.KeyF19,
	glfw.KeyF20:          core.KeyF20,
	glfw.KeyF21:          core.KeyF21,
	glfw.KeyF22:          core.KeyF22,
	glfw.KeyF23:          core.KeyF23,
	glfw.KeyF24:          core.KeyF24,
	glfw.KeyF25:          core.KeyF25,
	glfw.KeyCapsLock:     core.KeyCapsLock,
	glfw.KeyLeftShift:    core.KeyShiftLeft,
	glfw.KeyLeftControl:  core.KeyControlLeft,
	glfw.KeyLeftAlt:      core.KeyAltLeft,
	glfw.KeyLeftSuper:    core.KeySuperLeft,
	glfw.KeyRightShift:   core.KeyShiftRight,
	glfw.KeyRightControl: core.KeyControlRight,
	glfw.KeyRightAlt:     core.KeyAltRight,
	glfw.KeyRightSuper:   core.KeySuperRight,
	glfw.KeyUp:           core.KeyUp,
	glfw.KeyDown:         core.KeyDown,
	glfw.KeyLeft:         core.KeyLeft,
	glfw.KeyRight:        core.KeyRight,
	glfw.KeyInsert:       core.KeyInsert,
	glfw.KeyMenu:         core.KeyMenu,
	glfw.KeyEnd:          core.KeyEnd,
	glfw.KeyHome:         core.KeyHome,
	glfw.KeyPageUp:       core.KeyPageUp,
	glfw.KeyPageDown:     core.KeyPageDown,
	glfw.KeyNumLock:      core.KeyNumLock,
	glfw.KeyKPDivide:     core.KeyKPSlash,
	glfw.KeyKPMultiply:   core.KeyKPMultiply,
	glfw.KeyKPAdd:        core.KeyKPPlus,
	glfw.KeyKPSubtract:   core.KeyKPMinus,
	glfw.KeyKPEqual:      core.KeyKPEqual,
	glfw.KeyKP1:          core.KeyKP1,
	glfw.KeyKP2:          core.KeyKP2,
	glfw.KeyKP3:          core.KeyKP3,
	glfw.KeyKP4:          core.KeyKP4,
	glfw.KeyKP5:          core.KeyKP5,
	glfw.KeyKP6:          core.KeyKP6,
	glfw.KeyKP7:          core.KeyKP7,
	glfw.KeyKP8:          core.KeyKP8,
	glfw.KeyKP9:          core.KeyKP9,
	glfw.KeyKP0:          core.KeyKP0,
	glfw.KeyKPDecimal:    core.KeyKPPeriod,
	glfw.KeyKPEnter:      core.KeyKPReturn,
	glfw.KeyScrollLock:   core.KeyScrollLock,
	glfw.KeyPrintScreen:  core.KeyPrintScreen,
	glfw.KeyPause:        core.KeyPause,
	glfw.KeyWorld1:       core.KeyWorld1,
	glfw.KeyWorld2:       core.KeyWorld2,
}

// reverseKeyTable maps back to GLFW for key state queries.
var reverseKeyTable = func() map[core.Key]glfw.Key {
	m := make(map[core.Key]glfw.Key, len(keyTable))
	for g, k := range keyTable {
		m[k] = g
	}
	return m
}()

func translateKey(k glfw.Key) core.Key {
	if v, ok := keyTable[k]; ok {
		return v
	}
	return core.KeyNull
}

func translateMods(m glfw.ModifierKey) core.Mod {
	var out core.Mod
	if m&glfw.ModShift != 0 {
		out |= core.ModShift
	}
	if m&glfw.ModControl != 0 {
		out |= core.ModControl
	}
	if m&glfw.ModAlt != 0 {
		out |= core.ModAlt
	}
	if m&glfw.ModSuper != 0 {
		out |= core.ModSuper
	}
	if m&glfw.ModCapsLock != 0 {
		out |= core.ModCapsLock
	}
	if m&glfw.ModNumLock != 0 {
		out |= core.ModNumLock
	}
	return out
}

func translateButton(b glfw.MouseButton) (core.MouseButton, bool) {
	switch b {
	case glfw.MouseButtonLeft:
		return core.MouseLeft, true
	case glfw.MouseButtonMiddle:
		return core.MouseMiddle, true
	case glfw.MouseButtonRight:
		return core.MouseRight, true
	case glfw.MouseButton4:
		return core.MouseMisc1, true
	case glfw.MouseButton5:
		return core.MouseMisc2, true
	case glfw.MouseButton6:
		return core.MouseMisc3, true
	case glfw.MouseButton7:
		return core.MouseMisc4, true
	case glfw.MouseButton8:
		return core.MouseMisc5, true
	}
	return 0, false
}

// keySym returns the character a key produces under mods, or 0.
func keySym(k core.Key, mods core.Mod) rune {
	if k < core.KeySpace || k >= core.KeyDelete {
		switch k {
		case core.KeyTab, core.KeyReturn, core.KeyBackspace:
			return rune(k)
		}
		return 0
	}
	r := rune(k)
	if unicode.IsLetter(r) && (mods&core.ModShift != 0) != (mods&core.ModCapsLock != 0) {
		return unicode.ToUpper(r)
	}
	return r
}

// standardCursors maps cursor kinds onto GLFW 3.3 shapes. Kinds GLFW 3.3
// has no shape for fall back to the closest one.
var standardCursors = [core.CursorCount]glfw.StandardCursor{
	core.CursorNormal:       glfw.ArrowCursor,
	core.CursorArrow:        glfw.ArrowCursor,
	core.CursorIBeam:        glfw.IBeamCursor,
	core.CursorCrosshair:    glfw.CrosshairCursor,
	core.CursorPointingHand: glfw.HandCursor,
	core.CursorResizeEW:     glfw.HResizeCursor,
	core.CursorResizeNS:     glfw.VResizeCursor,
	core.CursorResizeNWSE:   glfw.CrosshairCursor,
	core.CursorResizeNESW:   glfw.CrosshairCursor,
	core.CursorResizeAll:    glfw.CrosshairCursor,
	core.CursorNotAllowed:   glfw.ArrowCursor,
}
