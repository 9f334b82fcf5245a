package mediahog

import (
	"context"
	"log/slog"

	"github.com/hubastard/hoglib/engine/core"
)

type DebugType uint8

const (
	TypeError DebugType = iota
	TypeWarning
	TypeInfo
)

func (t DebugType) String() string {
	switch t {
	case TypeError:
		return "error"
	case TypeWarning:
		return "warning"
	case TypeInfo:
		return "info"
	}
	return "unknown"
}

// ErrorCode says what a debug message is about.
type ErrorCode uint8

const (
	NoError ErrorCode = iota
	ErrOutOfMemory
	ErrOpenGLContext
	ErrEGLContext
	ErrWayland
	ErrX11
	ErrDirectXContext
	ErrIOKit
	ErrClipboard
	ErrFailedFuncLoad
	ErrBuffer
	ErrEventQueue
	InfoMonitor
	InfoWindow
	InfoBuffer
	InfoGlobal
	InfoOpenGL
	WarningWayland
	WarningOpenGL
	ErrWindowing // the platform layer failed
)

// DebugFunc receives every debug message.
type DebugFunc func(t DebugType, code ErrorCode, msg string)

var debugCallback DebugFunc

// SetDebugCallback installs fn and returns the previous callback.
func SetDebugCallback(fn DebugFunc) DebugFunc {
	prev := debugCallback
	debugCallback = fn
	return prev
}

// SendDebugInfo logs msg and hands it to the debug callback.
func SendDebugInfo(t DebugType, code ErrorCode, msg string) {
	level := slog.LevelInfo
	switch t {
	case TypeError:
		level = slog.LevelError
	case TypeWarning:
		level = slog.LevelWarn
	}
	core.Logger().Log(context.Background(), level, msg, "code", int(code))
	if debugCallback != nil {
		debugCallback(t, code, msg)
	}
}

func sendError(code ErrorCode, err error)    { SendDebugInfo(TypeError, code, err.Error()) }
func sendWarning(code ErrorCode, msg string) { SendDebugInfo(TypeWarning, code, msg) }
func sendInfo(code ErrorCode, msg string)    { SendDebugInfo(TypeInfo, code, msg) }
