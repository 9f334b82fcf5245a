package core

import "unsafe"

// Window is the platform window surface a Renderer draws into.
type Window interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	SetShouldClose(bool)
	Position() (x, y int)
	Size() (int, int)
	FramebufferSize() (int, int)
	CursorPos() (x, y float64, inside bool)
	SetTitle(title string)
	SetEventCallback(cb func(Event))

	MakeContextCurrent()
	SwapInterval(interval int)
	GetProcAddress(name string) unsafe.Pointer

	Close()
}
