package platform

import "testing"

func TestCallsWithoutInit(t *testing.T) {
	if Initialized() {
		t.Skip("glfw is up")
	}
	tests := []struct {
		name string
		call func()
	}{
		{"PollEvents", PollEvents},
		{"WaitEvents", func() { WaitEvents(-1) }},
		{"WaitEventsTimeout", func() { WaitEvents(0.5) }},
		{"PostEmptyEvent", PostEmptyEvent},
		{"WriteClipboard", func() { WriteClipboard("x") }},
		{"SwapInterval", func() { SwapInterval(1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.call()
		})
	}
	if s := ReadClipboard(); s != "" {
		t.Errorf("clipboard = %q", s)
	}
	if ExtensionSupported("GL_ARB_debug_output") {
		t.Error("extension reported without a context")
	}
	if GetProcAddress("glClear") != nil {
		t.Error("proc address without a context")
	}
}
