package gllegacy

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v2.1/gl"
)

type program struct {
	id    uint32
	depth bool
	blend bool
	locs  map[string]int32
}

func (p *program) ID() uint32 { return p.id }

func (p *program) uniform(name string) int32 {
	if loc, ok := p.locs[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	p.locs[name] = loc
	return loc
}

func compile(src string, kind uint32) (uint32, error) {
	if !strings.HasSuffix(src, "\x00") {
		src += "\x00"
	}
	sh := gl.CreateShader(kind)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var ok int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &ok)
	if ok == gl.FALSE {
		var n int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &n)
		log := strings.Repeat("\x00", int(n+1))
		gl.GetShaderInfoLog(sh, n, nil, gl.Str(log))
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("glsl 120 compile: %s", strings.TrimRight(log, "\x00"))
	}
	return sh, nil
}

// link builds a program. GLSL 120 has no layout qualifiers, so attribute
// locations come from their position in attribs.
func link(vsSrc, fsSrc string, attribs []string) (uint32, error) {
	vs, err := compile(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compile(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	for i, name := range attribs {
		gl.BindAttribLocation(prog, uint32(i), gl.Str(name+"\x00"))
	}
	gl.LinkProgram(prog)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var ok int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &ok)
	if ok == gl.FALSE {
		var n int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &n)
		log := strings.Repeat("\x00", int(n+1))
		gl.GetProgramInfoLog(prog, n, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("glsl 120 link: %s", strings.TrimRight(log, "\x00"))
	}
	return prog, nil
}
