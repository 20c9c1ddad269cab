// Package shader compiles GLSL programs and sets their uniforms.
package shader

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/marcher/internal/engine/shader/glsl"
)

// Program is a linked GL program with a uniform location cache. Setters
// use the program, so calls for different programs can be interleaved.
// A uniform the driver optimized away has location -1 and its setters do
// nothing, as in GL itself.
type Program struct {
	id        uint32
	locations map[string]int32
}

// Compile compiles and links the vertex and fragment sources.
func Compile(vertex, fragment *glsl.Source) (*Program, error) {
	id, err := CompileProgram(vertex.String(), fragment.String())
	if err != nil {
		return nil, err
	}
	return &Program{id: id, locations: make(map[string]int32)}, nil
}

// ID returns the GL program name.
func (p *Program) ID() uint32 { return p.id }

// Use makes p the current program.
func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// Delete frees the program. p must not be used afterwards.
func (p *Program) Delete() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}

// Uniform returns the cached location of name.
func (p *Program) Uniform(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := GetUniform(p.id, name)
	p.locations[name] = loc
	return loc
}

func (p *Program) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	gl.ProgramUniform1i(p.id, p.Uniform(name), i)
}

func (p *Program) SetInt(name string, v int32) {
	gl.ProgramUniform1i(p.id, p.Uniform(name), v)
}

func (p *Program) SetFloat(name string, v float32) {
	gl.ProgramUniform1f(p.id, p.Uniform(name), v)
}

func (p *Program) SetVec2(name string, v mgl32.Vec2) {
	gl.ProgramUniform2fv(p.id, p.Uniform(name), 1, &v[0])
}

func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	gl.ProgramUniform3fv(p.id, p.Uniform(name), 1, &v[0])
}

func (p *Program) SetVec4(name string, v mgl32.Vec4) {
	gl.ProgramUniform4fv(p.id, p.Uniform(name), 1, &v[0])
}

// SetMat4 uploads m as stored by mgl32 (column-major, no transpose).
func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	gl.ProgramUniformMatrix4fv(p.id, p.Uniform(name), 1, false, &m[0])
}

// The array setters address element i of a uniform array, "name[i]".

func (p *Program) SetBoolAt(name string, i int, v bool) { p.SetBool(element(name, i), v) }

func (p *Program) SetIntAt(name string, i int, v int32) { p.SetInt(element(name, i), v) }

func (p *Program) SetFloatAt(name string, i int, v float32) { p.SetFloat(element(name, i), v) }

func (p *Program) SetVec2At(name string, i int, v mgl32.Vec2) { p.SetVec2(element(name, i), v) }

func (p *Program) SetVec3At(name string, i int, v mgl32.Vec3) { p.SetVec3(element(name, i), v) }

func (p *Program) SetVec4At(name string, i int, v mgl32.Vec4) { p.SetVec4(element(name, i), v) }

func element(name string, i int) string {
	return fmt.Sprintf("%s[%d]", name, i)
}

// CompileProgram compiles vertex and fragment shaders and links them into a program.
// Returns the program ID or an error if compilation/linking fails.
func CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertShader)

	fragShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertShader)
	gl.AttachShader(program, fragShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		msg := infoLog(program, gl.GetProgramiv, gl.GetProgramInfoLog)
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link: %s", msg)
	}

	return program, nil
}

func compileShader(source string, shaderType uint32, name string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		msg := infoLog(shader, gl.GetShaderiv, gl.GetShaderInfoLog)
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s shader: %s", name, msg)
	}

	return shader, nil
}

func infoLog(
	object uint32,
	getiv func(uint32, uint32, *int32),
	getLog func(uint32, int32, *int32, *uint8),
) string {
	var logLen int32
	getiv(object, gl.INFO_LOG_LENGTH, &logLen)
	if logLen == 0 {
		return "no info log"
	}
	log := make([]byte, logLen)
	getLog(object, logLen, nil, &log[0])
	return strings.TrimRight(string(log), "\x00\n")
}

// GetUniform returns the uniform location for the given name, or -1 if the
// uniform is not found or inactive.
func GetUniform(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}
