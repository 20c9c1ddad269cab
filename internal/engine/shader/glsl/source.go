// Package glsl edits GLSL source text before it is handed to the driver.
package glsl

import (
	"fmt"
	"strings"
)

// Define is one "#define NAME VALUE" line.
type Define struct {
	Name  string
	Value string
}

// Source is GLSL text with preprocessor defines that can be set from Go.
// New defines go on the line after #version, which must stay first.
type Source struct {
	lines []string
}

// New wraps GLSL text.
func New(text string) *Source {
	return &Source{lines: strings.Split(text, "\n")}
}

// String returns the current text.
func (s *Source) String() string {
	return strings.Join(s.lines, "\n")
}

// AddDefine sets NAME to value. An existing define of the same name is
// replaced in place; otherwise the define is inserted after #version, or at
// the top when there is no #version line.
func (s *Source) AddDefine(name, value string) error {
	if !validName(name) {
		return fmt.Errorf("invalid define name %q", name)
	}
	if strings.ContainsAny(value, "\r\n") {
		return fmt.Errorf("define %s: value spans lines", name)
	}

	line := "#define " + name
	if value != "" {
		line += " " + value
	}

	if i := s.find(name); i >= 0 {
		s.lines[i] = line
		return nil
	}

	at := 0
	if v := s.version(); v >= 0 {
		at = v + 1
	}
	s.lines = append(s.lines, "")
	copy(s.lines[at+1:], s.lines[at:])
	s.lines[at] = line
	return nil
}

// RemoveDefine deletes the define for name and reports whether there was one.
func (s *Source) RemoveDefine(name string) bool {
	i := s.find(name)
	if i < 0 {
		return false
	}
	s.lines = append(s.lines[:i], s.lines[i+1:]...)
	return true
}

// Define returns the value defined for name.
func (s *Source) Define(name string) (string, bool) {
	for _, l := range s.lines {
		if d, ok := parseDefine(l); ok && d.Name == name {
			return d.Value, true
		}
	}
	return "", false
}

// Defines lists every define in source order.
func (s *Source) Defines() []Define {
	var defs []Define
	for _, l := range s.lines {
		if d, ok := parseDefine(l); ok {
			defs = append(defs, d)
		}
	}
	return defs
}

func (s *Source) find(name string) int {
	for i, l := range s.lines {
		if d, ok := parseDefine(l); ok && d.Name == name {
			return i
		}
	}
	return -1
}

func (s *Source) version() int {
	for i, l := range s.lines {
		if strings.HasPrefix(strings.TrimSpace(l), "#version") {
			return i
		}
	}
	return -1
}

// parseDefine splits an object-like define. Function-like macros
// ("#define F(x) ...") keep their parameter list in the name and never
// match a plain identifier.
func parseDefine(line string) (Define, bool) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(line), "#define")
	if !ok || rest == "" || (rest[0] != ' ' && rest[0] != '\t') {
		return Define{}, false
	}
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return Define{}, false
	}
	return Define{Name: fields[0], Value: strings.Join(fields[1:], " ")}, true
}

func validName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
