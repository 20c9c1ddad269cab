// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// RaymarchVertexShader draws the fullscreen quad.
//
//go:embed raymarch.vert
var RaymarchVertexShader string

// RaymarchFragmentShader interprets the scene buffer and ray-marches it.
// The renderer defines SSBO_SIZE, RECORD_WORDS and SCENE_FORMAT_VERSION
// before compiling.
//
//go:embed raymarch.frag
var RaymarchFragmentShader string
