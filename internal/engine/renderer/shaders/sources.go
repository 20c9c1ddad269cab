package shaders

import (
	"fmt"
	"strconv"

	"github.com/Faultbox/marcher/internal/engine/shader/glsl"
	"github.com/Faultbox/marcher/internal/scene"
)

// Raymarch returns the ray-march program sources with the scene buffer
// contract defined: SSBO_SIZE words readable, RECORD_WORDS per record and
// the record layout version.
func Raymarch(ssboSize int) (vertex, fragment *glsl.Source, err error) {
	if ssboSize < scene.RecordWords {
		return nil, nil, fmt.Errorf("ssbo size %d is smaller than one record (%d words)", ssboSize, scene.RecordWords)
	}

	fragment = glsl.New(RaymarchFragmentShader)
	defines := []glsl.Define{
		{Name: "SSBO_SIZE", Value: strconv.Itoa(ssboSize)},
		{Name: "RECORD_WORDS", Value: strconv.Itoa(scene.RecordWords)},
		{Name: "SCENE_FORMAT_VERSION", Value: strconv.Itoa(scene.FormatVersion)},
	}
	for _, d := range defines {
		if err := fragment.AddDefine(d.Name, d.Value); err != nil {
			return nil, nil, err
		}
	}
	return glsl.New(RaymarchVertexShader), fragment, nil
}
