// Package shaders embeds the GLSL source for every stage of the pipeline
// and parses it with package glgl's combined-file convention, the same
// #shader-pragma idiom the teacher's examples use.
package shaders

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/gpucubes/marchgl/v4.6-core/glgl"
)

//go:embed field_implicit.glsl
var fieldImplicitSrc string

//go:embed field_metaball.glsl
var fieldMetaballSrc string

//go:embed extract_tile8.glsl
var extractTile8Src string

//go:embed extract_tile4.glsl
var extractTile4Src string

//go:embed surface.glsl
var surfaceSrc string

// FieldImplicit parses the field-pass compute shader for implicit-surface
// mode (tile size 8).
func FieldImplicit() (glgl.ShaderSource, error) {
	return parse(fieldImplicitSrc, "field_implicit")
}

// FieldMetaball parses the field-pass compute shader for metaball mode
// (tile size 4).
func FieldMetaball() (glgl.ShaderSource, error) {
	return parse(fieldMetaballSrc, "field_metaball")
}

// ExtractTile8 parses the extraction-pass compute shader paired with
// FieldImplicit.
func ExtractTile8() (glgl.ShaderSource, error) {
	return parse(extractTile8Src, "extract_tile8")
}

// ExtractTile4 parses the extraction-pass compute shader paired with
// FieldMetaball.
func ExtractTile4() (glgl.ShaderSource, error) {
	return parse(extractTile4Src, "extract_tile4")
}

// Surface parses the vertex+fragment graphics-stage shader.
func Surface() (glgl.ShaderSource, error) {
	return parse(surfaceSrc, "surface")
}

func parse(src, name string) (glgl.ShaderSource, error) {
	ss, err := glgl.ParseCombined(strings.NewReader(src))
	if err != nil {
		return ss, fmt.Errorf("parsing %s shader: %w", name, err)
	}
	return ss, nil
}
