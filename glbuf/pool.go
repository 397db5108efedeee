// Package glbuf owns the GPU buffer pool (C3): every storage and uniform
// buffer bound into the field and extraction compute pipelines, created
// once at startup per spec §4.3 and rewritten in place every frame
// thereafter. It is the only package that calls v4.6-core/glgl's buffer
// constructors directly — every other package above it deals in Go values
// (uniform structs, table data, vertex counts), never in raw GL buffer IDs.
package glbuf

import (
	"fmt"

	"github.com/gpucubes/marchgl/colormap"
	"github.com/gpucubes/marchgl/field"
	"github.com/gpucubes/marchgl/marchcubes"
	"github.com/gpucubes/marchgl/mctables"
	"github.com/gpucubes/marchgl/volume"
	glgl "github.com/gpucubes/marchgl/v4.6-core/glgl"
)

// Shader storage binding bases. GL's SSBO and UBO binding-point namespaces
// are independent, so these numbers may overlap with the UBO bases below
// without colliding on the device.
const (
	ssboValue = iota
	ssboPosition
	ssboNormal
	ssboColor
	ssboIndex
	ssboTables
	ssboColormap
	ssboIndirect
	ssboMetaballs
)

// Uniform buffer binding bases.
const (
	uboIntField = iota
	uboFloatField
	uboIntExtract
	uboFloatExtract
)

// Pool is the GPU-resident state every frame reads from and writes into. Its
// fields are exported so package orchestrator can bind it directly into
// draw/dispatch calls without a second layer of accessors.
type Pool struct {
	desc volume.Descriptor

	Value     glgl.ShaderStorageBuffer
	Position  glgl.ShaderStorageBuffer
	Normal    glgl.ShaderStorageBuffer
	Color     glgl.ShaderStorageBuffer
	Index     glgl.ShaderStorageBuffer
	Tables    glgl.ShaderStorageBuffer
	Colormap  glgl.ShaderStorageBuffer
	Indirect  glgl.ShaderStorageBuffer
	Metaballs glgl.ShaderStorageBuffer

	IntField     glgl.UniformBuffer
	FloatField   glgl.UniformBuffer
	IntExtract   glgl.UniformBuffer
	FloatExtract glgl.UniformBuffer

	maxBalls int
}

// Allocate creates every buffer at the sizes spec §3 fixes for desc, binding
// storage buffers and uniform buffers into their respective binding
// namespaces. maxBalls bounds the metaball storage buffer's allocation
// (ball_count may vary at runtime up to this ceiling without reallocating).
func Allocate(desc volume.Descriptor, maxBalls int) (*Pool, error) {
	p := &Pool{desc: desc, maxBalls: maxBalls}

	var err error
	mk := func(name string, base uint32, sizeBytes int) glgl.ShaderStorageBuffer {
		if err != nil {
			return glgl.ShaderStorageBuffer{}
		}
		var ssbo glgl.ShaderStorageBuffer
		ssbo, err = glgl.NewShaderStorageBufferBytes(glgl.ShaderStorageBufferConfig{Base: base}, sizeBytes)
		if err != nil {
			err = fmt.Errorf("glbuf: allocate %s (%d bytes): %w", name, sizeBytes, err)
		}
		return ssbo
	}

	p.Value = mk("V", ssboValue, desc.ValueBufferBytes())
	p.Position = mk("P", ssboPosition, desc.VertexBufferBytes())
	p.Normal = mk("Nrm", ssboNormal, desc.VertexBufferBytes())
	p.Color = mk("Col", ssboColor, desc.VertexBufferBytes())
	p.Index = mk("I", ssboIndex, desc.IndexBufferBytes())
	p.Tables = mk("T", ssboTables, 4*(len(mctables.EdgeTable)+len(mctables.TriTable)*16))
	p.Colormap = mk("CM", ssboColormap, 16*colormap.MaxColors)
	p.Indirect = mk("Ind", ssboIndirect, 16)
	p.Metaballs = mk("Metaballs", ssboMetaballs, 32*maxBalls)
	if err != nil {
		return nil, err
	}

	mkUBO := func(name string, base uint32, sizeBytes int) glgl.UniformBuffer {
		if err != nil {
			return glgl.UniformBuffer{}
		}
		var ubo glgl.UniformBuffer
		ubo, err = glgl.NewUniformBuffer(base, sizeBytes)
		if err != nil {
			err = fmt.Errorf("glbuf: allocate %s (%d bytes): %w", name, sizeBytes, err)
		}
		return ubo
	}
	p.IntField = mkUBO("Iu_field", uboIntField, 16)
	p.FloatField = mkUBO("Fu_field", uboFloatField, 16)
	p.IntExtract = mkUBO("Iu_extract", uboIntExtract, 16)
	p.FloatExtract = mkUBO("Fu_extract", uboFloatExtract, 16)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// Descriptor returns the volume descriptor this pool was allocated for.
func (p *Pool) Descriptor() volume.Descriptor { return p.desc }

// UploadTables writes EDGE_TABLE followed by the flattened TRI_TABLE into
// buffer T, once, per spec §4.1/§4.3.
func (p *Pool) UploadTables() error {
	return glgl.UploadSSBO(p.Tables, mctables.Flatten())
}

// UploadColormap writes palette into buffer CM, once, per spec §4.3.
func (p *Pool) UploadColormap(palette []colormap.RGBA) error {
	if len(palette) > colormap.MaxColors {
		return fmt.Errorf("glbuf: palette has %d entries, exceeds MaxColors %d", len(palette), colormap.MaxColors)
	}
	return glgl.UploadSSBO(p.Colormap, colormap.Flatten(palette))
}

// WriteFieldUniforms uploads the field pass's integer and float uniform
// blocks, per spec §4.3's write_field_uniforms.
func (p *Pool) WriteFieldUniforms(iu field.IntUniform, fu field.FloatUniform) error {
	if err := glgl.WriteUniform(p.IntField, []field.IntUniform{iu}); err != nil {
		return err
	}
	return glgl.WriteUniform(p.FloatField, []field.FloatUniform{fu})
}

// WriteExtractUniforms uploads the extraction pass's integer and float
// uniform blocks, per spec §4.3's write_extract_uniforms.
func (p *Pool) WriteExtractUniforms(iu marchcubes.IntUniform, fu marchcubes.FloatUniform) error {
	if err := glgl.WriteUniform(p.IntExtract, []marchcubes.IntUniform{iu}); err != nil {
		return err
	}
	return glgl.WriteUniform(p.FloatExtract, []marchcubes.FloatUniform{fu})
}

// WriteMetaballs uploads the metaball record array bound at field-pass
// binding 2 in metaball mode, per spec §4.3's write_metaballs. records must
// not exceed the maxBalls ceiling Allocate was called with.
func (p *Pool) WriteMetaballs(records []field.MetaballRecord) error {
	if len(records) > p.maxBalls {
		return fmt.Errorf("glbuf: %d metaball records exceeds allocated ceiling %d", len(records), p.maxBalls)
	}
	if len(records) == 0 {
		return nil
	}
	return glgl.UploadSSBOAt(p.Metaballs, 0, records)
}

// WriteIndirect overwrites the indirect parameter block, per spec §4.3's
// write_indirect. Per SPEC_FULL.md's supplemented-feature note, this value
// is informational only: no compaction pass reads it back, but it's written
// every frame for binding-layout fidelity with the contract in §6.2.
func (p *Pool) WriteIndirect(a, b, c, d uint32) error {
	return glgl.UploadSSBO(p.Indirect, []uint32{a, b, c, d})
}

// BindFieldGroup binds the three field-pass buffers into their SSBO/UBO
// binding points, matching the order of spec §6.1. metaballMode selects
// whether binding 2 is the float uniform or the metaball storage array.
func (p *Pool) BindFieldGroup(metaballMode bool) {
	p.Value.Bind()
	p.IntField.Bind()
	if metaballMode {
		p.Metaballs.Bind()
	} else {
		p.FloatField.Bind()
	}
}

// BindExtractGroup binds all ten extraction-pass buffers in the exact order
// of spec §6.2.
func (p *Pool) BindExtractGroup() {
	p.Tables.Bind()
	p.Value.Bind()
	p.Position.Bind()
	p.Normal.Bind()
	p.Color.Bind()
	p.Index.Bind()
	p.Indirect.Bind()
	p.Colormap.Bind()
	p.IntExtract.Bind()
	p.FloatExtract.Bind()
}
