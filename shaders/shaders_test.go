package shaders

import "testing"

func TestAllSourcesParse(t *testing.T) {
	for name, fn := range map[string]func() error{
		"field_implicit": func() error { _, err := FieldImplicit(); return err },
		"field_metaball": func() error { _, err := FieldMetaball(); return err },
		"extract_tile8":  func() error { _, err := ExtractTile8(); return err },
		"extract_tile4":  func() error { _, err := ExtractTile4(); return err },
		"surface":        func() error { _, err := Surface(); return err },
	} {
		if err := fn(); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
	}
}

func TestComputeShadersHaveNoVertexOrFragment(t *testing.T) {
	for name, fn := range map[string]func() (string, string, string){
		"field_implicit": func() (string, string, string) { ss, _ := FieldImplicit(); return ss.Compute, ss.Vertex, ss.Fragment },
		"extract_tile8":  func() (string, string, string) { ss, _ := ExtractTile8(); return ss.Compute, ss.Vertex, ss.Fragment },
	} {
		compute, vertex, fragment := fn()
		if compute == "" {
			t.Fatalf("%s: expected non-empty compute source", name)
		}
		if vertex != "" || fragment != "" {
			t.Fatalf("%s: expected no vertex/fragment source in a compute-only file", name)
		}
	}
}

func TestSurfaceHasVertexAndFragment(t *testing.T) {
	ss, err := Surface()
	if err != nil {
		t.Fatal(err)
	}
	if ss.Vertex == "" || ss.Fragment == "" {
		t.Fatal("expected both vertex and fragment sections")
	}
	if ss.Compute != "" {
		t.Fatal("expected no compute section in surface.glsl")
	}
}
