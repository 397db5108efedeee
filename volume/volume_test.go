package volume

import "testing"

func TestNewRoundsUpToTile(t *testing.T) {
	cases := []struct{ requested, tile, wantN int }{
		{192, 8, 192},
		{190, 8, 192},
		{193, 8, 200},
		{200, 4, 200},
		{201, 4, 204},
		{2, 8, 8},
	}
	for _, c := range cases {
		d, err := New(c.requested, c.tile)
		if err != nil {
			t.Fatalf("New(%d,%d): %v", c.requested, c.tile, err)
		}
		if d.N != c.wantN {
			t.Fatalf("New(%d,%d).N = %d, want %d", c.requested, c.tile, d.N, c.wantN)
		}
		if d.N%c.tile != 0 {
			t.Fatalf("New(%d,%d).N = %d not a multiple of tile", c.requested, c.tile, d.N)
		}
	}
}

func TestNewRejectsTooSmall(t *testing.T) {
	if _, err := New(1, 8); err == nil {
		t.Fatal("expected InvalidResolution for requested < 2")
	}
	if _, err := New(10, 0); err == nil {
		t.Fatal("expected InvalidResolution for non-positive tile")
	}
}

func TestNewRejectsTooLarge(t *testing.T) {
	if _, err := New(1<<20, 8); err == nil {
		t.Fatal("expected InvalidResolution for N^3 over the ceiling")
	}
}

func TestCellCount(t *testing.T) {
	d, err := New(64, 8)
	if err != nil {
		t.Fatal(err)
	}
	want := 63 * 63 * 63
	if d.M != want {
		t.Fatalf("M = %d, want %d", d.M, want)
	}
}

func TestDispatchGroups(t *testing.T) {
	d, err := New(192, 8)
	if err != nil {
		t.Fatal(err)
	}
	gx, gy, gz := d.DispatchGroups()
	if gx != 24 || gy != 24 || gz != 24 {
		t.Fatalf("DispatchGroups() = (%d,%d,%d), want (24,24,24)", gx, gy, gz)
	}
}

func TestBufferSizingFormulas(t *testing.T) {
	d, err := New(64, 8)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := d.ValueBufferBytes(), 4*64*64*64; got != want {
		t.Fatalf("ValueBufferBytes() = %d, want %d", got, want)
	}
	wantVert := 4 * 3 * 12 * d.M * 4
	if got := d.VertexBufferBytes(); got != wantVert {
		t.Fatalf("VertexBufferBytes() = %d, want %d", got, wantVert)
	}
	if got, want := d.IndexBufferBytes(), 4*15*d.M; got != want {
		t.Fatalf("IndexBufferBytes() = %d, want %d", got, want)
	}
	if got, want := d.IndexCount(), 15*d.M; got != want {
		t.Fatalf("IndexCount() = %d, want %d", got, want)
	}
}
