package audiogui

import "testing"

func TestDrawList_AddRect(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	dl.AddRect(Rect{X: 1, Y: 2, W: 3, H: 4}, ColorWhite)
	if len(dl.VtxBuffer) != 4 || len(dl.IdxBuffer) != 6 {
		t.Fatalf("expected 4 vertices and 6 indices, got %d/%d", len(dl.VtxBuffer), len(dl.IdxBuffer))
	}
	if dl.VtxBuffer[2].Pos != [2]float32{4, 6} {
		t.Errorf("expected bottom right corner at (4,6), got %v", dl.VtxBuffer[2].Pos)
	}

	dl.AddRect(Rect{W: 10, H: 10}, ColorTransparent)
	dl.AddRect(Rect{W: 0, H: 10}, ColorWhite)
	dl.AddLine(Vec2{}, Vec2{X: 5}, ColorTransparent, 1)
	if len(dl.VtxBuffer) != 4 {
		t.Errorf("expected invisible primitives to be skipped, got %d vertices", len(dl.VtxBuffer))
	}
}

func TestDrawList_AddLine(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	dl.AddLine(Vec2{X: 0, Y: 0}, Vec2{X: 10, Y: 0}, ColorWhite, 2)
	if len(dl.VtxBuffer) != 4 {
		t.Fatalf("expected a quad, got %d vertices", len(dl.VtxBuffer))
	}
	var minY, maxY float32
	for _, v := range dl.VtxBuffer {
		minY = min(minY, v.Pos[1])
		maxY = max(maxY, v.Pos[1])
	}
	if !near(minY, -1) || !near(maxY, 1) {
		t.Errorf("expected thickness 2 around y=0, got [%v, %v]", minY, maxY)
	}
}

func TestDrawList_AddArc(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	dl.AddArc(Vec2{X: 50, Y: 50}, 20, 0, 3.14159, 8, ColorWhite, 1)
	if len(dl.VtxBuffer) != 8*4 {
		t.Errorf("expected 8 segments, got %d vertices", len(dl.VtxBuffer))
	}

	dl.Clear()
	dl.AddArc(Vec2{}, 20, 1, 1, 8, ColorWhite, 1)
	dl.AddArc(Vec2{}, 0, 0, 1, 8, ColorWhite, 1)
	dl.AddArc(Vec2{}, 20, 0, 1, 0, ColorWhite, 1)
	if len(dl.VtxBuffer) != 0 {
		t.Errorf("expected degenerate arcs to be skipped, got %d vertices", len(dl.VtxBuffer))
	}
}

func TestDrawList_ClipCommands(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	dl.AddRect(Rect{W: 10, H: 10}, ColorWhite)
	dl.PushClipRect(Rect{X: 5, Y: 5, W: 20, H: 20})
	dl.AddRect(Rect{X: 5, Y: 5, W: 10, H: 10}, ColorWhite)
	dl.PopClipRect()
	dl.Finalize()

	if len(dl.CmdBuffer) != 2 {
		t.Fatalf("expected 2 commands after dropping the empty one, got %d", len(dl.CmdBuffer))
	}
	clipped := dl.CmdBuffer[1]
	if clipped.ClipRect != [4]float32{5, 5, 25, 25} {
		t.Errorf("expected clip rect (5,5)-(25,25), got %v", clipped.ClipRect)
	}
	if clipped.VertexOffset != 4 || clipped.IndexOffset != 6 || clipped.ElemCount != 6 {
		t.Errorf("unexpected clipped command %+v", clipped)
	}
	// Indices restart at zero relative to the command's vertex offset.
	if dl.IdxBuffer[clipped.IndexOffset] != 0 {
		t.Errorf("expected command-relative index 0, got %d", dl.IdxBuffer[clipped.IndexOffset])
	}
}

func TestDrawList_PopEmptyStack(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	dl.PopClipRect()
	dl.Finalize()
	if len(dl.CmdBuffer) != 0 {
		t.Errorf("expected no commands, got %d", len(dl.CmdBuffer))
	}
}
