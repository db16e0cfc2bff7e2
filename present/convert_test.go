package present

import (
	"testing"

	"github.com/disasterengine/canvas"
	"github.com/disasterengine/canvas/math3d"
	"github.com/disasterengine/canvas/mesh"
)

func TestFitScale(t *testing.T) {
	tests := []struct {
		w, h, ow, oh, want int
	}{
		{320, 240, 640, 480, 2},
		{320, 240, 1920, 1080, 4},
		{320, 240, 100, 100, 1},
		{0, 240, 640, 480, 1},
	}
	for _, tt := range tests {
		if got := FitScale(tt.w, tt.h, tt.ow, tt.oh); got != tt.want {
			t.Errorf("FitScale(%d, %d, %d, %d) = %d, want %d", tt.w, tt.h, tt.ow, tt.oh, got, tt.want)
		}
	}
}

func TestSpriteParams(t *testing.T) {
	tf := canvas.IdentityTransform()
	tf.Scale = canvas.Vec2{X: -2, Y: 3}
	tf.Rotation = 180
	tf.Alpha = 4
	sp := SpriteParams(10, 20, canvas.Rect{W: 8, H: -4}, tf)
	if !sp.FlipX || !sp.FlipY {
		t.Errorf("flips = %v, %v; want both", sp.FlipX, sp.FlipY)
	}
	if sp.ScaleX != 2 || sp.ScaleY != 3 || sp.W != 8 || sp.H != 4 {
		t.Errorf("geometry = %+v", sp)
	}
	if sp.Alpha != 1 {
		t.Errorf("alpha = %v, want clamped 1", sp.Alpha)
	}

	tf.Scale.X = -1
	if sp := SpriteParams(0, 0, canvas.Rect{W: -8, H: 4}, tf); sp.FlipX {
		t.Error("negative width and negative scale should cancel")
	}
}

func TestProjectMesh(t *testing.T) {
	cam := canvas.DefaultCamera()
	cam.Position = math3d.V3(3, 4, 5)
	tris := ProjectMesh(mesh.Cube(2), canvas.IdentityWorld(), cam, 320, 240)
	if len(tris) != 6 {
		t.Fatalf("got %d front faces, want 6", len(tris))
	}
	for i := 1; i < len(tris); i++ {
		if tris[i].Depth > tris[i-1].Depth {
			t.Fatal("triangles not sorted far to near")
		}
	}
	for _, s := range tris {
		if s.Light < 0.25 || s.Light > 1 {
			t.Errorf("light = %v out of range", s.Light)
		}
	}
	if got := ProjectMesh(nil, canvas.IdentityWorld(), cam, 320, 240); got != nil {
		t.Errorf("nil mesh = %v", got)
	}
}

func TestLineEnds(t *testing.T) {
	cam := canvas.DefaultCamera()
	a, b, ok := LineEnds(cam, math3d.Vec3{}, math3d.V3(1, 0, 0), 320, 240)
	if !ok || b.X <= a.X {
		t.Errorf("LineEnds = %v %v %v; want visible, left to right", a, b, ok)
	}
	if _, _, ok := LineEnds(cam, math3d.Vec3{}, math3d.V3(0, 20, 20), 320, 240); ok {
		t.Error("segment ending behind the camera reported visible")
	}
}

func TestTextExtent(t *testing.T) {
	if c, r := textExtent("ab\nabcd\n"); c != 4 || r != 3 {
		t.Errorf("textExtent = %d, %d; want 4, 3", c, r)
	}
}
