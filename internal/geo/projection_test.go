package geo

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestProjectGlobalDeterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		a := ProjectGlobal(33.4484, -112.0740, 1.234, 10)
		b := ProjectGlobal(33.4484, -112.0740, 1.234, 10)
		if a != b {
			t.Fatalf("ProjectGlobal not deterministic: %+v vs %+v", a, b)
		}
	}
}

func TestProjectGlobalFrontCenter(t *testing.T) {
	p := ProjectGlobal(0, -90, 0, 10)
	if !near(p.Dx, 0) || !near(p.Dy, 0) || !near(p.Depth, 10) {
		t.Fatalf("front center = %+v, want (0, 0, 10)", p)
	}
}

func TestProjectGlobalOrientation(t *testing.T) {
	east := ProjectGlobal(0, -80, 0, 10)
	if east.Dx <= 0 {
		t.Errorf("point east of center has Dx = %v, want > 0", east.Dx)
	}

	north := ProjectGlobal(20, -90, 0, 10)
	if north.Dy >= 0 {
		t.Errorf("point north of center has Dy = %v, want < 0", north.Dy)
	}
}

func TestProjectGlobalOnSphere(t *testing.T) {
	for _, c := range []struct{ lat, lng, rot float64 }{
		{33.4484, -112.0740, 0},
		{-33.8688, 151.2093, 2.5},
		{51.5, -0.12, -7},
		{0, 0, 100},
	} {
		p := ProjectGlobal(c.lat, c.lng, c.rot, 7)
		r := math.Sqrt(p.Dx*p.Dx + p.Dy*p.Dy + p.Depth*p.Depth)
		if math.Abs(r-7) > 1e-6 {
			t.Errorf("|%+v| = %v, want 7", c, r)
		}
	}
}

func TestProjectGlobalRotationModulo(t *testing.T) {
	base := ProjectGlobal(35.6762, 139.6503, 0.75, 12)
	for _, k := range []float64{-3, -1, 1, 5, 40} {
		p := ProjectGlobal(35.6762, 139.6503, 0.75+k*2*math.Pi, 12)
		if math.Abs(p.Dx-base.Dx) > 1e-6 || math.Abs(p.Dy-base.Dy) > 1e-6 || math.Abs(p.Depth-base.Depth) > 1e-6 {
			t.Errorf("k=%v: %+v, want %+v", k, p, base)
		}
	}
}

func TestProjectGlobalHalfTurnFlipsDepth(t *testing.T) {
	front := ProjectGlobal(33.4484, -112.0740, 0, 10)
	back := ProjectGlobal(33.4484, -112.0740, math.Pi, 10)

	if !front.Visible() {
		t.Fatalf("Phoenix should face the viewer at rotation 0, depth %v", front.Depth)
	}
	if back.Visible() {
		t.Fatalf("Phoenix should be hidden after a half turn, depth %v", back.Depth)
	}
	if math.Abs(front.Depth+back.Depth) > 1e-6 {
		t.Errorf("depth should flip sign: %v vs %v", front.Depth, back.Depth)
	}
}

func TestProjectGlobalPoles(t *testing.T) {
	for _, lat := range []float64{90, -90, 95} {
		for _, rot := range []float64{0, 1, math.Pi, -12} {
			p := ProjectGlobal(lat, 45, rot, 10)
			if math.IsNaN(p.Dx) || math.IsNaN(p.Dy) || math.IsNaN(p.Depth) {
				t.Fatalf("pole lat=%v rot=%v produced NaN: %+v", lat, rot, p)
			}
			if p.Visible() {
				t.Errorf("pole lat=%v should sit on the limb, depth %v", lat, p.Depth)
			}
		}
	}

	if p := ProjectGlobal(90, 0, 0, 10); p.Dy != -10 {
		t.Errorf("north pole Dy = %v, want -10", p.Dy)
	}
	if p := ProjectGlobal(-90, 0, 0, 10); p.Dy != 10 {
		t.Errorf("south pole Dy = %v, want 10", p.Dy)
	}
}

func TestProjectGlobalLongitudeWrap(t *testing.T) {
	a := ProjectGlobal(10, 190, 0, 10)
	b := ProjectGlobal(10, -170, 0, 10)
	if math.Abs(a.Dx-b.Dx) > 1e-6 || math.Abs(a.Dy-b.Dy) > 1e-6 || math.Abs(a.Depth-b.Depth) > 1e-6 {
		t.Fatalf("lng 190 = %+v, lng -170 = %+v", a, b)
	}
}

func TestNormalizeLng(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{-112.074, -112.074},
		{190, -170},
		{-190, 170},
		{720 + 15, 15},
	}
	for _, tt := range tests {
		if got := NormalizeLng(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("NormalizeLng(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for lng := -1000.0; lng < 1000; lng += 7.3 {
		if got := NormalizeLng(lng); got <= -180 || got > 180 {
			t.Errorf("NormalizeLng(%v) = %v, outside (-180, 180]", lng, got)
		}
	}
}

func TestProjectRegionalCorners(t *testing.T) {
	bounds := Bounds{MinLat: 30, MaxLat: 40, MinLon: -120, MaxLon: -100}
	size := Size{W: 200, H: 100}

	nw := ProjectRegional(40, -120, bounds, size, Offset{})
	if !near(nw.X, 20) || !near(nw.Y, 10) {
		t.Errorf("north-west corner = %+v, want (20, 10)", nw)
	}

	se := ProjectRegional(30, -100, bounds, size, Offset{})
	if !near(se.X, 180) || !near(se.Y, 90) {
		t.Errorf("south-east corner = %+v, want (180, 90)", se)
	}

	mid := ProjectRegional(35, -110, bounds, size, Offset{})
	if !near(mid.X, 100) || !near(mid.Y, 50) {
		t.Errorf("center = %+v, want (100, 50)", mid)
	}
}

func TestProjectRegionalPan(t *testing.T) {
	bounds := Bounds{MinLat: 30, MaxLat: 40, MinLon: -120, MaxLon: -100}
	size := Size{W: 200, H: 100}

	base := ProjectRegional(33.4484, -112.0740, bounds, size, Offset{})
	panned := ProjectRegional(33.4484, -112.0740, bounds, size, Offset{X: 50, Y: -30})

	if !near(panned.X, base.X+50) || !near(panned.Y, base.Y-30) {
		t.Fatalf("panned = %+v, want base %+v shifted by (50, -30)", panned, base)
	}
	if again := ProjectRegional(33.4484, -112.0740, bounds, size, Offset{X: 50, Y: -30}); again != panned {
		t.Fatalf("ProjectRegional not deterministic: %+v vs %+v", again, panned)
	}
}

func TestProjectRegionalDegenerateBounds(t *testing.T) {
	bounds := Bounds{MinLat: 33, MaxLat: 33, MinLon: -112, MaxLon: -112}
	p := ProjectRegional(33, -112, bounds, Size{W: 100, H: 50}, Offset{})
	if math.IsNaN(p.X) || math.IsNaN(p.Y) {
		t.Fatalf("degenerate bounds produced NaN: %+v", p)
	}
	if !near(p.X, 50) || !near(p.Y, 25) {
		t.Errorf("degenerate bounds = %+v, want surface center", p)
	}
}

func TestScreenPointCell(t *testing.T) {
	p := ScreenPoint{X: 3.6, Y: -0.4}
	if got := p.Cell(); got != (Point{X: 4, Y: 0}) {
		t.Errorf("Cell() = %+v, want (4, 0)", got)
	}
	if d := (ScreenPoint{X: 0, Y: 0}).DistanceTo(ScreenPoint{X: 3, Y: 4}); d != 5 {
		t.Errorf("DistanceTo = %v, want 5", d)
	}
}

func TestGlobeSurface(t *testing.T) {
	g := FitGlobe(Size{W: 100, H: 40}, 2)
	if g.Radius != 32 {
		t.Fatalf("Radius = %v, want min(100/2.5, 80/2.5) = 32", g.Radius)
	}
	if g.Center != (ScreenPoint{X: 50, Y: 20}) {
		t.Fatalf("Center = %+v", g.Center)
	}

	p, gp := g.Project(0, -90, 0)
	if !gp.Visible() || math.Abs(p.X-50) > 1e-6 || math.Abs(p.Y-20) > 1e-6 {
		t.Errorf("front center placed at %+v (depth %v)", p, gp.Depth)
	}

	north, _ := g.Project(90, 0, 0)
	if math.Abs(north.Y-(20-32.0/2)) > 1e-9 {
		t.Errorf("north pole Y = %v, want %v", north.Y, 20-32.0/2)
	}
	if !g.Inside(ScreenPoint{X: 50, Y: 20}) || g.Inside(ScreenPoint{X: 50, Y: 39}) {
		t.Error("Inside should account for aspect ratio")
	}

	tiny := FitGlobe(Size{W: 1, H: 1}, 0)
	if tiny.Radius != 1 || tiny.Aspect != 1 {
		t.Errorf("tiny globe = %+v, want radius 1 aspect 1", tiny)
	}
}
