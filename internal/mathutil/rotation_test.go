package mathutil

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestRotationsMatchMathgl(t *testing.T) {
	for _, a := range []float64{0, 0.4, math.Pi / 2, -2.2} {
		cases := []struct {
			name string
			got  *Matrix
			want mgl64.Mat4
		}{
			{"X", RotX(a), mgl64.HomogRotate3DX(-a)},
			{"Y", RotY(a), mgl64.HomogRotate3DY(-a)},
			{"Z", RotZ(a), mgl64.HomogRotate3DZ(-a)},
		}
		for _, c := range cases {
			if !c.got.Equal(FromMat4(c.want), 1e-12) {
				t.Errorf("Rot%s(%v) = %v, want %v", c.name, a, c.got, FromMat4(c.want))
			}
		}
	}
}

func TestTaitBryanOrder(t *testing.T) {
	angles := [3]float64{0.2, 0.7, -1.3}
	want := RotX(angles[0]).MustMul(RotY(angles[1]).MustMul(RotZ(angles[2])))
	if got := TaitBryan(angles); !got.Equal(want, 1e-12) {
		t.Errorf("TaitBryan = %v, want %v", got, want)
	}
	if got := TaitBryan([3]float64{}); !got.Equal(Identity(4), 0) {
		t.Errorf("TaitBryan(0) = %v, want identity", got)
	}
}

func TestDistanceAndLerp(t *testing.T) {
	a, b := Point(1, 2, 3), Point(4, 6, 3)
	if d := Distance(a, b); math.Abs(d-5) > tol {
		t.Errorf("Distance = %v, want 5", d)
	}
	mid, err := Lerp(a, b, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if !mid.Equal(Point(2.5, 4, 3), tol) {
		t.Errorf("Lerp = %v", mid)
	}
	if _, err := Lerp(a, Column(1, 2), 0.5); err == nil {
		t.Error("Lerp with mismatched shapes did not fail")
	}
}
