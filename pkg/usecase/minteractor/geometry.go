// 指示: miu200521358
package minteractor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

const geometryEpsilon = 1e-9

var worldUp = r3.Vec{X: 0, Y: 0, Z: 1}

// flattenUnit は Z 成分を落とした単位ベクトルを返す。長さが 0 の場合は false を返す。
func flattenUnit(v r3.Vec) (r3.Vec, bool) {
	flat := levelTo(v, 0)
	if r3.Norm(flat) <= geometryEpsilon {
		return r3.Vec{}, false
	}
	return r3.Unit(flat), true
}

// levelTo は v の高さ(worldUp 成分)を height に置き換えた位置を返す。
func levelTo(v r3.Vec, height float64) r3.Vec {
	return r3.Add(v, r3.Scale(height-r3.Dot(v, worldUp), worldUp))
}

// projectPointOnLine は点を origin を通る direction 方向の直線へ射影する。
// direction は単位ベクトルであること。
func projectPointOnLine(point r3.Vec, origin r3.Vec, direction r3.Vec) r3.Vec {
	t := r3.Dot(r3.Sub(point, origin), direction)
	return r3.Add(origin, r3.Scale(t, direction))
}

// extrude は head から direction 方向へ length だけ伸ばした位置を返す。
func extrude(head r3.Vec, direction r3.Vec, length float64) r3.Vec {
	return r3.Add(head, r3.Scale(length, direction))
}

// rotateAxisAroundTwist はボーンのローカル回転軸を Y(捻り)軸周りに回した後の軸と符号を返す。
// 戻り値の axis は 0:X 1:Y 2:Z、negate は回転方向が反転する場合 true。
func rotateAxisAroundTwist(axis int, degrees float64) (int, bool) {
	unit := mgl64.Vec3{}
	unit[axis] = 1
	rotated := mgl64.Rotate3DY(mgl64.DegToRad(degrees)).Mul3x1(unit)

	magnitudes := make([]float64, len(rotated))
	for i, component := range rotated {
		magnitudes[i] = math.Abs(component)
	}
	dominant := floats.MaxIdx(magnitudes)
	return dominant, rotated[dominant] < 0
}
