// 指示: miu200521358
package model

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/spatial/r3"
)

const boneAxisEpsilon = 1e-12

// Bone は編集モード相当のボーン1本を表す。
type Bone struct {
	Name        string
	Head        r3.Vec
	Tail        r3.Vec
	Roll        float64
	Parent      string
	Connected   bool
	Deform      bool
	Collection  string
	Constraints []*Constraint
}

// NewBone はボーンを生成する。
func NewBone(name string, head r3.Vec, tail r3.Vec, roll float64) *Bone {
	return &Bone{
		Name:   name,
		Head:   head,
		Tail:   tail,
		Roll:   roll,
		Deform: true,
	}
}

// Vector は head から tail へのベクトルを返す。
func (b *Bone) Vector() r3.Vec {
	return r3.Sub(b.Tail, b.Head)
}

// Length はボーン長を返す。
func (b *Bone) Length() float64 {
	return r3.Norm(b.Vector())
}

// Matrix はボーン軸とロールからローカル姿勢行列を返す。
// 列ベクトルがそれぞれボーンローカルの X/Y/Z 軸になる。
func (b *Bone) Matrix() mgl64.Mat3 {
	vector := b.Vector()
	if r3.Norm(vector) <= boneAxisEpsilon {
		return mgl64.Ident3()
	}
	axis := mgl64.Vec3{vector.X, vector.Y, vector.Z}.Normalize()
	twist := mgl64.QuatRotate(b.Roll, axis)
	return twist.Mul(alignYAxis(axis)).Normalize().Mat4().Mat3()
}

// alignYAxis はローカル Y 軸を axis へ向ける回転を返す。
// 真逆を向く場合は Z 軸周りの半回転とする。
func alignYAxis(axis mgl64.Vec3) mgl64.Quat {
	up := mgl64.Vec3{0, 1, 0}
	cos := up.Dot(axis)
	if cos < -1+boneAxisEpsilon {
		return mgl64.QuatRotate(math.Pi, mgl64.Vec3{0, 0, 1})
	}
	s := math.Sqrt((1 + cos) * 2)
	return mgl64.Quat{W: s * 0.5, V: up.Cross(axis).Mul(1 / s)}
}

// LocalAxis はボーンローカル軸(0:X 1:Y 2:Z)のワールド方向を返す。
func (b *Bone) LocalAxis(index int) r3.Vec {
	col := b.Matrix().Col(index)
	return r3.Vec{X: col.X(), Y: col.Y(), Z: col.Z()}
}

// NormalizedRoll はロールを (-π, π] に正規化した値を返す。
func NormalizedRoll(roll float64) float64 {
	r := math.Mod(roll, 2*math.Pi)
	if r > math.Pi {
		r -= 2 * math.Pi
	}
	if r <= -math.Pi {
		r += 2 * math.Pi
	}
	return r
}

// Copy はコンストレイントを含めたボーンの複製を返す。
func (b *Bone) Copy() *Bone {
	copied := *b
	copied.Constraints = make([]*Constraint, 0, len(b.Constraints))
	for _, constraint := range b.Constraints {
		if constraint == nil {
			continue
		}
		copied.Constraints = append(copied.Constraints, constraint.Copy())
	}
	return &copied
}
