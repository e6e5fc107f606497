// 指示: miu200521358
package model

// ConstraintType はボーンコンストレイント種別を表す。
type ConstraintType string

const (
	// CONSTRAINT_LIMIT_ROTATION は回転制限コンストレイント。
	CONSTRAINT_LIMIT_ROTATION ConstraintType = "LIMIT_ROTATION"
	// CONSTRAINT_COPY_ROTATION は回転コピーコンストレイント。
	CONSTRAINT_COPY_ROTATION ConstraintType = "COPY_ROTATION"
	// CONSTRAINT_DAMPED_TRACK は減衰トラックコンストレイント。
	CONSTRAINT_DAMPED_TRACK ConstraintType = "DAMPED_TRACK"
)

// EulerOrder はオイラー角の回転順序を表す。
type EulerOrder string

const (
	EULER_AUTO EulerOrder = "AUTO"
	EULER_XYZ  EulerOrder = "XYZ"
	EULER_XZY  EulerOrder = "XZY"
	EULER_YXZ  EulerOrder = "YXZ"
	EULER_YZX  EulerOrder = "YZX"
	EULER_ZXY  EulerOrder = "ZXY"
	EULER_ZYX  EulerOrder = "ZYX"
)

// Space はコンストレイント評価空間を表す。
type Space string

const (
	SPACE_WORLD        Space = "WORLD"
	SPACE_POSE         Space = "POSE"
	SPACE_LOCAL_PARENT Space = "LOCAL_WITH_PARENT"
	SPACE_LOCAL        Space = "LOCAL"
)

// AxisLimit は1軸分の回転制限を表す。
type AxisLimit struct {
	Use bool
	Min float64
	Max float64
}

// RotationLimit は回転制限コンストレイントの設定を表す。
type RotationLimit struct {
	Axes              [3]AxisLimit
	EulerOrder        EulerOrder
	UseTransformLimit bool
	OwnerSpace        Space
}

// Constraint はポーズボーンに付くコンストレイントを表す。
type Constraint struct {
	Name      string
	Type      ConstraintType
	Target    string
	Subtarget string
	Limit     *RotationLimit
}

// NewRotationLimitConstraint は既定値の回転制限コンストレイントを生成する。
func NewRotationLimitConstraint(name string) *Constraint {
	return &Constraint{
		Name: name,
		Type: CONSTRAINT_LIMIT_ROTATION,
		Limit: &RotationLimit{
			EulerOrder: EULER_AUTO,
			OwnerSpace: SPACE_WORLD,
		},
	}
}

// IsRotationLimit は回転制限コンストレイントか判定する。
func (c *Constraint) IsRotationLimit() bool {
	return c != nil && c.Type == CONSTRAINT_LIMIT_ROTATION && c.Limit != nil
}

// Copy はコンストレイントの複製を返す。
func (c *Constraint) Copy() *Constraint {
	copied := *c
	if c.Limit != nil {
		limit := *c.Limit
		copied.Limit = &limit
	}
	return &copied
}
