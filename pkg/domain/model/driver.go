// 指示: miu200521358
package model

import (
	"fmt"

	"github.com/tiendc/go-deepcopy"
)

// VariableType はドライバー変数の種別を表す。
type VariableType string

const (
	// VAR_SINGLE_PROP は任意プロパティ参照。
	VAR_SINGLE_PROP VariableType = "SINGLE_PROP"
	// VAR_TRANSFORMS はボーン/オブジェクトの変形チャンネル参照。
	VAR_TRANSFORMS VariableType = "TRANSFORMS"
	// VAR_ROTATION_DIFF は2ボーン間の回転差分。
	VAR_ROTATION_DIFF VariableType = "ROTATION_DIFF"
	// VAR_LOC_DIFF は2ボーン間の距離。
	VAR_LOC_DIFF VariableType = "LOC_DIFF"
)

// TransformType は変形チャンネルを表す。
type TransformType string

const (
	LOC_X TransformType = "LOC_X"
	LOC_Y TransformType = "LOC_Y"
	LOC_Z TransformType = "LOC_Z"
	ROT_X TransformType = "ROT_X"
	ROT_Y TransformType = "ROT_Y"
	ROT_Z TransformType = "ROT_Z"
	ROT_W TransformType = "ROT_W"
)

// RotationAxis は回転チャンネルの軸index(0:X 1:Y 2:Z)を返す。回転以外は -1。
func (t TransformType) RotationAxis() int {
	switch t {
	case ROT_X:
		return 0
	case ROT_Y:
		return 1
	case ROT_Z:
		return 2
	}
	return -1
}

// RotationTransformType は軸indexから回転チャンネルを返す。
func RotationTransformType(axis int) TransformType {
	switch axis {
	case 0:
		return ROT_X
	case 1:
		return ROT_Y
	case 2:
		return ROT_Z
	}
	return ""
}

// TransformSpace は変形チャンネルの評価空間を表す。
type TransformSpace string

const (
	TRANSFORM_SPACE_WORLD     TransformSpace = "WORLD_SPACE"
	TRANSFORM_SPACE_TRANSFORM TransformSpace = "TRANSFORM_SPACE"
	TRANSFORM_SPACE_LOCAL     TransformSpace = "LOCAL_SPACE"
)

// DriverTarget はドライバー変数の参照先を表す。
type DriverTarget struct {
	ID             string
	BoneTarget     string
	DataPath       string
	TransformType  TransformType
	TransformSpace TransformSpace
	RotationMode   string
}

// DriverVariable はドライバー式で参照される変数を表す。
type DriverVariable struct {
	Name    string
	Type    VariableType
	Targets [2]DriverTarget
}

// Clone は変数の深いコピーを返す。
func (v *DriverVariable) Clone() (*DriverVariable, error) {
	cloned := &DriverVariable{}
	if err := deepcopy.Copy(cloned, *v); err != nil {
		return nil, fmt.Errorf("ドライバー変数 %s の複製に失敗しました: %w", v.Name, err)
	}
	return cloned, nil
}

// Driver はシェイプキー値を計算するスクリプト式ドライバーを表す。
type Driver struct {
	DataPath   string
	Expression string
	Variables  []*DriverVariable
}

// Variable は指定名の変数を返す。
func (d *Driver) Variable(name string) (*DriverVariable, bool) {
	for _, variable := range d.Variables {
		if variable.Name == name {
			return variable, true
		}
	}
	return nil, false
}

// AddVariable は変数を末尾へ追加する。
func (d *Driver) AddVariable(variable *DriverVariable) error {
	if _, exists := d.Variable(variable.Name); exists {
		return fmt.Errorf("%s/%s: %w", d.DataPath, variable.Name, ErrDuplicateVariable)
	}
	d.Variables = append(d.Variables, variable)
	return nil
}

// RemoveVariable は指定名の変数を削除する。削除した場合 true を返す。
func (d *Driver) RemoveVariable(name string) bool {
	for i, variable := range d.Variables {
		if variable.Name == name {
			d.Variables = append(d.Variables[:i], d.Variables[i+1:]...)
			return true
		}
	}
	return false
}

// UniqueVariableName は既存変数名と重複しない名前を返す。
func (d *Driver) UniqueVariableName(base string) string {
	if _, exists := d.Variable(base); !exists {
		return base
	}
	for serial := 1; ; serial++ {
		candidate := fmt.Sprintf("%s_%d", base, serial)
		if _, exists := d.Variable(candidate); !exists {
			return candidate
		}
	}
}
