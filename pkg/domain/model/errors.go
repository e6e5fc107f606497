// 指示: miu200521358
package model

import "errors"

var (
	// ErrBoneNotFound はボーンが見つからないことを表す。
	ErrBoneNotFound = errors.New("bone not found")
	// ErrDuplicateBone は同名ボーンが既に存在することを表す。
	ErrDuplicateBone = errors.New("duplicate bone name")
	// ErrParentNotFound は親ボーンが見つからないことを表す。
	ErrParentNotFound = errors.New("parent bone not found")
	// ErrVertexGroupNotFound は頂点グループが見つからないことを表す。
	ErrVertexGroupNotFound = errors.New("vertex group not found")
	// ErrDuplicateVertexGroup は同名頂点グループが既に存在することを表す。
	ErrDuplicateVertexGroup = errors.New("duplicate vertex group name")
	// ErrModifierNotFound はモディファイアが見つからないことを表す。
	ErrModifierNotFound = errors.New("modifier not found")
	// ErrModifierNotApplicable は適用できないモディファイアを表す。
	ErrModifierNotApplicable = errors.New("modifier cannot be applied")
	// ErrDuplicateVariable は同名ドライバー変数が既に存在することを表す。
	ErrDuplicateVariable = errors.New("duplicate driver variable name")
	// ErrRotationLimitMissing は回転制限コンストレイントに制限値がないことを表す。
	ErrRotationLimitMissing = errors.New("rotation limit values are missing")
	// ErrVertexOutOfRange は頂点indexがメッシュの範囲外であることを表す。
	ErrVertexOutOfRange = errors.New("vertex index out of range")
)
