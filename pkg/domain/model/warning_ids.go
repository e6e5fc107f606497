// 指示: miu200521358
package model

// WarningID は変換時に記録する警告種別を表す。
type WarningID string

const (
	// WarningTargetBoneMissing はARP側ボーン不足警告。
	WarningTargetBoneMissing WarningID = "WarningTargetBoneMissing"
	// WarningSourceBoneMissing はDaz側ボーン不足警告。
	WarningSourceBoneMissing WarningID = "WarningSourceBoneMissing"
	// WarningVertexGroupMissing は頂点グループ不足警告。
	WarningVertexGroupMissing WarningID = "WarningVertexGroupMissing"
	// WarningVertexGroupConflict は変換先頂点グループ重複警告。
	WarningVertexGroupConflict WarningID = "WarningVertexGroupConflict"
	// WarningWeightMergeFailed はウェイト合成失敗警告。
	WarningWeightMergeFailed WarningID = "WarningWeightMergeFailed"
	// WarningDriverVariableUnresolved はドライバー変数の対応先不明警告。
	WarningDriverVariableUnresolved WarningID = "WarningDriverVariableUnresolved"
	// WarningDriverExpressionUnparsed はドライバー式解析不可警告。
	WarningDriverExpressionUnparsed WarningID = "WarningDriverExpressionUnparsed"
	// WarningBoneNameCollision は複製ボーン名の重複警告。
	WarningBoneNameCollision WarningID = "WarningBoneNameCollision"
	// WarningLimitFrameUnsupported は回転制限の基準フレーム再投影未対応警告。
	WarningLimitFrameUnsupported WarningID = "WarningLimitFrameUnsupported"
	// WarningRigProviderMissing はリグ生成アドオン不在エラー。
	WarningRigProviderMissing WarningID = "WarningRigProviderMissing"
	// WarningDriverValueDiverged は付け替え前後でドライバー値が一致しない警告。
	WarningDriverValueDiverged WarningID = "WarningDriverValueDiverged"
	// WarningMeshVerticesMissing は頂点位置を扱えないメッシュの通知。
	WarningMeshVerticesMissing WarningID = "WarningMeshVerticesMissing"
)

// AllWarningIDs は定義済み警告IDを定義順で返す。
func AllWarningIDs() []WarningID {
	return []WarningID{
		WarningTargetBoneMissing,
		WarningSourceBoneMissing,
		WarningVertexGroupMissing,
		WarningVertexGroupConflict,
		WarningWeightMergeFailed,
		WarningDriverVariableUnresolved,
		WarningDriverExpressionUnparsed,
		WarningBoneNameCollision,
		WarningLimitFrameUnsupported,
		WarningRigProviderMissing,
		WarningDriverValueDiverged,
		WarningMeshVerticesMissing,
	}
}
