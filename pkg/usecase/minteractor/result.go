// 指示: miu200521358
package minteractor

import (
	"github.com/miu200521358/mu_daz2arp/pkg/domain/model"
	"github.com/miu200521358/mu_daz2arp/pkg/usecase/port/moutput"
)

// ConvertProgressEventType は変換処理の進捗イベント種別を表す。
type ConvertProgressEventType string

const (
	// ConvertProgressEventTypeSceneLoaded はシーン読み込み完了イベントを表す。
	ConvertProgressEventTypeSceneLoaded ConvertProgressEventType = "scene_loaded"
	// ConvertProgressEventTypeRigAppended は参照リグ追加完了イベントを表す。
	ConvertProgressEventTypeRigAppended ConvertProgressEventType = "rig_appended"
	// ConvertProgressEventTypeBonesSnapped は参照ボーンのスナップ完了イベントを表す。
	ConvertProgressEventTypeBonesSnapped ConvertProgressEventType = "bones_snapped"
	// ConvertProgressEventTypeRigMatched は制御リグ生成完了イベントを表す。
	ConvertProgressEventTypeRigMatched ConvertProgressEventType = "rig_matched"
	// ConvertProgressEventTypeBonesCopied は構造コピー完了イベントを表す。
	ConvertProgressEventTypeBonesCopied ConvertProgressEventType = "bones_copied"
	// ConvertProgressEventTypeConstraintsCopied は回転制限コピー完了イベントを表す。
	ConvertProgressEventTypeConstraintsCopied ConvertProgressEventType = "constraints_copied"
	// ConvertProgressEventTypeDriversCleaned はドライバー掃除完了イベントを表す。
	ConvertProgressEventTypeDriversCleaned ConvertProgressEventType = "drivers_cleaned"
	// ConvertProgressEventTypeDriversRetargeted は補正ドライバー付け替え完了イベントを表す。
	ConvertProgressEventTypeDriversRetargeted ConvertProgressEventType = "drivers_retargeted"
	// ConvertProgressEventTypeVertexGroupsRemapped は頂点グループ付け替え完了イベントを表す。
	ConvertProgressEventTypeVertexGroupsRemapped ConvertProgressEventType = "vertex_groups_remapped"
	// ConvertProgressEventTypeSceneSaved はシーン保存完了イベントを表す。
	ConvertProgressEventTypeSceneSaved ConvertProgressEventType = "scene_saved"
)

// ConvertProgressEvent は変換処理の進捗イベントを表す。
type ConvertProgressEvent struct {
	Type      ConvertProgressEventType
	BoneCount int
	MeshCount int
	ItemCount int
}

// IConvertProgressReporter は変換処理の進捗通知契約を表す。
type IConvertProgressReporter interface {
	// ReportConvertProgress は変換処理進捗を通知する。
	ReportConvertProgress(event ConvertProgressEvent)
}

// ConvertOptions は変換処理の切り替え項目を表す。
type ConvertOptions struct {
	CopyRemainingBones       bool
	RemapCorrectiveShapeKeys bool
	RemapVertexGroups        bool
}

// DefaultConvertOptions は全処理を有効にした切り替え項目を返す。
func DefaultConvertOptions() ConvertOptions {
	return ConvertOptions{
		CopyRemainingBones:       true,
		RemapCorrectiveShapeKeys: true,
		RemapVertexGroups:        true,
	}
}

// ConvertRequest はDaz→ARP変換要求を表す。
type ConvertRequest struct {
	InputPath  string
	OutputPath string
	Scene      *model.Scene
	// SourceArmature はDazアーマチュア名を表す。空の場合はシーン先頭のアーマチュアを使う。
	SourceArmature   string
	RigName          string
	Options          ConvertOptions
	Reader           moutput.IFileReader
	Writer           moutput.IFileWriter
	SaveOptions      moutput.SaveOptions
	Reporter         moutput.IReporter
	ProgressReporter IConvertProgressReporter
}

// MeshRemapResult はメッシュ1件分の頂点グループ付け替え結果を表す。
type MeshRemapResult struct {
	Mesh string
	VertexGroupRemapResult
}

// ConvertResult はDaz→ARP変換結果を表す。
type ConvertResult struct {
	Scene        *model.Scene
	Rig          *model.Skeleton
	OutputPath   string
	Report       []Warning
	Copy         CopyResult
	FixedBones   []string
	Limits       LimitCopyResult
	Cleanup      DriverCleanupResult
	Retarget     DriverRetargetResult
	DriverCheck  DriverCheckResult
	VertexGroups []MeshRemapResult
}

// CountLevel は指定重要度の通知件数を返す。
func (r *ConvertResult) CountLevel(level moutput.ReportLevel) int {
	count := 0
	for _, entry := range r.Report {
		if entry.Level == level {
			count++
		}
	}
	return count
}
