// 指示: miu200521358
package moutput

import "github.com/miu200521358/mu_daz2arp/pkg/domain/model"

// ReportLevel は変換レポートの重要度を表す。
type ReportLevel string

const (
	ReportLevelInfo    ReportLevel = "INFO"
	ReportLevelWarning ReportLevel = "WARNING"
	ReportLevelError   ReportLevel = "ERROR"
)

// ReportEntry は変換中に発生した通知1件を表す。
type ReportEntry struct {
	Level   ReportLevel
	ID      model.WarningID
	Subject string
	Message string
}

// IReporter は変換レポートの受け取り契約を表す。
type IReporter interface {
	// Report は通知を1件受け取る。
	Report(entry ReportEntry)
}

// IFileReader はシーン文書の読み込み契約を表す。
type IFileReader interface {
	// CanLoad は拡張子から読み込み可否を返す。
	CanLoad(path string) bool
	// Load はシーン文書を読み込む。
	Load(path string) (*model.Scene, error)
}

// IFileWriter はシーン文書の書き込み契約を表す。
type IFileWriter interface {
	// Save はシーン文書を保存する。
	Save(path string, scene *model.Scene, options SaveOptions) error
}

// SaveOptions は保存時のオプションを表す。
type SaveOptions struct {
	// Indent はYAML出力時のインデント幅を表す。0 の場合は既定値を使う。
	Indent int
}

// RigOptions は参照リグ追加時のオプションを表す。
type RigOptions struct {
	Name       string
	SpineCount int
	NeckCount  int
	Toes       bool
	Breast     bool
}

// IRigProvider はARPリグ生成機能の契約を表す。
type IRigProvider interface {
	// Available はリグ生成機能が利用可能か検査する。利用不可の場合はエラーを返す。
	Available() error
	// AppendReferenceRig は参照ボーンのみのリグをシーンへ追加する。
	AppendReferenceRig(scene *model.Scene, options RigOptions) (*model.Skeleton, error)
	// MatchToRig は参照ボーンから制御/変形ボーンを生成する。
	MatchToRig(rig *model.Skeleton) error
}
