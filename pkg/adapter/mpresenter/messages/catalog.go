// 指示: miu200521358
package messages

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// 表示文言。キーが表示文としてそのまま使えるものは省略する。
var jaTexts = map[string]string{
	HelpRoot:     "Daz Genesis 8 の骨格を AutoRig Pro のリグへ変換します",
	HelpConvert:  "シーン文書を読み込み、ARPリグを追加してメッシュとドライバーを付け替えます",
	HelpTables:   "Dazボーン→ARPボーンの対応表を表示します",
	HelpVersion:  "バージョンを表示します",
	HelpUsage:    "mu_daz2arp convert <入力シーン.yaml> [--output 出力先]",
	FlagConfig:   "設定ファイル (既定: daz2arp.yaml)",
	FlagOutput:   "出力シーンファイル (既定: 入力名_arp)",
	FlagArmature: "変換元のDazアーマチュア名 (既定: シーン先頭)",
	FlagRigName:  "生成するARPリグ名",
	FlagLang:     "表示言語 (ja/en)",
	FlagLogFile:  "ログ出力ファイル (空の場合は標準エラー)",
	FlagMapping:  "Daz名→ARP名の対応表ファイル (YAML/JSON)",
	FlagCopy:     "対応のないボーンをリグへ複製する",
	FlagDrivers:  "補正シェイプキーのドライバーをリグへ付け替える",
	FlagWeights:  "頂点グループ名をARPボーン名へ付け替える",
	FlagVerbose:  "デバッグログを出力する",

	HelpVertices:     "メッシュの頂点を選択またはスナップします",
	HelpSelectNear:   "選択頂点から指定距離未満にある頂点を追加選択します",
	HelpSnap:         "選択頂点をスナップ先メッシュの近い頂点位置へ移動します",
	FlagDistance:     "判定距離",
	FlagMesh:         "対象メッシュ名 (既定: 全メッシュ)",
	FlagSnapTarget:   "スナップ先メッシュ名",
	FlagOnlySelected: "スナップ先メッシュの選択頂点のみを使う",
}

var enTexts = map[string]string{
	HelpRoot:     "Convert a Daz Genesis 8 armature into an AutoRig Pro rig",
	HelpConvert:  "Load a scene document, append an ARP rig and retarget meshes and drivers",
	HelpTables:   "Print the Daz bone to ARP bone correspondence",
	HelpVersion:  "Print the version",
	HelpUsage:    "mu_daz2arp convert <input-scene.yaml> [--output path]",
	FlagConfig:   "config file (default: daz2arp.yaml)",
	FlagOutput:   "output scene file (default: <input>_arp)",
	FlagArmature: "source Daz armature name (default: first in scene)",
	FlagRigName:  "name of the generated ARP rig",
	FlagLang:     "display language (ja/en)",
	FlagLogFile:  "log file (stderr when empty)",
	FlagMapping:  "Daz name to ARP name correspondence file (YAML/JSON)",
	FlagCopy:     "copy bones without a correspondence onto the rig",
	FlagDrivers:  "retarget corrective shape key drivers to the rig",
	FlagWeights:  "rename vertex groups to ARP bone names",
	FlagVerbose:  "write debug logs",

	HelpVertices:     "Select or snap mesh vertices",
	HelpSelectNear:   "Add vertices closer than the distance to the selected vertices",
	HelpSnap:         "Move selected vertices onto nearby vertices of the snap mesh",
	FlagDistance:     "distance threshold",
	FlagMesh:         "target mesh names (default: every mesh)",
	FlagSnapTarget:   "mesh to snap onto",
	FlagOnlySelected: "only use selected vertices of the snap mesh",

	MessageInputRequired:          "an input scene file is required",
	MessageLoadFailed:             "load failed",
	MessageSaveFailed:             "save failed",
	MessageConvertFailed:          "conversion failed",
	MessageRigProviderUnavailable: "the ARP rig provider is unavailable",
	MessageCorrespondenceFailed:   "failed to load the correspondence",
	MessageVertexEditFailed:       "vertex edit failed",

	ProgressSceneLoaded:          "scene loaded",
	ProgressRigAppended:          "reference rig appended: bones=%d",
	ProgressBonesSnapped:         "reference bones snapped",
	ProgressRigMatched:           "rig generated",
	ProgressBonesCopied:          "unmapped bones copied",
	ProgressConstraintsCopied:    "rotation limits copied",
	ProgressDriversCleaned:       "drivers cleaned",
	ProgressDriversRetargeted:    "drivers retargeted",
	ProgressVertexGroupsRemapped: "vertex groups remapped",
	ProgressSceneSaved:           "scene saved",

	ReportHeaderLevel:   "Level",
	ReportHeaderID:      "ID",
	ReportHeaderSubject: "Subject",
	ReportHeaderMessage: "Message",
	TablesHeaderSource:  "Daz bone",
	TablesHeaderTarget:  "ARP bone",

	LogConvertSuccess: "ARP conversion succeeded: %s",
	LogConvertSummary: "reports: INFO=%d WARNING=%d ERROR=%d",
	LogRunStarted:     "run started: run=%s",
	LogDriverCheck:    "corrective drivers checked: count=%d diverged=%d",
	LogSelectNear:     "near vertices selected: seeds=%d added=%d",
	LogSnap:           "vertices snapped: candidates=%d moved=%d",
	LogVertexSaved:    "vertex edit saved: %s",
}

// Catalog は日本語/英語の表示文言を登録したカタログを返す。
func Catalog() catalog.Catalog {
	builder := catalog.NewBuilder(catalog.Fallback(language.Japanese))
	for _, key := range Keys() {
		ja := key
		if text, ok := jaTexts[key]; ok {
			ja = text
		}
		_ = builder.SetString(language.Japanese, key, ja)
		if text, ok := enTexts[key]; ok {
			_ = builder.SetString(language.English, key, text)
		}
	}
	return builder
}

// NewPrinter は言語指定に合う表示用プリンタを返す。解釈できない指定は日本語とする。
func NewPrinter(lang string) *message.Printer {
	tag := language.Japanese
	if parsed, err := language.Parse(lang); err == nil {
		matcher := language.NewMatcher([]language.Tag{language.Japanese, language.English})
		_, index, confidence := matcher.Match(parsed)
		if confidence != language.No && index == 1 {
			tag = language.English
		}
	}
	return message.NewPrinter(tag, message.Catalog(Catalog()))
}

// Keys は登録済みメッセージキーを返す。
func Keys() []string {
	return []string{
		HelpRoot, HelpConvert, HelpTables, HelpVersion, HelpUsage,
		FlagConfig, FlagOutput, FlagArmature, FlagRigName, FlagLang, FlagLogFile,
		FlagMapping, FlagCopy, FlagDrivers, FlagWeights, FlagVerbose,
		HelpVertices, HelpSelectNear, HelpSnap, FlagDistance, FlagMesh, FlagSnapTarget, FlagOnlySelected,
		MessageInputRequired, MessageLoadFailed, MessageSaveFailed, MessageConvertFailed,
		MessageRigProviderUnavailable, MessageCorrespondenceFailed, MessageVertexEditFailed,
		ProgressSceneLoaded, ProgressRigAppended, ProgressBonesSnapped, ProgressRigMatched,
		ProgressBonesCopied, ProgressConstraintsCopied, ProgressDriversCleaned,
		ProgressDriversRetargeted, ProgressVertexGroupsRemapped, ProgressSceneSaved,
		ReportHeaderLevel, ReportHeaderID, ReportHeaderSubject, ReportHeaderMessage,
		TablesHeaderSource, TablesHeaderTarget,
		LogConvertSuccess, LogConvertSummary, LogRunStarted,
		LogDriverCheck, LogSelectNear, LogSnap, LogVertexSaved,
	}
}
