// 指示: miu200521358
// Package messages はCLI表示に使うメッセージキーを提供する。
package messages

// メッセージキー一覧。
const (
	HelpRoot     = "ルートコマンド説明"
	HelpConvert  = "変換コマンド説明"
	HelpTables   = "対応表コマンド説明"
	HelpVersion  = "バージョンコマンド説明"
	HelpUsage    = "使い方説明"
	FlagConfig   = "設定ファイル説明"
	FlagOutput   = "出力先説明"
	FlagArmature = "アーマチュア名説明"
	FlagRigName  = "リグ名説明"
	FlagLang     = "表示言語説明"
	FlagLogFile  = "ログファイル説明"
	FlagMapping  = "対応表ファイル説明"
	FlagCopy     = "未対応ボーン複製説明"
	FlagDrivers  = "補正シェイプキー付け替え説明"
	FlagWeights  = "頂点グループ付け替え説明"
	FlagVerbose  = "デバッグログ説明"

	HelpVertices     = "頂点コマンド説明"
	HelpSelectNear   = "近接頂点選択コマンド説明"
	HelpSnap         = "頂点スナップコマンド説明"
	FlagDistance     = "距離説明"
	FlagMesh         = "対象メッシュ説明"
	FlagSnapTarget   = "スナップ先メッシュ説明"
	FlagOnlySelected = "選択頂点のみ説明"

	MessageInputRequired          = "入力シーンファイルを指定してください"
	MessageLoadFailed             = "読み込み失敗"
	MessageSaveFailed             = "保存失敗"
	MessageConvertFailed          = "変換失敗"
	MessageRigProviderUnavailable = "ARPリグ生成機能が利用できません"
	MessageCorrespondenceFailed   = "対応表の読み込みに失敗しました"
	MessageVertexEditFailed       = "頂点編集失敗"

	ProgressSceneLoaded          = "シーン読込完了"
	ProgressRigAppended          = "参照リグ追加完了: ボーン数=%d"
	ProgressBonesSnapped         = "参照ボーン吸着完了"
	ProgressRigMatched           = "リグ生成完了"
	ProgressBonesCopied          = "未対応ボーン複製完了"
	ProgressConstraintsCopied    = "回転制限複製完了"
	ProgressDriversCleaned       = "ドライバー整理完了"
	ProgressDriversRetargeted    = "ドライバー付け替え完了"
	ProgressVertexGroupsRemapped = "頂点グループ付け替え完了"
	ProgressSceneSaved           = "シーン保存完了"

	ReportHeaderLevel   = "重要度"
	ReportHeaderID      = "通知ID"
	ReportHeaderSubject = "対象"
	ReportHeaderMessage = "内容"
	TablesHeaderSource  = "Dazボーン"
	TablesHeaderTarget  = "ARPボーン"

	LogConvertSuccess = "ARP変換成功: %s"
	LogConvertSummary = "通知件数: INFO=%d WARNING=%d ERROR=%d"
	LogRunStarted     = "実行開始: run=%s"
	LogDriverCheck    = "補正ドライバー検証: 件数=%d 差異=%d"
	LogSelectNear     = "近接頂点選択: 基準=%d 追加=%d"
	LogSnap           = "頂点スナップ: 候補=%d 移動=%d"
	LogVertexSaved    = "頂点編集結果を保存しました: %s"
)
