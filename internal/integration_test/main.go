// 指示: miu200521358
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/miu200521358/mu_daz2arp/pkg/adapter/io_scene"
	"github.com/miu200521358/mu_daz2arp/pkg/adapter/rigprovider"
	"github.com/miu200521358/mu_daz2arp/pkg/usecase/minteractor"
	"github.com/miu200521358/mu_daz2arp/pkg/usecase/port/moutput"
	"github.com/spf13/pflag"
)

const (
	batchOutputDirMode = 0o755

	statusSucceeded      = "succeeded"
	statusDryRun         = "dry_run"
	statusSkippedMissing = "skipped_missing"
	statusFailed         = "failed"
)

// batchConfig はバッチ変換の実行設定を表す。
type batchConfig struct {
	OutputRoot string
	InputPaths []string
	DryRun     bool
	FailFast   bool
}

// conversionEntry は1シーン分の変換入力情報を表す。
type conversionEntry struct {
	Index      int
	SourcePath string
	SceneName  string
	CaseDir    string
	OutputPath string
}

// conversionResult は1シーン分の変換結果を表す。
type conversionResult struct {
	Entry     conversionEntry
	Status    string
	Duration  time.Duration
	Err       error
	StageInfo string
	Warnings  int
}

// convertProgressCollector は Convert の進捗イベントを収集する。
type convertProgressCollector struct {
	eventCounts map[minteractor.ConvertProgressEventType]int
	boneMax     int
	meshMax     int
	itemTotal   int
}

// main はDazシーン文書の一括ARP変換を実行する。
func main() {
	os.Exit(run(os.Args[1:]))
}

// run は実行設定を解決して一括変換を実行し、終了コードを返す。
func run(args []string) int {
	config, err := parseBatchConfig(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "設定解析に失敗しました: %v\n", err)
		return 2
	}
	entries := buildConversionEntries(config.OutputRoot, config.InputPaths)
	if len(entries) == 0 {
		fmt.Fprintln(os.Stderr, "変換対象シーンがありません")
		return 2
	}

	results := executeBatchConversion(config, entries)
	printBatchSummary(results)

	for _, result := range results {
		if result.Status == statusFailed {
			return 1
		}
	}
	return 0
}

// parseBatchConfig はコマンドライン引数から実行設定を構築する。
// 入力は位置引数のファイル、または --input-dir 配下のシーン文書とする。
func parseBatchConfig(args []string) (batchConfig, error) {
	defaultOutputRoot, err := resolveDefaultOutputRoot()
	if err != nil {
		return batchConfig{}, err
	}
	flags := pflag.NewFlagSet("integration_test", pflag.ContinueOnError)
	outputRoot := flags.String("output-root", defaultOutputRoot, "変換結果の出力ルートディレクトリ")
	inputDir := flags.String("input-dir", "", "変換対象シーン文書を探すディレクトリ")
	dryRun := flags.Bool("dry-run", false, "実変換せず、入力解決と出力先計画のみ表示する")
	failFast := flags.Bool("fail-fast", false, "失敗時に即時終了する")
	if err := flags.Parse(args); err != nil {
		return batchConfig{}, err
	}

	trimmedOutputRoot := strings.TrimSpace(*outputRoot)
	if trimmedOutputRoot == "" {
		return batchConfig{}, errors.New("output-root が空です")
	}
	inputPaths := append([]string(nil), flags.Args()...)
	if dir := strings.TrimSpace(*inputDir); dir != "" {
		found, err := findScenePaths(dir)
		if err != nil {
			return batchConfig{}, err
		}
		inputPaths = append(inputPaths, found...)
	}
	return batchConfig{
		OutputRoot: filepath.Clean(trimmedOutputRoot),
		InputPaths: inputPaths,
		DryRun:     *dryRun,
		FailFast:   *failFast,
	}, nil
}

// findScenePaths はディレクトリ直下の読み込み可能なシーン文書を名前順で返す。
func findScenePaths(dir string) ([]string, error) {
	entries, err := os.ReadDir(normalizeInputPath(dir))
	if err != nil {
		return nil, fmt.Errorf("入力ディレクトリの読み取りに失敗しました: %w", err)
	}
	repository := io_scene.NewSceneRepository()
	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !repository.CanLoad(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// resolveDefaultOutputRoot はスクリプト配置ディレクトリ基準の既定出力先を返す。
func resolveDefaultOutputRoot() (string, error) {
	_, currentFilePath, _, ok := runtime.Caller(0)
	if !ok {
		return "", errors.New("実行ファイル位置を取得できません")
	}
	return filepath.Join(filepath.Dir(currentFilePath), "output"), nil
}

// buildConversionEntries は入力パス一覧から変換対象エントリを生成する。
func buildConversionEntries(outputRoot string, inputPaths []string) []conversionEntry {
	entries := make([]conversionEntry, 0, len(inputPaths))
	for i, rawPath := range inputPaths {
		sceneName := resolveSceneName(rawPath)
		safeName := sanitizePathComponent(sceneName)
		caseDir := filepath.Join(outputRoot, fmt.Sprintf("%03d_%s", i+1, safeName))
		entries = append(entries, conversionEntry{
			Index:      i + 1,
			SourcePath: normalizeInputPath(rawPath),
			SceneName:  sceneName,
			CaseDir:    caseDir,
			OutputPath: filepath.Join(caseDir, safeName+"_arp.yaml"),
		})
	}
	return entries
}

// executeBatchConversion は全シーンの変換処理を順次実行する。
func executeBatchConversion(config batchConfig, entries []conversionEntry) []conversionResult {
	results := make([]conversionResult, 0, len(entries))
	repository := io_scene.NewSceneRepository()
	usecase := minteractor.NewDazToArpUsecase(minteractor.DazToArpUsecaseDeps{
		SceneReader: repository,
		SceneWriter: repository,
		RigProvider: rigprovider.NewTemplateRigProvider(),
	})

	total := len(entries)
	for _, entry := range entries {
		fmt.Printf("[%d/%d] 変換開始: scene=%s\n", entry.Index, total, entry.SceneName)
		result := convertSceneEntry(usecase, config, entry)
		results = append(results, result)
		switch result.Status {
		case statusSucceeded:
			fmt.Printf("[%d/%d] 変換成功: scene=%s output=%s warnings=%d elapsed=%s\n",
				entry.Index, total, entry.SceneName, entry.OutputPath, result.Warnings, result.Duration.Round(time.Millisecond))
			if strings.TrimSpace(result.StageInfo) != "" {
				fmt.Printf("[%d/%d] Convert進捗: %s\n", entry.Index, total, result.StageInfo)
			}
		case statusDryRun:
			fmt.Printf("[%d/%d] DRY-RUN: scene=%s input=%s output=%s\n", entry.Index, total, entry.SceneName, entry.SourcePath, entry.OutputPath)
		case statusSkippedMissing:
			fmt.Printf("[%d/%d] 入力不足でスキップ: scene=%s input=%s reason=%v\n", entry.Index, total, entry.SceneName, entry.SourcePath, result.Err)
		default:
			fmt.Printf("[%d/%d] 変換失敗: scene=%s reason=%v\n", entry.Index, total, entry.SceneName, result.Err)
			if config.FailFast {
				return results
			}
		}
	}
	return results
}

// convertSceneEntry は1シーン分の変換を実行する。
func convertSceneEntry(usecase *minteractor.DazToArpUsecase, config batchConfig, entry conversionEntry) conversionResult {
	result := conversionResult{Entry: entry, Status: statusFailed}
	if _, err := os.Stat(entry.SourcePath); err != nil {
		result.Status = statusSkippedMissing
		result.Err = err
		return result
	}
	if config.DryRun {
		result.Status = statusDryRun
		return result
	}
	if err := os.MkdirAll(entry.CaseDir, batchOutputDirMode); err != nil {
		result.Err = fmt.Errorf("出力ディレクトリ作成に失敗しました: %w", err)
		return result
	}

	startedAt := time.Now()
	progressCollector := newConvertProgressCollector()
	converted, err := usecase.Convert(minteractor.ConvertRequest{
		InputPath:        entry.SourcePath,
		OutputPath:       entry.OutputPath,
		Options:          minteractor.DefaultConvertOptions(),
		ProgressReporter: progressCollector,
	})
	if err != nil {
		result.Err = fmt.Errorf("Convertに失敗しました: %w", err)
		return result
	}
	if converted == nil || converted.OutputPath == "" {
		result.Err = errors.New("Convert結果が保存されていません")
		return result
	}

	result.Status = statusSucceeded
	result.Duration = time.Since(startedAt)
	result.StageInfo = progressCollector.Summary()
	result.Warnings = converted.CountLevel(moutput.ReportLevelWarning)
	return result
}

// printBatchSummary は変換結果の集計を標準出力へ表示する。
func printBatchSummary(results []conversionResult) {
	counts := map[string]int{}
	for _, result := range results {
		counts[result.Status]++
	}
	fmt.Printf(
		"バッチ変換サマリ: total=%d succeeded=%d failed=%d skipped_missing=%d dry_run=%d\n",
		len(results),
		counts[statusSucceeded],
		counts[statusFailed],
		counts[statusSkippedMissing],
		counts[statusDryRun],
	)
}

// resolveSceneName は入力パスから拡張子を除いたシーン名を返す。
func resolveSceneName(path string) string {
	base := strings.TrimSpace(filepath.Base(path))
	name := strings.TrimSpace(strings.TrimSuffix(base, filepath.Ext(base)))
	if name == "" {
		return "scene"
	}
	return name
}

// normalizeInputPath は入力パスを実行環境向けに正規化する。
func normalizeInputPath(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return ""
	}
	return filepath.Clean(convertWindowsPathToWsl(trimmed))
}

// convertWindowsPathToWsl は Linux 実行時に Windows パスを WSL パスへ変換する。
func convertWindowsPathToWsl(path string) string {
	if runtime.GOOS != "linux" || len(path) < 2 || path[1] != ':' {
		return path
	}
	drive := strings.ToLower(path[:1])
	rest := strings.ReplaceAll(path[2:], "\\", "/")
	if !strings.HasPrefix(rest, "/") {
		rest = "/" + rest
	}
	return filepath.ToSlash(filepath.Join("/mnt", drive) + rest)
}

// sanitizePathComponent は出力ディレクトリ/ファイル名に使えない文字を置換する。
func sanitizePathComponent(name string) string {
	replaced := strings.Map(func(r rune) rune {
		switch r {
		case '<', '>', ':', '"', '/', '\\', '|', '?', '*':
			return '_'
		default:
			if r < 0x20 {
				return '_'
			}
			return r
		}
	}, strings.TrimSpace(name))
	replaced = strings.Trim(replaced, " .")
	if replaced == "" {
		return "scene"
	}
	return replaced
}

// newConvertProgressCollector は Convert 進捗収集器を生成する。
func newConvertProgressCollector() *convertProgressCollector {
	return &convertProgressCollector{eventCounts: map[minteractor.ConvertProgressEventType]int{}}
}

// ReportConvertProgress は Convert の進捗イベントを収集する。
func (collector *convertProgressCollector) ReportConvertProgress(event minteractor.ConvertProgressEvent) {
	collector.eventCounts[event.Type]++
	if event.BoneCount > collector.boneMax {
		collector.boneMax = event.BoneCount
	}
	if event.MeshCount > collector.meshMax {
		collector.meshMax = event.MeshCount
	}
	collector.itemTotal += event.ItemCount
}

// Summary は収集した Convert 進捗の要約文字列を返す。
func (collector *convertProgressCollector) Summary() string {
	if len(collector.eventCounts) == 0 {
		return ""
	}
	types := make([]string, 0, len(collector.eventCounts))
	for stageType := range collector.eventCounts {
		types = append(types, string(stageType))
	}
	sort.Strings(types)
	return fmt.Sprintf(
		"events=%d boneMax=%d meshMax=%d items=%d stages=%s",
		len(collector.eventCounts),
		collector.boneMax,
		collector.meshMax,
		collector.itemTotal,
		strings.Join(types, ","),
	)
}
