// 指示: miu200521358
package minteractor

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/miu200521358/mu_daz2arp/pkg/domain/mapping"
	"github.com/miu200521358/mu_daz2arp/pkg/domain/model"
	"github.com/miu200521358/mu_daz2arp/pkg/usecase/port/moutput"
)

const (
	// DefaultRigName は追加するARPリグの既定アーマチュア名。
	DefaultRigName = "rig"

	rigSpineCount = 5
	rigNeckCount  = 2
)

// ErrRigProviderUnavailable はARPリグ生成機能が利用できないことを表す。
var ErrRigProviderUnavailable = errors.New("rig provider is unavailable")

// Convert はDazアーマチュアをARPリグへ変換する。
// リグ生成機能が使えない場合のみ変更前に中断し、それ以外の失敗は通知として結果に残す。
func (uc *DazToArpUsecase) Convert(request ConvertRequest) (*ConvertResult, error) {
	collector := NewReportCollector(uc.logger)
	reporter := newFanoutReporter(collector, request.Reporter)

	if err := uc.checkRigProvider(); err != nil {
		report(reporter, Warning{
			Level:   moutput.ReportLevelError,
			ID:      model.WarningRigProviderMissing,
			Subject: "rig_provider",
			Message: err.Error(),
		})
		return &ConvertResult{Report: collector.Entries()}, err
	}

	scene, err := uc.resolveScene(request)
	if err != nil {
		return nil, err
	}
	notifyProgress(request.ProgressReporter, ConvertProgressEvent{
		Type:      ConvertProgressEventTypeSceneLoaded,
		MeshCount: len(scene.Meshes),
	})

	source, err := resolveSourceArmature(scene, request.SourceArmature)
	if err != nil {
		return nil, err
	}

	rigName := strings.TrimSpace(request.RigName)
	if rigName == "" {
		rigName = DefaultRigName
	}
	if rigName == source.Name {
		return nil, fmt.Errorf("ARPリグ名がDazアーマチュア名と重複しています: %s", rigName)
	}

	result, err := uc.convertScene(scene, source, rigName, request.Options, reporter, request.ProgressReporter)
	if err != nil {
		result.Report = collector.Entries()
		return result, err
	}

	outputPath := strings.TrimSpace(request.OutputPath)
	if outputPath == "" && request.InputPath != "" {
		outputPath = DefaultOutputPath(request.InputPath)
	}
	if outputPath != "" && (request.Writer != nil || uc.sceneWriter != nil) {
		if err := uc.SaveScene(request.Writer, outputPath, scene, request.SaveOptions); err != nil {
			result.Report = collector.Entries()
			return result, err
		}
		result.OutputPath = outputPath
		notifyProgress(request.ProgressReporter, ConvertProgressEvent{Type: ConvertProgressEventTypeSceneSaved})
	}

	result.Report = collector.Entries()
	uc.logger.Info("変換完了",
		slog.String("rig", resultRigName(result)),
		slog.Int("warnings", result.CountLevel(moutput.ReportLevelWarning)),
		slog.Int("errors", result.CountLevel(moutput.ReportLevelError)),
	)
	return result, nil
}

// convertScene は読み込み済みシーンに対して各パスを順に実行する。
func (uc *DazToArpUsecase) convertScene(
	scene *model.Scene,
	source *model.Skeleton,
	rigName string,
	options ConvertOptions,
	reporter moutput.IReporter,
	progress IConvertProgressReporter,
) (*ConvertResult, error) {
	result := &ConvertResult{Scene: scene}
	tables := uc.tables

	rigOptions := moutput.RigOptions{
		Name:       rigName,
		SpineCount: rigSpineCount,
		NeckCount:  rigNeckCount,
		Toes:       true,
		Breast:     source.Contains(mapping.BreastProbe()),
	}
	rig, err := uc.rigProvider.AppendReferenceRig(scene, rigOptions)
	if err != nil {
		return result, fmt.Errorf("参照リグの追加に失敗しました: %w", err)
	}
	result.Rig = rig
	notifyProgress(progress, ConvertProgressEvent{Type: ConvertProgressEventTypeRigAppended, BoneCount: rig.Len()})

	warnings := SnapReferenceBones(rig, source, tables.SnapRules)
	reportAll(reporter, warnings)
	notifyProgress(progress, ConvertProgressEvent{Type: ConvertProgressEventTypeBonesSnapped, ItemCount: len(tables.SnapRules)})

	if err := uc.rigProvider.MatchToRig(rig); err != nil {
		return result, fmt.Errorf("制御リグの生成に失敗しました: %w", err)
	}
	notifyProgress(progress, ConvertProgressEvent{Type: ConvertProgressEventTypeRigMatched, BoneCount: rig.Len()})

	if options.CopyRemainingBones {
		result.Copy = CopyUnmappedBones(rig, source, tables.Correspondence, reporter)
	}
	result.FixedBones = FixGeneratedDeformBones(rig, tables.Correspondence)
	notifyProgress(progress, ConvertProgressEvent{Type: ConvertProgressEventTypeBonesCopied, ItemCount: len(result.Copy.Copied)})

	result.Limits = CopyRotationLimits(rig, source, tables.LimitBases, reporter)
	notifyProgress(progress, ConvertProgressEvent{Type: ConvertProgressEventTypeConstraintsCopied, ItemCount: len(result.Limits.Order)})

	meshes := scene.ChildMeshes(source.Name)
	result.Cleanup = CleanupDrivers(meshes, reporter)
	notifyProgress(progress, ConvertProgressEvent{
		Type:      ConvertProgressEventTypeDriversCleaned,
		MeshCount: len(meshes),
		ItemCount: result.Cleanup.RemovedVariables,
	})

	if options.RemapCorrectiveShapeKeys {
		samples := SampleCorrectiveDrivers(meshes)
		result.Retarget = RetargetCorrectiveDrivers(meshes, rig, source, tables, reporter)
		result.DriverCheck = VerifyCorrectiveDrivers(samples, reporter)
		notifyProgress(progress, ConvertProgressEvent{
			Type:      ConvertProgressEventTypeDriversRetargeted,
			MeshCount: len(meshes),
			ItemCount: result.Retarget.Retargeted,
		})
	}

	if options.RemapVertexGroups {
		correspondence := tables.Correspondence
		if len(result.Copy.Renamed) > 0 {
			extended, err := correspondence.With(result.Copy.Renamed...)
			if err != nil {
				report(reporter, newWarning(model.WarningBoneNameCollision, rig.Name,
					"複製ボーンの改名を頂点グループへ反映できません: %v", err))
			} else {
				correspondence = extended
			}
		}
		for _, mesh := range meshes {
			remapped := RemapVertexGroups(mesh, correspondence, tables.WeightMerges, reporter)
			result.VertexGroups = append(result.VertexGroups, MeshRemapResult{Mesh: mesh.Name, VertexGroupRemapResult: remapped})
			reparentMesh(mesh, source.Name, rig.Name)
		}
		notifyProgress(progress, ConvertProgressEvent{Type: ConvertProgressEventTypeVertexGroupsRemapped, MeshCount: len(meshes)})
	}
	return result, nil
}

// checkRigProvider はリグ生成機能の有無を確認する。
func (uc *DazToArpUsecase) checkRigProvider() error {
	if uc.rigProvider == nil {
		return fmt.Errorf("ARPリグ生成機能が設定されていません: %w", ErrRigProviderUnavailable)
	}
	if err := uc.rigProvider.Available(); err != nil {
		return fmt.Errorf("%w: %v", ErrRigProviderUnavailable, err)
	}
	return nil
}

// resolveScene は要求にシーンがあればそれを、なければ入力パスから読み込んだシーンを返す。
func (uc *DazToArpUsecase) resolveScene(request ConvertRequest) (*model.Scene, error) {
	if request.Scene != nil {
		return request.Scene, nil
	}
	if strings.TrimSpace(request.InputPath) == "" {
		return nil, fmt.Errorf("%w: 入力シーンパスが未指定です", ErrSceneLoadFailed)
	}
	scene, err := uc.LoadScene(request.Reader, request.InputPath)
	if err != nil {
		return nil, err
	}
	if scene == nil {
		return nil, fmt.Errorf("%w: シーン読み込み結果が空です", ErrSceneLoadFailed)
	}
	return scene, nil
}

// resolveSourceArmature は変換元のDazアーマチュアを返す。
func resolveSourceArmature(scene *model.Scene, name string) (*model.Skeleton, error) {
	if strings.TrimSpace(name) != "" {
		return scene.Armature(name)
	}
	if len(scene.Armatures) == 0 {
		return nil, fmt.Errorf("シーンにアーマチュアがありません")
	}
	return scene.Armatures[0], nil
}

// reparentMesh はメッシュの親とアーマチュアモディファイアの参照先をARPリグへ付け替える。
func reparentMesh(mesh *model.Mesh, sourceName string, rigName string) {
	if mesh.Parent == sourceName {
		mesh.Parent = rigName
	}
	for _, modifier := range mesh.Modifiers {
		if modifier.Type == model.MODIFIER_ARMATURE && modifier.Object == sourceName {
			modifier.Object = rigName
		}
	}
}

// notifyProgress は進捗通知先が設定されている場合のみ通知する。
func notifyProgress(reporter IConvertProgressReporter, event ConvertProgressEvent) {
	if reporter == nil {
		return
	}
	reporter.ReportConvertProgress(event)
}

// resultRigName は結果のリグ名を返す。
func resultRigName(result *ConvertResult) string {
	if result == nil || result.Rig == nil {
		return ""
	}
	return result.Rig.Name
}

// fanoutReporter は複数のレポート受け口へ同じ通知を送る。
type fanoutReporter []moutput.IReporter

// newFanoutReporter は nil を除いた受け口をまとめる。
func newFanoutReporter(reporters ...moutput.IReporter) fanoutReporter {
	fanout := make(fanoutReporter, 0, len(reporters))
	for _, reporter := range reporters {
		if reporter != nil {
			fanout = append(fanout, reporter)
		}
	}
	return fanout
}

// Report は全受け口へ通知する。
func (f fanoutReporter) Report(entry Warning) {
	for _, reporter := range f {
		reporter.Report(entry)
	}
}
