// 指示: miu200521358
package minteractor

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/miu200521358/mu_daz2arp/pkg/domain/model"
	"github.com/miu200521358/mu_daz2arp/pkg/usecase/port/moutput"
)

// VertexEditMode は頂点編集の種類を表す。
type VertexEditMode string

const (
	// VertexEditSelectNear は近接頂点選択を表す。
	VertexEditSelectNear VertexEditMode = "select_near"
	// VertexEditSnap はスナップ先メッシュへの頂点スナップを表す。
	VertexEditSnap VertexEditMode = "snap"

	// DefaultSnapDistance は頂点スナップの既定距離。
	DefaultSnapDistance = 0.001
)

// VertexEditRequest は頂点編集要求を表す。
type VertexEditRequest struct {
	Mode       VertexEditMode
	InputPath  string
	OutputPath string
	Scene      *model.Scene
	// Meshes は編集対象メッシュ名を表す。空の場合はシーン内の全メッシュを対象とする。
	Meshes       []string
	SnapMesh     string
	Distance     float64
	OnlySelected bool
	Reader       moutput.IFileReader
	Writer       moutput.IFileWriter
	SaveOptions  moutput.SaveOptions
	Reporter     moutput.IReporter
}

// VertexEditResult は頂点編集結果を表す。
type VertexEditResult struct {
	Scene      *model.Scene
	OutputPath string
	Report     []Warning
	Select     NearVertexSelectResult
	Snap       VertexSnapResult
}

// EditVertices はシーン内メッシュの頂点選択またはスナップを行い、結果を保存する。
func (uc *DazToArpUsecase) EditVertices(request VertexEditRequest) (*VertexEditResult, error) {
	collector := NewReportCollector(uc.logger)
	reporter := newFanoutReporter(collector, request.Reporter)

	scene := request.Scene
	if scene == nil {
		loaded, err := uc.resolveScene(ConvertRequest{InputPath: request.InputPath, Reader: request.Reader})
		if err != nil {
			return nil, err
		}
		scene = loaded
	}
	meshes, err := selectMeshes(scene, request.Meshes)
	if err != nil {
		return nil, err
	}

	result := &VertexEditResult{Scene: scene}
	switch request.Mode {
	case VertexEditSelectNear:
		result.Select = SelectNearVertices(meshes, request.Distance, reporter)
	case VertexEditSnap:
		snap, err := scene.Mesh(request.SnapMesh)
		if err != nil {
			return nil, fmt.Errorf("スナップ先メッシュを解決できません: %w", err)
		}
		result.Snap, err = SnapVerticesToMesh(snap, meshes, request.Distance, request.OnlySelected, reporter)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("未対応の頂点編集です: %q", request.Mode)
	}

	outputPath := strings.TrimSpace(request.OutputPath)
	if outputPath == "" && request.InputPath != "" {
		outputPath = outputPathWithSuffix(request.InputPath, "_"+string(request.Mode))
	}
	if outputPath != "" && (request.Writer != nil || uc.sceneWriter != nil) {
		if err := uc.SaveScene(request.Writer, outputPath, scene, request.SaveOptions); err != nil {
			result.Report = collector.Entries()
			return result, err
		}
		result.OutputPath = outputPath
	}

	result.Report = collector.Entries()
	uc.logger.Info("頂点編集完了",
		slog.String("mode", string(request.Mode)),
		slog.Int("selected", len(result.Select.Selected)),
		slog.Int("snapped", len(result.Snap.Snapped)),
	)
	return result, nil
}

// selectMeshes は名前指定に従って編集対象メッシュを返す。
func selectMeshes(scene *model.Scene, names []string) ([]*model.Mesh, error) {
	if len(names) == 0 {
		return scene.Meshes, nil
	}
	meshes := make([]*model.Mesh, 0, len(names))
	for _, name := range names {
		mesh, err := scene.Mesh(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		meshes = append(meshes, mesh)
	}
	return meshes, nil
}
