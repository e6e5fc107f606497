// 指示: miu200521358
package io_scene

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/miu200521358/mu_daz2arp/pkg/domain/model"
	"github.com/miu200521358/mu_daz2arp/pkg/usecase/port/moutput"
	"gopkg.in/yaml.v3"
)

const defaultYamlIndent = 2

// SceneRepository はシーン文書(YAML/JSON)の読み書きを表す。
type SceneRepository struct {
	logger *slog.Logger
}

// NewSceneRepository はSceneRepositoryを生成する。
func NewSceneRepository() *SceneRepository {
	return &SceneRepository{}
}

// SetLogger はログ出力先を設定する。
func (r *SceneRepository) SetLogger(logger *slog.Logger) {
	if r == nil {
		return
	}
	r.logger = logger
}

// CanLoad は拡張子に応じて読み込み可否を判定する。
func (r *SceneRepository) CanLoad(path string) bool {
	return isYamlPath(path) || isJsonPath(path)
}

// InferName はパスから表示名を推定する。
func (r *SceneRepository) InferName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Load はシーン文書を読み込む。
func (r *SceneRepository) Load(path string) (*model.Scene, error) {
	if !r.CanLoad(path) {
		return nil, newIoExtInvalid(path)
	}
	r.logInfo("シーン読込開始", "file", filepath.Base(path))

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, newIoFileNotFound(path, err)
		}
		return nil, newIoParseFailed(path, "シーンファイルの読み取りに失敗しました", err)
	}

	doc := sceneDocument{}
	if isJsonPath(path) {
		err = json.Unmarshal(b, &doc)
	} else {
		err = yaml.Unmarshal(b, &doc)
	}
	if err != nil {
		return nil, newIoParseFailed(path, "シーン文書の解析に失敗しました", err)
	}

	scene, err := doc.toScene()
	if err != nil {
		return nil, newIoParseFailed(path, "シーン文書の変換に失敗しました", err)
	}
	r.logInfo("シーン読込完了", "armatures", len(scene.Armatures), "meshes", len(scene.Meshes))
	return scene, nil
}

// Save はシーン文書を保存する。拡張子が .json の場合はJSON、それ以外はYAMLで書き出す。
func (r *SceneRepository) Save(path string, scene *model.Scene, options moutput.SaveOptions) error {
	if scene == nil {
		return newIoSaveFailed(path, "保存対象のシーンがありません", nil)
	}
	if !r.CanLoad(path) {
		return newIoExtInvalid(path)
	}
	indent := options.Indent
	if indent <= 0 {
		indent = defaultYamlIndent
	}

	doc := newSceneDocument(scene)
	var b []byte
	if isJsonPath(path) {
		encoded, err := json.MarshalIndent(doc, "", strings.Repeat(" ", indent))
		if err != nil {
			return newIoSaveFailed(path, "シーン文書のJSON化に失敗しました", err)
		}
		b = append(encoded, '\n')
	} else {
		var buf bytes.Buffer
		encoder := yaml.NewEncoder(&buf)
		encoder.SetIndent(indent)
		if err := encoder.Encode(doc); err != nil {
			return newIoSaveFailed(path, "シーン文書のYAML化に失敗しました", err)
		}
		if err := encoder.Close(); err != nil {
			return newIoSaveFailed(path, "シーン文書のYAML化に失敗しました", err)
		}
		b = buf.Bytes()
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return newIoSaveFailed(path, "出力フォルダの作成に失敗しました", err)
		}
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return newIoSaveFailed(path, "シーンファイルの書き込みに失敗しました", err)
	}
	r.logInfo("シーン保存完了", "file", filepath.Base(path), "bytes", len(b))
	return nil
}

func (r *SceneRepository) logInfo(message string, args ...any) {
	logger := r.logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info(message, args...)
}

func isYamlPath(path string) bool {
	ext := filepath.Ext(path)
	return strings.EqualFold(ext, ".yaml") || strings.EqualFold(ext, ".yml")
}

func isJsonPath(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}
