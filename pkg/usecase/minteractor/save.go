// 指示: miu200521358
package minteractor

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/miu200521358/mu_daz2arp/pkg/domain/model"
	"github.com/miu200521358/mu_daz2arp/pkg/usecase/port/moutput"
)

// ErrSceneSaveFailed はシーン文書を保存できなかったことを表す。
var ErrSceneSaveFailed = errors.New("scene save failed")

// SaveScene は変換後のシーン文書を保存する。
func (uc *DazToArpUsecase) SaveScene(rep moutput.IFileWriter, path string, scene *model.Scene, opts moutput.SaveOptions) error {
	writer := rep
	if writer == nil {
		writer = uc.sceneWriter
	}
	if writer == nil {
		return fmt.Errorf("%w: シーン保存リポジトリが設定されていません", ErrSceneSaveFailed)
	}
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("%w: 保存先パスが未指定です", ErrSceneSaveFailed)
	}
	if scene == nil {
		return fmt.Errorf("%w: 保存対象シーンが未設定です", ErrSceneSaveFailed)
	}
	if err := writer.Save(path, scene, opts); err != nil {
		return fmt.Errorf("%w: %w", ErrSceneSaveFailed, err)
	}
	return nil
}

// DefaultOutputPath は入力パスから既定の出力パスを生成する。
func DefaultOutputPath(inputPath string) string {
	return outputPathWithSuffix(inputPath, "_arp")
}

// outputPathWithSuffix は入力ファイル名に接尾辞を付けた出力パスを返す。
func outputPathWithSuffix(inputPath string, suffix string) string {
	if strings.TrimSpace(inputPath) == "" {
		return ""
	}
	dir := filepath.Dir(inputPath)
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), ext)
	if strings.TrimSpace(base) == "" {
		return ""
	}
	return filepath.Join(dir, base+suffix+ext)
}
