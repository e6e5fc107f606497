// 指示: miu200521358
package minteractor

import (
	"errors"
	"fmt"

	"github.com/miu200521358/mu_daz2arp/pkg/domain/model"
	"github.com/miu200521358/mu_daz2arp/pkg/usecase/port/moutput"
)

// ErrSceneLoadFailed はシーン文書を読み込めなかったことを表す。
var ErrSceneLoadFailed = errors.New("scene load failed")

// LoadScene はシーン文書を読み込む。
func (uc *DazToArpUsecase) LoadScene(rep moutput.IFileReader, path string) (*model.Scene, error) {
	repo := rep
	if repo == nil {
		repo = uc.sceneReader
	}
	if repo == nil {
		return nil, fmt.Errorf("%w: シーン読み込みリポジトリが設定されていません", ErrSceneLoadFailed)
	}
	if !repo.CanLoad(path) {
		return nil, fmt.Errorf("%w: 入力形式が未対応です: %s", ErrSceneLoadFailed, path)
	}
	scene, err := repo.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSceneLoadFailed, err)
	}
	return scene, nil
}
