// 指示: miu200521358
package minteractor

import (
	"log/slog"

	"github.com/miu200521358/mu_daz2arp/pkg/domain/mapping"
	"github.com/miu200521358/mu_daz2arp/pkg/usecase/port/moutput"
)

// DazToArpUsecaseDeps はDaz→ARP変換ユースケースの依存を表す。
type DazToArpUsecaseDeps struct {
	SceneReader moutput.IFileReader
	SceneWriter moutput.IFileWriter
	RigProvider moutput.IRigProvider
	Tables      *mapping.Tables
	Logger      *slog.Logger
}

// DazToArpUsecase はDaz骨格をARPリグへ変換する処理をまとめたユースケースを表す。
type DazToArpUsecase struct {
	sceneReader moutput.IFileReader
	sceneWriter moutput.IFileWriter
	rigProvider moutput.IRigProvider
	tables      mapping.Tables
	logger      *slog.Logger
}

// NewDazToArpUsecase はDaz→ARP変換ユースケースを生成する。
func NewDazToArpUsecase(deps DazToArpUsecaseDeps) *DazToArpUsecase {
	tables := mapping.DefaultTables()
	if deps.Tables != nil {
		tables = *deps.Tables
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &DazToArpUsecase{
		sceneReader: deps.SceneReader,
		sceneWriter: deps.SceneWriter,
		rigProvider: deps.RigProvider,
		tables:      tables,
		logger:      logger,
	}
}

// Tables は変換に使う対応表一式を返す。
func (uc *DazToArpUsecase) Tables() mapping.Tables {
	return uc.tables
}
