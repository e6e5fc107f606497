// 指示: miu200521358
package minteractor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/miu200521358/mu_daz2arp/pkg/domain/model"
	"github.com/miu200521358/mu_daz2arp/pkg/usecase/port/moutput"
)

// Warning は変換中に記録する通知1件を表す。
type Warning = moutput.ReportEntry

// ReportCollector は通知を保持しつつ slog へ転送するレポート受け口を表す。
type ReportCollector struct {
	logger  *slog.Logger
	entries []Warning
}

// NewReportCollector はレポート受け口を生成する。logger が nil の場合は slog 既定ロガーを使う。
func NewReportCollector(logger *slog.Logger) *ReportCollector {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportCollector{logger: logger}
}

// Report は通知を記録する。
func (c *ReportCollector) Report(entry Warning) {
	c.entries = append(c.entries, entry)
	c.logger.Log(context.Background(), slogLevel(entry.Level), entry.Message,
		slog.String("id", string(entry.ID)),
		slog.String("subject", entry.Subject),
	)
}

// Entries は記録順の通知一覧を返す。
func (c *ReportCollector) Entries() []Warning {
	entries := make([]Warning, len(c.entries))
	copy(entries, c.entries)
	return entries
}

// Count は指定重要度の通知件数を返す。
func (c *ReportCollector) Count(level moutput.ReportLevel) int {
	count := 0
	for _, entry := range c.entries {
		if entry.Level == level {
			count++
		}
	}
	return count
}

// CountByID は指定IDの通知件数を返す。
func (c *ReportCollector) CountByID(id model.WarningID) int {
	count := 0
	for _, entry := range c.entries {
		if entry.ID == id {
			count++
		}
	}
	return count
}

// slogLevel はレポート重要度を slog のレベルへ変換する。
func slogLevel(level moutput.ReportLevel) slog.Level {
	switch level {
	case moutput.ReportLevelError:
		return slog.LevelError
	case moutput.ReportLevelWarning:
		return slog.LevelWarn
	}
	return slog.LevelInfo
}

// newWarning は警告レベルの通知を生成する。
func newWarning(id model.WarningID, subject string, format string, params ...any) Warning {
	return Warning{
		Level:   moutput.ReportLevelWarning,
		ID:      id,
		Subject: subject,
		Message: fmt.Sprintf(format, params...),
	}
}

// newInfo は情報レベルの通知を生成する。
func newInfo(id model.WarningID, subject string, format string, params ...any) Warning {
	entry := newWarning(id, subject, format, params...)
	entry.Level = moutput.ReportLevelInfo
	return entry
}

// report は受け口が未指定でも安全に通知する。
func report(reporter moutput.IReporter, entry Warning) {
	if reporter == nil {
		return
	}
	reporter.Report(entry)
}

// reportAll は複数の通知を順に送る。
func reportAll(reporter moutput.IReporter, entries []Warning) {
	for _, entry := range entries {
		report(reporter, entry)
	}
}
