// 指示: miu200521358
package main

import (
	"io"

	"github.com/miu200521358/mu_daz2arp/pkg/adapter/mpresenter/messages"
	"github.com/miu200521358/mu_daz2arp/pkg/domain/mapping"
	"github.com/miu200521358/mu_daz2arp/pkg/usecase/port/moutput"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/message"
)

// renderReport は変換通知を表形式で出力する。通知が無い場合は何も出力しない。
func renderReport(w io.Writer, p *message.Printer, entries []moutput.ReportEntry) {
	if len(entries) == 0 {
		return
	}
	table := newTable(w, []string{
		p.Sprintf(messages.ReportHeaderLevel),
		p.Sprintf(messages.ReportHeaderID),
		p.Sprintf(messages.ReportHeaderSubject),
		p.Sprintf(messages.ReportHeaderMessage),
	})
	for _, entry := range entries {
		table.Append([]string{string(entry.Level), string(entry.ID), entry.Subject, entry.Message})
	}
	table.Render()
}

// renderCorrespondence は対応表を登録順に出力する。
func renderCorrespondence(w io.Writer, p *message.Printer, correspondence *mapping.Correspondence) {
	table := newTable(w, []string{
		p.Sprintf(messages.TablesHeaderSource),
		p.Sprintf(messages.TablesHeaderTarget),
	})
	for _, entry := range correspondence.Entries() {
		table.Append([]string{entry.Source, entry.Target})
	}
	table.Render()
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	return table
}
