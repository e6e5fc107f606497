// 指示: miu200521358
package main

import (
	"github.com/miu200521358/mu_daz2arp/pkg/adapter/mpresenter/messages"
	"github.com/spf13/cobra"
	"golang.org/x/text/message"
)

func newTablesCmd(app *cli, p *message.Printer) *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: p.Sprintf(messages.HelpTables),
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			tables, err := app.tables()
			if err != nil {
				return err
			}
			renderCorrespondence(app.out, app.printer, tables.Correspondence)
			return nil
		},
	}
}
