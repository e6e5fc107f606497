// 指示: miu200521358
package main

import (
	"fmt"
	"strings"

	"github.com/miu200521358/mu_daz2arp/pkg/adapter/io_scene"
	"github.com/miu200521358/mu_daz2arp/pkg/adapter/mpresenter/messages"
	"github.com/miu200521358/mu_daz2arp/pkg/usecase/minteractor"
	"github.com/miu200521358/mu_daz2arp/pkg/usecase/port/moutput"
	"github.com/spf13/cobra"
	"golang.org/x/text/message"
)

const (
	distanceFlagName     = "distance"
	meshFlagName         = "mesh"
	snapTargetFlagName   = "target"
	onlySelectedFlagName = "only-selected"

	defaultSelectDistance = 0.01
)

// vertexEditFlags は頂点編集サブコマンドのフラグ値を保持する。
type vertexEditFlags struct {
	distance     float64
	meshes       []string
	snapMesh     string
	onlySelected bool
}

func newVerticesCmd(app *cli, p *message.Printer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vertices",
		Short: p.Sprintf(messages.HelpVertices),
	}

	selectFlags := &vertexEditFlags{}
	selectCmd := &cobra.Command{
		Use:   "select-near <input> [output]",
		Short: p.Sprintf(messages.HelpSelectNear),
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(_ *cobra.Command, args []string) error {
			return app.editVertices(minteractor.VertexEditSelectNear, args, selectFlags)
		},
	}
	selectCmd.Flags().Float64Var(&selectFlags.distance, distanceFlagName, defaultSelectDistance, p.Sprintf(messages.FlagDistance))
	selectCmd.Flags().StringSliceVar(&selectFlags.meshes, meshFlagName, nil, p.Sprintf(messages.FlagMesh))

	snapFlags := &vertexEditFlags{}
	snapCmd := &cobra.Command{
		Use:   "snap <input> [output]",
		Short: p.Sprintf(messages.HelpSnap),
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(_ *cobra.Command, args []string) error {
			return app.editVertices(minteractor.VertexEditSnap, args, snapFlags)
		},
	}
	snapCmd.Flags().StringVar(&snapFlags.snapMesh, snapTargetFlagName, "", p.Sprintf(messages.FlagSnapTarget))
	cobra.CheckErr(snapCmd.MarkFlagRequired(snapTargetFlagName))
	snapCmd.Flags().Float64Var(&snapFlags.distance, distanceFlagName, minteractor.DefaultSnapDistance, p.Sprintf(messages.FlagDistance))
	snapCmd.Flags().BoolVar(&snapFlags.onlySelected, onlySelectedFlagName, false, p.Sprintf(messages.FlagOnlySelected))
	snapCmd.Flags().StringSliceVar(&snapFlags.meshes, meshFlagName, nil, p.Sprintf(messages.FlagMesh))

	cmd.AddCommand(selectCmd, snapCmd)
	return cmd
}

// editVertices は頂点編集を実行して保存し、結果件数を表示する。
func (c *cli) editVertices(mode minteractor.VertexEditMode, args []string, flags *vertexEditFlags) error {
	inputPath := strings.TrimSpace(args[0])
	if inputPath == "" {
		return fmt.Errorf("%s", c.printer.Sprintf(messages.MessageInputRequired))
	}
	outputPath := ""
	if len(args) > 1 {
		outputPath = args[1]
	}

	repository := io_scene.NewSceneRepository()
	repository.SetLogger(c.logger.Logger)
	uc := minteractor.NewDazToArpUsecase(minteractor.DazToArpUsecaseDeps{
		SceneReader: repository,
		SceneWriter: repository,
		Logger:      c.logger.Logger,
	})

	result, err := uc.EditVertices(minteractor.VertexEditRequest{
		Mode:         mode,
		InputPath:    inputPath,
		OutputPath:   outputPath,
		Meshes:       flags.meshes,
		SnapMesh:     flags.snapMesh,
		Distance:     flags.distance,
		OnlySelected: flags.onlySelected,
		SaveOptions:  moutput.SaveOptions{Indent: c.config.GetInt(saveIndentKey)},
	})
	if result != nil {
		renderReport(c.out, c.printer, result.Report)
	}
	if err != nil {
		return c.fail(failureKey(err, messages.MessageVertexEditFailed), err)
	}

	switch mode {
	case minteractor.VertexEditSelectNear:
		fmt.Fprintln(c.out, c.printer.Sprintf(messages.LogSelectNear, result.Select.Seeds, len(result.Select.Selected)))
	case minteractor.VertexEditSnap:
		fmt.Fprintln(c.out, c.printer.Sprintf(messages.LogSnap, result.Snap.Candidates, len(result.Snap.Snapped)))
	}
	if result.OutputPath != "" {
		fmt.Fprintln(c.out, c.printer.Sprintf(messages.LogVertexSaved, result.OutputPath))
	}
	return nil
}
