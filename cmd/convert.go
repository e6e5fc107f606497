// 指示: miu200521358
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/miu200521358/mu_daz2arp/pkg/adapter/io_scene"
	"github.com/miu200521358/mu_daz2arp/pkg/adapter/mpresenter/messages"
	"github.com/miu200521358/mu_daz2arp/pkg/adapter/rigprovider"
	"github.com/miu200521358/mu_daz2arp/pkg/domain/mapping"
	"github.com/miu200521358/mu_daz2arp/pkg/infra/mlogging"
	"github.com/miu200521358/mu_daz2arp/pkg/usecase/minteractor"
	"github.com/miu200521358/mu_daz2arp/pkg/usecase/port/moutput"
	"github.com/spf13/cobra"
	"golang.org/x/text/message"
)

func newConvertCmd(app *cli, p *message.Printer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <input> [output]",
		Short: p.Sprintf(messages.HelpConvert),
		Long:  p.Sprintf(messages.HelpConvert) + "\n\n" + p.Sprintf(messages.HelpUsage),
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(_ *cobra.Command, args []string) error {
			return app.convert(args)
		},
	}

	flags := cmd.Flags()
	flags.StringP(outputFlagName, "o", "", p.Sprintf(messages.FlagOutput))
	bindFlag(app.config, flags, outputFlagName, outputKey)
	flags.String(armatureFlagName, "", p.Sprintf(messages.FlagArmature))
	bindFlag(app.config, flags, armatureFlagName, armatureKey)
	flags.String(rigNameFlagName, minteractor.DefaultRigName, p.Sprintf(messages.FlagRigName))
	bindFlag(app.config, flags, rigNameFlagName, rigNameKey)
	flags.Bool(copyBonesFlagName, true, p.Sprintf(messages.FlagCopy))
	bindFlag(app.config, flags, copyBonesFlagName, copyBonesKey)
	flags.Bool(remapDriversFlagName, true, p.Sprintf(messages.FlagDrivers))
	bindFlag(app.config, flags, remapDriversFlagName, remapDriversKey)
	flags.Bool(remapWeightsFlagName, true, p.Sprintf(messages.FlagWeights))
	bindFlag(app.config, flags, remapWeightsFlagName, remapWeightsKey)
	return cmd
}

// convert は入力シーンを変換して保存し、通知一覧を表示する。
func (c *cli) convert(args []string) error {
	inputPath := strings.TrimSpace(args[0])
	if inputPath == "" {
		return fmt.Errorf("%s", c.printer.Sprintf(messages.MessageInputRequired))
	}
	outputPath := outputArgument(args, c.config.GetString(outputKey), c.logger)

	tables, err := c.tables()
	if err != nil {
		return err
	}

	repository := io_scene.NewSceneRepository()
	repository.SetLogger(c.logger.Logger)
	uc := minteractor.NewDazToArpUsecase(minteractor.DazToArpUsecaseDeps{
		SceneReader: repository,
		SceneWriter: repository,
		RigProvider: rigprovider.NewTemplateRigProvider(),
		Tables:      &tables,
		Logger:      c.logger.Logger,
	})

	result, err := uc.Convert(minteractor.ConvertRequest{
		InputPath:      inputPath,
		OutputPath:     outputPath,
		SourceArmature: c.config.GetString(armatureKey),
		RigName:        c.config.GetString(rigNameKey),
		Options: minteractor.ConvertOptions{
			CopyRemainingBones:       c.config.GetBool(copyBonesKey),
			RemapCorrectiveShapeKeys: c.config.GetBool(remapDriversKey),
			RemapVertexGroups:        c.config.GetBool(remapWeightsKey),
		},
		SaveOptions:      moutput.SaveOptions{Indent: c.config.GetInt(saveIndentKey)},
		ProgressReporter: &progressPrinter{out: c.out, printer: c.printer},
	})
	if result != nil {
		renderReport(c.out, c.printer, result.Report)
	}
	if err != nil {
		return c.fail(failureKey(err, messages.MessageConvertFailed), err)
	}

	fmt.Fprintln(c.out, c.printer.Sprintf(messages.LogConvertSummary,
		result.CountLevel(moutput.ReportLevelInfo),
		result.CountLevel(moutput.ReportLevelWarning),
		result.CountLevel(moutput.ReportLevelError),
	))
	if result.DriverCheck.Checked > 0 {
		fmt.Fprintln(c.out, c.printer.Sprintf(messages.LogDriverCheck, result.DriverCheck.Checked, result.DriverCheck.Diverged))
	}
	if result.OutputPath != "" {
		fmt.Fprintln(c.out, c.printer.Sprintf(messages.LogConvertSuccess, result.OutputPath))
	}
	return nil
}

// outputArgument は出力先を決める。位置引数が設定値より優先される。
func outputArgument(args []string, configured string, logger *mlogging.Logger) string {
	if len(args) < 2 || strings.TrimSpace(args[1]) == "" {
		return configured
	}
	if configured != "" && configured != args[1] && logger != nil {
		logger.Debug("位置引数の出力先を優先します",
			slog.String("argument", args[1]), slog.String("configured", configured))
	}
	return args[1]
}

// failureKey はエラー種別に対応する見出しキーを返す。
func failureKey(err error, fallback string) string {
	switch {
	case errors.Is(err, minteractor.ErrRigProviderUnavailable):
		return messages.MessageRigProviderUnavailable
	case errors.Is(err, minteractor.ErrSceneLoadFailed):
		return messages.MessageLoadFailed
	case errors.Is(err, minteractor.ErrSceneSaveFailed):
		return messages.MessageSaveFailed
	}
	return fallback
}

// tables は対応表ファイル指定を反映した対応表一式を返す。
func (c *cli) tables() (mapping.Tables, error) {
	tables := mapping.DefaultTables()
	path := strings.TrimSpace(c.config.GetString(correspondenceKey))
	if path == "" {
		return tables, nil
	}
	correspondence, err := io_scene.LoadCorrespondence(path)
	if err != nil {
		return tables, c.fail(messages.MessageCorrespondenceFailed, err)
	}
	return tables.WithCorrespondence(correspondence), nil
}

// progressPrinter は進捗イベントを1行ずつ表示する。
type progressPrinter struct {
	out     io.Writer
	printer *message.Printer
}

// ReportConvertProgress は進捗イベントを表示する。
func (p *progressPrinter) ReportConvertProgress(event minteractor.ConvertProgressEvent) {
	key, ok := progressKeys[event.Type]
	if !ok {
		return
	}
	var text string
	if event.Type == minteractor.ConvertProgressEventTypeRigAppended {
		text = p.printer.Sprintf(key, event.BoneCount)
	} else {
		text = p.printer.Sprintf(key)
	}
	fmt.Fprintf(p.out, "[mu_daz2arp] %s\n", text)
}

var progressKeys = map[minteractor.ConvertProgressEventType]string{
	minteractor.ConvertProgressEventTypeSceneLoaded:          messages.ProgressSceneLoaded,
	minteractor.ConvertProgressEventTypeRigAppended:          messages.ProgressRigAppended,
	minteractor.ConvertProgressEventTypeBonesSnapped:         messages.ProgressBonesSnapped,
	minteractor.ConvertProgressEventTypeRigMatched:           messages.ProgressRigMatched,
	minteractor.ConvertProgressEventTypeBonesCopied:          messages.ProgressBonesCopied,
	minteractor.ConvertProgressEventTypeConstraintsCopied:    messages.ProgressConstraintsCopied,
	minteractor.ConvertProgressEventTypeDriversCleaned:       messages.ProgressDriversCleaned,
	minteractor.ConvertProgressEventTypeDriversRetargeted:    messages.ProgressDriversRetargeted,
	minteractor.ConvertProgressEventTypeVertexGroupsRemapped: messages.ProgressVertexGroupsRemapped,
	minteractor.ConvertProgressEventTypeSceneSaved:           messages.ProgressSceneSaved,
}
