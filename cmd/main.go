// 指示: miu200521358
package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/miu200521358/mu_daz2arp/pkg/adapter/mpresenter/messages"
	"github.com/miu200521358/mu_daz2arp/pkg/infra/mlogging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/message"
)

// cli はコマンド間で共有する設定と出力先を保持する。
type cli struct {
	config     *viper.Viper
	out        io.Writer
	errOut     io.Writer
	configPath string
	printer    *message.Printer
	logger     *mlogging.Logger
}

// main はDaz→ARP変換CLIを実行する。
func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// run はCLI処理全体を実行する。
func run(args []string, out io.Writer, errOut io.Writer) error {
	root := newRootCmd(out, errOut)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(errOut, "Error:", err)
		return err
	}
	return nil
}

// newRootCmd はサブコマンドを登録したルートコマンドを生成する。
func newRootCmd(out io.Writer, errOut io.Writer) *cobra.Command {
	app := &cli{config: newConfig(), out: out, errOut: errOut}
	// ヘルプ文言は環境変数の言語指定で組み立てる
	p := messages.NewPrinter(app.config.GetString(langKey))

	root := &cobra.Command{
		Use:           "mu_daz2arp",
		Short:         p.Sprintf(messages.HelpRoot),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return app.prepare()
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if app.logger == nil {
				return nil
			}
			return app.logger.Close()
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&app.configPath, configFlagName, "", p.Sprintf(messages.FlagConfig))
	flags.String(langFlagName, defaultLang, p.Sprintf(messages.FlagLang))
	bindFlag(app.config, flags, langFlagName, langKey)
	flags.String(logFileFlagName, "", p.Sprintf(messages.FlagLogFile))
	bindFlag(app.config, flags, logFileFlagName, logFilenameKey)
	flags.StringP(correspondenceFlagName, "m", "", p.Sprintf(messages.FlagMapping))
	bindFlag(app.config, flags, correspondenceFlagName, correspondenceKey)
	flags.BoolP(verboseFlagName, "v", false, p.Sprintf(messages.FlagVerbose))
	bindFlag(app.config, flags, verboseFlagName, logVerboseKey)

	root.AddCommand(newConvertCmd(app, p), newVerticesCmd(app, p), newTablesCmd(app, p), newVersionCmd(p))
	return root
}

// prepare は設定ファイルを読み込み、表示言語とロガーを確定する。
func (c *cli) prepare() error {
	if err := readConfig(c.config, c.configPath); err != nil {
		return err
	}
	c.printer = messages.NewPrinter(c.config.GetString(langKey))

	config := loggerConfig(c.config)
	config.Fallback = c.errOut
	c.logger = mlogging.New(config)
	c.logger.Debug(c.printer.Sprintf(messages.LogRunStarted, c.logger.RunID))
	return nil
}

// fail は表示言語の見出しを付けてエラーを包む。
func (c *cli) fail(key string, err error) error {
	return fmt.Errorf("%s: %w", c.printer.Sprintf(key), err)
}

func newVersionCmd(p *message.Printer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: p.Sprintf(messages.HelpVersion),
		Run: func(cmd *cobra.Command, _ []string) {
			info, ok := debug.ReadBuildInfo()
			if !ok || info.Main.Version == "" {
				cmd.Println("version: unknown")
				return
			}
			cmd.Println("tool version\t", info.Main.Version)
			cmd.Println("go version\t", info.GoVersion)
		},
	}
}
