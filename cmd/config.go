// 指示: miu200521358
package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/miu200521358/mu_daz2arp/pkg/infra/mlogging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configBaseName   = "daz2arp"
	configFolderPath = "."
	envPrefix        = "DAZ2ARP"

	configFlagName         = "config"
	outputFlagName         = "output"
	armatureFlagName       = "armature"
	rigNameFlagName        = "rig-name"
	correspondenceFlagName = "correspondence"
	langFlagName           = "lang"
	logFileFlagName        = "log-file"
	verboseFlagName        = "verbose"
	copyBonesFlagName      = "copy-remaining-bones"
	remapDriversFlagName   = "remap-corrective-shape-keys"
	remapWeightsFlagName   = "remap-vertex-groups"

	outputKey         = "output"
	armatureKey       = "armature"
	rigNameKey        = "rig_name"
	correspondenceKey = "correspondence"
	langKey           = "lang"
	copyBonesKey      = "options.copy_remaining_bones"
	remapDriversKey   = "options.remap_corrective_shape_keys"
	remapWeightsKey   = "options.remap_vertex_groups"
	saveIndentKey     = "save.indent"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLang       = "ja"
	defaultSaveIndent = 2
)

// newConfig は既定値と環境変数を設定した viper を生成する。
func newConfig() *viper.Viper {
	v := viper.New()
	v.SetConfigName(configBaseName)
	v.SetConfigType("yaml")
	v.AddConfigPath(configFolderPath)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault(langKey, defaultLang)
	v.SetDefault(copyBonesKey, true)
	v.SetDefault(remapDriversKey, true)
	v.SetDefault(remapWeightsKey, true)
	v.SetDefault(saveIndentKey, defaultSaveIndent)
	v.SetDefault(logLevelKey, "info")
	v.SetDefault(logMaxSizeKey, mlogging.DefaultMaxSize)
	v.SetDefault(logMaxBackupsKey, mlogging.DefaultMaxBackups)
	v.SetDefault(logMaxAgeKey, mlogging.DefaultMaxAge)
	v.SetDefault(logCompressKey, true)
	return v
}

// readConfig は設定ファイルを読み込む。明示指定がない場合、既定ファイルが無くても継続する。
func readConfig(v *viper.Viper, path string) error {
	if strings.TrimSpace(path) != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("設定ファイルの読み込みに失敗しました: %w", err)
		}
		return nil
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("設定ファイルの読み込みに失敗しました: %w", err)
	}
	return nil
}

// bindFlag はフラグを設定キーへ結び付ける。フラグ指定が設定ファイルと環境変数より優先される。
func bindFlag(v *viper.Viper, flags *pflag.FlagSet, name string, key string) {
	flag := flags.Lookup(name)
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}
	cobra.CheckErr(v.BindPFlag(key, flag))
}

// loggerConfig は設定からロガー構築設定を作る。
func loggerConfig(v *viper.Viper) mlogging.Config {
	return mlogging.Config{
		Filename:   v.GetString(logFilenameKey),
		Level:      v.GetString(logLevelKey),
		Verbose:    v.GetBool(logVerboseKey),
		MaxSize:    v.GetInt(logMaxSizeKey),
		MaxBackups: v.GetInt(logMaxBackupsKey),
		MaxAge:     v.GetInt(logMaxAgeKey),
		Compress:   v.GetBool(logCompressKey),
	}
}
