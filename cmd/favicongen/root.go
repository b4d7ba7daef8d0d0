package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ironsheep/favicon-tools-mcp/internal/logging"
)

// envPrefix is the prefix of every environment variable read through viper,
// e.g. FAVICON_ROOT or FAVICON_CROP.
const envPrefix = "FAVICON"

func newRootCmd() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:           "favicongen",
		Short:         "Generate favicons, touch icons, and tiles from one image",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(cfgFile); err != nil {
				return err
			}
			if err := viper.BindPFlags(cmd.Flags()); err != nil {
				return fmt.Errorf("failed to bind flags: %w", err)
			}
			logging.Setup(viper.GetString("log-level"), os.Stderr, true)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./favicon.{toml,yaml,json} if present)")
	cmd.PersistentFlags().String("root", ".", "site root; assets go to <root>/favicon")
	cmd.PersistentFlags().String("url-prefix", "", "public path of the asset directory (default /favicon)")
	cmd.PersistentFlags().String("log-level", "info", "log level (trace, debug, info, warn, error)")

	cmd.AddCommand(newGenerateCmd(), newHTMLCmd(), newWatchCmd(), newVersionCmd())
	return cmd
}

// initConfig loads .env, then an optional config file, then FAVICON_*
// environment variables. Flags bound later take precedence over all three.
func initConfig(cfgFile string) error {
	// .env is optional
	_ = godotenv.Load()

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("favicon")
		viper.AddConfigPath(".")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "favicongen %s\n", Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  Build time: %s\n", BuildTime)
			fmt.Fprintf(cmd.OutOrStdout(), "  Git commit: %s\n", GitCommit)
		},
	}
}
