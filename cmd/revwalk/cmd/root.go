package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/treeverse/revwalk/pkg/logging"
	"github.com/treeverse/revwalk/pkg/objstore"

	// register object store drivers
	_ "github.com/treeverse/revwalk/pkg/objstore/local"
	_ "github.com/treeverse/revwalk/pkg/objstore/mem"
	_ "github.com/treeverse/revwalk/pkg/objstore/pebbledb"
)

var (
	// logLevel logging level (default is off)
	logLevel string
	// logFormat logging format
	logFormat string
	// logOutputs logging outputs
	logOutputs []string
)

// rootCmd represents the base command when called without any sub-commands
var rootCmd = &cobra.Command{
	Use:   "revwalk",
	Short: "Walk commit history in a content-addressed object store",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.SetLevel(logLevel)
		logging.SetOutputFormat(logFormat)
		logging.SetOutputs(logOutputs, 0, 0)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func die(err error) {
	_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}

func openStore(ctx context.Context) objstore.Store {
	store, err := objstore.Open(ctx, viper.GetString("driver"), objstore.Params{
		Path:          viper.GetString("path"),
		EnableLogging: logLevel != "none",
	})
	if err != nil {
		die(err)
	}
	return store
}

//nolint:gochecknoinits
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "none", "set logging level")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "set logging output format")
	rootCmd.PersistentFlags().StringSliceVar(&logOutputs, "log-output", []string{"="}, "set logging output(s)")
	rootCmd.PersistentFlags().String("driver", "local", "object store driver (one of: local, pebble, mem)")
	rootCmd.PersistentFlags().String("path", "", "object store directory path")
	_ = viper.BindPFlag("driver", rootCmd.PersistentFlags().Lookup("driver"))
	_ = viper.BindPFlag("path", rootCmd.PersistentFlags().Lookup("path"))
	viper.SetEnvPrefix("REVWALK")
	viper.AutomaticEnv()
}
