package cmd

import (
	"context"
	"fmt"

	"github.com/autocommit-cli/autocommit/internal/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	configErr error
	cmdCtx    = context.Background()

	rootCmd = &cobra.Command{
		Use:   "autocommit",
		Short: "autocommit - AI commit message generator",
		Long: `autocommit inspects your staged changes and generates a conventional ` +
			`commit message with an LLM, which you can accept, reject, or pipe elsewhere.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
)

// SetContext sets the context used by command execution, so an interrupt can
// cancel an in-flight backend request.
func SetContext(ctx context.Context) {
	cmdCtx = ctx
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"Configuration file path (default is $HOME/.autocommit.yaml)")

	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	configErr = config.Init(cfgFile)
}

func requireConfig() error {
	if configErr != nil {
		return fmt.Errorf("configuration error: %w", configErr)
	}
	return nil
}
