package cmd

import (
	"fmt"

	"github.com/autocommit-cli/autocommit/internal/config"
	"github.com/autocommit-cli/autocommit/internal/llm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage autocommit configuration",
		Long:  `Manage autocommit configuration, including the provider, model, and API key.`,
	}

	configSetCmd = &cobra.Command{
		Use:   "set",
		Short: "Set a configuration value",
	}

	configSetProviderCmd = &cobra.Command{
		Use:   "provider [name]",
		Short: "Set the LLM provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireConfig(); err != nil {
				return err
			}

			provider := llm.Provider(args[0])
			if !provider.Supported() {
				return fmt.Errorf("provider %q is not supported, use %q", args[0], llm.ProviderGemini)
			}

			viper.Set("provider", string(provider))
			if err := config.Save(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Provider set to: %s\n", provider)
			return nil
		},
	}

	configSetModelCmd = &cobra.Command{
		Use:   "model [name]",
		Short: "Set the default model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireConfig(); err != nil {
				return err
			}

			model := args[0]
			if model == "" {
				return fmt.Errorf("model name cannot be empty")
			}

			viper.Set("model", model)
			if err := config.Save(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Model set to: %s\n", model)
			return nil
		},
	}

	configSetAPIKeyCmd = &cobra.Command{
		Use:   "apikey [key]",
		Short: "Set the API key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireConfig(); err != nil {
				return err
			}

			if err := (config.Store{}).Persist(llm.ProviderGemini.KeyName(), args[0]); err != nil {
				return fmt.Errorf("failed to save API key: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "API key saved.")
			return nil
		},
	}

	configGetCmd = &cobra.Command{
		Use:   "get",
		Short: "Show the current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireConfig(); err != nil {
				return err
			}

			cfg := config.Get()
			fmt.Fprintln(cmd.OutOrStdout(), "Current configuration:")
			fmt.Fprintf(cmd.OutOrStdout(), "  provider: %s\n", cfg.Provider)

			model := cfg.Model
			if model == "" {
				model = llm.DefaultGeminiModel + " (default)"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  model:    %s\n", model)

			key := "(not set)"
			if cfg.APIKey != "" {
				key = "********"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  api key:  %s\n", key)
			return nil
		},
	}
)

func init() {
	configSetCmd.AddCommand(configSetProviderCmd)
	configSetCmd.AddCommand(configSetModelCmd)
	configSetCmd.AddCommand(configSetAPIKeyCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
}
