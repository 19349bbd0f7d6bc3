package cmd

import (
	"github.com/autocommit-cli/autocommit/internal/app"
	"github.com/autocommit-cli/autocommit/internal/config"
	"github.com/autocommit-cli/autocommit/internal/git"
	"github.com/autocommit-cli/autocommit/internal/llm"
	"github.com/autocommit-cli/autocommit/internal/ui"
	"github.com/spf13/cobra"
)

var (
	providerName string
	modelName    string
	autoYes      bool
	printOnly    bool
	verbose      bool

	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Generate a commit message from staged changes",
		Long: `Stages all changes, sends the staged diff to the configured LLM provider, ` +
			`and commits with the generated message after confirmation.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireConfig(); err != nil {
				return err
			}

			provider := providerName
			if !cmd.Flags().Changed("provider") {
				if cfg := config.Get(); cfg.Provider != "" {
					provider = cfg.Provider
				}
			}

			application := newApp(cmd)
			return application.Run(cmdCtx, app.Options{
				Provider:  provider,
				Model:     modelName,
				AutoYes:   autoYes,
				PrintOnly: printOnly,
			})
		},
	}
)

func newApp(cmd *cobra.Command) *app.App {
	return &app.App{
		Git: git.NewClient(git.Options{
			Verbose: verbose,
			Stderr:  cmd.ErrOrStderr(),
		}),
		Keys: config.Store{},
		NewGenerator: func(provider llm.Provider, model, apiKey string) (llm.Generator, error) {
			if model == "" {
				model = config.Get().Model
			}
			return llm.New(provider, model, apiKey)
		},
		Prompter:   &ui.TerminalPrompter{ErrWriter: cmd.ErrOrStderr()},
		NewSpinner: func(message string) app.Spinner { return ui.NewSpinner(message) },
		Stdout:     cmd.OutOrStdout(),
		Stderr:     cmd.ErrOrStderr(),
	}
}

func init() {
	generateCmd.Flags().StringVar(&providerName, "provider", config.DefaultProvider,
		"LLM provider to use")
	generateCmd.Flags().StringVar(&modelName, "model", "",
		"Specific model to use (default is the provider's default)")
	generateCmd.Flags().BoolVarP(&autoYes, "yes", "y", false,
		"Commit without confirmation (use with caution)")
	generateCmd.Flags().BoolVar(&printOnly, "print-only", false,
		"Only print the generated message to stdout, never prompt or commit")
	generateCmd.Flags().BoolVarP(&verbose, "verbose", "V", false,
		"Show detailed git command output")

	rootCmd.AddCommand(generateCmd)
}
