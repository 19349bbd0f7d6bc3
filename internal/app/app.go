// Package app drives the commit-generation pipeline: validate the repository,
// stage changes, read the staged diff, resolve a credential, call the
// generation backend, and confirm the commit. Every terminal outcome maps to
// exactly one process exit code.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/autocommit-cli/autocommit/internal/config"
	"github.com/autocommit-cli/autocommit/internal/llm"
)

// GitClient abstracts git operations for testability. The pipeline only needs
// a binary success signal from each call to pick the next exit code.
type GitClient interface {
	IsRepository() bool
	StageAll() bool
	StagedDiff() string
	Commit(message string) bool
}

// KeyStore resolves and persists API credentials.
type KeyStore interface {
	Resolve(name string) (config.Credential, bool)
	Persist(name, value string) error
}

// Prompter handles interactive terminal input.
type Prompter interface {
	ReadSecret(label string) (string, error)
	Confirm(question string) (bool, error)
}

// Spinner is a start/stop progress indicator.
type Spinner interface {
	Start()
	Stop()
}

// GeneratorFactory builds a generation backend for a validated provider.
type GeneratorFactory func(provider llm.Provider, model, apiKey string) (llm.Generator, error)

// Options are the per-invocation settings of the generate pipeline.
type Options struct {
	Provider  string
	Model     string
	AutoYes   bool
	PrintOnly bool
}

// App holds the pipeline's collaborators. All fields except the writers are
// required; nil writers default to the process streams.
type App struct {
	Git          GitClient
	Keys         KeyStore
	NewGenerator GeneratorFactory
	Prompter     Prompter
	NewSpinner   func(message string) Spinner

	Stdout io.Writer
	Stderr io.Writer
}

// Run executes the pipeline once. It returns nil on success (including a
// declined commit) and an *ExitError for every failure, after printing a
// single diagnostic line to the error stream. The pipeline is strictly
// forward-progressing: no stage is retried.
func (a *App) Run(ctx context.Context, opts Options) error {
	if a.Stdout == nil {
		a.Stdout = os.Stdout
	}
	if a.Stderr == nil {
		a.Stderr = os.Stderr
	}

	if !a.Git.IsRepository() {
		return a.fail(ExitNotGitRepo, "NOT_GIT_REPO",
			"not a git repository, run this command inside a git repository")
	}

	stop := a.spin(opts, "Staging all changes...")
	staged := a.Git.StageAll()
	stop()
	if !staged {
		return a.fail(ExitStageFailed, "STAGE_FAILED", "failed to stage changes")
	}

	stop = a.spin(opts, "Reading staged changes...")
	diff := a.Git.StagedDiff()
	stop()
	if diff == "" {
		return a.fail(ExitNoChanges, "NO_CHANGES",
			"no changes found, make sure you have modified files in the repository")
	}

	provider := llm.Provider(opts.Provider)
	if !provider.Supported() {
		return a.fail(ExitUnknownError, "UNSUPPORTED_PROVIDER",
			"provider %q is not supported, use %q", opts.Provider, llm.ProviderGemini)
	}

	cred, err := a.resolveCredential(provider, opts)
	if err != nil {
		return err
	}

	gen, genErr := a.NewGenerator(provider, opts.Model, cred.Value)
	if genErr != nil {
		return a.backendFailure(genErr)
	}

	stop = a.spin(opts, fmt.Sprintf("Generating commit message with %s...", provider))
	message, genErr := gen.GenerateCommitMessage(ctx, diff)
	stop()
	if genErr != nil {
		return a.backendFailure(genErr)
	}

	if opts.PrintOnly {
		// stdout carries only the message so the output is pipeable
		fmt.Fprintln(a.Stdout, message)
		return nil
	}

	fmt.Fprintf(a.Stderr, "\nGenerated Commit Message:\n%s\n", message)

	accepted := true
	if opts.AutoYes {
		fmt.Fprintln(a.Stderr, "Auto-confirming commit message (-y flag is set)")
	} else {
		accepted, err = a.confirm()
		if err != nil {
			return err
		}
	}

	if !accepted {
		fmt.Fprintln(a.Stderr, "Operation aborted.")
		return nil
	}

	if !a.Git.Commit(message) {
		return a.fail(ExitCommitFailed, "COMMIT_FAILED", "failed to commit changes")
	}

	fmt.Fprintln(a.Stderr, "Changes committed.")
	return nil
}

// resolveCredential looks the key up in the environment and the local store.
// When missing, interactive mode gets a single prompt; a non-empty entry is
// persisted for future invocations. Print-only mode never prompts.
func (a *App) resolveCredential(provider llm.Provider, opts Options) (config.Credential, error) {
	keyName := provider.KeyName()

	cred, found := a.Keys.Resolve(keyName)
	if found {
		return cred, nil
	}

	if opts.PrintOnly {
		return config.Credential{}, a.fail(ExitAPIKeyMissing, "API_KEY_MISSING",
			"%s is not set, set the environment variable or run 'autocommit config set apikey'", keyName)
	}

	fmt.Fprintf(a.Stderr, "Missing %s.\n", keyName)
	value, err := a.Prompter.ReadSecret(fmt.Sprintf("Enter your %s API key", provider))
	if err != nil {
		return config.Credential{}, a.fail(ExitUnknownError, "UNKNOWN",
			"failed to read API key: %v", err)
	}
	if value == "" {
		return config.Credential{}, a.fail(ExitAPIKeyMissing, "API_KEY_MISSING",
			"%s is required to use %s", keyName, provider)
	}

	if err := a.Keys.Persist(keyName, value); err != nil {
		return config.Credential{}, a.fail(ExitUnknownError, "UNKNOWN",
			"failed to save API key: %v", err)
	}
	fmt.Fprintln(a.Stderr, "API key saved.")

	return config.Credential{Name: keyName, Value: value, Source: config.SourceUserEntered}, nil
}

func (a *App) confirm() (bool, error) {
	accepted, err := a.Prompter.Confirm("Do you want to commit with this message?")
	if err != nil {
		return false, a.fail(ExitUnknownError, "UNKNOWN", "failed to read user input: %v", err)
	}
	return accepted, nil
}

// backendFailure translates a backend error into its terminal state. Each
// error kind maps 1:1 to an exit code; anything unclassified lands in the
// unknown bucket.
func (a *App) backendFailure(err error) error {
	var lerr *llm.Error
	if !errors.As(err, &lerr) {
		return a.fail(ExitUnknownError, llm.CodeUnknown, "unexpected error: %v", err)
	}

	code := ExitUnknownError
	switch lerr.Kind {
	case llm.KindKeyMissing:
		code = ExitAPIKeyMissing
	case llm.KindKeyInvalid:
		code = ExitAPIKeyInvalid
	case llm.KindQuotaExceeded:
		code = ExitQuotaExceeded
	case llm.KindRequestFailed:
		code = ExitAPIError
	}
	return a.fail(code, lerr.Code, "%s", lerr.Message)
}

// fail prints the single-line diagnostic and builds the terminal error.
func (a *App) fail(code int, errCode, format string, args ...any) *ExitError {
	message := fmt.Sprintf(format, args...)
	fmt.Fprintf(a.Stderr, "Error: [%s] %s\n", errCode, message)
	return &ExitError{Code: code, ErrCode: errCode, Message: message}
}

// spin starts a spinner for interactive invocations and returns its stop
// function. Print-only mode stays silent on both streams.
func (a *App) spin(opts Options, message string) func() {
	if opts.PrintOnly || a.NewSpinner == nil {
		return func() {}
	}
	sp := a.NewSpinner(message)
	sp.Start()
	return sp.Stop
}
