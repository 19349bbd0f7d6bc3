package cmd

import (
	"bytes"
	"testing"

	"github.com/autocommit-cli/autocommit/internal/config"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	assert.NotNil(t, rootCmd)
	assert.Equal(t, "autocommit", rootCmd.Use)
	assert.True(t, rootCmd.SilenceErrors)
	assert.True(t, rootCmd.SilenceUsage)
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))
}

func TestGenerateCommandFlags(t *testing.T) {
	assert.Equal(t, "generate", generateCmd.Use)

	for _, name := range []string{"provider", "model", "yes", "print-only", "verbose"} {
		assert.NotNil(t, generateCmd.Flags().Lookup(name), "missing flag %s", name)
	}

	assert.Equal(t, config.DefaultProvider, generateCmd.Flags().Lookup("provider").DefValue)
	assert.Equal(t, "y", generateCmd.Flags().Lookup("yes").Shorthand)
}

func TestVersionCommand(t *testing.T) {
	assert.Equal(t, "dev", Version)
	assert.Equal(t, "unknown", BuildTime)

	var out bytes.Buffer
	versionCmd.SetOut(&out)
	versionCmd.Run(versionCmd, nil)

	assert.Contains(t, out.String(), "autocommit version dev")
}

func TestConfigCommandTree(t *testing.T) {
	assert.Equal(t, "config", configCmd.Use)

	set, _, err := configCmd.Find([]string{"set", "apikey"})
	require.NoError(t, err)
	assert.Equal(t, "apikey [key]", set.Use)

	get, _, err := configCmd.Find([]string{"get"})
	require.NoError(t, err)
	assert.Equal(t, "get", get.Use)
}

func TestConfigSetProviderRejectsUnknown(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	err := configSetProviderCmd.RunE(configSetProviderCmd, []string{"claude"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not supported")
}

func TestNewAppWiresCollaborators(t *testing.T) {
	application := newApp(rootCmd)

	assert.NotNil(t, application.Git)
	assert.NotNil(t, application.Keys)
	assert.NotNil(t, application.NewGenerator)
	assert.NotNil(t, application.Prompter)
	assert.NotNil(t, application.NewSpinner)
}
