package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseItemMergesFlagsOverProfile(t *testing.T) {
	saved := cfg
	t.Cleanup(func() { cfg = saved })
	cfg = &Config{Profile: Item{Host: "profile.example.com", Port: 2222, Username: "profile-user", Password: "secret"}}

	cmd := &cobra.Command{Use: "test"}
	addItemFlags(cmd)
	require.NoError(t, cmd.ParseFlags([]string{
		"--username", "flag-user",
		"--company-code", "CO655",
		"--file-pattern", "*.dump",
		"--offset", "10",
		"--limit", "5",
	}))

	base, err := baseItem(cmd)
	require.NoError(t, err)
	assert.Equal(t, Item{
		Host:        "profile.example.com",
		Port:        2222,
		Username:    "flag-user",
		Password:    "secret",
		CompanyCode: "CO655",
		FilePattern: "*.dump",
		Offset:      10,
		Limit:       5,
	}, base)
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["retrieve"])
	assert.True(t, names["list"])
}
