package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadGameConfig_Defaults(t *testing.T) {
	t.Setenv("OTHELLO_STRATEGY", "")
	t.Setenv("OTHELLO_HUMAN_COLOR", "")

	cfg := LoadGameConfig()
	require.Equal(t, "", cfg.Strategy)
	require.Equal(t, "black", cfg.HumanColor)
}

func TestLoadGameConfig_FromEnv(t *testing.T) {
	t.Setenv("OTHELLO_STRATEGY", "weighted")
	t.Setenv("OTHELLO_HUMAN_COLOR", "white")

	cfg := LoadGameConfig()
	require.Equal(t, "weighted", cfg.Strategy)
	require.Equal(t, "white", cfg.HumanColor)
}
