package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	viper.Reset()
	t.Setenv("ENV", "test")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Env)
	assert.Equal(t, "test", cfg.Logger.Env)
	assert.NotEmpty(t, cfg.Source.Path)
	assert.Equal(t, "test5_questions", cfg.Source.Variable)
	assert.Equal(t, "];", cfg.Page.Marker)
	assert.Equal(t, 422, cfg.Questions.AssumedPriorTotal)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	viper.Reset()
	t.Setenv("ENV", "test")
	t.Setenv("SOURCE_PATH", "/tmp/other_source.py")
	t.Setenv("SOURCE_VARIABLE", "exam_questions")
	t.Setenv("PAGE_PATH", "/tmp/other_page.html")
	t.Setenv("PAGE_MARKER", "// QUESTIONS END")
	t.Setenv("LOGGER_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/other_source.py", cfg.Source.Path)
	assert.Equal(t, "exam_questions", cfg.Source.Variable)
	assert.Equal(t, "/tmp/other_page.html", cfg.Page.Path)
	assert.Equal(t, "// QUESTIONS END", cfg.Page.Marker)
	assert.Equal(t, "debug", cfg.Logger.Level)
}
