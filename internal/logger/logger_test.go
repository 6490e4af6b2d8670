package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/aleister1102/siteguard/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultLogger(t *testing.T) {
	cfg := config.NewDefaultLogConfig()
	_, err := New(cfg)
	require.NoError(t, err)
}

func TestConfigConverter_ConvertConfig(t *testing.T) {
	tests := []struct {
		name       string
		input      config.LogConfig
		wantLevel  zerolog.Level
		wantFormat LogFormat
		wantFile   bool
		wantErr    bool
	}{
		{
			name:       "defaults",
			input:      config.NewDefaultLogConfig(),
			wantLevel:  zerolog.InfoLevel,
			wantFormat: FormatConsole,
		},
		{
			name:       "debug json with file",
			input:      config.LogConfig{LogLevel: "DEBUG", LogFormat: "json", LogFile: "logs/siteguard.log"},
			wantLevel:  zerolog.DebugLevel,
			wantFormat: FormatJSON,
			wantFile:   true,
		},
		{
			name:       "unknown level falls back to info",
			input:      config.LogConfig{LogLevel: "loud", LogFormat: "text"},
			wantLevel:  zerolog.InfoLevel,
			wantFormat: FormatText,
			wantErr:    true,
		},
	}

	converter := NewConfigConverter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := converter.ConvertConfig(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantLevel, got.Level)
			assert.Equal(t, tt.wantFormat, got.Format)
			assert.Equal(t, tt.wantFile, got.EnableFile)
			assert.Equal(t, config.DefaultMaxLogSizeMB, got.MaxSizeMB)
		})
	}
}

func TestLoggerBuilder_ConsoleOutput(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.LogConfig{LogLevel: "info", LogFormat: "json"}

	l, err := NewLoggerBuilder().WithConsoleOutput(&buf).WithConfig(cfg).Build()
	require.NoError(t, err)

	l.GetZerolog().Info().Str("component", "test").Msg("hello")
	l.GetZerolog().Debug().Msg("suppressed")

	assert.Contains(t, buf.String(), `"message":"hello"`)
	assert.Contains(t, buf.String(), `"component":"test"`)
	assert.NotContains(t, buf.String(), "suppressed")
}

func TestLoggerBuilder_WithoutConsoleIsSilent(t *testing.T) {
	l, err := NewLoggerBuilder().WithConfig(config.NewDefaultLogConfig()).WithoutConsole().Build()
	require.NoError(t, err)
	assert.Equal(t, zerolog.Disabled, l.GetZerolog().GetLevel())
}

func TestLoggerBuilder_FileWithRunID(t *testing.T) {
	dir := t.TempDir()
	cfg := config.LogConfig{LogFile: filepath.Join(dir, "siteguard.log"), LogFormat: "json", LogLevel: "info"}

	l, err := NewLoggerBuilder().WithConfig(cfg).WithRunID("run-1").WithoutConsole().Build()
	require.NoError(t, err)
	l.GetZerolog().Info().Msg("written to file")

	data, err := os.ReadFile(filepath.Join(dir, "runs", "run-1", "siteguard.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}

func TestLoggerBuilder_InvalidFileConfig(t *testing.T) {
	b := NewLoggerBuilder()
	b.config.EnableFile = true
	b.config.FilePath = ""

	_, err := b.Build()
	assert.Error(t, err)
}
