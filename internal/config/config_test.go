package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "asteroidcli/internal/errors"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "asteroid-report.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "error", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "console", cfg.Logging.Output)
	assert.Equal(t, DefaultListRow, cfg.Report.ListRow)
	assert.Equal(t, "3DACFF", cfg.Report.HeaderFill)
	assert.Equal(t, "FF9F3D", cfg.Report.NEOAccent)
	assert.Equal(t, "FFD2A5", cfg.Report.NEOFill)
	assert.Equal(t, "FF0000", cfg.Report.PHAAccent)
	assert.Equal(t, "FFA5A5", cfg.Report.PHAFill)
	assert.Equal(t, "none", cfg.Telemetry.TraceExporter)
	assert.Empty(t, cfg.Telemetry.MetricsFile)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFrom(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		file        string
		wantErr     bool
		validateCfg func(*testing.T, *Config)
	}{
		{
			name: "defaults without file or env",
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, Default(), cfg)
			},
		},
		{
			name: "env overrides defaults",
			env: map[string]string{
				"ASTEROID_LOGGING_LEVEL":            "debug",
				"ASTEROID_REPORT_LIST_ROW":          "6",
				"ASTEROID_TELEMETRY_TRACE_EXPORTER": "stdout",
			},
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, 6, cfg.Report.ListRow)
				assert.Equal(t, "stdout", cfg.Telemetry.TraceExporter)
				assert.Equal(t, "json", cfg.Logging.Format)
			},
		},
		{
			name: "file overrides defaults",
			file: "logging:\n  level: info\n  format: text\nreport:\n  header_fill: 00FF00\n",
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "text", cfg.Logging.Format)
				assert.Equal(t, "00FF00", cfg.Report.HeaderFill)
				assert.Equal(t, "FF0000", cfg.Report.PHAAccent)
			},
		},
		{
			name: "env wins over file",
			env:  map[string]string{"ASTEROID_LOGGING_LEVEL": "error"},
			file: "logging:\n  level: info\n",
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "error", cfg.Logging.Level)
			},
		},
		{
			name:    "invalid level rejected",
			env:     map[string]string{"ASTEROID_LOGGING_LEVEL": "verbose"},
			wantErr: true,
		},
		{
			name:    "invalid colour rejected",
			file:    "report:\n  pha_fill: red\n",
			wantErr: true,
		},
		{
			name:    "list row overlapping statistics rejected",
			env:     map[string]string{"ASTEROID_REPORT_LIST_ROW": "2"},
			wantErr: true,
		},
		{
			name:    "file output requires a path",
			file:    "logging:\n  output: file\n  file_path: \"\"\n",
			wantErr: true,
		},
		{
			name:    "malformed yaml",
			file:    "logging: [unclosed\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := ""
			if tt.file != "" {
				path = writeConfigFile(t, tt.file)
			}

			cfg, err := LoadFrom(path)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperrors.IsType(err, apperrors.ErrTypeConfig))
				return
			}
			require.NoError(t, err)
			tt.validateCfg(t, cfg)
		})
	}
}

func TestLoadFrom_MissingFile(t *testing.T) {
	_, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeConfig))
}
