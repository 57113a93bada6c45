/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: logging_test.go
Description: Tests for the logging system. Covers config validation, formats, file
output with retention, and the search formatter prefixes.
*/

package logging_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/kleascm/entro/pkg/logging"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoggerCreation tests logger creation with default and custom configurations
func TestLoggerCreation(t *testing.T) {
	logger, err := logging.NewLogger(nil)
	require.NoError(t, err)
	assert.NotNil(t, logger.GetLogger())
	assert.Empty(t, logger.FilePath())
	require.NoError(t, logger.Close())

	dir := t.TempDir()
	logger, err = logging.NewLogger(&logging.LoggerConfig{
		Level:     logging.LogLevelDebug,
		Format:    logging.LogFormatJSON,
		OutputDir: dir,
		MaxFiles:  5,
		Console:   &bytes.Buffer{},
	})
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, logger.GetLogger().GetLevel())
	assert.FileExists(t, logger.FilePath())
	require.NoError(t, logger.Close())
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name   string
		config logging.LoggerConfig
		valid  bool
	}{
		{"console only", logging.LoggerConfig{Level: logging.LogLevelInfo, Format: logging.LogFormatText}, true},
		{"bad format", logging.LoggerConfig{Level: logging.LogLevelInfo, Format: "xml"}, false},
		{"bad level", logging.LoggerConfig{Level: "loud", Format: logging.LogFormatText}, false},
		{"files without retention", logging.LoggerConfig{Level: logging.LogLevelInfo, Format: logging.LogFormatText, OutputDir: "logs"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}

	_, err := logging.NewLogger(&logging.LoggerConfig{Level: "loud", Format: logging.LogFormatText})
	assert.Error(t, err)
}

// TestJSONFormat checks helper fields reach the JSON output
func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.NewLogger(&logging.LoggerConfig{
		Level:   logging.LogLevelInfo,
		Format:  logging.LogFormatJSON,
		Console: &buf,
	})
	require.NoError(t, err)
	defer logger.Close()

	logger.LogDictionaryLoaded("words.json", 3, []string{"alpha_only"})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Dictionary ready", entry["msg"])
	assert.Equal(t, "words.json", entry["path"])
	assert.Equal(t, float64(3), entry["words"])
	assert.Equal(t, []interface{}{"alpha_only"}, entry["filters"])
}

// TestCustomFormat checks prefixes and sorted fields without colors
func TestCustomFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.NewLogger(&logging.LoggerConfig{
		Level:   logging.LogLevelDebug,
		Format:  logging.LogFormatCustom,
		Console: &buf,
	})
	require.NoError(t, err)
	defer logger.Close()

	logger.GetLogger().WithFields(logrus.Fields{
		"run_id":    "0123456789abcdef",
		"candidate": "catrun",
	}).Warn("Digest matched")
	line := buf.String()
	assert.True(t, strings.HasPrefix(line, "WARNING [MATCH] Digest matched "), line)
	assert.Contains(t, line, "candidate=catrun run_id=01234567")

	buf.Reset()
	logger.LogEstimate("lower lower", "676", 9.4022, 0.5, 70000000)
	line = buf.String()
	assert.Contains(t, line, "[ESTIMATE] Entropy computed")
	assert.Contains(t, line, "hash_rate=70000000/sec")
	assert.Less(t, strings.Index(line, "bits="), strings.Index(line, "mask="))

	buf.Reset()
	logger.Debug("plain message", map[string]interface{}{"elapsed": 1500 * time.Millisecond})
	assert.Equal(t, "DEBUG plain message elapsed=1.5s\n", buf.String())
}

// TestLongValueTruncatedByRune checks long values are cut on a rune boundary
func TestLongValueTruncatedByRune(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.NewLogger(&logging.LoggerConfig{
		Level:   logging.LogLevelInfo,
		Format:  logging.LogFormatCustom,
		Console: &buf,
	})
	require.NoError(t, err)
	defer logger.Close()

	logger.Info("long", map[string]interface{}{"candidate": strings.Repeat("é", 60)})
	line := buf.String()
	assert.True(t, utf8.ValidString(line), line)
	assert.Contains(t, line, "candidate="+strings.Repeat("é", 50)+"...")
}

// TestLevelFiltering checks entries below the level are dropped
func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.NewLogger(&logging.LoggerConfig{
		Level:   logging.LogLevelWarning,
		Format:  logging.LogFormatText,
		Console: &buf,
	})
	require.NoError(t, err)
	defer logger.Close()

	logger.Info("hidden", nil)
	assert.Empty(t, buf.String())
	logger.Error("shown", nil)
	assert.Contains(t, buf.String(), "shown")
}

// TestRetention checks Close removes the oldest files beyond MaxFiles
func TestRetention(t *testing.T) {
	dir := t.TempDir()
	old := []string{"entro_2020-01-01_00-00-00.log", "entro_2020-01-02_00-00-00.log", "entro_2020-01-03_00-00-00.log"}
	for i, name := range old {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("old\n"), 0644))
		stamp := time.Now().Add(-time.Duration(len(old)-i) * time.Hour)
		require.NoError(t, os.Chtimes(path, stamp, stamp))
	}

	logger, err := logging.NewLogger(&logging.LoggerConfig{
		Level:     logging.LogLevelInfo,
		Format:    logging.LogFormatText,
		OutputDir: dir,
		MaxFiles:  2,
		Console:   &bytes.Buffer{},
	})
	require.NoError(t, err)
	logger.Info("kept", nil)
	require.NoError(t, logger.Close())

	files, err := filepath.Glob(filepath.Join(dir, "entro_*.log"))
	require.NoError(t, err)
	assert.Len(t, files, 2)
	assert.NoFileExists(t, filepath.Join(dir, old[0]))
	assert.NoFileExists(t, filepath.Join(dir, old[1]))
	assert.FileExists(t, logger.FilePath())
}
