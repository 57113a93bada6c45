/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: report_writer_test.go
Description: Tests for the JSON report writer.
*/

package utils_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kleascm/entro/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReport(t *testing.T) {
	dir := t.TempDir()

	path, err := utils.WriteReport(dir, "search", "abc123", map[string]interface{}{"matches": 2})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "search"), filepath.Dir(path))
	assert.True(t, strings.HasSuffix(path, "_search_abc123.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, float64(2), decoded["matches"])

	path, err = utils.WriteReport(dir, "estimate", "", struct{ Bits float64 }{9.4})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, "_estimate.json"), path)
}

func TestWriteReportUnmarshalable(t *testing.T) {
	_, err := utils.WriteReport(t.TempDir(), "bad", "", map[string]interface{}{"ch": make(chan int)})
	assert.Error(t, err)
}
