/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: run_test.go
Description: End-to-end tests for the estimate, generate and crack commands over a
small temporary dictionary, checked through the JSON reports they write.
*/

package commands

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/kleascm/entro/pkg/digest"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupRun points viper at a temp dictionary and report directory
func setupRun(t *testing.T) string {
	t.Cleanup(viper.Reset)
	reportDir := t.TempDir()
	viper.Set("source", "lexical")
	viper.Set("dictionary", writeDictionary(t))
	viper.Set("hash_algorithm", "sha1")
	viper.Set("hash_rate", 1.0)
	viper.Set("report_dir", reportDir)
	viper.Set("log_level", "error")
	viper.Set("log_format", "text")
	return reportDir
}

// readReport decodes the only report of kind written under dir
func readReport(t *testing.T, dir string, kind string) map[string]interface{} {
	files, err := filepath.Glob(filepath.Join(dir, kind, "*.json"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	var report map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &report))
	return report
}

func TestRunEstimate(t *testing.T) {
	dir := setupRun(t)

	require.NoError(t, RunEstimate(nil, []string{"noun", "verb"}))

	report := readReport(t, dir, "estimate")
	assert.Equal(t, "noun verb", report["mask"])
	assert.Equal(t, "lexical", report["source"])
	assert.Equal(t, float64(2), report["possibilities"])
	assert.InDelta(t, 1.0, report["bits"], 1e-9)

	crack := report["crack_time"].(map[string]interface{})
	assert.InDelta(t, 2.0/3600, crack["hours"], 1e-12)
}

func TestRunEstimateBadMask(t *testing.T) {
	setupRun(t)

	err := RunEstimate(nil, []string{"noun", "adverb"})
	assert.Equal(t, ExitBadMask, ExitCode(err))

	err = RunEstimate(nil, []string{"noun", "lower"})
	assert.Equal(t, ExitBadMask, ExitCode(err))
}

func TestRunGenerate(t *testing.T) {
	dir := setupRun(t)
	viper.Set("seed", uint64(42))
	viper.Set("generate.count", 5)
	viper.Set("generate.compare", true)

	require.NoError(t, RunGenerate(nil, []string{"noun verb"}))

	report := readReport(t, dir, "generate")
	passphrases := report["passphrases"].([]interface{})
	require.Len(t, passphrases, 5)
	for _, p := range passphrases {
		assert.Contains(t, []string{"catrun", "runrun"}, p)
	}
	assert.Len(t, report["strength"].([]interface{}), 5)

	viper.Set("generate.count", 0)
	assert.Error(t, RunGenerate(nil, []string{"noun verb"}))
}

func TestRunCrack(t *testing.T) {
	dir := setupRun(t)
	viper.Set("crack.mode", "exhaustive")
	viper.Set("crack.progress", false)
	viper.Set("crack.target", digest.Default().Sum("runrun"))

	require.NoError(t, RunCrack(nil, []string{"noun", "verb"}))

	report := readReport(t, dir, "search")
	assert.Equal(t, "found", report["reason"])
	assert.Equal(t, true, report["found"])
	assert.Equal(t, "runrun", report["candidate"])
	assert.Equal(t, float64(2), report["tested"])
}

func TestRunCrackHashList(t *testing.T) {
	dir := setupRun(t)
	sha1 := digest.Default()

	list := filepath.Join(t.TempDir(), "hashes.txt")
	content := sha1.Sum("catrun") + "\n" + sha1.Sum("dogrun") + "\n"
	require.NoError(t, os.WriteFile(list, []byte(content), 0644))

	viper.Set("crack.mode", "exhaustive")
	viper.Set("crack.progress", false)
	viper.Set("crack.hash_list", list)

	require.NoError(t, RunCrack(nil, []string{"noun", "verb"}))

	report := readReport(t, dir, "search")
	assert.Equal(t, "exhausted", report["reason"])
	assert.Equal(t, float64(1), report["matches"])
	assert.Equal(t, []interface{}{"catrun"}, report["matched"])

	// Random mode only takes a single digest
	viper.Set("crack.mode", "random")
	assert.Error(t, RunCrack(nil, []string{"noun", "verb"}))
}
