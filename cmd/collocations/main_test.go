package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCorpus(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunPMI(t *testing.T) {
	corpus := writeCorpus(t, "Collocations", "the cat sat on the mat the cat ran")
	var stdout, stderr bytes.Buffer

	code := run([]string{"--corpus", corpus, "pmi"}, &stdout, &stderr)

	require.Equal(t, exitOK, code, stderr.String())
	lines := strings.Split(strings.TrimRight(stdout.String(), "\n"), "\n")
	assert.Len(t, lines, 7)
	assert.Contains(t, lines, "the cat 1.7549")
	for _, line := range lines {
		assert.Len(t, strings.Fields(line), 3, line)
	}
}

func TestRunMeasureCaseInsensitive(t *testing.T) {
	corpus := writeCorpus(t, "Collocations", "dog , cat")

	for _, m := range []string{"PMI", "Chi-Square"} {
		var stdout, stderr bytes.Buffer
		code := run([]string{"--corpus", corpus, m}, &stdout, &stderr)
		assert.Equal(t, exitOK, code, m)
		assert.NotEmpty(t, stdout.String(), m)
	}
}

func TestRunInvalidMeasure(t *testing.T) {
	corpus := writeCorpus(t, "Collocations", "dog cat")
	var stdout, stderr bytes.Buffer

	code := run([]string{"--corpus", corpus, "XYZ"}, &stdout, &stderr)

	assert.Equal(t, exitUsage, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), invalidMeasureMsg)
}

func TestRunMissingMeasure(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"--corpus", "whatever"}, &stdout, &stderr)

	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr.String(), invalidMeasureMsg)
}

func TestRunMissingCorpus(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"--corpus", filepath.Join(t.TempDir(), "missing"), "pmi"}, &stdout, &stderr)

	assert.Equal(t, exitIO, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "corpus unreadable")
}

func TestRunEmptyCorpus(t *testing.T) {
	corpus := writeCorpus(t, "Collocations", "")
	var stdout, stderr bytes.Buffer

	code := run([]string{"--corpus", corpus, "chi-square"}, &stdout, &stderr)

	assert.Equal(t, exitOK, code)
	assert.Empty(t, stdout.String())
}

func TestRunTopFlag(t *testing.T) {
	corpus := writeCorpus(t, "Collocations", "a b c d e f g h")
	var stdout, stderr bytes.Buffer

	code := run([]string{"--corpus", corpus, "--top", "2", "pmi"}, &stdout, &stderr)

	require.Equal(t, exitOK, code)
	assert.Equal(t, 2, strings.Count(stdout.String(), "\n"))
}

func TestRunConfigFile(t *testing.T) {
	corpus := writeCorpus(t, "corpus.html", "<p>new york</p><p>new york city</p>")
	cfg := writeCorpus(t, "colloc.yaml", "corpus: "+corpus+"\nmeasure: chi-square\ntop: 1\n")
	var stdout, stderr bytes.Buffer

	code := run([]string{"--config", cfg}, &stdout, &stderr)

	require.Equal(t, exitOK, code, stderr.String())
	assert.Equal(t, 1, strings.Count(stdout.String(), "\n"))
	assert.True(t, strings.HasPrefix(stdout.String(), "new york "), stdout.String())
}

func TestRunVerboseLogsToStderr(t *testing.T) {
	corpus := writeCorpus(t, "Collocations", "dog cat")
	var stdout, stderr bytes.Buffer

	code := run([]string{"-v", "--corpus", corpus, "pmi"}, &stdout, &stderr)

	require.Equal(t, exitOK, code)
	assert.Equal(t, "dog cat 2.0000\n", stdout.String())
	assert.Contains(t, stderr.String(), "tokens=2")
	assert.Contains(t, stderr.String(), "measure=pmi")
}

func TestRunUnknownFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"--bogus", "pmi"}, &stdout, &stderr)

	assert.Equal(t, exitUsage, code)
	assert.Empty(t, stdout.String())
}

func TestRunHelp(t *testing.T) {
	for _, argv := range [][]string{{"--help"}, {"--help", "pmi"}} {
		var stdout, stderr bytes.Buffer

		code := run(argv, &stdout, &stderr)

		assert.Equal(t, exitOK, code, argv)
		assert.Empty(t, stdout.String(), argv)
		assert.Contains(t, stderr.String(), "collocations", argv)
		assert.NotContains(t, stderr.String(), invalidMeasureMsg, argv)
		assert.NotContains(t, stderr.String(), "corpus unreadable", argv)
	}
}
