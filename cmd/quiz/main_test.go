package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBank = `questions:
  - title: "2 + 2?"
    points: 2
    choices:
      - text: "4"
        correct: true
      - text: "5"
  - title: "Pick the primes"
    max_selections: 2
    points: 2
    choices:
      - text: "2"
        correct: true
      - text: "3"
        correct: true
      - text: "4"
`

// executeCommand runs the root command with args and returns what it wrote
// to stdout and stderr.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)

	cmd := newRootCmd()
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestVersionCmd(t *testing.T) {
	originalVersion := version
	version = "test-version-1.0.0"
	defer func() { version = originalVersion }()

	stdout, _, err := executeCommand(t, "version")

	require.NoError(t, err)
	assert.Equal(t, "quiz version test-version-1.0.0\n", stdout)
}

func TestVersionCmdIgnoresBrokenConfig(t *testing.T) {
	stdout, _, err := executeCommand(t, "version", "--config", filepath.Join(t.TempDir(), "missing.yaml"))

	require.NoError(t, err)
	assert.Contains(t, stdout, "quiz version")
}

func TestShowCmd(t *testing.T) {
	bankFile := writeFile(t, "bank.yaml", testBank)

	stdout, _, err := executeCommand(t, "show", "--bank", bankFile)

	require.NoError(t, err)
	assert.Equal(t, `1. 2 + 2? (2 points, single select)
   1) 4
   2) 5

2. Pick the primes (2 points, select up to 2)
   1) 2
   2) 3
   3) 4
`, stdout)
}

func TestShowCmdRequiresBank(t *testing.T) {
	_, _, err := executeCommand(t, "show")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "bank" not set`)
}

func TestShowCmdReportsInvalidQuestion(t *testing.T) {
	bankFile := writeFile(t, "bank.yaml", `questions:
  - title: "fine"
  - title: ""
`)

	_, _, err := executeCommand(t, "show", "--bank", bankFile)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "question 2: ")
}

func TestGradeCmd(t *testing.T) {
	bankFile := writeFile(t, "bank.yaml", testBank)

	tests := []struct {
		name     string
		args     []string
		contains []string
		absent   []string
	}{
		{
			name:     "correct single select",
			args:     []string{"--question", "1", "--select", "1"},
			contains: []string{"1. 2 + 2?", "Correct selections: 1\n", "Score: 2/2\n"},
			absent:   []string{"Incorrect selections", "Missed"},
		},
		{
			name: "incorrect single select",
			args: []string{"--question", "1", "--select", "2"},
			contains: []string{
				"Correct selections: none\n",
				"Incorrect selections: 2\n",
				"Missed: 1\n",
				"Score: 0/2\n",
			},
		},
		{
			name:     "all correct multi select",
			args:     []string{"--question", "2", "--select", "2,1"},
			contains: []string{"Correct selections: 2,1\n", "Score: 2/2\n"},
		},
		{
			name:     "incomplete multi select",
			args:     []string{"--question", "2", "--select", "1"},
			contains: []string{"Correct selections: 1\n", "Missed: 2\n", "Score: 0/2\n"},
		},
		{
			name:     "nothing selected",
			args:     []string{"--question", "2"},
			contains: []string{"Correct selections: none\n", "Missed: 1,2\n", "Score: 0/2\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"grade", "--bank", bankFile}, tt.args...)
			stdout, _, err := executeCommand(t, args...)

			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, stdout, want)
			}
			for _, unwanted := range tt.absent {
				assert.NotContains(t, stdout, unwanted)
			}
		})
	}
}

func TestGradeCmdPartialPolicyFromConfig(t *testing.T) {
	bankFile := writeFile(t, "bank.yaml", testBank)
	configFile := writeFile(t, "quiz.yaml", "grading:\n  policy: partial\n")

	stdout, _, err := executeCommand(t,
		"grade", "--config", configFile, "--bank", bankFile, "--question", "2", "--select", "1")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Score: 1/2\n")
}

func TestGradeCmdErrors(t *testing.T) {
	bankFile := writeFile(t, "bank.yaml", testBank)

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "too many selections",
			args:    []string{"--question", "1", "--select", "1,2"},
			wantErr: "at most 1 choices may be selected for question 1",
		},
		{
			name:    "choice out of range",
			args:    []string{"--question", "1", "--select", "3"},
			wantErr: "choice 3 out of range",
		},
		{
			name:    "question out of range",
			args:    []string{"--question", "3", "--select", "1"},
			wantErr: "question 3 out of range",
		},
		{
			name:    "question zero",
			args:    []string{"--question", "0", "--select", "1"},
			wantErr: "question 0 out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"grade", "--bank", bankFile}, tt.args...)
			_, _, err := executeCommand(t, args...)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestInvalidConfigFails(t *testing.T) {
	bankFile := writeFile(t, "bank.yaml", testBank)
	configFile := writeFile(t, "quiz.yaml", "grading:\n  policy: generous\n")

	_, _, err := executeCommand(t, "show", "--config", configFile, "--bank", bankFile)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestLogLevelFlag(t *testing.T) {
	bankFile := writeFile(t, "bank.yaml", testBank)

	_, stderr, err := executeCommand(t, "show", "--bank", bankFile, "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, stderr, "application initialized")
	assert.Contains(t, stderr, "question.created")

	_, stderr, err = executeCommand(t, "show", "--bank", bankFile, "--log-level", "error")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}
