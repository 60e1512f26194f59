package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sync/atomic"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mark3labs/planwise/internal/intake"
	"github.com/mark3labs/planwise/internal/relay"
)

func TestRootCmd_Subcommands(t *testing.T) {
	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"start", "submit", "options", "setup"} {
		assert.Contains(t, names, want)
	}
}

func TestPrintOptions(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printOptions(&buf))
	out := ansi.Strip(buf.String())

	for _, g := range optionGroups {
		assert.Contains(t, out, g.key)
		for _, o := range g.opts {
			assert.Contains(t, out, o.Key())
		}
	}
	assert.Contains(t, out, "early-retirement-fire")
	assert.Contains(t, out, "股票/ETF")
}

func writeAnswers(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "answers.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))
	return path
}

func TestLoadAnswers(t *testing.T) {
	path := writeAnswers(t, `name: Alice
stage: legacy-planning
financial_goals: [passive-income, tax]
monthly_savings: over-100k
contact_info: line:alice
`)

	w, err := loadAnswers(path)
	require.NoError(t, err)

	body, err := relay.Encode(*w.Answers())
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "Alice", got["name"])
	assert.Equal(t, "legacy", got["stage"])
	assert.Equal(t, []interface{}{"cashflow", "tax"}, got["financialGoals"])
	assert.Equal(t, "10w+", got["monthlySavings"])
	assert.Equal(t, []interface{}{}, got["concerns"])
}

func TestLoadAnswers_NotReady(t *testing.T) {
	path := writeAnswers(t, "name: Alice\n")
	_, err := loadAnswers(path)
	assert.ErrorIs(t, err, intake.ErrNotReady)
}

func TestLoadAnswers_UnknownOption(t *testing.T) {
	path := writeAnswers(t, "name: Alice\ncontact_info: x\nconcerns: [aliens]\n")
	_, err := loadAnswers(path)
	assert.ErrorIs(t, err, intake.ErrUnknownOption)
}

func TestRunSetup_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	setupFlags.project = true
	setupFlags.force = false
	t.Cleanup(func() { setupFlags.project = false })

	var out bytes.Buffer
	setupCmd.SetOut(&out)
	require.NoError(t, runSetup(setupCmd, nil))
	assert.FileExists(t, filepath.Join(dir, "planwise.yml"))
	assert.Contains(t, out.String(), "Config written to: planwise.yml")

	err := runSetup(setupCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	setupFlags.force = true
	t.Cleanup(func() { setupFlags.force = false })
	assert.NoError(t, runSetup(setupCmd, nil))
}

const readyAnswers = `name: Alice
stage: family
financial_goals: [fire, home-purchase]
contact_info: line:alice
`

// relayStub counts requests and answers each one with status.
func relayStub(t *testing.T, status int) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

// execute runs the root command with args, isolated from any user config.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("PLANWISE_ENDPOINT", "")
	t.Chdir(t.TempDir())

	submitFlags.answers = ""
	submitFlags.edit = false
	submitFlags.dryRun = false

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSubmit_DryRunPrintsBodyWithoutPosting(t *testing.T) {
	srv, hits := relayStub(t, http.StatusOK)
	path := writeAnswers(t, readyAnswers)

	out, err := execute(t, "submit", "--answers", path, "--endpoint", srv.URL, "--dry-run")
	require.NoError(t, err)
	assert.Equal(t, int32(0), hits.Load())

	assert.JSONEq(t, `{
		"name": "Alice",
		"stage": "family",
		"financialGoals": ["fire", "house"],
		"investmentExperience": [],
		"monthlySavings": "",
		"concerns": [],
		"contactInfo": "line:alice"
	}`, out)
}

func TestSubmit_PostsOnce(t *testing.T) {
	srv, hits := relayStub(t, http.StatusOK)
	path := writeAnswers(t, readyAnswers)

	out, err := execute(t, "submit", "--answers", path, "--endpoint", srv.URL)
	require.NoError(t, err)
	assert.Equal(t, int32(1), hits.Load())
	assert.Equal(t, "Answers sent. Thank you, Alice.\n", out)
}

func TestSubmit_RelayRejection(t *testing.T) {
	srv, hits := relayStub(t, http.StatusInternalServerError)
	path := writeAnswers(t, readyAnswers)

	out, err := execute(t, "submit", "--answers", path, "--endpoint", srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), intake.MsgRejected)
	assert.ErrorIs(t, err, intake.ErrRejected)
	assert.Equal(t, int32(1), hits.Load(), "no automatic retry")
	assert.NotContains(t, out, "Answers sent")
}

func TestSubmit_InvalidEndpoint(t *testing.T) {
	path := writeAnswers(t, readyAnswers)

	_, err := execute(t, "submit", "--answers", path, "--endpoint", "ftp://relay.example")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestEditAnswers_WritesTemplateWhenMissing(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on the true command")
	}
	if _, err := exec.LookPath("true"); err != nil {
		t.Skip("true command not available")
	}
	t.Setenv("EDITOR", "true")
	t.Setenv("VISUAL", "")

	path := filepath.Join(t.TempDir(), "answers.yml")
	require.NoError(t, editAnswers(path))
	require.FileExists(t, path)

	f, err := intake.LoadAnswersFile(path)
	require.NoError(t, err)
	assert.Empty(t, f.Name)
	assert.Empty(t, f.ContactInfo)
	assert.Empty(t, f.FinancialGoals)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "financial_goals: []")

	// The template alone is not submittable.
	_, err = loadAnswers(path)
	assert.ErrorIs(t, err, intake.ErrNotReady)
}

func TestEditAnswers_KeepsExistingFile(t *testing.T) {
	if _, err := exec.LookPath("true"); err != nil {
		t.Skip("true command not available")
	}
	t.Setenv("EDITOR", "true")
	t.Setenv("VISUAL", "")

	path := writeAnswers(t, readyAnswers)
	require.NoError(t, editAnswers(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, readyAnswers, string(data))
}
