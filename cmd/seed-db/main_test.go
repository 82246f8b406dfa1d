package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/sahatech/clinic-seed/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDryRunPrintsReport(t *testing.T) {
	t.Setenv("LOGGER_LEVEL", "error")
	t.Setenv("APP_ENV", "test")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{
		"--env-file", filepath.Join(t.TempDir(), "missing.env"),
		"--dry-run",
		"--appointments", "5",
		"--random-seed", "11",
	})

	require.NoError(t, cmd.Execute())

	report := out.String()
	assert.Contains(t, report, "contacts linked: true")
	assert.Contains(t, report, "doctors: 3")
	assert.Contains(t, report, "patients: 4")
	assert.Contains(t, report, "appointments: 5")
	assert.Contains(t, report, "inbox messages: 2")
	assert.NotContains(t, report, "(unresolved)")
}

func TestLiveRunRequiresFirebaseSettings(t *testing.T) {
	t.Setenv("LOGGER_LEVEL", "error")
	t.Setenv("NEXT_PUBLIC_FIREBASE_PROJECT_ID", "")
	t.Setenv("NEXT_PUBLIC_FIREBASE_API_KEY", "")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--env-file", filepath.Join(t.TempDir(), "missing.env")})

	assert.Error(t, cmd.Execute())
}

func TestPrintReportSkipped(t *testing.T) {
	var out bytes.Buffer
	printReport(&out, &seed.Report{RunID: "r1", Skipped: true})
	assert.Contains(t, out.String(), "fixtures skipped")
	assert.Contains(t, out.String(), "(unresolved)")
}
