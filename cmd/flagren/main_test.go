package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"flagren/internal/config"
	"flagren/internal/log"
	"flagren/internal/rename"
	"flagren/pkg/testutils"
	"flagren/pkg/types"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useMemFs routes every command in the test through an in-memory engine.
func useMemFs(t *testing.T, files ...string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	testutils.CreateTestFiles(t, fs, files...)
	rename.SetRenamerFactory(func() rename.Renamer {
		e := rename.New()
		e.SetFs(fs)
		return e
	})
	t.Cleanup(rename.ResetRenamerFactory)
	return fs
}

// runCli runs the command line with an isolated config path.
func runCli(t *testing.T, input string, args ...string) (int, string, string) {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	args = append([]string{"--config", cfgPath}, args...)
	var out, errOut bytes.Buffer
	code := run(args, strings.NewReader(input), &out, &errOut)
	return code, out.String(), errOut.String()
}

// resetLogging restores the quiet package logger once the test is done.
func resetLogging(t *testing.T) {
	t.Cleanup(func() {
		log.SetDebug(false)
		log.Configure(log.WithLevel(logrus.WarnLevel))
	})
}

func exists(t *testing.T, fs afero.Fs, path string) bool {
	t.Helper()
	ok, err := afero.Exists(fs, path)
	require.NoError(t, err)
	return ok
}

func TestInteractiveSession(t *testing.T) {
	fs := useMemFs(t, "/tmp/report.txt")

	code, out, errOut := runCli(t, "v2\n1\n/tmp/report.txt\nfinal\ndone\n2\n")

	assert.Equal(t, 0, code)
	assert.Empty(t, errOut)
	assert.Contains(t, out, "Renamed: /tmp/report.txt -> /tmp/final_v2.txt")
	assert.True(t, exists(t, fs, "/tmp/final_v2.txt"))
}

func TestInteractiveInvalidModeExitsOne(t *testing.T) {
	fs := useMemFs(t, "/tmp/report.txt")

	code, _, errOut := runCli(t, "v2\n9\n")

	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "Invalid mode selected.")
	assert.NotContains(t, errOut, "Error:")
	assert.True(t, exists(t, fs, "/tmp/report.txt"))
}

func TestInteractivePerFileErrorsKeepExitZero(t *testing.T) {
	useMemFs(t)

	code, _, errOut := runCli(t, "v2\n1\n/tmp/missing.txt\n\ndone\n1\n")

	assert.Equal(t, 0, code)
	assert.Contains(t, errOut, "Error: File not found -> /tmp/missing.txt")
}

func TestFilesCommand(t *testing.T) {
	fs := useMemFs(t, "/docs/a.txt", "/docs/b.txt")

	code, out, errOut := runCli(t, "", "files", "--flag", "v2", "--position", "suffix",
		"/docs/a.txt", "/docs/b.txt=beta", "/docs/c.txt")

	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Renamed: /docs/a.txt -> /docs/a_v2.txt")
	assert.Contains(t, out, "Renamed: /docs/b.txt -> /docs/beta_v2.txt")
	assert.Contains(t, out, "Done: 2 renamed, 0 skipped, 1 failed")
	assert.Contains(t, errOut, "Error: File not found -> /docs/c.txt")
	assert.True(t, exists(t, fs, "/docs/a_v2.txt"))
	assert.True(t, exists(t, fs, "/docs/beta_v2.txt"))
}

func TestFilesCommandRequiresFlag(t *testing.T) {
	useMemFs(t, "/docs/a.txt")

	code, _, errOut := runCli(t, "", "files", "/docs/a.txt")

	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "a flag is required")
}

func TestFilesCommandCollisionFlag(t *testing.T) {
	fs := useMemFs(t, "/docs/a.txt", "/docs/v2_a.txt")

	code, _, errOut := runCli(t, "", "files", "--flag", "v2", "/docs/a.txt")
	assert.Equal(t, 0, code)
	assert.Contains(t, errOut, "Error: Target already exists -> /docs/v2_a.txt (from /docs/a.txt)")
	assert.True(t, exists(t, fs, "/docs/a.txt"))

	code, out, _ := runCli(t, "", "--collision", "overwrite", "files", "--flag", "v2", "/docs/a.txt")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Renamed: /docs/a.txt -> /docs/v2_a.txt")
	assert.False(t, exists(t, fs, "/docs/a.txt"))
}

func TestInvalidCollisionFlag(t *testing.T) {
	useMemFs(t)

	code, _, errOut := runCli(t, "", "--collision", "shred", "files", "--flag", "v2", "/docs/a.txt")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "invalid collision setting")
}

func TestFolderCommand(t *testing.T) {
	fs := useMemFs(t, "/notes/a.md", "/notes/b.txt", "/notes/sub/c.md")

	code, out, _ := runCli(t, "", "folder", "--flag", "draft", "-p", "suffix", "--include", "*.md", "/notes")

	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Renamed: /notes/a.md -> /notes/a_draft.md")
	assert.Contains(t, out, "Done: 1 renamed, 0 skipped, 0 failed")
	assert.True(t, exists(t, fs, "/notes/b.txt"))
	assert.True(t, exists(t, fs, "/notes/sub/c.md"))
}

func TestFolderCommandMissingAndEmpty(t *testing.T) {
	fs := useMemFs(t)
	require.NoError(t, fs.MkdirAll("/tmp/empty", 0755))

	code, _, errOut := runCli(t, "", "folder", "--flag", "v2", "/tmp/absent")
	assert.Equal(t, 0, code)
	assert.Contains(t, errOut, "Error: Folder not found -> /tmp/absent")

	code, _, errOut = runCli(t, "", "folder", "--flag", "v2", "/tmp/empty")
	assert.Equal(t, 0, code)
	assert.Contains(t, errOut, "No files found in folder: /tmp/empty")
}

func TestConfigDefaults(t *testing.T) {
	fs := useMemFs(t, "/docs/a.txt")
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("defaults:\n  flag: final\n  position: suffix\n"), 0644))

	var out, errOut bytes.Buffer
	code := run([]string{"--config", cfgPath, "files", "/docs/a.txt"}, strings.NewReader(""), &out, &errOut)

	assert.Equal(t, 0, code, errOut.String())
	assert.Contains(t, out.String(), "Renamed: /docs/a.txt -> /docs/a_final.txt")
	assert.True(t, exists(t, fs, "/docs/a_final.txt"))
}

func TestVersionFlag(t *testing.T) {
	code, out, _ := runCli(t, "", "--version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "flagren version")
}

func TestParseFileArg(t *testing.T) {
	tests := []struct {
		arg  string
		want types.RenameRequest
	}{
		{"a.txt", types.RenameRequest{SourcePath: "a.txt"}},
		{"a.txt=final", types.RenameRequest{SourcePath: "a.txt", ReplacementBase: "final"}},
		{"a=b.txt=final", types.RenameRequest{SourcePath: "a=b.txt", ReplacementBase: "final"}},
		{"a.txt=", types.RenameRequest{SourcePath: "a.txt"}},
		{"=odd", types.RenameRequest{SourcePath: "=odd"}},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			assert.Equal(t, tt.want, parseFileArg(tt.arg))
		})
	}
}

func TestLogFileClosedAfterFailedRun(t *testing.T) {
	useMemFs(t, "/tmp/report.txt")
	resetLogging(t)

	dir := t.TempDir()
	logPath := filepath.Join(dir, "flagren.log")
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("settings:\n  debug: true\n  log_file: "+logPath+"\n"), 0644))

	var out, errOut bytes.Buffer
	code := run([]string{"--config", cfgPath}, strings.NewReader("v2\n9\n"), &out, &errOut)
	assert.Equal(t, 1, code)

	// Entries logged after run returns must not reach the closed file
	log.Default().Warn("after exit")

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "aborting session")
	assert.NotContains(t, string(content), "after exit")
}

func TestLogJSONFlag(t *testing.T) {
	useMemFs(t, "/docs/a.txt")
	resetLogging(t)

	code, _, errOut := runCli(t, "", "--debug", "--log-json", "files", "--flag", "v2", "/docs/a.txt")

	assert.Equal(t, 0, code)
	assert.Contains(t, errOut, `"level":"debug"`)
	assert.Contains(t, errOut, `"message":"Renaming 1 files"`)
}

func TestConfigInit(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "nested", "config.yaml")

	var out, errOut bytes.Buffer
	code := run([]string{"--config", cfgPath, "config", "init", "--flag", "draft", "-p", "suffix"},
		strings.NewReader(""), &out, &errOut)
	require.Equal(t, 0, code, errOut.String())
	assert.Contains(t, out.String(), "Configuration written to "+cfgPath)

	cfg, err := config.LoadConfigFile(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "draft", cfg.Defaults.Flag)
	assert.Equal(t, "suffix", cfg.Defaults.Position)
	assert.Equal(t, config.CollisionFail, cfg.Settings.Collision)

	t.Run("refuses to replace without force", func(t *testing.T) {
		out.Reset()
		errOut.Reset()
		code := run([]string{"--config", cfgPath, "config", "init"}, strings.NewReader(""), &out, &errOut)
		assert.Equal(t, 1, code)
		assert.Contains(t, errOut.String(), "already exists")

		code = run([]string{"--config", cfgPath, "config", "init", "--force"}, strings.NewReader(""), &out, &errOut)
		assert.Equal(t, 0, code, errOut.String())
		cfg, err := config.LoadConfigFile(cfgPath)
		require.NoError(t, err)
		assert.Empty(t, cfg.Defaults.Flag)
		assert.Equal(t, "prefix", cfg.Defaults.Position)
	})

	t.Run("rejects unknown position", func(t *testing.T) {
		other := filepath.Join(t.TempDir(), "config.yaml")
		errOut.Reset()
		code := run([]string{"--config", other, "config", "init", "-p", "middle"}, strings.NewReader(""), &out, &errOut)
		assert.Equal(t, 1, code)
		assert.Contains(t, errOut.String(), "invalid default position")
		assert.NoFileExists(t, other)
	})
}
