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

// setup points gerf at a fresh config directory and returns a directory for
// output files.
func setup(t *testing.T) string {
	t.Helper()
	t.Setenv("GERF_CONFIG_DIR", filepath.Join(t.TempDir(), "config"))
	t.Setenv("GERF_WARN_SIZE", "")
	t.Setenv("GERF_MAX_SIZE", "")
	t.Setenv("GERF_KIND", "")
	return t.TempDir()
}

func runGerf(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func fileSize(t *testing.T, path string) int64 {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	return info.Size()
}

func TestRun_Help(t *testing.T) {
	setup(t)
	code, stdout, _ := runGerf(t, "")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "gerf [SIZE]")
	assert.Contains(t, stdout, "--exceed")
}

func TestRun_Generate(t *testing.T) {
	out := setup(t)

	tests := []struct {
		name     string
		args     []string
		expected int64
	}{
		{"bytes", []string{"1000"}, 1000},
		{"zero", []string{"0"}, 0},
		{"kilobyte flag", []string{"2", "-k"}, 2048},
		{"suffix", []string{"3KB"}, 3072},
		{"numbers", []string{"500", "--numbers"}, 500},
		{"name alias", []string{"10"}, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(out, strings.ReplaceAll(tc.name, " ", "_")+".txt")
			flag := "--path"
			if tc.name == "name alias" {
				flag = "--name"
			}
			code, _, stderr := runGerf(t, "", append(tc.args, flag, path)...)
			require.Equal(t, 0, code, stderr)
			assert.Equal(t, tc.expected, fileSize(t, path))
			assert.Contains(t, stderr, "Created")
		})
	}
}

func TestRun_NumbersContent(t *testing.T) {
	path := filepath.Join(setup(t), "numbers.txt")
	code, _, stderr := runGerf(t, "", "4000", "-n", "-p", path)
	require.Equal(t, 0, code, stderr)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, strings.Trim(string(data), "0123456789 \n-"))
}

func TestRun_Seeded(t *testing.T) {
	out := setup(t)
	a, b := filepath.Join(out, "a.txt"), filepath.Join(out, "b.txt")
	for _, p := range []string{a, b} {
		code, _, stderr := runGerf(t, "", "5000", "--seed", "42", "-p", p)
		require.Equal(t, 0, code, stderr)
	}
	da, err := os.ReadFile(a)
	require.NoError(t, err)
	db, err := os.ReadFile(b)
	require.NoError(t, err)
	assert.Equal(t, da, db)
}

func TestRun_ExistingFile(t *testing.T) {
	path := filepath.Join(setup(t), "gerf.txt")
	require.NoError(t, os.WriteFile(path, []byte("keep"), 0644))

	code, _, stderr := runGerf(t, "", "100", "-p", path)
	assert.Equal(t, 0, code)
	assert.Contains(t, stderr, "already exists")
	assert.Contains(t, stderr, "--override")
	assert.Equal(t, int64(4), fileSize(t, path))

	code, _, stderr = runGerf(t, "", "100", "-p", path, "-o")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, int64(100), fileSize(t, path))
}

func TestRun_InvalidInput(t *testing.T) {
	out := setup(t)

	tests := []struct {
		name string
		args []string
	}{
		{"not a number", []string{"abc"}},
		{"negative", []string{"-5"}},
		{"two units", []string{"1", "-k", "-m"}},
		{"two kinds", []string{"1", "-w", "-n"}},
		{"suffix and unit", []string{"1MB", "-k"}},
		{"too many args", []string{"1", "2"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(out, "invalid.txt")
			code, _, _ := runGerf(t, "", append(tc.args, "-p", path)...)
			assert.Equal(t, 1, code)
			assert.NoFileExists(t, path)
		})
	}
}

func TestRun_SizePolicy(t *testing.T) {
	out := setup(t)
	t.Setenv("GERF_WARN_SIZE", "1KB")
	t.Setenv("GERF_MAX_SIZE", "4KB")

	t.Run("below warn", func(t *testing.T) {
		path := filepath.Join(out, "small.txt")
		code, stdout, _ := runGerf(t, "", "1KB", "-p", path)
		assert.Equal(t, 0, code)
		assert.NotContains(t, stdout, "VERY LARGE")
		assert.Equal(t, int64(1024), fileSize(t, path))
	})

	t.Run("declined", func(t *testing.T) {
		path := filepath.Join(out, "declined.txt")
		code, stdout, _ := runGerf(t, "n\n", "2KB", "-p", path)
		assert.Equal(t, 0, code)
		assert.Contains(t, stdout, "VERY LARGE")
		assert.NoFileExists(t, path)
	})

	t.Run("confirmed", func(t *testing.T) {
		path := filepath.Join(out, "confirmed.txt")
		code, _, stderr := runGerf(t, "y\n", "2KB", "-p", path)
		require.Equal(t, 0, code, stderr)
		assert.Equal(t, int64(2048), fileSize(t, path))
	})

	t.Run("exceed", func(t *testing.T) {
		path := filepath.Join(out, "exceed.txt")
		code, stdout, stderr := runGerf(t, "", "3KB", "-e", "-p", path)
		require.Equal(t, 0, code, stderr)
		assert.NotContains(t, stdout, "VERY LARGE")
		assert.Equal(t, int64(3072), fileSize(t, path))
	})

	t.Run("hard cap", func(t *testing.T) {
		path := filepath.Join(out, "huge.txt")
		code, _, stderr := runGerf(t, "y\n", "5KB", "-e", "-p", path)
		assert.Equal(t, 0, code)
		assert.Contains(t, stderr, "exceeds the maximum filesize")
		assert.NoFileExists(t, path)
	})
}

func TestRun_ShowLog(t *testing.T) {
	out := setup(t)

	code, stdout, _ := runGerf(t, "", "log")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "No log file found:")

	code, _, _ = runGerf(t, "", "10", "-p", filepath.Join(out, "logged.txt"))
	require.Equal(t, 0, code)

	for _, args := range [][]string{{"log"}, {"-L"}, {"--log"}} {
		code, stdout, _ = runGerf(t, "", args...)
		assert.Equal(t, 0, code)
		assert.Contains(t, stdout, "Available logs:")
		assert.Contains(t, stdout, "Created")
	}
}

func TestRun_ConfigDirFailure(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))
	t.Setenv("GERF_CONFIG_DIR", filepath.Join(blocker, "config"))

	code, _, stderr := runGerf(t, "", "10", "-p", filepath.Join(t.TempDir(), "out.txt"))
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "config directory")
}

func TestInterruptSignals_OnlyCtrlC(t *testing.T) {
	assert.Equal(t, []os.Signal{os.Interrupt}, interruptSignals)
}

func TestOnInterrupt(t *testing.T) {
	sigs := make(chan os.Signal, 1)
	sigs <- os.Interrupt

	var out bytes.Buffer
	code := -1
	onInterrupt(sigs, &out, func(c int) { code = c })

	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "Received Ctrl-C!")
}
