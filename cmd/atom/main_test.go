// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestUUIDCmd(t *testing.T) {
	t.Run("version 3 with the dns namespace", func(t *testing.T) {
		stdout, _, err := execute(t, "", "uuid", "--version", "3", "python.org")
		require.NoError(t, err)
		assert.Equal(t, "6fa459ea-ee8a-3ca4-894e-db77e160355e\n", stdout)
	})

	t.Run("version 5 with the dns namespace", func(t *testing.T) {
		stdout, _, err := execute(t, "", "uuid", "--version", "5", "python.org")
		require.NoError(t, err)
		assert.Equal(t, "886313e1-3b8a-5372-9b90-0c9aee199e5d\n", stdout)
	})

	t.Run("random versions", func(t *testing.T) {
		for _, version := range []string{"4", "7"} {
			stdout, _, err := execute(t, "", "uuid", "--version", version)
			require.NoError(t, err)
			value, err := uuid.Parse(strings.TrimSpace(stdout))
			require.NoError(t, err)
			assert.Equal(t, version, strconv.Itoa(int(value.Version())))
		}
	})

	t.Run("name-based versions require a name", func(t *testing.T) {
		_, _, err := execute(t, "", "uuid", "--version", "5")
		require.ErrorIs(t, err, errMissingName)
	})

	t.Run("unknown namespace", func(t *testing.T) {
		_, _, err := execute(t, "", "uuid", "--version", "3", "--namespace", "nope", "x")
		require.Error(t, err)
	})

	t.Run("unsupported version", func(t *testing.T) {
		_, _, err := execute(t, "", "uuid", "--version", "1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported UUID version")
	})
}

func TestHashCmd(t *testing.T) {
	cases := []struct {
		name   string
		stdin  string
		args   []string
		expect string
	}{{
		name:   "md5 of arguments",
		args:   []string{"hash", "--algo", "md5", "hello", "world"},
		expect: "5eb63bbbe01eeed093cb22bb8f5acdc3",
	}, {
		name:   "sha1 of stdin",
		stdin:  "abc",
		args:   []string{"hash"},
		expect: "a9993e364706816aba3e25717850c26c9cd0d89d",
	}, {
		name:   "blake2b of the empty input",
		args:   []string{"hash", "--algo", "BLAKE2B"},
		expect: "0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8",
	}}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stdout, _, err := execute(t, tc.stdin, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.expect+"\n", stdout)
		})
	}

	t.Run("unsupported algorithm", func(t *testing.T) {
		_, stderr, err := execute(t, "", "hash", "--algo", "crc32", "x")
		require.Error(t, err)
		assert.Contains(t, stderr, "[atom] [Error]: hash: crc32")
	})
}

func TestRunCmd(t *testing.T) {
	t.Run("runs the requested frames", func(t *testing.T) {
		stdout, stderr, err := execute(t, "", "run", "--fps", "0", "--frames", "3", "--name", "Test")
		require.NoError(t, err)
		assert.Equal(t, "Test: 3 frames\n", stdout)
		assert.Contains(t, stderr, `window "Test" created: 1920x1080`)
		assert.Contains(t, stderr, "stopped after 3 frames")
	})

	t.Run("rejects invalid sizes", func(t *testing.T) {
		_, _, err := execute(t, "", "run", "--width", "0")
		require.Error(t, err)
	})

	t.Run("honors the log level", func(t *testing.T) {
		_, stderr, err := execute(t, "", "--log-level", "Warn", "run", "--fps", "0", "--frames", "1")
		require.NoError(t, err)
		assert.Empty(t, stderr)
	})
}

func TestRootCmd(t *testing.T) {
	t.Run("invalid log level", func(t *testing.T) {
		_, _, err := execute(t, "", "--log-level", "loud", "uuid")
		require.Error(t, err)
	})

	t.Run("log config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logging.yaml")
		config := "default: quiet\nloggers:\n  - name: quiet\n    sink: null\n"
		require.NoError(t, os.WriteFile(path, []byte(config), 0600))

		stdout, stderr, err := execute(t, "", "--log-config", path, "run", "--fps", "0", "--frames", "2")
		require.NoError(t, err)
		assert.Equal(t, "Sandbox: 2 frames\n", stdout)
		assert.Empty(t, stderr)
	})

	t.Run("missing log config", func(t *testing.T) {
		_, _, err := execute(t, "", "--log-config", "/nonexistent/logging.yaml", "uuid")
		require.Error(t, err)
	})
}
