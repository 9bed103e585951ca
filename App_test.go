package main

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseArgs(t *testing.T) {
	t.Run("grid_path_and_defaults", func(t *testing.T) {
		options, err := ParseArgs([]string{"grid.csv"}, io.Discard)

		assert.NoError(t, err)
		assert.Equal(t, "grid.csv", options.GridPath)
		assert.Equal(t, FormatTable, options.Format)
		assert.False(t, options.Serve)
	})

	t.Run("flags", func(t *testing.T) {
		options, err := ParseArgs([]string{"-format", "json", "-no-color", "-debug", "grid.csv"}, io.Discard)

		assert.NoError(t, err)
		assert.Equal(t, FormatJson, options.Format)
		assert.True(t, options.NoColor)
		assert.True(t, options.Debug)
	})

	t.Run("serve_needs_no_grid_path", func(t *testing.T) {
		options, err := ParseArgs([]string{"-serve", "-listen", ":9191"}, io.Discard)

		assert.NoError(t, err)
		assert.True(t, options.Serve)
		assert.Equal(t, ":9191", options.Listen)
	})

	t.Run("missing_grid_path", func(t *testing.T) {
		var usage bytes.Buffer

		_, err := ParseArgs([]string{}, &usage)

		assert.Error(t, err)
		assert.ErrorIs(t, err, GridPathMissingError)
		assert.Contains(t, usage.String(), "-format")
	})

	t.Run("unknown_flag", func(t *testing.T) {
		_, err := ParseArgs([]string{"-bogus"}, io.Discard)

		assert.Error(t, err)
	})
}

func TestRunApp(t *testing.T) {
	writeGridFile := func(t *testing.T, content string) string {
		path := filepath.Join(t.TempDir(), "grid.csv")
		assert.NoError(t, os.WriteFile(path, []byte(content), 0644))
		return path
	}

	t.Run("table_output", func(t *testing.T) {
		t.Setenv(ConfigPathEnv, "")
		path := writeGridFile(t, "A,B\n1,=A1+1\n")

		var out bytes.Buffer
		options := &Options{GridPath: path, Format: FormatTable, NoColor: true}

		err := RunApp(options, &out, io.Discard)

		assert.NoError(t, err)

		lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
		// source table and evaluated table, two lines each
		assert.Len(t, lines, 4)
		assert.Contains(t, lines[1], "=A1+1")
		assert.Contains(t, lines[3], "2")
	})

	t.Run("json_output", func(t *testing.T) {
		t.Setenv(ConfigPathEnv, "")
		path := writeGridFile(t, "A\n1\n")

		var out bytes.Buffer
		options := &Options{GridPath: path, Format: FormatJson}

		err := RunApp(options, &out, io.Discard)

		assert.NoError(t, err)
		// without -debug only the report document is printed
		assert.Len(t, strings.Split(strings.TrimRight(out.String(), "\n"), "\n"), 1)
		assert.Contains(t, out.String(), `"result"`)
	})

	t.Run("json_debug_prints_both_documents", func(t *testing.T) {
		t.Setenv(ConfigPathEnv, "")
		path := writeGridFile(t, "A\n1\n")

		var out bytes.Buffer
		options := &Options{GridPath: path, Format: FormatJson, Debug: true}

		err := RunApp(options, &out, io.Discard)

		assert.NoError(t, err)
		assert.Len(t, strings.Split(strings.TrimRight(out.String(), "\n"), "\n"), 2)
	})

	t.Run("source_table_printed_before_evaluation_failure", func(t *testing.T) {
		t.Setenv(ConfigPathEnv, "")
		path := writeGridFile(t, "A\n=A1\n")

		var out bytes.Buffer
		options := &Options{GridPath: path, Format: FormatTable, NoColor: true}

		err := RunApp(options, &out, io.Discard)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "A1 -> A1")
		assert.Contains(t, out.String(), "=A1")
	})

	t.Run("unknown_format", func(t *testing.T) {
		t.Setenv(ConfigPathEnv, "")
		path := writeGridFile(t, "A\n1\n")

		options := &Options{GridPath: path, Format: "xml"}

		err := RunApp(options, io.Discard, io.Discard)

		assert.Error(t, err)
		assert.ErrorIs(t, err, UnknownFormatError)
	})

	t.Run("missing_grid_file", func(t *testing.T) {
		t.Setenv(ConfigPathEnv, "")

		options := &Options{GridPath: "/nonexistent/grid.csv", Format: FormatTable}

		err := RunApp(options, io.Discard, io.Discard)

		assert.Error(t, err)
	})

	t.Run("serve", func(t *testing.T) {
		t.Setenv(ConfigPathEnv, "")

		options := &Options{Serve: true, Listen: "127.0.0.1:18321"}

		var appErr error
		go func() {
			appErr = RunApp(options, io.Discard, io.Discard)
		}()
		runtime.Gosched()

		client := http.Client{Timeout: time.Second * 2}
		var res *http.Response
		var err error
		for i := 0; i < 10; i++ {
			if appErr != nil {
				t.Fatalf("RunApp() error = %v", appErr)
			}

			time.Sleep(50 * time.Millisecond)
			res, err = client.Get("http://127.0.0.1:18321/healthcheck")
			if err == nil {
				break
			}
		}

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, res.StatusCode)

		body, err := io.ReadAll(res.Body)
		assert.NoError(t, err)
		assert.Equal(t, "health", string(body))
	})
}

func TestHandleExitError(t *testing.T) {
	t.Run("Handle exit error", func(t *testing.T) {
		var actualExitCode int
		var out bytes.Buffer

		testCases := map[error]int{
			errors.New("dummy error"): ExitCodeMainError,
			nil:                       0,
		}

		for err, expectedCode := range testCases {
			out.Reset()
			actualExitCode = HandleExitError(&out, err)

			assert.Equal(t, expectedCode, actualExitCode)
			if err == nil {
				assert.Empty(t, out.String(), "Error is not empty")
			} else {
				assert.Contains(t, out.String(), err.Error(), "error output hasn't error description")
			}
		}
	})
}
