package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"bracketctl/internal/bracket/brackettest"
	"bracketctl/internal/client"
	"bracketctl/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateConfig keeps user, project and environment config out of the test.
func isolateConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	for _, key := range []string{
		config.EnvEndpoint, config.EnvPath, config.EnvMadnessParam,
		config.EnvDefaultMadness, config.EnvTimeout, config.EnvLogLevel,
	} {
		t.Setenv(key, "")
	}
	return dir
}

func newTestConfig(out, errOut io.Writer) *Config {
	cfg := NewConfig("", false)
	cfg.Out = out
	cfg.Err = errOut
	return cfg
}

func intPtr(i int) *int { return &i }

func TestNewConfig(t *testing.T) {
	cfg := NewConfig("/tmp/bracketctl.yaml", true)

	assert.Equal(t, "/tmp/bracketctl.yaml", cfg.ConfigPath)
	assert.True(t, cfg.Debug)
	assert.Equal(t, OutputText, cfg.Output)
	assert.Nil(t, cfg.Madness)
	assert.Nil(t, cfg.BracketctlConfig, "BracketctlConfig should be nil before loading")
}

func TestNewApplication_AppliesOverrides(t *testing.T) {
	isolateConfig(t)

	timeout := 2 * time.Second
	cfg := newTestConfig(io.Discard, io.Discard)
	cfg.Madness = intPtr(9)
	cfg.Version = "1.2.3"
	cfg.Overrides = ServiceOverrides{
		Endpoint:     "http://bracket.local:9000",
		MadnessParam: "madness",
		Timeout:      &timeout,
	}

	a, err := NewApplication(cfg)
	require.NoError(t, err)

	require.NotNil(t, cfg.BracketctlConfig)
	assert.Equal(t, "http://bracket.local:9000", cfg.BracketctlConfig.Service.Endpoint)
	assert.Equal(t, "madness", cfg.BracketctlConfig.Service.MadnessParam)
	assert.Equal(t, timeout, cfg.BracketctlConfig.Service.Timeout)
	assert.Equal(t, 9, a.MadnessLevel())
	assert.Equal(t, "http://bracket.local:9000"+config.DefaultPath+"?madness=9", a.services.Client.URL(9))
}

func TestNewApplication_DefaultMadness(t *testing.T) {
	isolateConfig(t)

	a, err := NewApplication(newTestConfig(io.Discard, io.Discard))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultMadnessLevel, a.MadnessLevel())
}

func TestNewApplication_RejectsMadnessOutOfRange(t *testing.T) {
	for _, level := range []int{-1, 11} {
		isolateConfig(t)

		cfg := newTestConfig(io.Discard, io.Discard)
		cfg.Madness = intPtr(level)

		_, err := NewApplication(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "between 0 and 10")
	}
}

func TestNewApplication_RejectsBadEndpoint(t *testing.T) {
	isolateConfig(t)

	cfg := newTestConfig(io.Discard, io.Discard)
	cfg.Overrides.Endpoint = "not a url"

	_, err := NewApplication(cfg)
	require.Error(t, err)
}

func TestNewApplication_ExplicitConfigFile(t *testing.T) {
	dir := isolateConfig(t)

	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("service:\n  endpoint: http://from-file:1234\nui:\n  defaultMadness: 0\n"), 0644))

	cfg := newTestConfig(io.Discard, io.Discard)
	cfg.ConfigPath = path

	a, err := NewApplication(cfg)
	require.NoError(t, err)
	assert.Equal(t, "http://from-file:1234", cfg.BracketctlConfig.Service.Endpoint)
	assert.Equal(t, 0, a.MadnessLevel())
}

func TestNewApplication_MissingExplicitConfig(t *testing.T) {
	dir := isolateConfig(t)

	cfg := newTestConfig(io.Discard, io.Discard)
	cfg.ConfigPath = filepath.Join(dir, "missing.yaml")

	_, err := NewApplication(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load bracketctl configuration")
}

func TestGenerate(t *testing.T) {
	var gotQuery, gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		gotAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, brackettest.SampleJSON)
	}))
	defer srv.Close()

	isolateConfig(t)

	var out bytes.Buffer
	cfg := newTestConfig(&out, io.Discard)
	cfg.Madness = intPtr(4)
	cfg.Version = "0.4.0"
	cfg.Overrides.Endpoint = srv.URL

	a, err := NewApplication(cfg)
	require.NoError(t, err)
	require.NoError(t, a.Generate(context.Background()))

	assert.Equal(t, "madness_level=4", gotQuery)
	assert.Equal(t, "bracketctl/0.4.0", gotAgent)
	assert.Contains(t, out.String(), "East Region")
	assert.Contains(t, out.String(), "National Champion\n  East (1)")
}

func TestGenerate_DebugLogsShapeFindingsOnce(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, brackettest.SampleJSON)
	}))
	defer srv.Close()

	isolateConfig(t)

	var errOut bytes.Buffer
	cfg := newTestConfig(io.Discard, &errOut)
	cfg.Debug = true
	cfg.Overrides.Endpoint = srv.URL

	a, err := NewApplication(cfg)
	require.NoError(t, err)
	require.NoError(t, a.Generate(context.Background()))

	finding := "top_left: Round of 32 has 2 entries, expected 8"
	assert.Equal(t, 1, strings.Count(errOut.String(), finding), errOut.String())
}

func TestGenerate_FailureUsesFixedMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "generator exploded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	isolateConfig(t)

	var out, errOut bytes.Buffer
	cfg := newTestConfig(&out, &errOut)
	cfg.Overrides.Endpoint = srv.URL

	a, err := NewApplication(cfg)
	require.NoError(t, err)

	err = a.Generate(context.Background())
	require.Error(t, err)
	assert.Equal(t, client.GenerateFailedMessage, err.Error())
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "Bracket generation failed", "failure must be logged")
	assert.Contains(t, errOut.String(), "500")
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    OutputFormat
		wantErr bool
	}{
		{"", OutputText, false},
		{"text", OutputText, false},
		{"JSON", OutputJSON, false},
		{"markdown", OutputMarkdown, false},
		{"md", OutputMarkdown, false},
		{"yaml", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOutputFormat(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteResult(t *testing.T) {
	r := brackettest.Seeds()

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteResult(&buf, r, OutputText))
		assert.Contains(t, buf.String(), "Round of 32: 1, 8, 5, 4, 6, 3, 7, 2")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteResult(&buf, r, OutputJSON))

		var doc map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
		champ := doc["national_champion"].(map[string]any)
		assert.Equal(t, "Bottom Right", champ["region"])
		assert.EqualValues(t, 2, champ["seed"])
	})

	t.Run("markdown", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteResult(&buf, r, OutputMarkdown))
		assert.Contains(t, buf.String(), "National Champion")
	})

	t.Run("unknown", func(t *testing.T) {
		require.Error(t, WriteResult(io.Discard, r, OutputFormat("xml")))
	})
}
