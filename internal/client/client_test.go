package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bracketctl/internal/bracket/brackettest"
	"bracketctl/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
	)
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func newBracketServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestFetch_Success(t *testing.T) {
	var gotQuery, gotPath, gotAccept string
	srv := newBracketServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, brackettest.SampleJSON)
	})

	c := New(Config{BaseURL: srv.URL, Path: "/bracket"})
	result, err := c.Fetch(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, "/bracket", gotPath)
	assert.Equal(t, "madness_level=7", gotQuery)
	assert.Equal(t, "application/json", gotAccept)
	assert.Equal(t, "East", result.TopLeft.Name)
	assert.Equal(t, "West (2)", result.FinalFour.Right.String())
}

func TestFetch_CustomMadnessParam(t *testing.T) {
	var gotQuery string
	srv := newBracketServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		io.WriteString(w, brackettest.SeedsJSON)
	})

	c := New(Config{BaseURL: srv.URL + "/", Path: "bracket", MadnessParam: "madness"})
	_, err := c.Fetch(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, "madness=0", gotQuery)
}

func TestFetch_StatusError(t *testing.T) {
	srv := newBracketServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "madness_level must be <= 10", http.StatusUnprocessableEntity)
	})

	c := New(Config{BaseURL: srv.URL, Path: "/bracket"})
	result, err := c.Fetch(context.Background(), 11)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, ErrGenerateFailed))

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusUnprocessableEntity, statusErr.StatusCode)
	assert.Contains(t, statusErr.Body, "madness_level must be <= 10")
	assert.Equal(t, GenerateFailedMessage, UserMessage(err))
}

func TestFetch_ErrorBodyIsTruncated(t *testing.T) {
	srv := newBracketServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		io.WriteString(w, strings.Repeat("x", 4096))
	})

	_, err := New(Config{BaseURL: srv.URL}).Fetch(context.Background(), 5)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Len(t, statusErr.Body, maxErrorBodySize)
}

func TestFetch_TransportError(t *testing.T) {
	rt := roundTripperFunc(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})

	c := New(Config{BaseURL: "http://bracket.invalid", HTTPClient: &http.Client{Transport: rt}})
	_, err := c.Fetch(context.Background(), 5)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrGenerateFailed))
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, GenerateFailedMessage, UserMessage(err))
}

func TestFetch_DecodeError(t *testing.T) {
	srv := newBracketServer(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"message": "Bracket Simulator API is live!"`)
	})

	_, err := New(Config{BaseURL: srv.URL}).Fetch(context.Background(), 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrGenerateFailed))
	assert.Contains(t, err.Error(), "decode bracket")
}

func TestFetch_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := newBracketServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	c := New(Config{BaseURL: srv.URL, Timeout: 50 * time.Millisecond})
	_, err := c.Fetch(context.Background(), 5)

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.True(t, errors.Is(err, ErrGenerateFailed))
}

func TestFetch_ContextCanceled(t *testing.T) {
	started := make(chan struct{})
	srv := newBracketServer(t, func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		_, err := New(Config{BaseURL: srv.URL}).Fetch(ctx, 5)
		errCh <- err
	}()

	<-started
	cancel()

	select {
	case err := <-errCh:
		assert.True(t, errors.Is(err, context.Canceled))
	case <-time.After(2 * time.Second):
		t.Fatal("Fetch did not return after cancel")
	}
}

func TestURL(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{
			name: "defaults",
			cfg:  Config{BaseURL: "https://bracket-simulator.onrender.com", Path: "/bracket"},
			want: "https://bracket-simulator.onrender.com/bracket?madness_level=5",
		},
		{
			name: "no path",
			cfg:  Config{BaseURL: "https://bracket-simulator.onrender.com/"},
			want: "https://bracket-simulator.onrender.com?madness_level=5",
		},
		{
			name: "madness variant",
			cfg:  Config{BaseURL: "http://localhost:8000", Path: "bracket", MadnessParam: "madness"},
			want: "http://localhost:8000/bracket?madness=5",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, New(tt.cfg).URL(5))
		})
	}
}

func TestConfigFromService(t *testing.T) {
	cfg := ConfigFromService(config.ServiceConfig{
		Endpoint:     "http://localhost:8000",
		Path:         "/bracket",
		MadnessParam: "madness",
		Timeout:      time.Second,
	})
	assert.Equal(t, Config{
		BaseURL:      "http://localhost:8000",
		Path:         "/bracket",
		MadnessParam: "madness",
		Timeout:      time.Second,
	}, cfg)
}

func TestUserMessage(t *testing.T) {
	assert.Empty(t, UserMessage(nil))
	assert.Equal(t, GenerateFailedMessage, UserMessage(errors.New("anything")))
	assert.Equal(t, GenerateFailedMessage, UserMessage(&StatusError{StatusCode: 500}))
}
