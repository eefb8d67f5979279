package github_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/osrs-random/internal/clients/github"
	"github.com/KirkDiggler/osrs-random/internal/errors"
)

type ClientTestSuite struct {
	suite.Suite
	server  *httptest.Server
	handler http.HandlerFunc
	client  github.Client
	ctx     context.Context
}

func (s *ClientTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.handler = func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}
	s.server = httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.handler(w, r)
	}))

	var err error
	s.client, err = github.New(&github.Config{
		BaseURL:    s.server.URL,
		HTTPClient: s.server.Client(),
		Timeout:    time.Second,
	})
	s.Require().NoError(err)
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *ClientTestSuite) TestLatestRelease_Success() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/repos/owner/osrs-random/releases/latest", r.URL.Path)
		s.Equal("application/vnd.github+json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"tag_name": "v1.4.0",
			"name": "Slayer update",
			"html_url": "https://github.com/owner/osrs-random/releases/tag/v1.4.0",
			"published_at": "2026-03-01T12:00:00Z"
		}`))
	}

	release, err := s.client.LatestRelease(s.ctx, "owner/osrs-random")
	s.Require().NoError(err)
	s.Equal("v1.4.0", release.TagName)
	s.Equal("1.4.0", release.Version())
	s.Equal("Slayer update", release.Name)
	s.Equal(2026, release.PublishedAt.Year())
}

func (s *ClientTestSuite) TestLatestRelease_StatusCodes() {
	testCases := []struct {
		name   string
		status int
		check  func(error) bool
	}{
		{"not found", http.StatusNotFound, errors.IsNotFound},
		{"rate limited", http.StatusForbidden, errors.IsResourceExhausted},
		{"server error", http.StatusBadGateway, errors.IsUnavailable},
		{"bad request", http.StatusBadRequest, errors.IsInvalidArgument},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.handler = func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(`{"message":"nope"}`))
			}

			release, err := s.client.LatestRelease(s.ctx, "owner/repo")
			s.Nil(release)
			s.Require().Error(err)
			s.True(tc.check(err), "unexpected code %s", errors.GetCode(err))
			s.Equal(tc.status, errors.GetMeta(err)["status"])
		})
	}
}

func (s *ClientTestSuite) TestLatestRelease_MissingTag() {
	s.handler = func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"name":"untagged"}`))
	}

	_, err := s.client.LatestRelease(s.ctx, "owner/repo")
	s.Require().Error(err)
	s.Contains(err.Error(), "no tag_name")
}

func (s *ClientTestSuite) TestLatestRelease_MalformedBody() {
	s.handler = func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"tag_name":`))
	}

	_, err := s.client.LatestRelease(s.ctx, "owner/repo")
	s.Require().Error(err)
	s.Equal(errors.CodeInternal, errors.GetCode(err))
}

func (s *ClientTestSuite) TestLatestRelease_InvalidRepo() {
	called := false
	s.handler = func(w http.ResponseWriter, _ *http.Request) {
		called = true
	}

	for _, repo := range []string{"", "owner", "owner/repo/extra", "owner/", "owner/re po"} {
		_, err := s.client.LatestRelease(s.ctx, repo)
		s.True(errors.IsInvalidArgument(err), repo)
	}
	s.False(called)
}

func (s *ClientTestSuite) TestLatestRelease_Cancelled() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.client.LatestRelease(ctx, "owner/repo")
	s.Require().Error(err)
	s.Equal(errors.CodeCanceled, errors.GetCode(err))
}

func (s *ClientTestSuite) TestLatestRelease_Timeout() {
	release := make(chan struct{})
	defer close(release)
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}

	client, err := github.New(&github.Config{
		BaseURL:    s.server.URL,
		HTTPClient: s.server.Client(),
		Timeout:    50 * time.Millisecond,
	})
	s.Require().NoError(err)

	_, err = client.LatestRelease(s.ctx, "owner/repo")
	s.Require().Error(err)
	s.True(errors.IsDeadlineExceeded(err), "unexpected code %s", errors.GetCode(err))
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func TestNew(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     *github.Config
		wantErr bool
	}{
		{"nil config uses defaults", nil, false},
		{"https base", &github.Config{BaseURL: "https://ghe.example.com/api/v3"}, false},
		{"plain http rejected", &github.Config{BaseURL: "http://api.github.com"}, true},
		{"missing host", &github.Config{BaseURL: "https://"}, true},
		{"negative timeout", &github.Config{Timeout: -time.Second}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client, err := github.New(tc.cfg)
			if tc.wantErr {
				assert.True(t, errors.IsInvalidArgument(err))
				assert.Nil(t, client)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}
