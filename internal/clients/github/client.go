// Package github looks up published releases through the GitHub REST API
package github

//go:generate mockgen -destination=mock/mock_client.go -package=githubmock github.com/KirkDiggler/osrs-random/internal/clients/github Client

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/KirkDiggler/osrs-random/internal/errors"
)

const (
	// DefaultBaseURL is the public GitHub API
	DefaultBaseURL = "https://api.github.com"

	// DefaultTimeout bounds a single release lookup
	DefaultTimeout = 5 * time.Second

	maxErrorBodyBytes   = 4096
	maxReleaseBodyBytes = 1 << 20
)

var repoPattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+/[A-Za-z0-9_.-]+$`)

// Release is the subset of a GitHub release the update check needs
type Release struct {
	TagName     string    `json:"tag_name"`
	Name        string    `json:"name"`
	HTMLURL     string    `json:"html_url"`
	PublishedAt time.Time `json:"published_at"`
}

// Version returns the tag without its leading "v"
func (r *Release) Version() string {
	return strings.TrimPrefix(r.TagName, "v")
}

// Client looks up releases
type Client interface {
	// LatestRelease returns the newest published release of owner/name
	LatestRelease(ctx context.Context, repo string) (*Release, error)
}

// Config configures the GitHub client
type Config struct {
	// BaseURL defaults to DefaultBaseURL and must be https
	BaseURL string

	// Timeout defaults to DefaultTimeout
	Timeout time.Duration

	// HTTPClient overrides the transport, mainly for tests
	HTTPClient *http.Client
}

// Validate checks the configuration
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.BaseURL != "" {
		parsed, err := url.Parse(c.BaseURL)
		switch {
		case err != nil:
			vb.InvalidField("BaseURL", err.Error())
		case !strings.EqualFold(parsed.Scheme, "https"):
			vb.InvalidField("BaseURL", "scheme must be https")
		case parsed.Host == "":
			vb.InvalidField("BaseURL", "host is required")
		}
	}
	if c.Timeout < 0 {
		vb.Field("Timeout", "must not be negative")
	}

	return vb.Build()
}

type client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a GitHub release client
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	// copy so the caller's client keeps its own timeout
	bounded := *httpClient
	bounded.Timeout = timeout

	return &client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &bounded,
	}, nil
}

// ValidateRepo checks that repo has the owner/name form
func ValidateRepo(repo string) error {
	if !repoPattern.MatchString(repo) {
		return errors.InvalidArgumentf("invalid repository format: %q", repo)
	}
	return nil
}

func (c *client) LatestRelease(ctx context.Context, repo string) (*Release, error) {
	if err := ValidateRepo(repo); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/repos/%s/releases/latest", c.baseURL, repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build release request")
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")

	slog.Debug("Fetching latest release", "repo", repo)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, errors.Wrap(ctxErr, "release lookup cancelled")
		}
		var urlErr *url.Error
		if stderrors.As(err, &urlErr) && urlErr.Timeout() {
			return nil, errors.WrapWithCode(err, errors.CodeDeadlineExceeded, "release lookup timed out")
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "release lookup failed")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, errors.Newf(errors.CodeFromHTTPStatus(resp.StatusCode),
			"github latest release: %s", resp.Status).
			WithMeta("status", resp.StatusCode).
			WithMeta("body", strings.TrimSpace(string(body)))
	}

	var release Release
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxReleaseBodyBytes)).Decode(&release); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to decode release")
	}
	if release.TagName == "" {
		return nil, errors.Internal("latest release has no tag_name")
	}

	return &release, nil
}
