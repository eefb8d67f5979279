// Package update tells the user whether a newer release has been published.
// Checks are informational and never fail the caller.
package update

//go:generate mockgen -destination=mock/mock_checker.go -package=updatemock github.com/KirkDiggler/osrs-random/internal/orchestrators/update Checker

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	goversion "github.com/hashicorp/go-version"

	"github.com/KirkDiggler/osrs-random/internal/clients/github"
	"github.com/KirkDiggler/osrs-random/internal/errors"
	releasecache "github.com/KirkDiggler/osrs-random/internal/repositories/release_cache"
)

const (
	// DefaultRepo is where releases are published
	DefaultRepo = "KirkDiggler/osrs-random"

	// DefaultTimeout bounds the whole check including cache access
	DefaultTimeout = 5 * time.Second

	// DevelopmentVersion is the version of builds without release ldflags
	DevelopmentVersion = "dev"
)

// Checker compares the running version with the latest release
type Checker interface {
	Check(ctx context.Context, input *CheckInput) *CheckOutput
}

// Config holds the dependencies for the update checker
type Config struct {
	Client github.Client

	// Cache is optional; without it every check goes to the network
	Cache    releasecache.Repository
	CacheTTL time.Duration

	// Repo defaults to DefaultRepo
	Repo string

	// Timeout defaults to DefaultTimeout
	Timeout time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Repo != "" {
		if err := github.ValidateRepo(c.Repo); err != nil {
			vb.InvalidField("Repo", errors.GetMessage(err))
		}
	}
	if c.CacheTTL < 0 {
		vb.Field("CacheTTL", "must not be negative")
	}
	if c.Timeout < 0 {
		vb.Field("Timeout", "must not be negative")
	}

	return vb.Build()
}

type checker struct {
	client   github.Client
	cache    releasecache.Repository
	cacheTTL time.Duration
	repo     string
	timeout  time.Duration
}

// New creates an update checker
func New(cfg *Config) (Checker, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	repo := cfg.Repo
	if repo == "" {
		repo = DefaultRepo
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &checker{
		client:   cfg.Client,
		cache:    cfg.Cache,
		cacheTTL: cfg.CacheTTL,
		repo:     repo,
		timeout:  timeout,
	}, nil
}

// Check looks up the latest release. Failures, including panics in the
// collaborators, come back as StatusCheckFailed.
func (c *checker) Check(ctx context.Context, input *CheckInput) (output *CheckOutput) {
	current := ""
	if input != nil {
		current = strings.TrimSpace(input.CurrentVersion)
	}

	defer func() {
		if r := recover(); r != nil {
			slog.Error("Update check panicked", "panic", r)
			output = failed(current, fmt.Sprintf("internal error: %v", r))
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	release, fromCache, err := c.latest(ctx)
	if err != nil {
		slog.Debug("Update check failed", "repo", c.repo, "error", err)
		return failed(current, reasonFor(err))
	}

	latest, err := goversion.NewVersion(release.TagName)
	if err != nil {
		return failed(current, fmt.Sprintf("latest release tag %q is not a version", release.TagName))
	}

	output = &CheckOutput{
		Status:     StatusUpToDate,
		Current:    current,
		Latest:     release.Version(),
		ReleaseURL: release.HTMLURL,
		FromCache:  fromCache,
	}

	running, ok := parseRunning(current)
	if !ok {
		output.Development = true
		return output
	}

	if running.LessThan(latest) {
		output.Status = StatusUpdateAvailable
	}

	slog.Debug("Update check complete",
		"current", current,
		"latest", output.Latest,
		"status", output.Status,
		"from_cache", fromCache,
	)

	return output
}

// latest returns the newest release, preferring a fresh cache entry
func (c *checker) latest(ctx context.Context) (*github.Release, bool, error) {
	if c.cache != nil {
		cached, err := c.cache.Get(ctx, releasecache.GetInput{Repo: c.repo})
		switch {
		case err == nil:
			return &cached.Entry.Release, true, nil
		case !errors.IsNotFound(err):
			slog.Debug("Release cache unavailable", "repo", c.repo, "error", err)
		}
	}

	release, err := c.client.LatestRelease(ctx, c.repo)
	if err != nil {
		return nil, false, err
	}
	if release == nil {
		return nil, false, errors.Internal("empty release response")
	}

	if c.cache != nil {
		_, err := c.cache.Put(ctx, releasecache.PutInput{
			Repo:    c.repo,
			Release: release,
			TTL:     c.cacheTTL,
		})
		if err != nil {
			slog.Warn("Failed to cache release", "repo", c.repo, "error", err)
		}
	}

	return release, false, nil
}

// parseRunning reports false for development builds: empty, "dev" or
// anything go-version cannot parse
func parseRunning(current string) (*goversion.Version, bool) {
	if current == "" || strings.EqualFold(current, DevelopmentVersion) {
		return nil, false
	}
	v, err := goversion.NewVersion(current)
	if err != nil {
		return nil, false
	}
	return v, true
}

func failed(current, reason string) *CheckOutput {
	return &CheckOutput{
		Status:  StatusCheckFailed,
		Current: current,
		Reason:  reason,
	}
}

func reasonFor(err error) string {
	switch {
	case errors.IsDeadlineExceeded(err):
		return "timed out contacting GitHub"
	case errors.GetCode(err) == errors.CodeCanceled:
		return "check cancelled"
	case errors.IsNotFound(err):
		return "no published releases"
	case errors.IsResourceExhausted(err):
		return "GitHub rate limit reached"
	case errors.IsUnavailable(err):
		return "GitHub is unreachable"
	default:
		return errors.GetMessage(err)
	}
}
