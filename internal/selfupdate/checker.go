package selfupdate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

var (
	ErrDevBuild = errors.New("cannot check updates for a development build")
)

const (
	defaultAPIBaseURL = "https://api.github.com"
	defaultOwner      = "quizterm"
	defaultRepo       = "quizterm"
	defaultTimeout    = 30 * time.Second
)

// Checker queries GitHub releases for newer quizterm versions.
type Checker struct {
	client     *http.Client
	apiBaseURL string
	owner      string
	repo       string
}

// Option configures a Checker.
type Option func(*Checker)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Checker) {
		c.client.Timeout = d
	}
}

// WithAPIBaseURL overrides the GitHub API base URL.
func WithAPIBaseURL(url string) Option {
	return func(c *Checker) {
		c.apiBaseURL = url
	}
}

// NewChecker creates a Checker with defaults applied.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		client:     &http.Client{Timeout: defaultTimeout},
		apiBaseURL: defaultAPIBaseURL,
		owner:      defaultOwner,
		repo:       defaultRepo,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CheckInput identifies the running build.
type CheckInput struct {
	Version string
}

// CheckResult describes the latest published release relative to the
// running build.
type CheckResult struct {
	CurrentVersion  string
	LatestVersion   string
	UpdateAvailable bool
	ReleaseURL      string
}

// releaseResponse mirrors the fields we need from the GitHub API.
type releaseResponse struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// Check fetches the latest release tag and compares it to the running
// version. Dev builds ("(devel)") refuse the check.
func (c *Checker) Check(ctx context.Context, input *CheckInput) (*CheckResult, error) {
	if input.Version == "(devel)" {
		return nil, ErrDevBuild
	}

	current := normalizeVersion(input.Version)
	if !semver.IsValid(current) {
		return nil, fmt.Errorf("current version %q is not valid semver", input.Version)
	}

	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest",
		strings.TrimRight(c.apiBaseURL, "/"), c.owner, c.repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch latest release: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GitHub API returned status %d", resp.StatusCode)
	}

	var release releaseResponse
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("decode release: %w", err)
	}

	latest := normalizeVersion(release.TagName)
	if !semver.IsValid(latest) {
		return nil, fmt.Errorf("release tag %q is not valid semver", release.TagName)
	}

	return &CheckResult{
		CurrentVersion:  current,
		LatestVersion:   latest,
		UpdateAvailable: semver.Compare(latest, current) > 0,
		ReleaseURL:      release.HTMLURL,
	}, nil
}

// normalizeVersion ensures the "v" prefix semver.Compare expects.
func normalizeVersion(v string) string {
	if v != "" && !strings.HasPrefix(v, "v") {
		return "v" + v
	}
	return v
}
