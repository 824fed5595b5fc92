package update

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

const (
	// DefaultURL is the release metadata endpoint queried at startup.
	DefaultURL     = "https://api.github.com/repos/TechLogicals/LinuxToolbox/releases/latest"
	DefaultTimeout = 5 * time.Second
	userAgent      = "toolbox"
)

// Checker compares the running version against the latest published release.
type Checker struct {
	URL     string
	Current string
	Client  *http.Client
}

// NewChecker returns a checker with a bounded HTTP client.
func NewChecker(url, current string) *Checker {
	return NewCheckerWithClient(url, current, &http.Client{Timeout: DefaultTimeout})
}

// NewCheckerWithClient allows tests to supply a client.
func NewCheckerWithClient(url, current string, client *http.Client) *Checker {
	if url == "" {
		url = DefaultURL
	}
	return &Checker{URL: url, Current: current, Client: client}
}

type release struct {
	TagName string `json:"tag_name"`
}

// Latest returns the newer release version without a leading "v", or "" when
// no update is available. Any failure yields "" along with the error.
func (c *Checker) Latest(ctx context.Context) (string, error) {
	current := canonical(c.Current)
	if !semver.IsValid(current) {
		return "", fmt.Errorf("invalid current version %q", c.Current)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/vnd.github+json")

	client := c.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch release: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch release: unexpected status %d", resp.StatusCode)
	}

	var rel release
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return "", fmt.Errorf("decode release: %w", err)
	}
	latest := canonical(rel.TagName)
	if !semver.IsValid(latest) {
		return "", fmt.Errorf("invalid release tag %q", rel.TagName)
	}
	if semver.Compare(latest, current) > 0 {
		return strings.TrimPrefix(latest, "v"), nil
	}
	return "", nil
}

func canonical(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	return "v" + strings.TrimPrefix(v, "v")
}
