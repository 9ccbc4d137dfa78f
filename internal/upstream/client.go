// Package upstream talks to the external stats aggregation API, which
// normalizes third-party platform data behind one GET per platform and handle.
package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"portfolio/internal/contrib"
	"portfolio/internal/projects"
	"portfolio/internal/stats"

	"go.uber.org/zap"
)

const maxBodySize = 8 << 20

var ErrUnexpectedPayload = errors.New("unexpected upstream payload")

// StatusError is returned for non-2xx upstream responses.
type StatusError struct {
	Status int
	URL    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream %s: status %d", e.URL, e.Status)
}

type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.SugaredLogger
}

func New(baseURL string, timeout time.Duration, log *zap.SugaredLogger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log.Named("upstream"),
	}
}

func (c *Client) LeetCode(ctx context.Context, handle string) (*stats.LeetCodePayload, error) {
	var envelope struct {
		Message *stats.LeetCodePayload `json:"message"`
	}
	if err := c.getJSON(ctx, &envelope, "leetcode", handle); err != nil {
		return nil, err
	}
	if envelope.Message == nil {
		return nil, fmt.Errorf("leetcode %s: %w", handle, ErrUnexpectedPayload)
	}
	return envelope.Message, nil
}

func (c *Client) CodeChef(ctx context.Context, handle string) (*stats.CodeChefPayload, error) {
	var payload stats.CodeChefPayload
	if err := c.getJSON(ctx, &payload, "codechef", handle); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *Client) Codeforces(ctx context.Context, handle string) (*stats.CodeforcesPayload, error) {
	var payload stats.CodeforcesPayload
	if err := c.getJSON(ctx, &payload, "codeforces", handle); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Contributions lists the pull requests authored by a GitHub handle.
func (c *Client) Contributions(ctx context.Context, handle string) ([]contrib.Record, error) {
	var elems []json.RawMessage
	if err := c.getJSON(ctx, &elems, "githubcontributions", handle); err != nil {
		return nil, err
	}

	records, skipped := decodeContributions(elems)
	if skipped > 0 {
		c.log.Warnw("skipped malformed contributions", "handle", handle, "skipped", skipped)
	}
	return records, nil
}

func (c *Client) Projects(ctx context.Context, handle string) (*projects.Payload, error) {
	var payload projects.Payload
	if err := c.getJSON(ctx, &payload, "githubProject", handle); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *Client) getJSON(ctx context.Context, into any, segments ...string) error {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	target := c.baseURL + "/" + strings.Join(escaped, "/")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", target, err)
	}
	defer resp.Body.Close()

	c.log.Debugw("upstream request",
		"url", target,
		"status", resp.StatusCode,
		"duration_ms", float64(time.Since(start).Microseconds())/1000.0,
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return &StatusError{Status: resp.StatusCode, URL: target}
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(into); err != nil {
		return fmt.Errorf("decode %s: %w: %v", target, ErrUnexpectedPayload, err)
	}
	return nil
}
