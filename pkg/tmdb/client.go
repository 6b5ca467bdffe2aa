package tmdb

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

var (
	// ErrNotConfigured no API key was provided
	ErrNotConfigured = errors.New("tmdb: api key not configured")
	// ErrNotFound TMDB answered 404
	ErrNotFound = errors.New("tmdb: resource not found")
)

// StatusError non-2xx answer other than 404
type StatusError struct {
	Message    string
	StatusCode int
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("tmdb: unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("tmdb: unexpected status %d: %s", e.StatusCode, e.Message)
}

// Config client settings
type Config struct {
	APIKey   string
	BaseURL  string
	Language string
	Timeout  time.Duration
}

// Client read-only TMDB v3 client
type Client struct {
	http     *resty.Client
	apiKey   string
	language string
}

// NewClient creates a TMDB client. A v4 read access token (a JWT) is sent as a
// bearer token, a v3 key as the api_key query parameter.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	language := cfg.Language
	if language == "" {
		language = "ko-KR"
	}

	httpClient := resty.New().
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	if isReadAccessToken(cfg.APIKey) {
		httpClient.SetAuthToken(cfg.APIKey)
	} else if cfg.APIKey != "" {
		httpClient.SetQueryParam("api_key", cfg.APIKey)
	}

	return &Client{
		http:     httpClient,
		apiKey:   cfg.APIKey,
		language: language,
	}
}

// Enabled reports whether an API key is configured
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// Language default response language
func (c *Client) Language() string {
	return c.language
}

// Popular GET /movie/popular
func (c *Client) Popular(ctx context.Context, page int, language string) (*Page, error) {
	var result Page
	err := c.get(ctx, "/movie/popular", map[string]string{
		"page":     strconv.Itoa(NormalizePage(page)),
		"language": c.lang(language),
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Search GET /search/movie
func (c *Client) Search(ctx context.Context, query string, page int, language string) (*Page, error) {
	var result Page
	err := c.get(ctx, "/search/movie", map[string]string{
		"query":         query,
		"page":          strconv.Itoa(NormalizePage(page)),
		"language":      c.lang(language),
		"include_adult": "false",
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Movie GET /movie/{id}
func (c *Client) Movie(ctx context.Context, id int64, language string) (*MovieDetail, error) {
	var result MovieDetail
	err := c.get(ctx, "/movie/"+strconv.FormatInt(id, 10), map[string]string{
		"language": c.lang(language),
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) get(ctx context.Context, path string, params map[string]string, result interface{}) error {
	if !c.Enabled() {
		return ErrNotConfigured
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(result).
		SetError(&apiError{}).
		Get(path)
	if err != nil {
		return fmt.Errorf("tmdb: GET %s: %w", path, err)
	}

	if resp.IsError() {
		if resp.StatusCode() == http.StatusNotFound {
			return ErrNotFound
		}
		statusErr := &StatusError{StatusCode: resp.StatusCode()}
		if apiErr, ok := resp.Error().(*apiError); ok && apiErr != nil {
			statusErr.Message = apiErr.StatusMessage
		}
		return statusErr
	}
	return nil
}

func (c *Client) lang(language string) string {
	if language == "" {
		return c.language
	}
	return language
}

// MaxPage TMDB serves at most 500 pages of any listing
const MaxPage = 500

// NormalizePage clamps page into 1..MaxPage
func NormalizePage(page int) int {
	switch {
	case page < 1:
		return 1
	case page > MaxPage:
		return MaxPage
	default:
		return page
	}
}

func isReadAccessToken(key string) bool {
	return strings.HasPrefix(key, "eyJ") && strings.Count(key, ".") == 2
}
