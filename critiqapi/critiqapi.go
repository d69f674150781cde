package critiqapi

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

// A Client allows consuming the critiq review-platform API
type Client struct {
	// Token is the bearer credential attached to authenticated
	// requests. Empty for anonymous clients.
	Token      string
	HTTPClient *http.Client
	BaseURL    string
	UserAgent  string
}

// ClientWithToken creates a new critiq API client with a given bearer token.
// An empty token yields an anonymous client, fine for public endpoints.
func ClientWithToken(token string) *Client {
	c := &Client{
		Token:      token,
		HTTPClient: http.DefaultClient,
		UserAgent:  "go-critiq",
	}
	c.SetServer("https://api.critiq.games")
	return c
}

// SetServer allows changing the server to which we're making API
// requests (which defaults to the reference critiq server)
func (c *Client) SetServer(server string) *Client {
	c.BaseURL = strings.TrimRight(server, "/")
	return c
}

// Do performs a request (any method). It takes care of bearer
// authentication and sets the proper user agent.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	if c.Token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.Token))
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "application/json")

	return c.HTTPClient.Do(req)
}

// Get performs an HTTP GET request to the API
func (c *Client) Get(url string) (*http.Response, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	return c.Do(req)
}

// GetResponse performs an HTTP GET request and parses the API response.
func (c *Client) GetResponse(url string, dst interface{}, fallback string) error {
	res, err := c.Get(url)
	if err != nil {
		return errors.WithStack(err)
	}

	err = ParseAPIResponse(dst, res, fallback)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// RequestResponse performs a request with a pre-encoded body and
// parses the API response. The body may be nil.
func (c *Client) RequestResponse(method string, url string, body io.Reader, contentType string, dst interface{}, fallback string) error {
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return errors.WithStack(err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	res, err := c.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}

	err = ParseAPIResponse(dst, res, fallback)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// MakePath crafts an API url from our configured base URL
func (c *Client) MakePath(format string, a ...interface{}) string {
	return c.MakeValuesPath(nil, format, a...)
}

// MakeValuesPath crafts an API url from our configured base URL
func (c *Client) MakeValuesPath(values url.Values, format string, a ...interface{}) string {
	base := strings.Trim(c.BaseURL, "/")
	subPath := strings.Trim(fmt.Sprintf(format, a...), "/")
	path := fmt.Sprintf("%s/%s", base, subPath)
	if len(values) == 0 {
		return path
	}
	return fmt.Sprintf("%s?%s", path, values.Encode())
}
