package coingecko_common

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

// buildURL safely combines a base URL with a path
func buildURL(baseURL, path string) string {
	baseURL = strings.TrimRight(baseURL, "/")
	trimmedPath := strings.TrimLeft(path, "/")

	return baseURL + "/" + trimmedPath
}

// CoingeckoRequestBuilder builds GET requests against CoinGecko-compatible endpoints.
// Query parameters are encoded in key order, so equal parameter sets always produce the same URL.
type CoingeckoRequestBuilder struct {
	baseURL    string
	httpMethod string
	apiPath    string
	params     url.Values
	userAgent  string
	headers    map[string]string
}

// NewCoingeckoRequestBuilder creates a new request builder for apiPath under baseURL
func NewCoingeckoRequestBuilder(baseURL, apiPath string) *CoingeckoRequestBuilder {
	return &CoingeckoRequestBuilder{
		baseURL:    baseURL,
		apiPath:    apiPath,
		httpMethod: http.MethodGet,
		params:     url.Values{},
		headers:    map[string]string{"Accept": "application/json"},
		userAgent:  DefaultUserAgent,
	}
}

// With sets a query parameter, replacing any previous value
func (rb *CoingeckoRequestBuilder) With(key, value string) *CoingeckoRequestBuilder {
	rb.params.Set(key, value)
	return rb
}

// WithIDs sets the comma separated ids parameter
func (rb *CoingeckoRequestBuilder) WithIDs(ids []string) *CoingeckoRequestBuilder {
	return rb.With("ids", strings.Join(ids, ","))
}

// WithCurrency adds vs_currency parameter
func (rb *CoingeckoRequestBuilder) WithCurrency(currency string) *CoingeckoRequestBuilder {
	if currency != "" {
		rb.params.Set("vs_currency", currency)
	}
	return rb
}

// WithHeader adds a custom HTTP header
func (rb *CoingeckoRequestBuilder) WithHeader(name, value string) *CoingeckoRequestBuilder {
	rb.headers[name] = value
	return rb
}

// WithUserAgent sets the User-Agent header
func (rb *CoingeckoRequestBuilder) WithUserAgent(userAgent string) *CoingeckoRequestBuilder {
	rb.userAgent = userAgent
	return rb
}

// Method returns the HTTP method of the request
func (rb *CoingeckoRequestBuilder) Method() string {
	return rb.httpMethod
}

// BuildURL builds the complete URL for the request
func (rb *CoingeckoRequestBuilder) BuildURL() string {
	fullPath := buildURL(rb.baseURL, rb.apiPath)

	queryString := rb.params.Encode()
	if queryString == "" {
		return fullPath
	}
	return fullPath + "?" + queryString
}

// Build creates an http.Request bound to ctx
func (rb *CoingeckoRequestBuilder) Build(ctx context.Context) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, rb.httpMethod, rb.BuildURL(), nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", rb.userAgent)
	for key, value := range rb.headers {
		req.Header.Set(key, value)
	}

	return req, nil
}
