// Package dealsapi клиент REST API сделок: GET /deals и GET /deals/{id}.
package dealsapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"git.appkode.ru/pub/go/failure"
	jsoniter "github.com/json-iterator/go"

	"deal_feed/internal/domain"
	"deal_feed/internal/domain/entity"
	"deal_feed/pkg/contextx"
	"deal_feed/pkg/errcodes"
	"deal_feed/pkg/httpx"
	"deal_feed/pkg/logx"
	"deal_feed/pkg/lox"
	"deal_feed/pkg/rest"
)

var (
	json   = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip
	logger = contextx.LoggerFromContextOrDefault           //nolint:gochecknoglobals
)

const (
	TraceIDHeader = "X-Trace-Id"

	defaultTimeout = 10 * time.Second
	maxErrorBody   = 4 << 10
)

type Config struct {
	BaseURL       string
	Token         string
	Timeout       time.Duration
	LogBodyMaxLen int
	MaskFields    []string
}

type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

func NewClient(cfg Config) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("url.Parse: %w", err)
	}

	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("dealsapi.NewClient: base url %q must be absolute", cfg.BaseURL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	var transport http.RoundTripper = httpx.NewLoggingRoundTripper(
		http.DefaultTransport,
		httpx.WithLogFieldMaxLen(cfg.LogBodyMaxLen),
		httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker(cfg.MaskFields...)),
		httpx.WithTraceIDHeader(TraceIDHeader),
	)

	if cfg.Token != "" {
		transport = httpx.NewAuthBearerRoundTripper(transport, httpx.StaticToken(cfg.Token))
	}

	return &Client{
		baseURL: base,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
	}, nil
}

// ListDeals одна страница ленты в порядке API.
func (c *Client) ListDeals(ctx context.Context, skip, take int) ([]entity.Deal, error) {
	u := c.baseURL.JoinPath("deals")

	q := u.Query()
	q.Set("skip", strconv.Itoa(skip))
	q.Set("take", strconv.Itoa(take))
	u.RawQuery = q.Encode()

	var page rest.DealsPage

	if err := c.get(ctx, u, &page, errcodes.UpstreamUnavailable); err != nil {
		return nil, fmt.Errorf("c.get: %w", err)
	}

	logger(ctx).Debug("deals page received",
		slog.Int(logx.FieldSkip, skip),
		slog.Int(logx.FieldTake, take),
		slog.Int(logx.FieldTotal, len(page.Deals)),
	)

	return lox.Map(page.Deals, toEntity), nil
}

func (c *Client) GetDeal(ctx context.Context, id string) (entity.Deal, error) {
	u := c.baseURL.JoinPath("deals", url.PathEscape(id))

	var envelope rest.DealEnvelope

	if err := c.get(ctx, u, &envelope, errcodes.DealNotFound); err != nil {
		return entity.Deal{}, fmt.Errorf("c.get: %w", err)
	}

	if envelope.Deal == nil {
		return entity.Deal{}, domain.NewError(errcodes.InvalidUpstreamResponse, "response has no deal")
	}

	return toEntity(*envelope.Deal), nil
}

func (c *Client) get(ctx context.Context, u *url.URL, dest any, notFound failure.ErrorCode) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, httpx.ErrTokenRejected) {
			return domain.WrapError(err, errcodes.Unauthorized, "deals api rejected token")
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return domain.WrapError(err, errcodes.TimeoutExceeded, "deals api timeout")
		}
		return domain.WrapError(err, errcodes.UpstreamUnavailable, "deals api request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return statusError(resp, notFound)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return domain.WrapError(err, errcodes.InvalidUpstreamResponse, "decode deals api response")
	}

	return nil
}

func statusError(resp *http.Response, notFound failure.ErrorCode) error {
	message := fmt.Sprintf("deals api status %d", resp.StatusCode)

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var apiErr rest.Error
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Message != "" {
		message += ": " + apiErr.Message
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return domain.NewError(notFound, message)
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.NewError(errcodes.Unauthorized, message)
	default:
		return domain.NewError(errcodes.UpstreamUnavailable, message)
	}
}
