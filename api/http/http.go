// Package http is the request gateway for the platform API. It turns a
// logical operation (verb, endpoint template, path parameters, body) into a
// normalized result, attaching the session bearer and surfacing every
// failure both as a notification and as a typed error.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fynlo/fynlo-go/api"
	"github.com/fynlo/fynlo-go/api/endpoints"
	"github.com/fynlo/fynlo-go/config"
	"github.com/fynlo/fynlo-go/notify"
	"github.com/fynlo/fynlo-go/session"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	contentType              = "application/json"
	errFailedToRead          = "failed to read response: %w"
	errFailedToCreateRequest = "failed to create request: %w"
	errFailedToMakeRequest   = "failed to make request: %w"
	errFailedToEncodeBody    = "failed to encode request body: %w"
	errFailedToDecodeBody    = "failed to decode response body: invalid json"
	headerContentType        = "Content-Type"
	headerUserAgent          = "User-Agent"

	maxBackoff = 30 * time.Second
)

type Caller interface {
	Get(ctx context.Context, template string, params endpoints.Params) (api.Result, error)
	Post(ctx context.Context, template string, params endpoints.Params, body any) (api.Result, error)
	Put(ctx context.Context, template string, params endpoints.Params, body any) (api.Result, error)
	Patch(ctx context.Context, template string, params endpoints.Params, body any) (api.Result, error)
	Delete(ctx context.Context, template string, params endpoints.Params) (api.Result, error)
}

type Gateway struct {
	client   *http.Client
	config   config.Config
	tokens   session.TokenSource
	notifier notify.Notifier
}

// Ensure Gateway implements Caller interface
var _ Caller = &Gateway{}

func New(cfg config.Config, tokens session.TokenSource, notifier notify.Notifier) *Gateway {
	timeout := cfg.Timeout()
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if notifier == nil {
		notifier = notify.NewLogNotifier()
	}

	return &Gateway{
		client:   &http.Client{Timeout: timeout},
		config:   cfg,
		tokens:   tokens,
		notifier: notifier,
	}
}

type CallerFactory func(cfg config.Config, tokens session.TokenSource, notifier notify.Notifier) Caller

func RealCallerFactory(cfg config.Config, tokens session.TokenSource, notifier notify.Notifier) Caller {
	return New(cfg, tokens, notifier)
}

func (g *Gateway) Get(ctx context.Context, template string, params endpoints.Params) (api.Result, error) {
	return g.doRequest(ctx, http.MethodGet, template, params, nil)
}

func (g *Gateway) Post(ctx context.Context, template string, params endpoints.Params, body any) (api.Result, error) {
	return g.doRequest(ctx, http.MethodPost, template, params, body)
}

func (g *Gateway) Put(ctx context.Context, template string, params endpoints.Params, body any) (api.Result, error) {
	return g.doRequest(ctx, http.MethodPut, template, params, body)
}

func (g *Gateway) Patch(ctx context.Context, template string, params endpoints.Params, body any) (api.Result, error) {
	return g.doRequest(ctx, http.MethodPatch, template, params, body)
}

func (g *Gateway) Delete(ctx context.Context, template string, params endpoints.Params) (api.Result, error) {
	return g.doRequest(ctx, http.MethodDelete, template, params, nil)
}

// doRequest drives the attempt loop. Transport failures, 429 and 5xx are
// retried with exponential backoff up to the configured attempt count; the
// notification for a failed call fires exactly once, after retries are
// exhausted.
func (g *Gateway) doRequest(ctx context.Context, method, template string, params endpoints.Params, body any) (api.Result, error) {
	url := g.buildURL(template, params)
	requestID := uuid.NewString()
	sugar := zap.S().With("request_id", requestID, "method", method, "url", url)

	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return failure(err.Error()), fmt.Errorf(errFailedToEncodeBody, err)
		}
	}

	retries := g.config.RetryAttempts
	for attempt := 0; ; attempt++ {
		sugar.Debugw("sending request", "attempt", attempt+1)

		response, err := g.send(ctx, method, url, payload)
		if err != nil {
			if attempt < retries && ctx.Err() == nil {
				sugar.Warnw("request failed, retrying", "attempt", attempt+1, "error", err)
				if waitErr := g.backoff(ctx, attempt); waitErr == nil {
					continue
				}
			}
			sugar.Errorw("request failed", "error", err)
			g.notifier.Notify("Connection Error",
				"Unable to reach Fynlo. Check your connection and try again.",
				notify.SeverityError)
			return failure(err.Error()), fmt.Errorf(errFailedToMakeRequest, err)
		}

		if response.status < 200 || response.status >= 300 {
			if retryableStatus(response.status) && attempt < retries {
				sugar.Warnw("retryable status, retrying", "attempt", attempt+1, "status", response.status)
				if waitErr := g.backoff(ctx, attempt); waitErr == nil {
					continue
				}
			}
			message := errorMessage(response.body)
			sugar.Errorw("request failed", "status", response.status, "error", message)
			g.notifyStatus(response.status)

			statusErr := &api.Error{StatusCode: response.status, Message: message}
			return failure(statusErr.Error()), statusErr
		}

		sugar.Debugw("request succeeded", "status", response.status, "attempts", attempt+1)
		return g.decode(response)
	}
}

type rawResponse struct {
	status      int
	contentType string
	body        []byte
}

func (g *Gateway) send(ctx context.Context, method, url string, payload []byte) (*rawResponse, error) {
	req, err := g.newRequest(ctx, method, url, payload)
	if err != nil {
		return nil, fmt.Errorf(errFailedToCreateRequest, err)
	}

	response, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf(errFailedToRead, err)
	}

	return &rawResponse{
		status:      response.StatusCode,
		contentType: response.Header.Get(headerContentType),
		body:        body,
	}, nil
}

func (g *Gateway) newRequest(ctx context.Context, method, url string, payload []byte) (*http.Request, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, err
	}

	// Never send an empty or expired bearer; omit the header instead.
	if token, ok := g.tokens.AccessToken(); ok {
		req.Header.Set(g.config.AuthHeader, g.config.AuthTokenPrefix+token)
	}
	req.Header.Set(headerContentType, contentType)
	if g.config.UserAgent != "" {
		req.Header.Set(headerUserAgent, g.config.UserAgent)
	}

	return req, nil
}

// decode normalizes a successful response. JSON bodies are kept raw for the
// caller to unmarshal into a typed value; anything else comes back as text.
func (g *Gateway) decode(response *rawResponse) (api.Result, error) {
	if strings.Contains(response.contentType, contentType) {
		if !json.Valid(response.body) {
			return failure(errFailedToDecodeBody), fmt.Errorf(errFailedToDecodeBody)
		}
		return api.Result{Data: json.RawMessage(response.body), Success: true}, nil
	}
	return api.Result{Data: string(response.body), Success: true}, nil
}

func (g *Gateway) buildURL(template string, params endpoints.Params) string {
	base := strings.TrimSuffix(g.config.BaseURL, "/")
	return fmt.Sprintf("%s/%s%s", base, g.config.APIVersion, endpoints.Resolve(template, params))
}

func (g *Gateway) backoff(ctx context.Context, attempt int) error {
	delay := g.config.RetryDelay() * (1 << attempt)
	if delay > maxBackoff {
		delay = maxBackoff
	}
	if delay <= 0 {
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (g *Gateway) notifyStatus(status int) {
	switch {
	case status == http.StatusUnauthorized:
		g.notifier.Notify("Session Expired",
			"Your session has expired. Please sign in again.", notify.SeverityWarning)
	case status == http.StatusForbidden:
		g.notifier.Notify("Access Denied",
			"You do not have permission to perform this action.", notify.SeverityError)
	case status == http.StatusNotFound:
		g.notifier.Notify("Not Found",
			"The requested resource could not be found.", notify.SeverityWarning)
	case status == http.StatusTooManyRequests:
		g.notifier.Notify("Rate Limited",
			"Too many requests. Please slow down and try again.", notify.SeverityWarning)
	case status >= http.StatusInternalServerError:
		g.notifier.Notify("Server Error",
			"Something went wrong on our side. Please try again later.", notify.SeverityError)
	default:
		g.notifier.Notify("Request Failed",
			"The request could not be completed.", notify.SeverityError)
	}
}

func retryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}

// errorMessage pulls the server's error message out of a failure body, if
// the body follows the platform's error shape.
func errorMessage(body []byte) string {
	var errorData api.ErrorResponse
	if err := json.Unmarshal(body, &errorData); err == nil && errorData.Error.Message != "" {
		return errorData.Error.Message
	}
	return ""
}

func failure(message string) api.Result {
	return api.Result{Error: message, Success: false}
}
