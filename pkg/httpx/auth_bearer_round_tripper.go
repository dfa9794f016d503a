package httpx

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

var ErrTokenRejected = errors.New("bearer token rejected")

type authenticator interface {
	Authenticate(context.Context) error
	BearerToken() string
}

type AuthBearerRoundTripper struct {
	next          http.RoundTripper
	authenticator authenticator
}

func NewAuthBearerRoundTripper(
	next http.RoundTripper,
	authenticator authenticator,
) AuthBearerRoundTripper {
	return AuthBearerRoundTripper{
		next:          next,
		authenticator: authenticator,
	}
}

func (rt AuthBearerRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if rt.authenticator.BearerToken() == "" {
		if err := rt.authenticator.Authenticate(req.Context()); err != nil {
			return nil, fmt.Errorf("authenticator.Authenticate: %w", err)
		}
	}

	resp, err := rt.next.RoundTrip(rt.withAuthorization(req))
	if err != nil {
		return nil, fmt.Errorf("next.RoundTrip: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		resp.Body.Close()

		if err = rt.authenticator.Authenticate(req.Context()); err != nil {
			return nil, fmt.Errorf("authenticator.Authenticate: %w", err)
		}

		return rt.next.RoundTrip(rt.withAuthorization(req)) //nolint:wrapcheck
	}

	return resp, nil
}

func (rt AuthBearerRoundTripper) withAuthorization(req *http.Request) *http.Request {
	req = req.Clone(req.Context())
	req.Header.Set("Authorization", "Bearer "+rt.authenticator.BearerToken())

	return req
}

// StaticToken is an authenticator for a token issued out of band. It cannot
// renew itself, so a 401 ends with ErrTokenRejected.
type StaticToken string

func (t StaticToken) Authenticate(context.Context) error {
	return ErrTokenRejected
}

func (t StaticToken) BearerToken() string {
	return string(t)
}
