// Package identity talks to Firebase Authentication.
package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sahatech/clinic-seed/internal/config"
	"github.com/sahatech/clinic-seed/internal/seed"
	"golang.org/x/time/rate"
	"google.golang.org/api/googleapi"
	identitytoolkit "google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"
)

// Firebase Auth error codes returned in the REST error message
const (
	codeEmailExists     = "EMAIL_EXISTS"
	codeEmailNotFound   = "EMAIL_NOT_FOUND"
	codeInvalidPassword = "INVALID_PASSWORD"
	codeInvalidLogin    = "INVALID_LOGIN_CREDENTIALS"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// ToolkitService creates and signs in email/password accounts through the
// Identity Toolkit REST API, the same endpoints the web SDK uses.
type ToolkitService struct {
	svc     *identitytoolkit.Service
	limiter *rate.Limiter
}

// NewToolkitService authenticates with the project's web API key.
// Calls are throttled to stay under Firebase Auth's sign-up quota.
func NewToolkitService(ctx context.Context, fb config.Firebase, auth config.Auth, extra ...option.ClientOption) (*ToolkitService, error) {
	if fb.APIKey == "" {
		return nil, fmt.Errorf("%w: NEXT_PUBLIC_FIREBASE_API_KEY", config.ErrMissingSetting)
	}

	opts := []option.ClientOption{option.WithAPIKey(fb.APIKey)}
	if fb.AuthEmulatorHost != "" {
		opts = append(opts, option.WithEndpoint(
			"http://"+fb.AuthEmulatorHost+"/www.googleapis.com/identitytoolkit/v3/relyingparty/"))
	}

	svc, err := identitytoolkit.NewService(ctx, append(opts, extra...)...)
	if err != nil {
		return nil, fmt.Errorf("init identity toolkit: %w", err)
	}

	burst := auth.RateLimitBurst
	if burst < 1 {
		burst = 1
	}
	return &ToolkitService{
		svc:     svc,
		limiter: rate.NewLimiter(rate.Limit(auth.RateLimitPerSecond), burst),
	}, nil
}

// CreateAccount registers a new account and returns its uid.
// An already registered email yields seed.ErrEmailExists.
func (s *ToolkitService) CreateAccount(ctx context.Context, email, password string) (string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return "", err
	}

	resp, err := s.svc.Relyingparty.SignupNewUser(&identitytoolkit.IdentitytoolkitRelyingpartySignupNewUserRequest{
		Email:    email,
		Password: password,
	}).Context(ctx).Do()
	if err != nil {
		return "", translateError(err)
	}
	return resp.LocalId, nil
}

// SignIn verifies the password and returns the account's uid
func (s *ToolkitService) SignIn(ctx context.Context, email, password string) (string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return "", err
	}

	resp, err := s.svc.Relyingparty.VerifyPassword(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return "", translateError(err)
	}
	return resp.LocalId, nil
}

// translateError maps Firebase Auth error codes onto the sentinels callers branch on
func translateError(err error) error {
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return err
	}

	switch errorCode(gerr) {
	case codeEmailExists:
		return fmt.Errorf("%w: %s", seed.ErrEmailExists, gerr.Message)
	case codeEmailNotFound, codeInvalidPassword, codeInvalidLogin:
		return fmt.Errorf("%w: %s", ErrInvalidCredentials, gerr.Message)
	}
	return err
}

// errorCode extracts the leading code, e.g. "WEAK_PASSWORD : Password should be at least 6 characters"
func errorCode(gerr *googleapi.Error) string {
	msg := gerr.Message
	if msg == "" && len(gerr.Errors) > 0 {
		msg = gerr.Errors[0].Message
	}
	code, _, _ := strings.Cut(msg, " ")
	return code
}
