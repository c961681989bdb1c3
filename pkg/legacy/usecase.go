package legacy

import (
	"context"
	"strings"
)

// TokenGenerator abstracts session token creation (e.g., JWT), keeping the
// use case framework-agnostic.
type TokenGenerator interface {
	Generate(ctx context.Context, username string) (string, error)
}

// AuthResult carries the outcome of a scripted login or registration. The
// raw output is passed through because the UI surfaces the legacy
// program's own wording.
type AuthResult struct {
	Success   bool
	RawOutput string
	Token     string
}

// AuthUseCase describes authentication via the legacy executable.
type AuthUseCase interface {
	Login(ctx context.Context, username, password string) (AuthResult, error)
	Register(ctx context.Context, username, password string) (AuthResult, error)
}

type authService struct {
	runner Runner
	tokens TokenGenerator
}

// NewAuthService returns the default AuthUseCase implementation.
func NewAuthService(runner Runner, tokens TokenGenerator) AuthUseCase {
	return &authService{runner: runner, tokens: tokens}
}

// Menu options of the legacy program: "1" log in, "2" create account,
// "10" exit from the main menu after the attempt.
func loginScript(username, password string) []string {
	return []string{"1", username, password, "10"}
}

func registerScript(username, password string) []string {
	return []string{"2", username, password, "10"}
}

func (s *authService) Login(ctx context.Context, username, password string) (AuthResult, error) {
	out, err := s.runner.Run(ctx, loginScript(username, password))
	if err != nil {
		return AuthResult{}, err
	}
	// The exact phrase the program prints on success; matched verbatim.
	success := strings.Contains(strings.ToLower(out), "successfully logged in")
	return s.result(ctx, username, out, success)
}

func (s *authService) Register(ctx context.Context, username, password string) (AuthResult, error) {
	out, err := s.runner.Run(ctx, registerScript(username, password))
	if err != nil {
		return AuthResult{}, err
	}
	lower := strings.ToLower(out)
	success := strings.Contains(lower, "account created") ||
		strings.Contains(lower, "successfully created")
	return s.result(ctx, username, out, success)
}

func (s *authService) result(ctx context.Context, username, out string, success bool) (AuthResult, error) {
	res := AuthResult{Success: success, RawOutput: out}
	if !success {
		return res, nil
	}
	token, err := s.tokens.Generate(ctx, username)
	if err != nil {
		return AuthResult{}, err
	}
	res.Token = token
	return res, nil
}
