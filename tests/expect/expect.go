// Package expect provides pty-driven testing utilities using go-expect.
//
// It wraps the Netflix go-expect library to drive the pokedex binary
// through a pseudo-terminal, which is the only way to cover the
// interactive picker and the terminal-detection paths end to end.
package expect

import (
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"time"

	expect "github.com/Netflix/go-expect"
)

// Key constants for special keys (ANSI escape sequences)
const (
	KeyUp     = "\x1b[A"
	KeyDown   = "\x1b[B"
	KeyEnter  = "\r"
	KeyEscape = "\x1b"
	KeyCtrlC  = "\x03"
)

// Session wraps go-expect for interactive testing of a single
// pokedex invocation.
type Session struct {
	Console *expect.Console
	Timeout time.Duration
	cmd     *exec.Cmd
}

// SessionOption configures a Session.
type SessionOption func(*sessionConfig)

type sessionConfig struct {
	timeout    time.Duration
	env        []string
	showOutput bool
}

// WithTimeout sets the default timeout for expect operations.
func WithTimeout(d time.Duration) SessionOption {
	return func(c *sessionConfig) {
		c.timeout = d
	}
}

// WithEnv adds environment variables to the session.
func WithEnv(env ...string) SessionOption {
	return func(c *sessionConfig) {
		c.env = append(c.env, env...)
	}
}

// WithOutput enables output to stdout for debugging.
func WithOutput(show bool) SessionOption {
	return func(c *sessionConfig) {
		c.showOutput = show
	}
}

// NewSession starts the pokedex binary on a fresh pty with the given
// arguments. The binary is resolved from PATH.
func NewSession(args []string, opts ...SessionOption) (*Session, error) {
	cfg := &sessionConfig{
		timeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	binPath, err := exec.LookPath("pokedex")
	if err != nil {
		return nil, fmt.Errorf("pokedex binary not found: %w", err)
	}

	var consoleOpts []expect.ConsoleOpt
	consoleOpts = append(consoleOpts, expect.WithDefaultTimeout(cfg.timeout))
	if cfg.showOutput {
		consoleOpts = append(consoleOpts, expect.WithStdout(os.Stdout))
	}

	console, err := expect.NewConsole(consoleOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create console: %w", err)
	}

	cmd := exec.Command(binPath, args...) //nolint:gosec // G204: binPath is from test config
	cmd.Stdin = console.Tty()
	cmd.Stdout = console.Tty()
	cmd.Stderr = console.Tty()

	cmd.Env = os.Environ()
	cmd.Env = append(cmd.Env, cfg.env...)
	// Ensure TERM is set for proper terminal handling
	cmd.Env = append(cmd.Env, "TERM=xterm-256color")

	if err := cmd.Start(); err != nil {
		console.Close()
		return nil, fmt.Errorf("failed to start pokedex: %w", err)
	}

	return &Session{
		Console: console,
		Timeout: cfg.timeout,
		cmd:     cmd,
	}, nil
}

// Send sends text to the pty without a newline.
func (s *Session) Send(text string) error {
	_, err := s.Console.Send(text)
	return err
}

// SendKey sends a special key (use Key* constants).
func (s *Session) SendKey(key string) error {
	_, err := s.Console.Send(key)
	return err
}

// Expect waits for an exact string match in the output.
func (s *Session) Expect(str string) (string, error) {
	return s.Console.ExpectString(str)
}

// ExpectTimeout waits for an exact string match with a specific timeout.
func (s *Session) ExpectTimeout(str string, timeout time.Duration) (string, error) {
	return s.Console.Expect(expect.String(str), expect.WithTimeout(timeout))
}

// ExpectRegex waits for a regex pattern match in the output.
func (s *Session) ExpectRegex(pattern string) (string, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return "", fmt.Errorf("invalid regex: %w", err)
	}
	return s.Console.Expect(expect.Regexp(re))
}

// ExpectEOF waits for the process to close its end of the pty.
func (s *Session) ExpectEOF() (string, error) {
	return s.Console.ExpectEOF()
}

// Wait waits for the process to exit and returns its exit code.
func (s *Session) Wait() (int, error) {
	err := s.cmd.Wait()
	if err == nil {
		return 0, nil
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}

// Close terminates the session. Safe to call after Wait.
func (s *Session) Close() error {
	if err := s.Console.Close(); err != nil {
		return err
	}
	if s.cmd != nil && s.cmd.Process != nil && s.cmd.ProcessState == nil {
		s.cmd.Process.Kill()
		s.cmd.Wait()
	}
	return nil
}

// SkipIfBinaryMissing skips the test if the pokedex binary is not on PATH.
func SkipIfBinaryMissing(t interface{ Skip(args ...interface{}) }) {
	if _, err := exec.LookPath("pokedex"); err != nil {
		t.Skip("pokedex not available, skipping")
	}
}
