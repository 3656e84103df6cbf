// Package shell provides the shell-based execution engine adapter.
package shell

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
	"weave/internal/core/domain"
	"weave/internal/core/ports"
)

var _ ports.Engine = (*Engine)(nil)

// Engine implements ports.Engine by invoking an external interpreter process
// per snippet. The snippet source is written to the interpreter's stdin;
// stdout becomes the snippet output and stderr the failure diagnostic.
//
// Dependency outputs are materialized as files in a temporary directory
// exposed through WEAVE_DEPS_DIR, one file per dependency identifier, so an
// engine script can reconstruct upstream state.
type Engine struct {
	command []string
	logger  ports.Logger
}

// NewEngine creates an Engine running the given interpreter command line.
func NewEngine(command []string, logger ports.Logger) *Engine {
	return &Engine{
		command: command,
		logger:  logger,
	}
}

// Execute evaluates one snippet.
func (e *Engine) Execute(ctx context.Context, snippet *domain.Snippet, deps []domain.SnippetResult) (string, error) {
	if len(e.command) == 0 {
		return "", zerr.With(domain.ErrEngineNotConfigured, "snippet_id", snippet.ID.String())
	}

	depsDir, err := e.materializeDeps(deps)
	if err != nil {
		return "", err
	}
	defer os.RemoveAll(depsDir) //nolint:errcheck // Best effort cleanup

	name := e.command[0]
	args := e.command[1:]

	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // engine command comes from user config
	cmd.Stdin = strings.NewReader(snippet.Source + "\n")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.Env = e.environment(snippet, depsDir)

	if err := cmd.Run(); err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		wrapped := zerr.With(zerr.Wrap(domain.ErrExecutionFailed, "engine process failed"), "snippet_id", snippet.ID.String())
		wrapped = zerr.With(wrapped, "exit_code", exitCode)
		return "", zerr.With(wrapped, "diagnostic", strings.TrimSpace(stderr.String()))
	}

	return stdout.String(), nil
}

// materializeDeps writes each dependency output to <dir>/<id>.out.
func (e *Engine) materializeDeps(deps []domain.SnippetResult) (string, error) {
	dir, err := os.MkdirTemp("", "weave-deps-")
	if err != nil {
		return "", zerr.Wrap(err, "failed to create dependency directory")
	}

	for _, dep := range deps {
		path := filepath.Join(dir, dep.ID.String()+".out")
		if err := os.WriteFile(path, []byte(dep.Output), 0o600); err != nil {
			_ = os.RemoveAll(dir)
			return "", zerr.With(zerr.Wrap(err, "failed to write dependency output"), "dependency", dep.ID.String())
		}
	}

	return dir, nil
}

// environment builds the engine process environment: the system environment
// plus the weave variables for the snippet and its figure hints.
func (e *Engine) environment(snippet *domain.Snippet, depsDir string) []string {
	env := append(os.Environ(),
		"WEAVE_SNIPPET="+snippet.ID.String(),
		"WEAVE_DEPS_DIR="+depsDir,
	)
	if snippet.Options.FigWidth > 0 {
		env = append(env, fmt.Sprintf("WEAVE_FIG_WIDTH=%g", snippet.Options.FigWidth))
	}
	if snippet.Options.FigHeight > 0 {
		env = append(env, fmt.Sprintf("WEAVE_FIG_HEIGHT=%g", snippet.Options.FigHeight))
	}
	return env
}
