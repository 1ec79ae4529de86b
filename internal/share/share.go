// Package share hands report text to the outside world: an external share
// command when one is configured, the system clipboard otherwise.
package share

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/atotto/clipboard"
)

// ErrUnavailable is returned by a sink that cannot run on this system.
var ErrUnavailable = errors.New("share target unavailable")

// Sink delivers a titled text.
type Sink interface {
	Share(ctx context.Context, title, text string) error
	Name() string
}

// CommandSink pipes the text into an external command's stdin. The title is
// exported as MOTOLOG_SHARE_TITLE.
type CommandSink struct {
	Argv []string
}

// NewCommandSink splits a command line on whitespace. An empty line yields
// a sink that always reports ErrUnavailable.
func NewCommandSink(line string) CommandSink {
	return CommandSink{Argv: strings.Fields(line)}
}

// Name implements Sink.
func (c CommandSink) Name() string {
	if len(c.Argv) == 0 {
		return "command"
	}
	return c.Argv[0]
}

// Share implements Sink.
func (c CommandSink) Share(ctx context.Context, title, text string) error {
	if len(c.Argv) == 0 {
		return ErrUnavailable
	}
	if _, err := exec.LookPath(c.Argv[0]); err != nil {
		return fmt.Errorf("%w: %s not found", ErrUnavailable, c.Argv[0])
	}

	cmd := exec.CommandContext(ctx, c.Argv[0], c.Argv[1:]...) //nolint:gosec // argv comes from the user's own config
	cmd.Stdin = strings.NewReader(text)
	cmd.Env = append(cmd.Environ(), "MOTOLOG_SHARE_TITLE="+title)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w: %s", c.Argv[0], err, strings.TrimSpace(string(output)))
	}
	return nil
}

// ClipboardSink copies the text to the system clipboard.
type ClipboardSink struct{}

// Name implements Sink.
func (ClipboardSink) Name() string { return "clipboard" }

// Share implements Sink.
func (ClipboardSink) Share(_ context.Context, _, text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	return nil
}

// WriterSink prints the text to w.
type WriterSink struct {
	W io.Writer
}

// Name implements Sink.
func (WriterSink) Name() string { return "stdout" }

// Share implements Sink.
func (s WriterSink) Share(_ context.Context, _, text string) error {
	_, err := fmt.Fprintln(s.W, text)
	return err
}

// Fallback tries each sink in order until one succeeds.
type Fallback []Sink

// Name implements Sink.
func (f Fallback) Name() string {
	names := make([]string, len(f))
	for i, s := range f {
		names[i] = s.Name()
	}
	return strings.Join(names, ",")
}

// Share implements Sink. It returns nil when any sink succeeded, otherwise
// every failure joined.
func (f Fallback) Share(ctx context.Context, title, text string) error {
	_, err := f.Deliver(ctx, title, text)
	return err
}

// Deliver is Share that also reports which sink took the text.
func (f Fallback) Deliver(ctx context.Context, title, text string) (Sink, error) {
	if len(f) == 0 {
		return nil, ErrUnavailable
	}
	var errs []error
	for _, s := range f {
		err := s.Share(ctx, title, text)
		if err == nil {
			return s, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", s.Name(), err))
	}
	return nil, errors.Join(errs...)
}

// FromConfig builds the chain used by the report command: the configured
// share command, if any, then the clipboard.
func FromConfig(shareCommand string) Fallback {
	var chain Fallback
	if strings.TrimSpace(shareCommand) != "" {
		chain = append(chain, NewCommandSink(shareCommand))
	}
	return append(chain, ClipboardSink{})
}
