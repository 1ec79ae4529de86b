package share

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

type recordingSink struct {
	name string
	err  error
	got  []string
}

func (r *recordingSink) Name() string { return r.name }

func (r *recordingSink) Share(_ context.Context, _, text string) error {
	r.got = append(r.got, text)
	return r.err
}

func TestFallbackStopsAtFirstSuccess(t *testing.T) {
	broken := &recordingSink{name: "broken", err: errors.New("no share sheet")}
	ok := &recordingSink{name: "ok"}
	never := &recordingSink{name: "never"}

	used, err := Fallback{broken, ok, never}.Deliver(context.Background(), "t", "report")
	if err != nil {
		t.Fatalf("Deliver: %v", err)
	}
	if used != ok {
		t.Fatalf("used sink = %v, want ok", used.Name())
	}
	if len(broken.got) != 1 || len(ok.got) != 1 || len(never.got) != 0 {
		t.Fatalf("calls broken=%d ok=%d never=%d", len(broken.got), len(ok.got), len(never.got))
	}
}

func TestFallbackJoinsFailures(t *testing.T) {
	first := &recordingSink{name: "first", err: ErrUnavailable}
	second := &recordingSink{name: "second", err: errors.New("boom")}

	err := Fallback{first, second}.Share(context.Background(), "t", "report")
	if err == nil {
		t.Fatal("Share succeeded with only failing sinks")
	}
	if !errors.Is(err, ErrUnavailable) || !strings.Contains(err.Error(), "second: boom") {
		t.Fatalf("err = %v", err)
	}

	if err := (Fallback{}).Share(context.Background(), "t", "x"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("empty chain err = %v", err)
	}
}

func TestCommandSinkPipesText(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	out := filepath.Join(t.TempDir(), "shared.txt")
	t.Setenv("SHARE_OUT", out)

	sink := CommandSink{Argv: []string{"sh", "-c", `printf '%s\n' "$MOTOLOG_SHARE_TITLE" > "$SHARE_OUT"; cat >> "$SHARE_OUT"`}}
	if err := sink.Share(context.Background(), "Relatório de Entregas", "linha 1\nlinha 2"); err != nil {
		t.Fatalf("Share: %v", err)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(got) != "Relatório de Entregas\nlinha 1\nlinha 2" {
		t.Fatalf("command received %q", got)
	}
}

func TestCommandSinkUnavailable(t *testing.T) {
	if err := NewCommandSink("   ").Share(context.Background(), "t", "x"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("empty command err = %v", err)
	}
	err := NewCommandSink("motolog-no-such-share-tool --flag").Share(context.Background(), "t", "x")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("missing command err = %v", err)
	}
}

func TestWriterSink(t *testing.T) {
	var buf bytes.Buffer
	if err := (WriterSink{W: &buf}).Share(context.Background(), "t", "report"); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "report\n" {
		t.Fatalf("wrote %q", buf.String())
	}
}

func TestFromConfig(t *testing.T) {
	chain := FromConfig("")
	if len(chain) != 1 || chain[0].Name() != "clipboard" {
		t.Fatalf("default chain = %s", chain.Name())
	}
	chain = FromConfig("termux-share -a send")
	if chain.Name() != "termux-share,clipboard" {
		t.Fatalf("configured chain = %s", chain.Name())
	}
}
