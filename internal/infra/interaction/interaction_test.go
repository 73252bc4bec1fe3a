package interaction

import (
	"errors"
	"os"
	"testing"
)

func TestHuhPrompterInput(t *testing.T) {
	prev := runInputPrompt
	t.Cleanup(func() { runInputPrompt = prev })

	var gotTitle string
	runInputPrompt = func(title string, _ []string, input *string) error {
		gotTitle = title
		*input = "foo-bar.brevlab.com"
		return nil
	}
	value, err := HuhPrompter{}.Input("Hostname", nil)
	if err != nil || value != "foo-bar.brevlab.com" || gotTitle != "Hostname" {
		t.Fatalf("Input() = %q, %v (title %q)", value, err, gotTitle)
	}

	runInputPrompt = func(string, []string, *string) error { return errors.New("aborted") }
	if _, err := (HuhPrompter{}).Input("Hostname", nil); err == nil {
		t.Fatalf("expected prompt error")
	}
}

func TestIsTerminalNil(t *testing.T) {
	if IsTerminal(nil) {
		t.Fatalf("nil file is not a terminal")
	}
	f, err := os.CreateTemp(t.TempDir(), "tty")
	if err != nil {
		t.Fatalf("create temp: %v", err)
	}
	defer f.Close()
	if IsTerminal(f) {
		t.Fatalf("regular file is not a terminal")
	}
}
