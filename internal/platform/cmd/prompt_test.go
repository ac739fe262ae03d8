package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestPrompterAsk(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("pobi,woni\r\n5\nlast"), &out)

	for _, want := range []string{"pobi,woni", "5", "last"} {
		got, err := p.Ask("> ")
		if err != nil {
			t.Fatalf("ask: %v", err)
		}
		if got != want {
			t.Fatalf("answer = %q, want %q", got, want)
		}
	}
	if out.String() != "> > > " {
		t.Fatalf("prompts = %q", out.String())
	}

	if _, err := p.Ask("> "); !errors.Is(err, ErrNoInput) {
		t.Fatalf("expected ErrNoInput at end of input, got %v", err)
	}
}

func TestPrompterValueOrAsk(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("from stdin\n"), &out)

	got, err := p.ValueOrAsk("from flag", "label: ")
	if err != nil {
		t.Fatalf("value or ask: %v", err)
	}
	if got != "from flag" || out.Len() != 0 {
		t.Fatalf("expected flag value without prompting, got %q and prompt %q", got, out.String())
	}

	got, err = p.ValueOrAsk("  ", "label: ")
	if err != nil {
		t.Fatalf("value or ask: %v", err)
	}
	if got != "from stdin" || out.String() != "label: " {
		t.Fatalf("expected prompted value, got %q and prompt %q", got, out.String())
	}
}
