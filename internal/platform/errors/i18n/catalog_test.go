package i18n

import (
	"errors"
	"fmt"
	"testing"

	apperrors "github.com/louisbranch/minigames/internal/platform/errors"
)

func TestGetCatalogFallback(t *testing.T) {
	base := GetCatalog("en-US")
	if base == nil {
		t.Fatal("expected base catalog")
	}
	fallback := GetCatalog("missing-locale")
	if fallback != base {
		t.Fatal("expected fallback to en-US catalog")
	}
	if GetCatalog("ko").Locale() != "ko-KR" {
		t.Fatal("expected ko to resolve to ko-KR")
	}
}

func TestEveryCodeHasMessage(t *testing.T) {
	for _, locale := range []string{"en-US", "ko-KR"} {
		cat := GetCatalog(locale)
		for _, code := range apperrors.Codes() {
			if got := cat.Format(string(code), nil); got == string(code) {
				t.Errorf("%s: no message for %s", locale, code)
			}
		}
	}
}

func TestFormatFallbacks(t *testing.T) {
	cat := NewCatalog("test", map[Code]string{
		"code": "hello {{.Name}}",
	})

	if cat.Format("unknown", nil) != "unknown" {
		t.Fatal("expected code fallback when template missing")
	}
	if cat.Format("code", nil) != "hello <no value>" {
		t.Fatal("expected template to render missing metadata")
	}
}

func TestFormatTemplateErrorFallback(t *testing.T) {
	cat := NewCatalog("test", map[Code]string{
		"code": "{{ if .Name }}",
	})
	if cat.Format("code", map[string]string{"Name": "X"}) != "{{ if .Name }}" {
		t.Fatal("expected template fallback on parse error")
	}
}

func TestLocalize(t *testing.T) {
	err := fmt.Errorf("rounds: %w", apperrors.WithMetadata(apperrors.CodeOutOfRange, "round count out of range", map[string]string{
		"Value": "11",
		"Min":   "1",
		"Max":   "10",
	}))

	if got, want := Localize("en-US", err), "11 is out of range; enter a number from 1 to 10."; got != want {
		t.Fatalf("en-US = %q, want %q", got, want)
	}
	if got, want := Localize("ko-KR", err), "1부터 10 사이로 입력해 주세요. (11)"; got != want {
		t.Fatalf("ko-KR = %q, want %q", got, want)
	}
	if got := Localize("en-US", errors.New("disk full")); got != "disk full" {
		t.Fatalf("plain error = %q", got)
	}
	if got := Localize("en-US", nil); got != "" {
		t.Fatalf("nil error = %q", got)
	}
}

func TestLocalizeError(t *testing.T) {
	cause := apperrors.WithMetadata(apperrors.CodeDuplicateName, "duplicate name", map[string]string{"Name": "pobi"})

	err := LocalizeError("en-US", cause)
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != Localize("en-US", cause) {
		t.Fatalf("message = %q, want localized text", err.Error())
	}
	if !errors.Is(err, apperrors.New(apperrors.CodeDuplicateName, "")) {
		t.Fatal("expected code to survive wrapping")
	}
	var localized *LocalizedError
	if !errors.As(err, &localized) || localized.Locale != "en-US" {
		t.Fatalf("expected *LocalizedError for en-US, got %#v", err)
	}
	if LocalizeError("en-US", nil) != nil {
		t.Fatal("expected nil for nil error")
	}
}
