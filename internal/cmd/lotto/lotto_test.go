package lotto

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"strconv"
	"strings"
	"testing"

	gotel "go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	entrypoint "github.com/louisbranch/minigames/internal/platform/cmd"
	apperrors "github.com/louisbranch/minigames/internal/platform/errors"
	errori18n "github.com/louisbranch/minigames/internal/platform/errors/i18n"
	"github.com/louisbranch/minigames/internal/random"
	"github.com/louisbranch/minigames/internal/validate"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("lotto", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.MaxAmount != 100000 {
		t.Fatalf("expected default max amount 100000, got %d", cfg.MaxAmount)
	}
	if cfg.Amount != "" || cfg.Winning != "" || cfg.Bonus != "" || cfg.Seed != 0 {
		t.Fatalf("expected empty inputs, got %+v", cfg)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	t.Setenv("MINIGAMES_LOTTO_AMOUNT", "5000")
	t.Setenv("MINIGAMES_SEED", "11")

	fs := flag.NewFlagSet("lotto", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-winning", "1,2,3,4,5,6", "-bonus", "7", "-max-amount", "0", "-locale", "ko-KR"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	want := Config{Amount: "5000", Winning: "1,2,3,4,5,6", Bonus: "7", MaxAmount: 0, Seed: 11, Locale: "ko-KR"}
	if cfg != want {
		t.Fatalf("config = %+v, want %+v", cfg, want)
	}
}

// ascendingSamples makes ticket i hold 6i+1 through 6i+6.
func ascendingSamples() []float64 {
	samples := make([]float64, 45)
	for i := range samples {
		samples[i] = (float64(i) + 0.5) / 45
	}
	return samples
}

func newTestRunner(in string, out *bytes.Buffer) *runner {
	r := newRunner(strings.NewReader(in), out)
	r.newSeed = func() (int64, error) { return 99, nil }
	r.newSource = func(int64) random.Source { return random.Sequence(ascendingSamples()...) }
	return r
}

func TestRunRendersDraw(t *testing.T) {
	var out bytes.Buffer
	cfg := Config{Amount: "2000", Winning: "1,2,3,10,20,30", Bonus: "45", MaxAmount: 100000, Seed: 5, Locale: "en-US"}

	if err := newTestRunner("", &out).run(context.Background(), cfg); err != nil {
		t.Fatalf("run: %v", err)
	}

	p := entrypoint.Printer("en-US")
	want := "\nPurchased 2 tickets.\n" +
		"[1, 2, 3, 4, 5, 6]\n" +
		"[7, 8, 9, 10, 11, 12]\n\n" +
		"\nWinning statistics\n---\n" +
		p.Sprintf("lotto.rank.fifth", 5000, 1) + "\n" +
		p.Sprintf("lotto.rank.fourth", 50000, 0) + "\n" +
		p.Sprintf("lotto.rank.third", 1500000, 0) + "\n" +
		p.Sprintf("lotto.rank.second", 30000000, 0) + "\n" +
		p.Sprintf("lotto.rank.first", 2000000000, 0) + "\n" +
		p.Sprintf("lotto.prize", 5000) + "\n" +
		"Total return rate is 250.0%.\n" +
		"Seed: 5\n"
	if out.String() != want {
		t.Fatalf("output =\n%q\nwant\n%q", out.String(), want)
	}
}

func TestRunPromptsForMissingValues(t *testing.T) {
	var out bytes.Buffer
	in := "1000\n1, 2, 3, 4, 5, 7\n6\n"

	if err := newTestRunner(in, &out).run(context.Background(), Config{Locale: "ko-KR"}); err != nil {
		t.Fatalf("run: %v", err)
	}

	p := entrypoint.Printer("ko-KR")
	got := out.String()
	if !strings.HasPrefix(got, p.Sprintf("lotto.prompt.amount")) {
		t.Fatalf("expected amount prompt first, got %q", got)
	}
	for _, want := range []string{
		"1개를 구매했어요.\n[1, 2, 3, 4, 5, 6]\n",
		p.Sprintf("lotto.prompt.winning"),
		p.Sprintf("lotto.prompt.bonus"),
		p.Sprintf("lotto.rank.second", 30000000, 1),
		"시드: 99\n",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in output %q", want, got)
		}
	}
}

func TestRunLocalizesValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		code apperrors.Code
	}{
		{name: "amount not integer", cfg: Config{Amount: "1000won"}, code: apperrors.CodeNotInteger},
		{name: "amount below price", cfg: Config{Amount: "500"}, code: apperrors.CodeBelowMinimum},
		{name: "amount not a multiple", cfg: Config{Amount: "1500"}, code: apperrors.CodeNotAMultiple},
		{name: "amount above limit", cfg: Config{Amount: "200000", MaxAmount: 100000}, code: apperrors.CodeOutOfRange},
		{name: "too few winning numbers", cfg: Config{Amount: "1000", Winning: "1,2,3"}, code: apperrors.CodeWrongCount},
		{name: "winning number out of range", cfg: Config{Amount: "1000", Winning: "1,2,3,4,5,46"}, code: apperrors.CodeOutOfRange},
		{name: "duplicate winning number", cfg: Config{Amount: "1000", Winning: "1,2,3,4,5,5"}, code: apperrors.CodeDuplicateNumber},
		{name: "bonus overlaps", cfg: Config{Amount: "1000", Winning: "1,2,3,4,5,6", Bonus: "6"}, code: apperrors.CodeOverlapsWinning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			tt.cfg.Locale = "en-US"
			err := newTestRunner("", &out).run(context.Background(), tt.cfg)

			if apperrors.CodeOf(err) != tt.code {
				t.Fatalf("code = %q, want %q (err %v)", apperrors.CodeOf(err), tt.code, err)
			}
			var localized *errori18n.LocalizedError
			if !errors.As(err, &localized) {
				t.Fatalf("expected localized error, got %T", err)
			}
			if err.Error() != errori18n.Localize("en-US", errors.Unwrap(err)) {
				t.Fatalf("unexpected message %q", err.Error())
			}
		})
	}
}

func TestRunWithoutExplicitLimitAcceptsLargeAmounts(t *testing.T) {
	var out bytes.Buffer
	cfg := Config{Amount: "200000", Winning: "1,2,3,4,5,6", Bonus: "7", Seed: 1, Locale: "en-US"}

	if err := newTestRunner("", &out).run(context.Background(), cfg); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "Purchased 200 tickets.") {
		t.Fatalf("expected 200 tickets, got %q", out.String())
	}
}

func TestRunCapsPurchasesWhenLimitDisabled(t *testing.T) {
	for _, maxAmount := range []int{0, -1, validate.MaxPurchaseAmount * 10} {
		var out bytes.Buffer
		cfg := Config{Amount: "9223372036854775000", MaxAmount: maxAmount, Seed: 1, Locale: "en-US"}

		err := newTestRunner("", &out).run(context.Background(), cfg)
		if apperrors.CodeOf(err) != apperrors.CodeOutOfRange {
			t.Fatalf("max amount %d: code = %q, want OUT_OF_RANGE (err %v)", maxAmount, apperrors.CodeOf(err), err)
		}
		if got := apperrors.MetadataOf(err)["Max"]; got != strconv.Itoa(validate.MaxPurchaseAmount) {
			t.Fatalf("max amount %d: Max metadata = %q", maxAmount, got)
		}
	}
}

func TestRunRecordsSpans(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	prev := gotel.GetTracerProvider()
	gotel.SetTracerProvider(tp)
	t.Cleanup(func() { gotel.SetTracerProvider(prev) })

	var out bytes.Buffer
	cfg := Config{Amount: "2000", Winning: "1,2,3,4,5,6", Bonus: "7", Seed: 5, Locale: "en-US"}
	if err := newTestRunner("", &out).run(context.Background(), cfg); err != nil {
		t.Fatalf("run: %v", err)
	}

	spans := exporter.GetSpans()
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(spans))
	}
	if spans[0].Name != "lotto.generate_tickets" || spans[1].Name != "lotto.evaluate" {
		t.Fatalf("span names = %q, %q", spans[0].Name, spans[1].Name)
	}

	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range spans[1].Attributes {
		attrs[kv.Key] = kv.Value
	}
	if got := attrs["lotto.rank.first"].AsInt64(); got != 1 {
		t.Fatalf("lotto.rank.first = %d", got)
	}
	if got := attrs["lotto.rank.second"].AsInt64(); got != 0 {
		t.Fatalf("lotto.rank.second = %d", got)
	}
	if got := attrs["lotto.total_prize"].AsInt64(); got != 2_000_000_000 {
		t.Fatalf("lotto.total_prize = %d", got)
	}
	if got := attrs["lotto.profit_rate"].AsFloat64(); got != 100_000_000 {
		t.Fatalf("lotto.profit_rate = %v", got)
	}

	var generateRunID string
	for _, kv := range spans[0].Attributes {
		if kv.Key == "run.id" {
			generateRunID = kv.Value.AsString()
		}
	}
	if generateRunID == "" || generateRunID != attrs["run.id"].AsString() {
		t.Fatal("expected both spans to share the run id")
	}
}
