// Package racing parses racing command flags and runs a race in the terminal.
package racing

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/message"

	entrypoint "github.com/louisbranch/minigames/internal/platform/cmd"
	errori18n "github.com/louisbranch/minigames/internal/platform/errors/i18n"
	"github.com/louisbranch/minigames/internal/platform/id"
	"github.com/louisbranch/minigames/internal/platform/otel"
	"github.com/louisbranch/minigames/internal/racing"
	"github.com/louisbranch/minigames/internal/random"
	"github.com/louisbranch/minigames/internal/validate"
)

// Config holds racing command configuration.
type Config struct {
	Names  string `env:"RACING_NAMES"`
	Rounds string `env:"RACING_ROUNDS"`
	Seed   int64  `env:"SEED"`
	Locale string `env:"LOCALE"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	fs.StringVar(&cfg.Names, "names", cfg.Names, "Comma-separated car names (prompted when empty)")
	fs.StringVar(&cfg.Rounds, "rounds", cfg.Rounds, "Number of rounds, 1-10 (prompted when empty)")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed for reproducibility (0 = random)")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "Output locale, e.g. en-US or ko-KR (defaults to LANG)")
	if err := entrypoint.ParseConfigFromArgs(&cfg, fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run plays one race on stdin and stdout.
func Run(ctx context.Context, cfg Config) error {
	if err := errori18n.ValidateCatalogs(); err != nil {
		return err
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceRacing, func(ctx context.Context) error {
		return newRunner(os.Stdin, os.Stdout).run(ctx, cfg)
	})
}

type runner struct {
	in        io.Reader
	out       io.Writer
	newSeed   func() (int64, error)
	newSource func(seed int64) random.Source
}

func newRunner(in io.Reader, out io.Writer) *runner {
	return &runner{
		in:        in,
		out:       out,
		newSeed:   random.NewSeed,
		newSource: random.NewSource,
	}
}

func (r *runner) run(ctx context.Context, cfg Config) error {
	locale := entrypoint.ResolveLocale(cfg.Locale)
	printer := entrypoint.Printer(locale)
	prompter := entrypoint.NewPrompter(r.in, r.out)

	rawNames, err := prompter.ValueOrAsk(cfg.Names, printer.Sprintf("racing.prompt.names"))
	if err != nil {
		return err
	}
	names, err := validate.ParticipantNames(rawNames)
	if err != nil {
		return errori18n.LocalizeError(locale, err)
	}

	rawRounds, err := prompter.ValueOrAsk(cfg.Rounds, printer.Sprintf("racing.prompt.rounds"))
	if err != nil {
		return err
	}
	rounds, err := validate.RoundCount(rawRounds)
	if err != nil {
		return errori18n.LocalizeError(locale, err)
	}

	seed := cfg.Seed
	if seed == 0 {
		if seed, err = r.newSeed(); err != nil {
			return err
		}
	}
	runID, err := id.NewID()
	if err != nil {
		return err
	}

	_, span := otel.Tracer().Start(ctx, "racing.simulate", trace.WithAttributes(
		attribute.String("run.id", runID),
		attribute.Int("racing.cars", len(names)),
		attribute.Int("racing.rounds", rounds),
		attribute.Int64("racing.seed", seed),
	))
	defer span.End()

	result, err := racing.Simulate(names, rounds, r.newSource(seed))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "simulate race")
		return err
	}
	span.SetAttributes(
		attribute.StringSlice("racing.winners", result.Winners),
		attribute.Int("racing.max_distance", result.MaxDistance),
		attribute.IntSlice("racing.final_distances", finalDistances(result)),
	)
	log.Printf("run %s: %d cars, %d rounds, seed %d, winners %s", runID, len(names), rounds, seed, strings.Join(result.Winners, ","))

	return render(r.out, printer, seed, result)
}

func finalDistances(result racing.Result) []int {
	states := result.Final().States
	distances := make([]int, len(states))
	for i, state := range states {
		distances[i] = state.Distance
	}
	return distances
}

func render(w io.Writer, printer *message.Printer, seed int64, result racing.Result) error {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(printer.Sprintf("racing.result"))
	b.WriteString("\n")
	for _, snapshot := range result.History {
		b.WriteString(printer.Sprintf("racing.round", snapshot.Round))
		b.WriteString("\n")
		for _, state := range snapshot.States {
			fmt.Fprintf(&b, "%s : %s\n", state.Name, strings.Repeat("-", state.Distance))
		}
		b.WriteString("\n")
	}
	b.WriteString(printer.Sprintf("racing.winners", strings.Join(result.Winners, ", ")))
	b.WriteString("\n")
	b.WriteString(printer.Sprintf("racing.seed", strconv.FormatInt(seed, 10)))
	b.WriteString("\n")
	_, err := io.WriteString(w, b.String())
	return err
}
