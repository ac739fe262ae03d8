// Package lotto parses lotto command flags and plays one draw in the terminal.
package lotto

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/message"

	"github.com/louisbranch/minigames/internal/lotto"
	entrypoint "github.com/louisbranch/minigames/internal/platform/cmd"
	errori18n "github.com/louisbranch/minigames/internal/platform/errors/i18n"
	"github.com/louisbranch/minigames/internal/platform/id"
	"github.com/louisbranch/minigames/internal/platform/otel"
	"github.com/louisbranch/minigames/internal/random"
	"github.com/louisbranch/minigames/internal/validate"
)

// Config holds lotto command configuration.
type Config struct {
	Amount    string `env:"LOTTO_AMOUNT"`
	Winning   string `env:"LOTTO_WINNING"`
	Bonus     string `env:"LOTTO_BONUS"`
	MaxAmount int    `env:"LOTTO_MAX_AMOUNT" envDefault:"100000"`
	Seed      int64  `env:"SEED"`
	Locale    string `env:"LOCALE"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	fs.StringVar(&cfg.Amount, "amount", cfg.Amount, "Purchase amount in won (prompted when empty)")
	fs.StringVar(&cfg.Winning, "winning", cfg.Winning, "Six comma-separated winning numbers (prompted when empty)")
	fs.StringVar(&cfg.Bonus, "bonus", cfg.Bonus, "Bonus number (prompted when empty)")
	fs.IntVar(&cfg.MaxAmount, "max-amount", cfg.MaxAmount, "Largest accepted purchase amount (0 or above 100000000 = 100000000)")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed for reproducibility (0 = random)")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "Output locale, e.g. en-US or ko-KR (defaults to LANG)")
	if err := entrypoint.ParseConfigFromArgs(&cfg, fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run plays one draw on stdin and stdout.
func Run(ctx context.Context, cfg Config) error {
	if err := errori18n.ValidateCatalogs(); err != nil {
		return err
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceLotto, func(ctx context.Context) error {
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

	rawAmount, err := prompter.ValueOrAsk(cfg.Amount, printer.Sprintf("lotto.prompt.amount"))
	if err != nil {
		return err
	}
	amount, err := parseAmount(rawAmount, cfg.MaxAmount)
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

	tickets, err := generate(ctx, runID, amount, seed, r.newSource(seed))
	if err != nil {
		return err
	}
	if err := renderTickets(r.out, printer, tickets); err != nil {
		return err
	}

	rawWinning, err := prompter.ValueOrAsk(cfg.Winning, printer.Sprintf("lotto.prompt.winning"))
	if err != nil {
		return err
	}
	winning, err := validate.WinningNumbers(validate.SplitNumbers(rawWinning))
	if err != nil {
		return errori18n.LocalizeError(locale, err)
	}

	rawBonus, err := prompter.ValueOrAsk(cfg.Bonus, printer.Sprintf("lotto.prompt.bonus"))
	if err != nil {
		return err
	}
	bonus, err := validate.BonusNumber(rawBonus, winning)
	if err != nil {
		return errori18n.LocalizeError(locale, err)
	}

	evaluation, err := evaluate(ctx, runID, tickets, winning, bonus)
	if err != nil {
		return err
	}
	log.Printf("run %s: %d tickets, seed %d, prize %d, return %.1f%%", runID, len(tickets), seed, evaluation.TotalPrize, evaluation.ProfitRate)

	return renderEvaluation(r.out, printer, seed, evaluation)
}

// parseAmount caps purchases at maxAmount, never above
// validate.MaxPurchaseAmount.
func parseAmount(raw string, maxAmount int) (int, error) {
	if maxAmount <= 0 || maxAmount > validate.MaxPurchaseAmount {
		maxAmount = validate.MaxPurchaseAmount
	}
	return validate.PurchaseAmountAtMost(raw, maxAmount)
}

func generate(ctx context.Context, runID string, amount int, seed int64, src random.Source) ([]lotto.Ticket, error) {
	_, span := otel.Tracer().Start(ctx, "lotto.generate_tickets", trace.WithAttributes(
		attribute.String("run.id", runID),
		attribute.Int("lotto.amount", amount),
		attribute.Int64("lotto.seed", seed),
	))
	defer span.End()

	tickets, err := lotto.GenerateTickets(amount, src)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "generate tickets")
		return nil, err
	}
	span.SetAttributes(attribute.Int("lotto.tickets", len(tickets)))
	return tickets, nil
}

func evaluate(ctx context.Context, runID string, tickets []lotto.Ticket, winning []int, bonus int) (lotto.Evaluation, error) {
	_, span := otel.Tracer().Start(ctx, "lotto.evaluate", trace.WithAttributes(
		attribute.String("run.id", runID),
		attribute.Int("lotto.tickets", len(tickets)),
		attribute.IntSlice("lotto.winning", winning),
		attribute.Int("lotto.bonus", bonus),
	))
	defer span.End()

	evaluation, err := lotto.Evaluate(tickets, winning, bonus)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "evaluate tickets")
		return lotto.Evaluation{}, err
	}
	for _, rank := range lotto.Ranks() {
		span.SetAttributes(attribute.Int("lotto.rank."+string(rank.ID), evaluation.Counts[rank.ID]))
	}
	span.SetAttributes(
		attribute.Int64("lotto.total_prize", evaluation.TotalPrize),
		attribute.Float64("lotto.profit_rate", evaluation.ProfitRate),
	)
	return evaluation, nil
}

func renderTickets(w io.Writer, printer *message.Printer, tickets []lotto.Ticket) error {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(printer.Sprintf("lotto.purchased", len(tickets)))
	b.WriteString("\n")
	for _, ticket := range tickets {
		b.WriteString(ticket.String())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func renderEvaluation(w io.Writer, printer *message.Printer, seed int64, evaluation lotto.Evaluation) error {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(printer.Sprintf("lotto.stats"))
	b.WriteString("\n---\n")
	ranks := lotto.Ranks()
	for i := len(ranks) - 1; i >= 0; i-- {
		rank := ranks[i]
		b.WriteString(printer.Sprintf(rankKey(rank.ID), rank.Prize, evaluation.Counts[rank.ID]))
		b.WriteString("\n")
	}
	b.WriteString(printer.Sprintf("lotto.prize", evaluation.TotalPrize))
	b.WriteString("\n")
	b.WriteString(printer.Sprintf("lotto.profit", evaluation.ProfitRate))
	b.WriteString("\n")
	b.WriteString(printer.Sprintf("lotto.seed", strconv.FormatInt(seed, 10)))
	b.WriteString("\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func rankKey(rank lotto.RankID) string {
	return "lotto.rank." + string(rank)
}
