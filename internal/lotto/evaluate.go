package lotto

import (
	"slices"

	"github.com/shopspring/decimal"

	apperrors "github.com/louisbranch/minigames/internal/platform/errors"
	"github.com/louisbranch/minigames/internal/validate"
)

// Evaluation summarizes how a set of tickets fared against a draw.
type Evaluation struct {
	// Counts has an entry for every rank, zero included.
	Counts     map[RankID]int
	TotalPrize int64
	Investment int64
	// ProfitRate is TotalPrize as a percentage of Investment, rounded half
	// away from zero to one decimal place.
	ProfitRate float64
}

// Evaluate grades tickets against the six winning numbers and the bonus ball.
//
// A ticket's rank is the first entry of the prize table whose match count
// equals the ticket's and whose bonus rule accepts whether the ticket holds
// bonus. Tickets matching no entry win nothing.
//
// tickets must be non-empty and well formed, winning must hold six distinct
// numbers in range and bonus must be in range and outside winning; violations
// return errors.CodeInvalidArgument.
func Evaluate(tickets []Ticket, winning []int, bonus int) (Evaluation, error) {
	if len(tickets) == 0 {
		return Evaluation{}, apperrors.New(apperrors.CodeInvalidArgument, "no tickets to evaluate")
	}
	if !validNumbers(winning) {
		return Evaluation{}, apperrors.New(apperrors.CodeInvalidArgument, "winning numbers must be six distinct numbers in range")
	}
	if bonus < validate.NumberMin || bonus > validate.NumberMax || slices.Contains(winning, bonus) {
		return Evaluation{}, apperrors.New(apperrors.CodeInvalidArgument, "bonus number must be in range and not a winning number")
	}

	counts := make(map[RankID]int, len(ranks))
	for _, rank := range ranks {
		counts[rank.ID] = 0
	}

	var totalPrize int64
	for _, ticket := range tickets {
		if !ticket.valid() {
			return Evaluation{}, apperrors.New(apperrors.CodeInvalidArgument, "ticket "+ticket.String()+" is malformed")
		}
		rank, ok := Classify(ticket.Matches(winning), ticket.Contains(bonus))
		if !ok {
			continue
		}
		counts[rank.ID]++
		totalPrize += rank.Prize
	}

	investment := int64(len(tickets)) * validate.TicketPrice
	return Evaluation{
		Counts:     counts,
		TotalPrize: totalPrize,
		Investment: investment,
		ProfitRate: ProfitRate(totalPrize, investment),
	}, nil
}

// ProfitRate returns prize as a percentage of investment rounded half away
// from zero to one decimal place. A zero investment reports 0.
func ProfitRate(prize, investment int64) float64 {
	if investment == 0 {
		return 0
	}
	rate := decimal.NewFromInt(prize).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(investment)).
		Round(1)
	return rate.InexactFloat64()
}
