package lotto

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	apperrors "github.com/louisbranch/minigames/internal/platform/errors"
	"github.com/louisbranch/minigames/internal/random"
	"github.com/louisbranch/minigames/internal/validate"
)

// maxDrawsPerTicket bounds rejection sampling so a stuck source fails instead
// of spinning.
const maxDrawsPerTicket = 1000

// MaxTickets is the most tickets GenerateTickets buys in one call.
const MaxTickets = validate.MaxPurchaseAmount / validate.TicketPrice

// Ticket holds six distinct numbers in ascending order.
type Ticket [validate.TicketSize]int

// Contains reports whether n is on the ticket.
func (t Ticket) Contains(n int) bool {
	return slices.Contains(t[:], n)
}

// Matches counts the ticket numbers found in winning.
func (t Ticket) Matches(winning []int) int {
	count := 0
	for _, n := range t {
		if slices.Contains(winning, n) {
			count++
		}
	}
	return count
}

// String renders the ticket as "[1, 2, 3, 4, 5, 6]".
func (t Ticket) String() string {
	parts := make([]string, len(t))
	for i, n := range t {
		parts[i] = strconv.Itoa(n)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (t Ticket) valid() bool {
	return validNumbers(t[:])
}

func validNumbers(numbers []int) bool {
	if len(numbers) != validate.TicketSize {
		return false
	}
	seen := make(map[int]struct{}, len(numbers))
	for _, n := range numbers {
		if n < validate.NumberMin || n > validate.NumberMax {
			return false
		}
		if _, dup := seen[n]; dup {
			return false
		}
		seen[n] = struct{}{}
	}
	return true
}

// GenerateTickets buys one ticket per validate.TicketPrice in amount.
//
// Each ticket draws 1 + floor(sample*45) from src, discarding repeats, until
// six distinct numbers are collected, then sorts them. Tickets consume src one
// after another and share nothing else, so the same sample sequence always
// yields the same tickets.
//
// amount must be a positive multiple of validate.TicketPrice buying at most
// MaxTickets tickets and src must be non-nil, otherwise
// errors.CodeInvalidArgument is returned. A source that
// yields values outside [0, 1) or fails to produce six distinct numbers
// within a bounded number of draws fails the same way.
func GenerateTickets(amount int, src random.Source) ([]Ticket, error) {
	if amount < validate.TicketPrice || amount%validate.TicketPrice != 0 {
		return nil, apperrors.New(apperrors.CodeInvalidArgument, fmt.Sprintf("purchase amount %d is not a positive multiple of %d", amount, validate.TicketPrice))
	}
	count := amount / validate.TicketPrice
	if count > MaxTickets {
		return nil, apperrors.WithMetadata(apperrors.CodeInvalidArgument, fmt.Sprintf("purchase of %d tickets exceeds %d", count, MaxTickets), map[string]string{
			"Count": strconv.Itoa(count),
			"Max":   strconv.Itoa(MaxTickets),
		})
	}
	if src == nil {
		return nil, apperrors.New(apperrors.CodeInvalidArgument, "ticket generation requires a random source")
	}

	tickets := make([]Ticket, 0, count)
	for i := 0; i < count; i++ {
		ticket, err := newTicket(src)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, ticket)
	}
	return tickets, nil
}

func newTicket(src random.Source) (Ticket, error) {
	const span = validate.NumberMax - validate.NumberMin + 1

	var ticket Ticket
	picked := 0
	for draws := 0; picked < len(ticket); draws++ {
		if draws == maxDrawsPerTicket {
			return Ticket{}, apperrors.New(apperrors.CodeInvalidArgument, "random source did not produce six distinct numbers")
		}
		offset, err := src.Intn(span)
		if err != nil {
			return Ticket{}, apperrors.WrapWithMetadata(apperrors.CodeInvalidArgument, "draw ticket number", map[string]string{
				"Draw": strconv.Itoa(draws + 1),
			}, err)
		}
		n := validate.NumberMin + offset
		if slices.Contains(ticket[:picked], n) {
			continue
		}
		ticket[picked] = n
		picked++
	}
	slices.Sort(ticket[:])
	return ticket, nil
}
