// Package racing implements the turn-based car race.
package racing

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	apperrors "github.com/louisbranch/minigames/internal/platform/errors"
	"github.com/louisbranch/minigames/internal/random"
	"github.com/louisbranch/minigames/internal/validate"
)

// advanceThreshold is the lowest scaled draw (0-9) that moves a car.
const advanceThreshold = 4

// CarState is one car's position after a round.
type CarState struct {
	Name     string
	Distance int
	Advanced bool
}

// RoundSnapshot records every car's state after one round, in entry order.
type RoundSnapshot struct {
	Round  int
	States []CarState
}

// Result captures a finished race.
type Result struct {
	History     []RoundSnapshot
	Winners     []string
	MaxDistance int
}

type car struct {
	name     string
	distance int
}

// Simulate runs a race between names for the given number of rounds.
//
// # Rounds
//
// Each round visits the cars in the order given. Every car takes exactly one
// sample from src, scaled to 0-9 by floor(sample*10); a value of 4 or more
// moves the car forward by one. The snapshot for the round lists the cars in
// the same order as names.
//
// # Winners
//
// Winners holds every car whose final distance equals MaxDistance, in entry
// order, so a tie returns all tied names.
//
// # Determinism
//
// Simulate draws nothing besides src. Two calls with the same names, rounds
// and an identical sequence of samples return identical results.
//
// # Errors
//
// Inputs are expected to come from the validate package. An empty name list,
// a blank, repeated or over-long name, a round count outside
// [validate.MinRounds, validate.MaxRounds], a nil src or a sample outside
// [0, 1) fails with errors.CodeInvalidArgument. Names are checked before any
// draw.
func Simulate(names []string, rounds int, src random.Source) (Result, error) {
	if len(names) == 0 {
		return Result{}, apperrors.New(apperrors.CodeInvalidArgument, "race requires at least one car")
	}
	if err := checkNames(names); err != nil {
		return Result{}, err
	}
	if rounds < validate.MinRounds || rounds > validate.MaxRounds {
		return Result{}, apperrors.New(apperrors.CodeInvalidArgument, "race round count out of range")
	}
	if src == nil {
		return Result{}, apperrors.New(apperrors.CodeInvalidArgument, "race requires a random source")
	}

	cars := make([]car, len(names))
	for i, name := range names {
		cars[i] = car{name: name}
	}

	history := make([]RoundSnapshot, 0, rounds)
	for round := 1; round <= rounds; round++ {
		states := make([]CarState, len(cars))
		for i := range cars {
			scaled, err := src.Intn(10)
			if err != nil {
				return Result{}, apperrors.WrapWithMetadata(apperrors.CodeInvalidArgument, "draw race sample", map[string]string{
					"Round": strconv.Itoa(round),
					"Name":  cars[i].name,
				}, err)
			}
			advanced := scaled >= advanceThreshold
			if advanced {
				cars[i].distance++
			}
			states[i] = CarState{
				Name:     cars[i].name,
				Distance: cars[i].distance,
				Advanced: advanced,
			}
		}
		history = append(history, RoundSnapshot{Round: round, States: states})
	}

	maxDistance := 0
	for _, c := range cars {
		maxDistance = max(maxDistance, c.distance)
	}
	var winners []string
	for _, c := range cars {
		if c.distance == maxDistance {
			winners = append(winners, c.name)
		}
	}

	return Result{
		History:     history,
		Winners:     winners,
		MaxDistance: maxDistance,
	}, nil
}

func checkNames(names []string) error {
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if n := utf8.RuneCountInString(name); n < validate.MinNameLength || n > validate.MaxNameLength {
			return apperrors.WithMetadata(apperrors.CodeInvalidArgument, fmt.Sprintf("car name %q must be %d to %d characters", name, validate.MinNameLength, validate.MaxNameLength), map[string]string{
				"Name": name,
			})
		}
		if _, dup := seen[name]; dup {
			return apperrors.WithMetadata(apperrors.CodeInvalidArgument, fmt.Sprintf("car name %q repeated", name), map[string]string{
				"Name": name,
			})
		}
		seen[name] = struct{}{}
	}
	return nil
}

// Final returns the last snapshot of the race.
func (r Result) Final() RoundSnapshot {
	if len(r.History) == 0 {
		return RoundSnapshot{}
	}
	return r.History[len(r.History)-1]
}
