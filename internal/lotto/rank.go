// Package lotto generates 6/45 lottery tickets and grades them against a draw.
package lotto

// RankID identifies a prize tier.
type RankID string

const (
	RankFirst  RankID = "first"
	RankSecond RankID = "second"
	RankThird  RankID = "third"
	RankFourth RankID = "fourth"
	RankFifth  RankID = "fifth"
)

// BonusRule states how the bonus ball affects a rank.
type BonusRule int

const (
	BonusIrrelevant BonusRule = iota
	BonusRequired
	BonusForbidden
)

func (b BonusRule) String() string {
	switch b {
	case BonusIrrelevant:
		return "irrelevant"
	case BonusRequired:
		return "required"
	case BonusForbidden:
		return "forbidden"
	default:
		return "unknown"
	}
}

func (b BonusRule) allows(hasBonus bool) bool {
	switch b {
	case BonusRequired:
		return hasBonus
	case BonusForbidden:
		return !hasBonus
	default:
		return true
	}
}

// Rank is one prize tier.
type Rank struct {
	ID      RankID
	Matches int
	Bonus   BonusRule
	Prize   int64
}

// ranks is ordered from the highest prize down. Each (Matches, bonus) pair
// selects at most one entry.
var ranks = []Rank{
	{ID: RankFirst, Matches: 6, Bonus: BonusIrrelevant, Prize: 2_000_000_000},
	{ID: RankSecond, Matches: 5, Bonus: BonusRequired, Prize: 30_000_000},
	{ID: RankThird, Matches: 5, Bonus: BonusForbidden, Prize: 1_500_000},
	{ID: RankFourth, Matches: 4, Bonus: BonusIrrelevant, Prize: 50_000},
	{ID: RankFifth, Matches: 3, Bonus: BonusIrrelevant, Prize: 5_000},
}

// Ranks returns the prize table from first to fifth.
func Ranks() []Rank {
	return append([]Rank(nil), ranks...)
}

// Classify returns the rank for a ticket with matches winning numbers. The
// second result is false when the ticket wins nothing.
func Classify(matches int, hasBonus bool) (Rank, bool) {
	for _, rank := range ranks {
		if rank.Matches == matches && rank.Bonus.allows(hasBonus) {
			return rank, true
		}
	}
	return Rank{}, false
}
