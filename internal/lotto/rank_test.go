package lotto

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		matches  int
		hasBonus bool
		want     RankID
		wantOK   bool
	}{
		{matches: 6, hasBonus: false, want: RankFirst, wantOK: true},
		{matches: 6, hasBonus: true, want: RankFirst, wantOK: true},
		{matches: 5, hasBonus: true, want: RankSecond, wantOK: true},
		{matches: 5, hasBonus: false, want: RankThird, wantOK: true},
		{matches: 4, hasBonus: true, want: RankFourth, wantOK: true},
		{matches: 4, hasBonus: false, want: RankFourth, wantOK: true},
		{matches: 3, hasBonus: false, want: RankFifth, wantOK: true},
		{matches: 2, hasBonus: true},
		{matches: 1, hasBonus: false},
		{matches: 0, hasBonus: false},
	}

	for _, tt := range tests {
		rank, ok := Classify(tt.matches, tt.hasBonus)
		if ok != tt.wantOK || rank.ID != tt.want {
			t.Errorf("Classify(%d, %v) = %q, %v; want %q, %v", tt.matches, tt.hasBonus, rank.ID, ok, tt.want, tt.wantOK)
		}
	}
}

// TestClassifyIsExclusive ensures every match/bonus combination selects at
// most one rank.
func TestClassifyIsExclusive(t *testing.T) {
	for matches := 0; matches <= 6; matches++ {
		for _, hasBonus := range []bool{false, true} {
			hits := 0
			for _, rank := range Ranks() {
				if rank.Matches == matches && rank.Bonus.allows(hasBonus) {
					hits++
				}
			}
			if hits > 1 {
				t.Fatalf("matches=%d bonus=%v selects %d ranks", matches, hasBonus, hits)
			}
		}
	}
}

func TestRanksTable(t *testing.T) {
	want := []Rank{
		{ID: RankFirst, Matches: 6, Bonus: BonusIrrelevant, Prize: 2000000000},
		{ID: RankSecond, Matches: 5, Bonus: BonusRequired, Prize: 30000000},
		{ID: RankThird, Matches: 5, Bonus: BonusForbidden, Prize: 1500000},
		{ID: RankFourth, Matches: 4, Bonus: BonusIrrelevant, Prize: 50000},
		{ID: RankFifth, Matches: 3, Bonus: BonusIrrelevant, Prize: 5000},
	}
	got := Ranks()
	if len(got) != len(want) {
		t.Fatalf("expected %d ranks, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("rank %d = %+v, want %+v", i, got[i], want[i])
		}
	}

	got[0].Prize = 1
	if Ranks()[0].Prize != 2000000000 {
		t.Fatal("Ranks must return a copy")
	}
}

func TestBonusRuleString(t *testing.T) {
	if BonusRequired.String() != "required" || BonusForbidden.String() != "forbidden" || BonusIrrelevant.String() != "irrelevant" {
		t.Fatal("unexpected bonus rule names")
	}
	if BonusRule(9).String() != "unknown" {
		t.Fatal("expected unknown for out of range rule")
	}
}
