package tier

import "testing"

func TestSelectBoundaries(t *testing.T) {
	tests := []struct {
		answered int
		want     Tier
		owed     int
	}{
		{0, T1, 5},
		{4, T1, 1},
		{5, T2, 5},
		{9, T2, 1},
		{10, T3, 5},
		{14, T3, 1},
		{15, T4, 5},
		{19, T4, 1},
		{20, None, 0},
		{25, None, 0},
		{-3, T1, 5},
	}

	for _, tt := range tests {
		got := Select(tt.answered)
		if got.Tier != tt.want {
			t.Errorf("Select(%d).Tier = %v, want %v", tt.answered, got.Tier, tt.want)
		}
		if got.Owed != tt.owed {
			t.Errorf("Select(%d).Owed = %d, want %d", tt.answered, got.Owed, tt.owed)
		}
	}
}

func TestSelectCoversEveryCount(t *testing.T) {
	for n := 0; n < TotalQuestions; n++ {
		sel := Select(n)
		if sel.Terminal() {
			t.Fatalf("Select(%d) is terminal", n)
		}
		if want := All[n/QuestionsPerTier]; sel.Tier != want {
			t.Errorf("Select(%d) = %v, want %v", n, sel.Tier, want)
		}
		if sel.Remaining != TotalQuestions-n {
			t.Errorf("Select(%d).Remaining = %d", n, sel.Remaining)
		}
	}
	if !Select(TotalQuestions).Terminal() {
		t.Error("expected terminal selection at 20")
	}
}

func TestSampleSize(t *testing.T) {
	tests := []struct{ answered, want int }{
		{0, 5}, {3, 5}, {15, 5}, {16, 4}, {19, 1}, {20, 0}, {30, 0},
	}
	for _, tt := range tests {
		if got := SampleSize(tt.answered); got != tt.want {
			t.Errorf("SampleSize(%d) = %d, want %d", tt.answered, got, tt.want)
		}
	}
}

func TestNextAndParse(t *testing.T) {
	if T1.Next() != T2 || T3.Next() != T4 || T4.Next() != None || None.Next() != None {
		t.Error("unexpected Next ordering")
	}
	for _, tr := range All {
		got, err := Parse(tr.Key())
		if err != nil || got != tr {
			t.Errorf("Parse(%q) = %v, %v", tr.Key(), got, err)
		}
		got, err = Parse(tr.String())
		if err != nil || got != tr {
			t.Errorf("Parse(%q) = %v, %v", tr.String(), got, err)
		}
	}
	if _, err := Parse("legendary"); err == nil {
		t.Error("expected error for unknown tier")
	}
}
