package breakdown

import (
	"testing"
	"time"

	"github.com/manfred-witteman/flea/internal/apperr"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestResolveWindow(t *testing.T) {
	tests := []struct {
		name      string
		date      time.Time
		rng       string
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "dag",
			date:      date(2024, time.June, 3),
			rng:       "day",
			wantStart: date(2024, time.June, 3),
			wantEnd:   date(2024, time.June, 3),
		},
		{
			name:      "week rond woensdag",
			date:      date(2024, time.June, 5), // woensdag
			rng:       "week",
			wantStart: date(2024, time.June, 3), // maandag
			wantEnd:   date(2024, time.June, 9), // zondag
		},
		{
			name:      "week rond zondag",
			date:      date(2024, time.June, 9),
			rng:       "week",
			wantStart: date(2024, time.June, 3),
			wantEnd:   date(2024, time.June, 9),
		},
		{
			name:      "week rond maandag",
			date:      date(2024, time.June, 3),
			rng:       "week",
			wantStart: date(2024, time.June, 3),
			wantEnd:   date(2024, time.June, 9),
		},
		{
			name:      "maandag valt in de volgende week",
			date:      date(2024, time.June, 10),
			rng:       "week",
			wantStart: date(2024, time.June, 10),
			wantEnd:   date(2024, time.June, 16),
		},
		{
			name:      "maand",
			date:      date(2024, time.June, 15),
			rng:       "month",
			wantStart: date(2024, time.June, 1),
			wantEnd:   date(2024, time.June, 30),
		},
		{
			name:      "maand februari schrikkeljaar",
			date:      date(2024, time.February, 10),
			rng:       "month",
			wantStart: date(2024, time.February, 1),
			wantEnd:   date(2024, time.February, 29),
		},
		{
			name:      "lege range is dag",
			date:      date(2024, time.June, 3),
			rng:       "",
			wantStart: date(2024, time.June, 3),
			wantEnd:   date(2024, time.June, 3),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := ResolveWindow(tt.date, tt.rng)
			if err != nil {
				t.Fatalf("onverwachte fout: %v", err)
			}
			if !start.Equal(tt.wantStart) {
				t.Fatalf("start: verwacht %s, kreeg %s", tt.wantStart, start)
			}
			if !end.Equal(tt.wantEnd) {
				t.Fatalf("eind: verwacht %s, kreeg %s", tt.wantEnd, end)
			}
		})
	}
}

func TestResolveWindowOngeldigeRange(t *testing.T) {
	_, _, err := ResolveWindow(date(2024, time.June, 3), "year")
	if err == nil {
		t.Fatal("verwacht een fout voor range=year")
	}
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("verwacht KindValidation, kreeg %v", apperr.KindOf(err))
	}
}
