package breakdown

import (
	"time"

	"github.com/manfred-witteman/flea/internal/apperr"
)

// ResolveWindow bepaalt de rapportageperiode bij een referentiedatum.
// day = precies die kalenderdag, week = de ISO-week (maandag t/m zondag)
// waar de datum in valt, month = de hele kalendermaand. Start en eind zijn
// beide middernacht van de eerste resp. laatste dag; de grenzen gaan als
// queryparameters de database in, nooit als tekst in de SQL.
func ResolveWindow(date time.Time, rng string) (start, end time.Time, err error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	switch rng {
	case "day", "":
		start, end = day, day
	case "week":
		// time.Weekday telt vanaf zondag; maandag als eerste dag
		offset := (int(day.Weekday()) + 6) % 7
		start = day.AddDate(0, 0, -offset)
		end = start.AddDate(0, 0, 6)
	case "month":
		start = time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		end = start.AddDate(0, 1, -1)
	default:
		err = apperr.New(apperr.KindValidation, "range moet day, week of month zijn")
	}

	return start, end, err
}
