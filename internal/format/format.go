package format

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const clockLayout = "03:04 PM"

// dayLetters maps schedule-of-classes day letters to abbreviations.
// Thursday is H and Sunday is U in the source data.
var dayLetters = map[rune]string{
	'M': "Mon",
	'T': "Tue",
	'W': "Wed",
	'H': "Thu",
	'F': "Fri",
	'S': "Sat",
	'U': "Sun",
}

// Days expands a day-letter string such as "MWH" into day
// abbreviations. Unknown letters are dropped.
func Days(letters string) []string {
	days := []string{}
	for _, r := range strings.ToUpper(letters) {
		if day, ok := dayLetters[r]; ok {
			days = append(days, day)
		}
	}
	return days
}

// Clock converts a 24-hour "HH:MM" string into 12-hour form
// ("13:00" -> "01:00 PM"). Strings that do not parse are returned
// unchanged, matching how the source API sometimes reports "TBA".
func Clock(raw string) string {
	t, err := time.Parse("15:04", raw)
	if err != nil {
		return raw
	}
	return t.Format(clockLayout)
}

// TimeToDecimal converts a 12-hour "hh:mm AM/PM" string into a decimal
// hour (e.g. "01:50 PM" -> 13.8333). Invalid or missing times return an
// error rather than a silent zero.
func TimeToDecimal(clock string) (float64, error) {
	t, err := time.Parse(clockLayout, strings.TrimSpace(clock))
	if err != nil {
		return 0, errors.Wrapf(err, "invalid meeting time %q", clock)
	}
	return float64(t.Hour()) + float64(t.Minute())/60, nil
}

// DecimalToTime renders a decimal hour back into "hh:mm AM/PM" form for
// human-readable messages.
func DecimalToTime(hour float64) string {
	h := int(hour)
	m := int(math.Round((hour - float64(h)) * 60))
	if m == 60 {
		h, m = h+1, 0
	}
	return time.Date(0, time.January, 1, h, m, 0, 0, time.UTC).Format(clockLayout)
}

// Instructors joins first/last name pairs into one canonical string.
// Absent instructor data becomes "N/A"; downstream code never branches
// on payload shape again.
func Instructors(names [][2]string) string {
	if len(names) == 0 {
		return "N/A"
	}
	full := make([]string, 0, len(names))
	for _, n := range names {
		full = append(full, strings.TrimSpace(fmt.Sprintf("%s %s", n[0], n[1])))
	}
	return strings.Join(full, ", ")
}
