package jobcard

import (
	"fmt"
	"math"
	"math/big"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"job-board/internal/errors"
)

const msPerDay = int64(24 * time.Hour / time.Millisecond)

type dateLayout struct {
	layout string
	loc    *time.Location
}

// Date-only strings are read as UTC midnight, date-times without an offset
// as local time. Browsers parse ISO strings the same way.
var postedDateLayouts = []dateLayout{
	{time.RFC3339, time.UTC},
	{"2006-01-02T15:04:05", time.Local},
	{"2006-01-02T15:04", time.Local},
	{"2006-01-02", time.UTC},
	{"2006/01/02", time.Local},
	{"Jan 2, 2006", time.Local},
	{"January 2, 2006", time.Local},
	{time.RFC1123, time.UTC},
	{time.RFC1123Z, time.UTC},
}

func parsePostedDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, l := range postedDateLayouts {
		if t, err := time.ParseInLocation(l.layout, s, l.loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.InvalidInput(fmt.Sprintf("unparseable posted date %q", s), nil)
}

// elapsedDays is the absolute distance between a and b in whole days,
// rounded up. time.Duration saturates near 292 years, so the distance is
// taken from Unix milliseconds instead.
func elapsedDays(a, b time.Time) int64 {
	ms := a.UnixMilli() - b.UnixMilli()
	if ms < 0 {
		ms = -ms
	}
	return ceilDiv(ms, msPerDay)
}

func ceilDiv(a, b int64) int64 {
	return (a + b - 1) / b
}

// FormatPostedDate renders the distance between date and now as a relative
// label. Future dates read as "ago" as well.
func FormatPostedDate(date string, now time.Time) (string, error) {
	posted, err := parsePostedDate(date)
	if err != nil {
		return "", err
	}
	return relativeLabel(elapsedDays(now, posted)), nil
}

func relativeLabel(days int64) string {
	switch {
	case days == 1:
		return "1 day ago"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	case days < 30:
		return fmt.Sprintf("%d weeks ago", ceilDiv(days, 7))
	default:
		return fmt.Sprintf("%d months ago", ceilDiv(days, 30))
	}
}

// FormatSalary abbreviates amount to millions or thousands, or prints it
// with grouping when below a thousand.
func FormatSalary(amount float64) (string, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "", errors.InvalidInput("salary is not a finite number", nil)
	}
	if amount < 0 {
		return "", errors.InvalidInput(fmt.Sprintf("negative salary %v", amount), nil)
	}

	switch {
	case amount >= 1_000_000:
		return "$" + toFixed(amount/1_000_000, 1) + "M", nil
	case amount >= 1_000:
		return "$" + toFixed(amount/1_000, 0) + "K", nil
	}

	p := message.NewPrinter(language.AmericanEnglish)
	return "$" + p.Sprint(number.Decimal(amount, number.MaxFractionDigits(3))), nil
}

// toFixed formats a non-negative x with the given number of decimals.
// Exact ties round up; strconv would round them to even.
func toFixed(x float64, decimals int) string {
	const prec = 256
	scaled := new(big.Float).SetPrec(prec).SetFloat64(x)
	pow := new(big.Float).SetPrec(prec).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil))
	scaled.Mul(scaled, pow)
	scaled.Add(scaled, big.NewFloat(0.5))

	n, _ := scaled.Int(nil)
	digits := n.String()
	if decimals == 0 {
		return digits
	}
	if len(digits) <= decimals {
		digits = strings.Repeat("0", decimals-len(digits)+1) + digits
	}
	cut := len(digits) - decimals
	return digits[:cut] + "." + digits[cut:]
}
