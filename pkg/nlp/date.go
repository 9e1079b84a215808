package nlp

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// All transaction timestamps are anchored to Asia/Jakarta (WIB, UTC+7). A
// fixed zone avoids depending on the host tzdata.
var jakartaZone = time.FixedZone("WIB", 7*60*60)

// noonHour is the local anchor for date-only idioms. Anchoring at noon keeps
// the date stable when the instant is re-read across the +7 offset.
const noonHour = 12

func JakartaNow() time.Time {
	return time.Now().In(jakartaZone)
}

// IsoFromDayFirst builds the UTC-encoded ISO timestamp for a day-first date
// at 12:00 WIB (so 05:00 UTC). A zero year defaults to the current Jakarta
// year; two-digit years are read as 20xx.
func IsoFromDayFirst(day, month, year int) string {
	if year == 0 {
		year = JakartaNow().Year()
	}
	if year < 100 {
		year += 2000
	}

	local := time.Date(year, time.Month(month), day, noonHour, 0, 0, 0, jakartaZone)
	return local.UTC().Format(time.RFC3339)
}

// IsoJakartaDaysAgo returns the Jakarta calendar date minus days, at the same
// noon anchor.
func IsoJakartaDaysAgo(days int) string {
	target := JakartaNow().AddDate(0, 0, -days)
	local := time.Date(target.Year(), target.Month(), target.Day(), noonHour, 0, 0, 0, jakartaZone)
	return local.UTC().Format(time.RFC3339)
}

var monthNames = map[string]int{
	"januari": 1, "jan": 1,
	"februari": 2, "feb": 2,
	"maret": 3, "mar": 3,
	"april": 4, "apr": 4,
	"mei": 5,
	"juni": 6, "jun": 6,
	"juli": 7, "jul": 7,
	"agustus": 8, "agu": 8, "agt": 8,
	"september": 9, "sep": 9,
	"oktober": 10, "okt": 10,
	"november": 11, "nov": 11,
	"desember": 12, "des": 12,
}

var (
	dayFirstDatePattern = regexp.MustCompile(`\b(\d{1,2})[/-](\d{1,2})(?:[/-](\d{2,4}))?\b`)
	monthNameCapture    = `januari|februari|maret|april|mei|juni|juli|agustus|september|oktober|november|desember|jan|feb|mar|apr|jun|jul|agu|agt|sep|okt|nov|des`
	monthNameDate       = regexp.MustCompile(`\b(\d{1,2})\s+(` + monthNameCapture + `)(?:\s+(\d{4}))?\b`)
	daysAgoPattern      = regexp.MustCompile(`(\d+)\s*hari\s*(?:yang\s*)?lalu`)
)

// StripDateExpressions blanks out recognized date phrases so amount scanning
// does not mistake a day, month, or year for money.
func StripDateExpressions(text string) string {
	t := dayFirstDatePattern.ReplaceAllString(text, " ")
	t = monthNameDate.ReplaceAllString(t, " ")
	return daysAgoPattern.ReplaceAllString(t, " ")
}

// DetectDateIdiom scans free text for the recognized Indonesian date idioms
// and returns the authoritative ISO timestamp for the whole utterance.
// Matching order is numeric day-first date, month-name date, "kemarin",
// "N hari (yang) lalu"; later matches override earlier ones, so the more
// explicit relative phrasings win over an ambiguous numeric date.
func DetectDateIdiom(text string) (string, bool) {
	t := strings.ToLower(text)

	iso := ""
	found := false

	if m := dayFirstDatePattern.FindStringSubmatch(t); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year := 0
		if m[3] != "" {
			year, _ = strconv.Atoi(m[3])
		}
		if day >= 1 && day <= 31 && month >= 1 && month <= 12 {
			iso = IsoFromDayFirst(day, month, year)
			found = true
		}
	}

	if m := monthNameDate.FindStringSubmatch(t); m != nil {
		day, _ := strconv.Atoi(m[1])
		month := monthNames[m[2]]
		year := 0
		if m[3] != "" {
			year, _ = strconv.Atoi(m[3])
		}
		if day >= 1 && day <= 31 && month != 0 {
			iso = IsoFromDayFirst(day, month, year)
			found = true
		}
	}

	if strings.Contains(t, "kemarin") {
		iso = IsoJakartaDaysAgo(1)
		found = true
	}

	if m := daysAgoPattern.FindStringSubmatch(t); m != nil {
		days, _ := strconv.Atoi(m[1])
		iso = IsoJakartaDaysAgo(days)
		found = true
	}

	return iso, found
}
