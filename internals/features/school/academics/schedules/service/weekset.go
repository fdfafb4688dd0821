package service

import (
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
)

// WeekSet is the set of academic week numbers a session is active in.
type WeekSet map[int]struct{}

const (
	// Default term span used when stored week data is empty or unusable.
	defaultFirstWeek = 1
	defaultLastWeek  = 16

	// A single range may not span more than this many weeks; longer ranges
	// are clamped to start+maxRangeSpan (guards against fat-fingered years).
	maxRangeSpan = 30
)

func (ws WeekSet) Contains(week int) bool {
	_, ok := ws[week]
	return ok
}

// Intersects reports whether the two sets share at least one week.
func (ws WeekSet) Intersects(other WeekSet) bool {
	small, big := ws, other
	if len(big) < len(small) {
		small, big = big, small
	}
	for w := range small {
		if _, ok := big[w]; ok {
			return true
		}
	}
	return false
}

// Weeks returns the members in ascending order.
func (ws WeekSet) Weeks() []int {
	out := make([]int, 0, len(ws))
	for w := range ws {
		out = append(out, w)
	}
	sort.Ints(out)
	return out
}

func defaultWeekSet() WeekSet {
	ws := make(WeekSet, defaultLastWeek)
	for w := defaultFirstWeek; w <= defaultLastWeek; w++ {
		ws[w] = struct{}{}
	}
	return ws
}

// WeeksFromInts builds a WeekSet from already-structured week numbers,
// dropping non-positive entries.
func WeeksFromInts(nums []int) WeekSet {
	ws := make(WeekSet, len(nums))
	for _, n := range nums {
		if n > 0 {
			ws[n] = struct{}{}
		}
	}
	return ws
}

// parseWeekToken expands a single token ("7" or "3-5") into dst.
// Inverted ranges are swapped, oversized ranges clamped; both are repairs
// for operator typos, not errors.
func parseWeekToken(token string, dst WeekSet) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}

	if i := strings.IndexByte(token, '-'); i >= 0 {
		start, err := strconv.Atoi(strings.TrimSpace(token[:i]))
		if err != nil {
			return fmt.Errorf("week range %q: %w", token, err)
		}
		end, err := strconv.Atoi(strings.TrimSpace(token[i+1:]))
		if err != nil {
			return fmt.Errorf("week range %q: %w", token, err)
		}
		if start > end {
			start, end = end, start
		}
		if start < 1 {
			return fmt.Errorf("week range %q: weeks must be positive", token)
		}
		if end-start > maxRangeSpan {
			end = start + maxRangeSpan
		}
		for w := start; w <= end; w++ {
			dst[w] = struct{}{}
		}
		return nil
	}

	week, err := strconv.Atoi(token)
	if err != nil {
		return fmt.Errorf("week %q: %w", token, err)
	}
	if week < 1 {
		return fmt.Errorf("week %q: weeks must be positive", token)
	}
	dst[week] = struct{}{}
	return nil
}

// parseWeekTokens is the shared tokenizer: malformed tokens are skipped, the
// remainder still parses. Callers decide what an empty result means.
func parseWeekTokens(text string) WeekSet {
	ws := make(WeekSet)
	for _, token := range strings.Split(text, ",") {
		if err := parseWeekToken(token, ws); err != nil {
			log.Printf("[WARN] weekset: skipping malformed token %q", strings.TrimSpace(token))
		}
	}
	return ws
}

// ParseWeeks is the strict parser for user-supplied week text: any malformed
// token, or an empty result, is an input error. Used on the write path so bad
// data never enters storage.
func ParseWeeks(text string) (WeekSet, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, invalidInput("weeks", "must not be empty")
	}
	ws := make(WeekSet)
	for _, token := range strings.Split(text, ",") {
		if strings.TrimSpace(token) == "" {
			continue
		}
		if err := parseWeekToken(token, ws); err != nil {
			return nil, invalidInput("weeks", err.Error())
		}
	}
	if len(ws) == 0 {
		return nil, invalidInput("weeks", "no weeks given")
	}
	return ws, nil
}

// ParseWeeksLenient is the read-path parser for already-stored week text:
// malformed tokens are skipped and a totally unusable value degrades to the
// default term (weeks 1-16) so one corrupt row never breaks a view. The
// substitution is logged so operators can find the bad data.
func ParseWeeksLenient(text string) WeekSet {
	ws := parseWeekTokens(text)
	if len(ws) == 0 {
		if strings.TrimSpace(text) != "" {
			log.Printf("[WARN] weekset: unusable weeks %q, substituting default %d-%d", text, defaultFirstWeek, defaultLastWeek)
		}
		return defaultWeekSet()
	}
	return ws
}

// FormatWeeks rewrites a set to the minimal canonical range notation:
// ascending, consecutive runs joined as "a-b", no overlaps or duplicates.
// FormatWeeks(ParseWeeksLenient(t)) == t for every canonical t.
func FormatWeeks(ws WeekSet) string {
	weeks := ws.Weeks()
	if len(weeks) == 0 {
		return ""
	}

	var b strings.Builder
	runStart, prev := weeks[0], weeks[0]
	flush := func() {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		if runStart == prev {
			b.WriteString(strconv.Itoa(runStart))
		} else {
			b.WriteString(strconv.Itoa(runStart))
			b.WriteByte('-')
			b.WriteString(strconv.Itoa(prev))
		}
	}
	for _, w := range weeks[1:] {
		if w == prev+1 {
			prev = w
			continue
		}
		flush()
		runStart, prev = w, w
	}
	flush()
	return b.String()
}

// NormalizeWeeks canonicalizes stored week text for stable round-tripping.
func NormalizeWeeks(text string) string {
	return FormatWeeks(ParseWeeksLenient(text))
}
