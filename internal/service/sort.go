package service

import (
	"cmp"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/opsfolio/internal/content"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects the ordering of a post list.
type SortKey string

const (
	SortNone  SortKey = ""
	SortDate  SortKey = "date"
	SortTitle SortKey = "title"
	SortViews SortKey = "views"
)

// SortKeys lists the selectable keys in display order.
var SortKeys = []SortKey{SortDate, SortTitle, SortViews}

// ParseSortKey maps user input to a known key; anything else is SortNone.
func ParseSortKey(raw string) SortKey {
	switch key := SortKey(strings.ToLower(strings.TrimSpace(raw))); key {
	case SortDate, SortTitle, SortViews:
		return key
	default:
		return SortNone
	}
}

// dateLayouts are the display formats accepted for post dates.
var dateLayouts = []string{
	"Jan 2, 2006",
	"January 2, 2006",
	"2006-01-02",
	"2 Jan 2006",
}

// ParsePostDate parses a display date. ok is false when no layout matches.
func ParsePostDate(raw string) (t time.Time, ok bool) {
	trimmed := strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// ParseViewCount drops every non-digit and parses what remains, so
// "1,204 views" is 1204. No digits yields 0; overflow saturates.
func ParseViewCount(raw string) uint64 {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)
	if digits == "" {
		return 0
	}
	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return math.MaxUint64
	}
	return n
}

// SortPosts orders posts in place. Every ordering is stable:
//   - SortDate: newest first, unparseable dates last
//   - SortTitle: ascending by English collation
//   - SortViews: most viewed first
//   - SortNone: unchanged
func SortPosts(posts []content.Post, key SortKey) {
	switch key {
	case SortDate:
		slices.SortStableFunc(posts, compareByDate)
	case SortTitle:
		// Collators keep internal buffers and are not safe to share.
		collator := collate.New(language.English)
		slices.SortStableFunc(posts, func(a, b content.Post) int {
			return collator.CompareString(a.Title, b.Title)
		})
	case SortViews:
		slices.SortStableFunc(posts, func(a, b content.Post) int {
			return cmp.Compare(ParseViewCount(b.Views), ParseViewCount(a.Views))
		})
	}
}

func compareByDate(a, b content.Post) int {
	at, aok := ParsePostDate(a.Date)
	bt, bok := ParsePostDate(b.Date)
	switch {
	case aok && bok:
		return bt.Compare(at)
	case aok:
		return -1
	case bok:
		return 1
	default:
		return 0
	}
}
