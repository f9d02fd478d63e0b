package util

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
)

// FormatRating formats a rating with exactly one decimal ("4.0", "4.6").
func FormatRating(rating float64) string {
	return strconv.FormatFloat(rating, 'f', 1, 64)
}

// FormatRatingWithStar formats a rating as "4.6 ★" for table cells.
func FormatRatingWithStar(rating float64) string {
	return FormatRating(rating) + " ★"
}

// FormatRatingStars renders a 1-5 rating as five stars, rounded to the nearest whole star.
func FormatRatingStars(rating float64) string {
	stars := int(math.Round(rating))
	stars = max(0, min(stars, 5))
	return strings.Repeat("★", stars) + strings.Repeat("☆", 5-stars)
}

// FormatReviewCount formats a review count with thousands separators ("1,204 reviews").
func FormatReviewCount(n int) string {
	return english.Plural(n, "review", "")
}

// FormatShopCount formats a shop total: "1 shop", "12 shops".
func FormatShopCount(n int) string {
	return english.Plural(n, "shop", "")
}

// FormatCount formats a bare count with thousands separators.
func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}

// FormatMatcha formats the optional matcha flag: "Yes", "No" or "—" when unknown.
func FormatMatcha(hasMatcha *bool) string {
	if hasMatcha == nil {
		return "—"
	}
	if *hasMatcha {
		return "Yes"
	}
	return "No"
}

// FormatOptional returns the pointed-to string, or "—" when nil or blank.
func FormatOptional(s *string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return "—"
	}
	return *s
}

// FormatHeaderDate formats a date for the header bar ("Fri, Oct 17").
func FormatHeaderDate(t time.Time) string {
	return t.Format("Mon, Jan 02")
}

// TruncateString truncates a string to maxLen and adds "..." if needed.
func TruncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen < 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
