package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatRating(t *testing.T) {
	assert.Equal(t, "4.0", FormatRating(4))
	assert.Equal(t, "4.6", FormatRating(4.6))
	assert.Equal(t, "4.6 ★", FormatRatingWithStar(4.6))
}

func TestFormatRatingStars(t *testing.T) {
	cases := map[float64]string{
		1.0: "★☆☆☆☆",
		3.4: "★★★☆☆",
		3.5: "★★★★☆",
		4.6: "★★★★★",
		5.0: "★★★★★",
		0:   "☆☆☆☆☆",
		7:   "★★★★★",
	}
	for rating, want := range cases {
		assert.Equal(t, want, FormatRatingStars(rating), "rating %v", rating)
	}
}

func TestFormatReviewCount(t *testing.T) {
	assert.Equal(t, "0 reviews", FormatReviewCount(0))
	assert.Equal(t, "1 review", FormatReviewCount(1))
	assert.Equal(t, "812 reviews", FormatReviewCount(812))
	assert.Equal(t, "1,204 reviews", FormatReviewCount(1204))

	assert.Equal(t, "0 shops", FormatShopCount(0))
	assert.Equal(t, "1 shop", FormatShopCount(1))
	assert.Equal(t, "15 shops", FormatShopCount(15))
	assert.Equal(t, "1,234,567", FormatCount(1234567))
}

func TestFormatOptionalFields(t *testing.T) {
	yes, no := true, false
	assert.Equal(t, "Yes", FormatMatcha(&yes))
	assert.Equal(t, "No", FormatMatcha(&no))
	assert.Equal(t, "—", FormatMatcha(nil))

	drink, blank := "Cortado", "  "
	assert.Equal(t, "Cortado", FormatOptional(&drink))
	assert.Equal(t, "—", FormatOptional(&blank))
	assert.Equal(t, "—", FormatOptional(nil))
}

func TestFormatHeaderDate(t *testing.T) {
	d := time.Date(2026, time.October, 17, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, "Sat, Oct 17", FormatHeaderDate(d))
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", TruncateString("short", 10))
	assert.Equal(t, "Trolley...", TruncateString("Trolley Barn Roasters", 10))
	assert.Equal(t, "Tr", TruncateString("Trolley", 2))
	assert.Equal(t, "Café", TruncateString("Café", 4))
}
