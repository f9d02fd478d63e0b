package view

import (
	"testing"
	"time"

	"roast/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestTodayHoursEveryDay(t *testing.T) {
	hours := model.WeeklyHours{
		time.Sunday:    "8am–4pm",
		time.Monday:    "7am–6pm",
		time.Tuesday:   "7am–6pm",
		time.Wednesday: "7am–6pm",
		time.Thursday:  "7am–8pm",
		time.Friday:    "7am–8pm",
		time.Saturday:  "Closed",
	}
	for day := time.Sunday; day <= time.Saturday; day++ {
		got, ok := TodayHours(hours, day)
		assert.True(t, ok, day.String())
		assert.Equal(t, hours[day], got, day.String())
	}
}

func TestTodayHoursAbsent(t *testing.T) {
	for day := time.Sunday; day <= time.Saturday; day++ {
		_, ok := TodayHours(nil, day)
		assert.False(t, ok)
	}

	partial := model.WeeklyHours{time.Monday: "9–5"}
	_, ok := TodayHours(partial, time.Tuesday)
	assert.False(t, ok)
}

func TestScheduleOrderAndToday(t *testing.T) {
	hours := model.WeeklyHours{
		time.Sunday: "Closed",
		time.Monday: "7–3",
		time.Friday: "7–5",
	}
	got := Schedule(hours, time.Friday)
	assert.Equal(t, []DayHours{
		{Day: time.Monday, Hours: "7–3"},
		{Day: time.Friday, Hours: "7–5", Today: true},
		{Day: time.Sunday, Hours: "Closed"},
	}, got)
	assert.Empty(t, Schedule(nil, time.Monday))
}

func TestWebsiteLink(t *testing.T) {
	tests := []struct {
		name string
		raw  *string
		want Link
		ok   bool
	}{
		{name: "absent", raw: nil},
		{name: "empty", raw: ptr("")},
		{name: "https", raw: ptr("https://www.octanecoffee.example/menu"), want: Link{Href: "https://www.octanecoffee.example/menu", Host: "www.octanecoffee.example"}, ok: true},
		{name: "http with port", raw: ptr("http://cafe.example:8080"), want: Link{Href: "http://cafe.example:8080", Host: "cafe.example"}, ok: true},
		{name: "no scheme", raw: ptr("cafe.example")},
		{name: "javascript", raw: ptr("javascript:alert(1)")},
		{name: "ftp", raw: ptr("ftp://cafe.example")},
		{name: "scheme only", raw: ptr("https://")},
		{name: "garbage", raw: ptr("ht tp://%zz")},
		{name: "mailto", raw: ptr("mailto:hi@cafe.example")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := WebsiteLink(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
