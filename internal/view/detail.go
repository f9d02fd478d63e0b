package view

import (
	"net/url"
	"time"

	"roast/internal/model"
)

// Week lists the days in display order, starting Monday.
var Week = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

// TodayHours returns the hours string for day. ok is false when the shop has no
// hours or none for that day.
func TodayHours(hours model.WeeklyHours, day time.Weekday) (string, bool) {
	if hours == nil {
		return "", false
	}
	h, ok := hours[day]
	return h, ok
}

// DayHours is one row of a weekly schedule.
type DayHours struct {
	Day   time.Weekday
	Hours string
	Today bool
}

// Schedule returns the days that have hours, Monday first, marking today.
func Schedule(hours model.WeeklyHours, today time.Weekday) []DayHours {
	var rows []DayHours
	for _, d := range Week {
		h, ok := TodayHours(hours, d)
		if !ok {
			continue
		}
		rows = append(rows, DayHours{Day: d, Hours: h, Today: d == today})
	}
	return rows
}

// Link is a website that is safe to render.
type Link struct {
	Href string
	Host string
}

// WebsiteLink validates raw as an absolute http or https URL with a host.
func WebsiteLink(raw *string) (Link, bool) {
	if raw == nil || *raw == "" {
		return Link{}, false
	}
	u, err := url.Parse(*raw)
	if err != nil {
		return Link{}, false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return Link{}, false
	}
	if u.Hostname() == "" {
		return Link{}, false
	}
	return Link{Href: u.String(), Host: u.Hostname()}, true
}
