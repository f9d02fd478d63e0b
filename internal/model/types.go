package model

import "time"

// CoffeeShop is a catalog record. Records are loaded once and never mutated.
type CoffeeShop struct {
	ID            string
	Name          string
	Neighborhood  string
	Address       string
	Rating        float64 // 1.0–5.0
	ReviewCount   int
	ImageURL      string
	Website       *string
	Description   *string
	DrinkOfTheDay *string
	HasMatcha     *bool
	Hours         WeeklyHours // nil when the catalog has no hours for the shop
}

// WeeklyHours maps a day of the week to its display string ("7am–6pm", "Closed").
type WeeklyHours map[time.Weekday]string

// NeighborhoodCount is one entry of the neighborhood filter menu.
type NeighborhoodCount struct {
	Name  string
	Count int
}

// LoginForm holds the mocked login fields.
type LoginForm struct {
	Email    string
	Password string
}

// SignupForm holds the mocked signup fields.
type SignupForm struct {
	Name     string
	Email    string
	Password string
	Confirm  string
}
