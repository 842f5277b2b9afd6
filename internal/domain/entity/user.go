package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// ClimateContribution summarises a hero's personal impact.
type ClimateContribution struct {
	CarbonSaved      int `json:"carbonSaved"`
	PlasticPrevented int `json:"plasticPrevented"`
	LunchCredits     int `json:"lunchCredits"`
	Streak           int `json:"streak"`
}

// User is a registered climate hero.
type User struct {
	ID                  uuid.UUID           `json:"id"`
	Username            string              `json:"username"`
	Email               string              `json:"email"`
	Country             string              `json:"country,omitempty"`
	City                string              `json:"city,omitempty"`
	HeroLevel           int                 `json:"heroLevel"`
	HeroPoints          int                 `json:"heroPoints"`
	HeroType            string              `json:"heroType,omitempty"`
	Achievements        []string            `json:"achievements"`
	ClimateContribution ClimateContribution `json:"climateContribution"`
	CreatedAt           time.Time           `json:"createdAt"`
}

// Clone returns a copy that shares no slices with u.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.Achievements = slices.Clone(u.Achievements)
	if c.Achievements == nil {
		c.Achievements = []string{}
	}

	return &c
}
