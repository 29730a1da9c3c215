package domain

import "time"

// User represents an authenticated account within the service.
type User struct {
	ID         string
	GoogleSub  string
	Email      string
	Name       string
	Picture    string
	Locale     string
	Timezone   string
	Properties []byte
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Location resolves the user's IANA timezone. Unset or unknown names fall
// back to UTC so day boundaries stay well-defined.
func (u User) Location() *time.Location {
	if u.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(u.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
