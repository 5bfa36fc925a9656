package model

import "strings"

type User struct {
	ID       int64    `json:"id"`
	Username string   `json:"username"`
	Name     string   `json:"name,omitempty"`
	Email    string   `json:"email,omitempty"`
	Phone    string   `json:"phone,omitempty"`
	Roles    []string `json:"roles"`
}

// HasRole matches by substring so both "Farmer" and "ROLE_FARMER" style
// names are recognised.
func (u User) HasRole(role string) bool {
	needle := strings.ToLower(role)
	for _, r := range u.Roles {
		if strings.Contains(strings.ToLower(r), needle) {
			return true
		}
	}
	return false
}

// FilterByRole keeps the users holding role.
func FilterByRole(users []User, role string) []User {
	var out []User
	for _, u := range users {
		if u.HasRole(role) {
			out = append(out, u)
		}
	}
	return out
}

// ExceptUser drops the entry matching username, compared case-insensitively.
func ExceptUser(users []User, username string) []User {
	name := strings.ToLower(strings.TrimSpace(username))
	var out []User
	for _, u := range users {
		if strings.ToLower(strings.TrimSpace(u.Username)) != name {
			out = append(out, u)
		}
	}
	return out
}

type Farm struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Location  string  `json:"location,omitempty"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
	AreaSize  float64 `json:"areaSize,omitempty"`
	SoilType  string  `json:"soilType,omitempty"`
}
