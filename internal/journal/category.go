// Package journal defines the domain types shared by the GratiLog client and
// server: entries, entry input, per-user and system statistics, the closed
// category set, and the Result sum type used at the service boundary.
package journal

import "strings"

// Category is one of the eight fixed gratitude categories.
type Category string

const (
	CategoryFamily      Category = "Family"
	CategoryHealth      Category = "Health"
	CategoryWork        Category = "Work"
	CategoryFriends     Category = "Friends"
	CategoryNature      Category = "Nature"
	CategoryAchievement Category = "Achievement"
	CategoryExperience  Category = "Experience"
	CategoryOther       Category = "Other"
)

// Categories lists the closed category set in canonical order. Per-category
// statistics are reported in this order.
var Categories = []Category{
	CategoryFamily,
	CategoryHealth,
	CategoryWork,
	CategoryFriends,
	CategoryNature,
	CategoryAchievement,
	CategoryExperience,
	CategoryOther,
}

// Valid reports whether c belongs to the closed set.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory resolves s case-insensitively to a Category.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, known := range Categories {
		if strings.EqualFold(string(known), s) {
			return known, nil
		}
	}
	return "", ErrInvalidCategory
}
