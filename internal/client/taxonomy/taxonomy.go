// Package taxonomy holds the display metadata of entry categories and mood
// ratings. Lookups are total: unknown keys fall back to a default record.
package taxonomy

import "github.com/dmitrijs2005/gratilog/internal/journal"

// Info describes how a category or a mood is shown. StyleTag is a colour
// class name, mapped to terminal colours by the CLI.
type Info struct {
	Key      string
	Label    string
	Emoji    string
	StyleTag string
}

const (
	fallbackCategory = journal.CategoryOther
	fallbackMood     = 3
)

var categories = []Info{
	{Key: string(journal.CategoryFamily), Label: "Family", Emoji: "👨‍👩‍👧‍👦", StyleTag: "bg-pink-100 text-pink-800"},
	{Key: string(journal.CategoryHealth), Label: "Health", Emoji: "💚", StyleTag: "bg-green-100 text-green-800"},
	{Key: string(journal.CategoryWork), Label: "Work", Emoji: "💼", StyleTag: "bg-blue-100 text-blue-800"},
	{Key: string(journal.CategoryFriends), Label: "Friends", Emoji: "👥", StyleTag: "bg-yellow-100 text-yellow-800"},
	{Key: string(journal.CategoryNature), Label: "Nature", Emoji: "🌿", StyleTag: "bg-emerald-100 text-emerald-800"},
	{Key: string(journal.CategoryAchievement), Label: "Achievement", Emoji: "🏆", StyleTag: "bg-purple-100 text-purple-800"},
	{Key: string(journal.CategoryExperience), Label: "Experience", Emoji: "✨", StyleTag: "bg-indigo-100 text-indigo-800"},
	{Key: string(journal.CategoryOther), Label: "Other", Emoji: "💫", StyleTag: "bg-gray-100 text-gray-800"},
}

var moods = []Info{
	{Key: "1", Label: "Very Low", Emoji: "😢", StyleTag: "bg-red-100 text-red-800"},
	{Key: "2", Label: "Low", Emoji: "😕", StyleTag: "bg-orange-100 text-orange-800"},
	{Key: "3", Label: "Neutral", Emoji: "😐", StyleTag: "bg-yellow-100 text-yellow-800"},
	{Key: "4", Label: "Good", Emoji: "😊", StyleTag: "bg-green-100 text-green-800"},
	{Key: "5", Label: "Excellent", Emoji: "😄", StyleTag: "bg-emerald-100 text-emerald-800"},
}

var categoryByKey = func() map[string]Info {
	m := make(map[string]Info, len(categories))
	for _, c := range categories {
		m[c.Key] = c
	}
	return m
}()

// CategoryInfo returns the record for key, or the Other record.
func CategoryInfo(key string) Info {
	if info, ok := categoryByKey[key]; ok {
		return info
	}
	return categoryByKey[string(fallbackCategory)]
}

// MoodInfo returns the record for rating, or Neutral outside [1,5].
func MoodInfo(rating int) Info {
	if rating < journal.MinMood || rating > journal.MaxMood {
		rating = fallbackMood
	}
	return moods[rating-1]
}

// AllCategories lists categories in display order.
func AllCategories() []Info {
	return append([]Info(nil), categories...)
}

// AllMoods lists moods from 1 to 5.
func AllMoods() []Info {
	return append([]Info(nil), moods...)
}
