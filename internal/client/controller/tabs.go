package controller

// Tab is a top-level view of the client.
type Tab string

const (
	TabMine   Tab = "my-entries"
	TabPublic Tab = "public-entries"
	TabStats  Tab = "stats"
)

var Tabs = []Tab{TabMine, TabPublic, TabStats}

// Label is the navigation title of t.
func (t Tab) Label() string {
	switch t {
	case TabMine:
		return "My Journal"
	case TabPublic:
		return "Community"
	case TabStats:
		return "Analytics"
	}
	return string(t)
}

// RequiresAuth reports whether t is only available when signed in.
func (t Tab) RequiresAuth() bool {
	return t == TabMine || t == TabStats
}

// EmptyStateText is what a tab shows when it has nothing to list.
type EmptyStateText struct {
	Title       string
	Description string
	Action      string
	ShowAction  bool
}

// EmptyState returns the placeholder for tab.
func EmptyState(tab Tab, authenticated bool) EmptyStateText {
	switch tab {
	case TabMine:
		return EmptyStateText{
			Title:       "Start Your Gratitude Journey",
			Description: "You haven't written any gratitude entries yet. Start by creating your first entry and begin building a positive habit!",
			Action:      "Create Your First Entry",
			ShowAction:  true,
		}
	case TabPublic:
		return EmptyStateText{
			Title:       "No Community Entries Yet",
			Description: "The community hasn't shared any public gratitude entries yet. Be the first to share your gratitude with others!",
			Action:      "Share Your Gratitude",
			ShowAction:  authenticated,
		}
	case TabStats:
		return EmptyStateText{
			Title:       "No Stats Available",
			Description: "Your gratitude analytics will appear here once you start writing entries. The more you write, the more insights you'll gain!",
			Action:      "Write Your First Entry",
			ShowAction:  true,
		}
	}
	return EmptyStateText{
		Title:       "Nothing Here Yet",
		Description: "Start your journey by creating your first entry.",
		Action:      "Get Started",
		ShowAction:  true,
	}
}
