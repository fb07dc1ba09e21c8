package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/gratilog/internal/client/controller"
	"github.com/dmitrijs2005/gratilog/internal/client/viewmodel"
	"github.com/dmitrijs2005/gratilog/internal/journal"
)

// ansiByColour maps the colour family of a style tag to an SGR sequence.
var ansiByColour = map[string]string{
	"red":     "31",
	"orange":  "38;5;208",
	"yellow":  "33",
	"green":   "32",
	"emerald": "36",
	"blue":    "34",
	"indigo":  "94",
	"purple":  "35",
	"pink":    "95",
	"gray":    "90",
}

const barWidth = 30

// styleColour extracts the colour family from a tag like
// "bg-pink-100 text-pink-800".
func styleColour(tag string) string {
	for _, cls := range strings.Fields(tag) {
		if rest, ok := strings.CutPrefix(cls, "text-"); ok {
			if i := strings.LastIndexByte(rest, '-'); i > 0 {
				return rest[:i]
			}
			return rest
		}
	}
	return ""
}

// paint wraps s in the terminal colour for tag. Unknown tags and disabled
// colour leave s unchanged.
func paint(s, tag string, enabled bool) string {
	if !enabled {
		return s
	}
	code, ok := ansiByColour[styleColour(tag)]
	if !ok {
		return s
	}
	return "\x1b[" + code + "m" + s + "\x1b[0m"
}

func renderError(w io.Writer, msg string, color bool) {
	fmt.Fprintln(w, paint("! "+msg, "text-red-800", color)+"  (type 'dismiss' to clear)")
}

func renderEmpty(w io.Writer, s controller.EmptyStateText) {
	fmt.Fprintln(w, s.Title)
	fmt.Fprintln(w, "  "+s.Description)
	if s.ShowAction {
		fmt.Fprintf(w, "  -> %s: type 'new'\n", s.Action)
	}
}

func renderEntry(w io.Writer, v viewmodel.EntryView, color bool) {
	visibility := "private"
	if v.IsPublic {
		visibility = "public"
	}

	fmt.Fprintf(w, "#%d %s [%s]\n", v.ID, v.Title, visibility)
	fmt.Fprintf(w, "   %s  %s  %s (%s)\n",
		paint(v.Category.Emoji+" "+v.Category.Label, v.Category.StyleTag, color),
		paint(v.Mood.Emoji+" "+v.Mood.Label, v.Mood.StyleTag, color),
		v.Age, v.Created)

	for _, line := range strings.Split(v.Content, "\n") {
		fmt.Fprintln(w, "   "+line)
	}
	if v.Truncated {
		fmt.Fprintf(w, "   (read more: expand %d)\n", v.ID)
	} else if v.Expanded {
		fmt.Fprintf(w, "   (show less: expand %d)\n", v.ID)
	}

	footer := fmt.Sprintf("   by %s  ♥ %d", v.Author, v.Appreciations)
	if v.CanAppreciate {
		footer += fmt.Sprintf("  [appreciate %d]", v.ID)
	}
	if v.CanDelete {
		footer += fmt.Sprintf("  [delete %d]", v.ID)
	}
	fmt.Fprintln(w, footer)
	fmt.Fprintln(w)
}

func renderStats(w io.Writer, v viewmodel.StatsView, color bool) {
	fmt.Fprintf(w, "Total entries:   %d\n", v.TotalEntries)
	fmt.Fprintf(w, "Current streak:  %d days\n", v.CurrentStreak)
	fmt.Fprintf(w, "Longest streak:  %d days\n", v.LongestStreak)
	fmt.Fprintf(w, "Average mood:    %s/5\n", v.AverageMood)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Mood trend:      %s\n", v.MoodTrend)
	fmt.Fprintf(w, "Consistency:     %s\n", v.Consistency)

	if len(v.Categories) == 0 {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Entries by category:")

	var top uint64
	for _, p := range v.Categories {
		if p.Value > top {
			top = p.Value
		}
	}
	for _, p := range v.Categories {
		n := int(p.Value * barWidth / top)
		if n == 0 {
			n = 1
		}
		label := fmt.Sprintf("%s %-12s", p.Emoji, p.Name)
		fmt.Fprintf(w, "  %s %s %d\n", paint(label, p.StyleTag, color), strings.Repeat("█", n), p.Value)
	}
}

func renderSystem(w io.Writer, s journal.SystemStats) {
	fmt.Fprintln(w, "== Community ==")
	fmt.Fprintf(w, "Members:          %d\n", s.TotalUsers)
	fmt.Fprintf(w, "Entries:          %d\n", s.TotalEntries)
	fmt.Fprintf(w, "Public entries:   %d\n", s.TotalPublicEntries)
	fmt.Fprintf(w, "Appreciations:    %d\n", s.TotalAppreciations)
}
