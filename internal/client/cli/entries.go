package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gratilog/internal/client/controller"
	"github.com/dmitrijs2005/gratilog/internal/client/taxonomy"
	"github.com/dmitrijs2005/gratilog/internal/client/viewmodel"
	"github.com/dmitrijs2005/gratilog/internal/journal"
)

var (
	getMultiline = GetMultiline
	getChoice    = GetChoice
	getYesNo     = GetYesNo
)

// ShowTab switches to tab, fetches it and prints it.
func (a *App) ShowTab(ctx context.Context, tab controller.Tab) error {
	if err := a.ctrl.SetTab(tab); err != nil {
		return err
	}
	a.refreshAndShow(ctx)
	return nil
}

func (a *App) refreshAndShow(ctx context.Context) {
	a.ctrl.Refresh(ctx)
	a.show()
}

// show prints the active tab from the controller's current state.
func (a *App) show() {
	tab := a.ctrl.Tab()
	fmt.Fprintf(a.out, "== %s ==\n", tab.Label())

	if msg := a.ctrl.Error(); msg != "" {
		renderError(a.out, msg, a.color)
	}

	if tab == controller.TabStats {
		v, ok := a.ctrl.Stats()
		if !ok || v.Empty {
			renderEmpty(a.out, controller.EmptyState(tab, a.isLoggedIn()))
			return
		}
		renderStats(a.out, v, a.color)
		return
	}

	views := a.ctrl.EntryViews(a.clock)
	if len(views) == 0 {
		renderEmpty(a.out, controller.EmptyState(tab, a.isLoggedIn()))
		return
	}
	for _, v := range views {
		renderEntry(a.out, v, a.color)
	}
}

// NewEntry walks the user through the entry form and submits it.
func (a *App) NewEntry(ctx context.Context) error {
	if !a.isLoggedIn() {
		return controller.ErrAuthRequired
	}

	in := journal.NewEntryInput()

	var err error
	if in.Title, err = getSimpleText(a.reader, "What are you grateful for? (title)", a.out); err != nil {
		return err
	}
	if in.Content, err = getMultiline(a.reader, "Tell us more about it", a.out); err != nil {
		return err
	}

	cats := taxonomy.AllCategories()
	labels := make([]string, len(cats))
	def := 0
	for i, c := range cats {
		labels[i] = c.Emoji + " " + c.Label
		if c.Key == string(in.Category) {
			def = i
		}
	}
	i, err := getChoice(a.reader, "Category", labels, def, a.out)
	if err != nil {
		return err
	}
	in.Category = journal.Category(cats[i].Key)

	moods := taxonomy.AllMoods()
	labels = make([]string, len(moods))
	for i, m := range moods {
		labels[i] = m.Emoji + " " + m.Label
	}
	i, err = getChoice(a.reader, "How are you feeling?", labels, in.MoodRating-journal.MinMood, a.out)
	if err != nil {
		return err
	}
	in.MoodRating = journal.MinMood + i

	if in.IsPublic, err = getYesNo(a.reader, "Share with the community?", a.out); err != nil {
		return err
	}

	var out error
	a.ctrl.Create(ctx, in).Match(
		func(id uint64) {
			fmt.Fprintf(a.out, "Entry #%d saved.\n", id)
			a.show()
		},
		func(reason string) { out = errors.New(reason) },
	)
	return out
}

// lookup finds id in the list on screen.
func (a *App) lookup(id uint64) (journal.Entry, error) {
	e, ok := a.ctrl.Entry(id)
	if !ok {
		return journal.Entry{}, fmt.Errorf("entry %d is not in the current list", id)
	}
	return e, nil
}

// Appreciate endorses an entry of the community list.
func (a *App) Appreciate(ctx context.Context, id uint64) error {
	e, err := a.lookup(id)
	if err != nil {
		return err
	}
	if !viewmodel.CanAppreciate(e, a.ctrl.Viewer(), a.ctrl.ListContext()) {
		return fmt.Errorf("entry %d cannot be appreciated from here", id)
	}

	a.report(a.ctrl.Appreciate(ctx, id), "Thank you for the appreciation!")
	return nil
}

// Delete removes one of the user's own entries after confirmation.
func (a *App) Delete(ctx context.Context, id uint64) error {
	e, err := a.lookup(id)
	if err != nil {
		return err
	}
	if !viewmodel.CanDelete(e, a.ctrl.Viewer(), a.ctrl.ListContext()) {
		return fmt.Errorf("entry %d cannot be deleted from here", id)
	}

	ok, err := getYesNo(a.reader, "Are you sure you want to delete this entry?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	a.report(a.ctrl.Delete(ctx, id), "Entry deleted.")
	return nil
}

func (a *App) report(out viewmodel.Outcome, success string) {
	switch out.Status {
	case viewmodel.Succeeded:
		fmt.Fprintln(a.out, success)
	case viewmodel.Skipped:
		fmt.Fprintln(a.out, "Still working on the previous request for this entry.")
	}
	a.show()
}

// Expand toggles "read more" on an entry and prints it again.
func (a *App) Expand(_ context.Context, id uint64) error {
	if _, err := a.lookup(id); err != nil {
		return err
	}
	a.ctrl.ToggleExpanded(id)
	for _, v := range a.ctrl.EntryViews(a.clock) {
		if v.ID == id {
			renderEntry(a.out, v, a.color)
		}
	}
	return nil
}

func (a *App) Dismiss(context.Context) error {
	a.ctrl.DismissError()
	return nil
}
