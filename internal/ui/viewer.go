package ui

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"pytui/internal/aggregate"
	"pytui/internal/domain"
	"pytui/internal/storage"
)

// Viewer displays the results of a run in an interactive TUI
type Viewer struct{}

// NewViewer creates a new Viewer
func NewViewer() *Viewer {
	return &Viewer{}
}

// outcomeTag returns the tview color tag and marker for an outcome
func outcomeTag(outcome domain.TestOutcome) (string, string) {
	switch outcome {
	case domain.OutcomePassed:
		return "green", "✓"
	case domain.OutcomeFailed:
		return "red", "✗"
	case domain.OutcomeSkipped:
		return "yellow", "~"
	default:
		return "red", "!"
	}
}

// View opens the interactive browser over a persisted run. The search box
// narrows the list by name or node id; selecting an entry shows the log
// for the first test with that name.
func (v *Viewer) View(record *storage.RunRecord) error {
	if len(record.Results) == 0 {
		color.Yellow("No test results in the last run")
		if record.CombinedLog != "" {
			fmt.Println(record.CombinedLog)
		}
		return nil
	}

	app := tview.NewApplication()

	// Filtered view of the results, narrowed by the search box.
	visible := record.Results

	list := tview.NewList().
		ShowSecondaryText(true).
		SetHighlightFullLine(true)
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan).
		SetSecondaryTextColor(tview.Styles.SecondaryTextColor)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)
	detailsView.SetBorder(true).SetTitle(" Log ")

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	counts := aggregate.Summarize(record.Results)
	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)
	headerView.SetText(fmt.Sprintf(
		" [green]passed: %d[white] | [red]failed: %d[white] | [yellow]skipped: %d[white] | total: %d — ↑↓ navigate, Tab search, Enter log, Ctrl+C exit ",
		counts.Passed, counts.Failed, counts.Skipped, counts.Total,
	))

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index < 0 || index >= len(visible) {
			detailsView.SetText("")
			statsView.SetText("")
			return
		}
		selected := visible[index]
		statsView.SetText(fmt.Sprintf("[cyan]%s[white]  (%.3fs)", selected.NodeID, selected.Duration))

		// Log lookup is keyed by the short display name, first match wins.
		message, found := aggregate.FindLog(record.Results, selected.Name)
		switch {
		case !found:
			detailsView.SetText("[red]No such test.[white]")
		case message == "":
			detailsView.SetText("No log output for this test.")
		default:
			detailsView.SetText(tview.Escape(message))
		}
	}

	rebuildList := func() {
		list.Clear()
		for _, r := range visible {
			tag, marker := outcomeTag(r.Outcome)
			main := fmt.Sprintf("[%s]%s[white] %s", tag, marker, r.Name)
			list.AddItem(main, "    "+r.File, 0, nil)
		}
		updateDetails()
	}

	searchField := tview.NewInputField().
		SetLabel(" Search: ").
		SetFieldWidth(40)
	searchField.SetChangedFunc(func(query string) {
		visible = aggregate.Search(record.Results, query)
		rebuildList()
	})

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})

	leftSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(searchField, 1, 0, false).
		AddItem(list, 0, 1, true)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 2, 0, false).
		AddItem(detailsView, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(leftSide, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(flex, 0, 1, true)

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyTab:
			app.SetFocus(searchField)
			return nil
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == '/' {
				app.SetFocus(searchField)
				return nil
			}
			if event.Rune() == 'q' {
				app.Stop()
				return nil
			}
		}
		return event
	})

	searchField.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyTab, tcell.KeyEnter, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	rebuildList()

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
