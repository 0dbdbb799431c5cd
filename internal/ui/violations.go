package ui

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"trv/internal/domain"
	"trv/internal/storage"
)

// ViolationViewer displays report violations in an interactive TUI
type ViolationViewer struct {
	storage storage.Storage
}

// NewViolationViewer creates a new ViolationViewer. Resolved marks are saved
// back through st.
func NewViolationViewer(st storage.Storage) *ViolationViewer {
	return &ViolationViewer{storage: st}
}

// View displays the violations of report until the user quits
func (vv *ViolationViewer) View(report *domain.ValidationReport) error {
	if report.Passed() {
		color.Green("✓ No naming violations found!")
		return nil
	}

	violations := report.Violations
	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	for i := range violations {
		list.AddItem(listItemText(violations[i], i), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(detailsView, 0, 2, false)

	var saveErr error
	updateHeader := func() {
		headerView.SetText(HeaderText(violations, saveErr))
	}

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(violations) {
			detailsView.SetText(FormatViolationDetails(violations[index], report))
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC, tcell.KeyEsc:
			app.Stop()
			return nil
		case tcell.KeyRune:
			switch event.Rune() {
			case 'q':
				app.Stop()
				return nil
			case 'r', 'R':
				index := list.GetCurrentItem()
				if index >= 0 && index < len(violations) {
					violations[index].Resolved = !violations[index].Resolved
					list.SetItemText(index, listItemText(violations[index], index), "")
					if vv.storage != nil {
						saveErr = vv.storage.Save(report)
					}
					updateHeader()
					updateDetails()
				}
				return nil
			}
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

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})

	updateHeader()
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// HeaderText renders the viewer header: violation counts, key help and the
// last save failure, if any
func HeaderText(violations []domain.Violation, saveErr error) string {
	open := 0
	for _, v := range violations {
		if !v.Resolved {
			open++
		}
	}
	text := fmt.Sprintf(" Naming Violations (%d total, %d open) | ↑↓ navigate, [yellow]R[white] mark resolved, → details, ← back, q quit ", len(violations), open)
	if saveErr != nil {
		text += fmt.Sprintf("| [red]save failed: %s[white] ", tview.Escape(saveErr.Error()))
	}
	return text
}

func listItemText(v domain.Violation, index int) string {
	label := v.Identifier.Name
	if v.Kind == domain.RatioViolation {
		label = v.Identifier.Function
	}
	if v.Resolved {
		return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", index+1, tview.Escape(label))
	}
	return fmt.Sprintf("[yellow]%d.[white] %s", index+1, tview.Escape(label))
}

// FormatViolationDetails renders a violation with tview color tags
func FormatViolationDetails(v domain.Violation, report *domain.ValidationReport) string {
	var builder strings.Builder
	w := tabwriter.NewWriter(&builder, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "[red]✗ %s[white]\n\n", v.Kind.Title())
	fmt.Fprintf(w, "[cyan]Function:\t%s[white]\n", tview.Escape(v.Identifier.Function))
	if v.Kind != domain.RatioViolation {
		fmt.Fprintf(w, "[cyan]Name:\t%s[white]\n", tview.Escape(v.Identifier.Name))
	}
	fmt.Fprintf(w, "[cyan]Location:\t%s[white]\n\n", tview.Escape(v.Identifier.Location()))
	fmt.Fprintf(w, "[yellow]Message:[white]\n%s\n\n", tview.Escape(v.Message))

	if b := v.Bounds; b != nil {
		fmt.Fprintf(w, "[yellow]Counts:[white]\n")
		fmt.Fprintf(w, "  size\t%d\n", b.Size)
		fmt.Fprintf(w, "  positives\t%d\t(allowed %d..%d)\n", b.Positives, b.MinPositives, b.MaxPositives)
		fmt.Fprintf(w, "  negatives\t%d\t(at least %d)\n", b.Negatives, b.MinNegatives)
	} else if report != nil {
		if g, ok := report.Group(v.Identifier.Function); ok {
			fmt.Fprintf(w, "[yellow]Function ratio:[white] %s\n", g.Ratio)
		}
	}
	if v.Resolved {
		fmt.Fprintf(w, "\n[gray]Marked resolved[white]\n")
	}

	w.Flush()
	return builder.String()
}
