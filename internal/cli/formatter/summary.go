package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/offcon/crono/internal/contract"
	"github.com/offcon/crono/internal/domain"
	"github.com/offcon/crono/internal/wbs"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// RenderReconcileStats renders a one-line result for a reconciliation run.
func RenderReconcileStats(stats contract.ReconcileStats) string {
	return fmt.Sprintf("%s %s  %s %s  %s %s  %s %s",
		StyleGreen.Render(fmt.Sprintf("%d", stats.Created)), Dim("created"),
		StyleYellow.Render(fmt.Sprintf("%d", stats.Updated)), Dim("updated"),
		StyleRed.Render(fmt.Sprintf("%d", stats.Deleted)), Dim("deleted"),
		StyleBlue.Render(fmt.Sprintf("%d", stats.ParentLinked)), Dim("linked"))
}

// RenderPlanStats renders the dashboard summary for one plan.
func RenderPlanStats(stats wbs.PlanStats) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s activities\n", StyleBold.Render(fmt.Sprintf("%d", stats.Total))))
	for _, s := range []domain.Status{
		domain.StatusPending, domain.StatusInProgress, domain.StatusDone, domain.StatusCancelled,
	} {
		if n := stats.ByStatus[s]; n > 0 {
			b.WriteString(fmt.Sprintf("  %s %d\n", StatusStyle(s).Render(string(s)), n))
		}
	}
	if stats.Overdue > 0 {
		b.WriteString(fmt.Sprintf("%s %d\n", StyleRed.Render("overdue"), stats.Overdue))
	}
	b.WriteString(fmt.Sprintf("%s %d\n", Dim("active this week"), stats.ActiveThisWeek))
	return b.String()
}
