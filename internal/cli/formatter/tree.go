package formatter

import (
	"fmt"
	"strings"

	"github.com/offcon/crono/internal/domain"
	"github.com/offcon/crono/internal/wbs"
)

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
)

// RenderWBSTree renders a plan's activity tree with box-drawing connectors.
// Done activities get a green check, in-progress ones an amber marker, and
// each dated row shows its range and progress on the right.
func RenderWBSTree(roots []*wbs.Node) string {
	flat := wbs.Flatten(roots)
	if len(flat) == 0 {
		return Dim("(no activities)")
	}

	var b strings.Builder
	for _, f := range flat {
		var prefix string
		if f.Depth > 0 {
			for i := 1; i < f.Depth; i++ {
				prefix += treePipe
			}
			if f.IsLast {
				prefix += treeCorner
			} else {
				prefix += treeBranch
			}
		}

		title := StyleDim.Render(f.Node.Code+" ") + f.Node.Description
		switch f.Node.Status {
		case domain.StatusDone:
			title = StyleGreen.Render("✔ ") + Dim(f.Node.Code+" "+f.Node.Description)
		case domain.StatusInProgress:
			title = StyleYellow.Render("▶ ") + StyleYellow.Render(f.Node.Code+" "+f.Node.Description)
		}

		b.WriteString(prefix + title)
		if badge := rowBadge(f.Node); badge != "" {
			b.WriteString("  " + StyleBlue.Render(badge))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func rowBadge(n *wbs.Node) string {
	var parts []string
	if n.StartDate != nil || n.EndDate != nil {
		parts = append(parts, fmt.Sprintf("%s → %s",
			orDash(domain.FormatDate(n.StartDate)),
			orDash(domain.FormatDate(n.EndDate))))
	}
	if n.Progress > 0 {
		parts = append(parts, fmt.Sprintf("%d%%", n.Progress))
	}
	if n.Kind == domain.KindMilestone {
		parts = append(parts, "milestone")
	}
	if len(parts) == 0 {
		return ""
	}
	return "[ " + strings.Join(parts, " · ") + " ]"
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
