package styles

import (
	"fmt"
	"strings"

	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/application/usecase"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/domain/entity"
)

// TemplatesCLIRenderer renders output for `tabsnap templates` subcommands.
type TemplatesCLIRenderer struct {
	theme *Theme
}

func NewTemplatesCLIRenderer(theme *Theme) *TemplatesCLIRenderer {
	return &TemplatesCLIRenderer{theme: theme}
}

func (r *TemplatesCLIRenderer) RenderList(items []entity.TemplateSummary) string {
	if len(items) == 0 {
		return r.theme.Subtle.Render("No templates found.")
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n\n", r.theme.Highlight.Render(IconTemplate), r.theme.Title.Render("Templates")))
	for _, t := range items {
		used := "never used"
		if t.LastUsedAt != nil {
			used = "used " + usecase.GetRelativeTime(*t.LastUsedAt)
		}
		line := fmt.Sprintf("  %s  %s", r.theme.Highlight.Render(string(t.ID)), r.theme.Normal.Render(t.Name))
		if t.WorkflowTag != "" {
			line += " " + r.theme.Badge.Render(t.WorkflowTag)
		}
		line += fmt.Sprintf("  %s %s  %s",
			r.theme.BadgeMuted.Render(fmt.Sprintf("%d tabs", t.Stats.TabCount)),
			r.theme.BadgeMuted.Render(fmt.Sprintf("%d uses", t.UsageCount)),
			r.theme.Subtle.Render(used),
		)
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *TemplatesCLIRenderer) RenderCreated(t *entity.SessionTemplate) string {
	return fmt.Sprintf("%s Template %s %s created from %d tabs.",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Highlight.Render(string(t.ID)),
		r.theme.Normal.Render(t.Name),
		t.BaseSession.Stats.TabCount,
	)
}

func (r *TemplatesCLIRenderer) RenderImported(t *entity.SessionTemplate) string {
	return fmt.Sprintf("%s Imported template %s as %s.",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Normal.Render(t.Name),
		r.theme.Highlight.Render(string(t.ID)),
	)
}

func (r *TemplatesCLIRenderer) RenderDeleted(id entity.TemplateID) string {
	return fmt.Sprintf("%s Template %s deleted.",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Highlight.Render(string(id)),
	)
}
