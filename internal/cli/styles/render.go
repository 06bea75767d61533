package styles

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bnema/rpmview/internal/domain/avatar"
	"github.com/bnema/rpmview/internal/domain/entity"
)

const timeLayout = "2006-01-02 15:04"

// RenderURL renders the avatar creator URL with its configuration.
func (t *Theme) RenderURL(url string, cfg avatar.Config) string {
	var b strings.Builder
	b.WriteString(t.Title.Render("Avatar creator"))
	b.WriteString("\n\n")
	b.WriteString(t.Highlight.Render(url))
	b.WriteString("\n\n")

	badges := []string{
		t.Badge.Render(cfg.PartnerDomain),
		t.BadgeMuted.Render("lang " + cfg.Language.String()),
		t.BadgeMuted.Render("body " + cfg.BodyType.String()),
		t.BadgeMuted.Render("gender " + cfg.Gender.String()),
	}
	if cfg.ClearCache {
		badges = append(badges, t.BadgeMuted.Render("clear cache"))
	}
	if cfg.QuickStart {
		badges = append(badges, t.BadgeMuted.Render("quick start"))
	}
	b.WriteString(strings.Join(badges, " "))

	return t.Box.Render(b.String())
}

// RenderEvent renders a decoded web event.
func (t *Theme) RenderEvent(ev avatar.WebEvent) string {
	var fields [][2]string
	switch e := ev.(type) {
	case avatar.UserSet:
		fields = append(fields, [2]string{"user id", e.ID})
	case avatar.UserAuthorized:
		fields = append(fields, [2]string{"user id", e.UserID})
	case avatar.AvatarExported:
		fields = append(fields, [2]string{"url", e.URL})
	case avatar.AssetUnlocked:
		fields = append(fields,
			[2]string{"asset id", e.Asset.AssetID},
			[2]string{"user id", e.Asset.UserID},
			[2]string{"record", string(e.Asset.Raw)},
		)
	}

	lines := []string{t.Badge.Render(ev.EventName())}
	for _, f := range fields {
		lines = append(lines, fmt.Sprintf("%s %s", t.Subtle.Render(f[0]+":"), t.Normal.Render(f[1])))
	}
	return strings.Join(lines, "\n")
}

// RenderExports renders the export history as a table.
func (t *Theme) RenderExports(exports []*entity.AvatarExport) string {
	if len(exports) == 0 {
		return t.Subtle.Render("No exported avatars yet")
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(t.Border)).
		Headers("EXPORTED", "USER", "URL").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Padding(0, 1)
			}
			return lipgloss.NewStyle().Foreground(t.Text).Padding(0, 1)
		})

	for _, e := range exports {
		user := e.UserID
		if user == "" {
			user = "-"
		}
		tbl.Row(e.ExportedAt.In(time.Local).Format(timeLayout), user, e.URL)
	}
	return tbl.String()
}

// RenderSuccess renders a one-line success message.
func (t *Theme) RenderSuccess(msg string) string {
	return t.SuccessStyle.Render("✓ ") + t.Normal.Render(msg)
}

// RenderWarning renders a one-line warning.
func (t *Theme) RenderWarning(msg string) string {
	return t.WarningStyle.Render("! ") + t.Normal.Render(msg)
}

// RenderError renders a command failure.
func (t *Theme) RenderError(err error) string {
	return t.ErrorStyle.Render("✗ error: ") + t.Normal.Render(err.Error())
}
