package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/unity/internal/presentation"
)

const defaultCardWidth = 60

func (m Model) cardWidth() int {
	if m.width > 4 && m.width-4 < defaultCardWidth {
		return m.width - 4
	}
	return defaultCardWidth
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	header := titleStyle.Render("Listings") + mutedStyle.Render(fmt.Sprintf("  %d shown", len(m.cards)))
	if m.opts.AvailableOnly {
		header += "  " + availableBadge.Render("available now only")
	}
	if m.loading {
		header += "  " + m.spinner.View()
	}
	b.WriteString(header + "\n")
	b.WriteString(m.search.View() + "\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render("Failed to load listings: "+m.err.Error()) + "\n")
	}

	if len(m.cards) == 0 && !m.loading {
		b.WriteString(mutedStyle.Render("No listings match.") + "\n")
	}

	for i, c := range m.cards {
		b.WriteString(m.renderCard(c, i == m.selected) + "\n")
	}

	b.WriteString(mutedStyle.Render("[/] search  [a] available now  [r] reload  [j/k] move  [q] quit"))
	return b.String()
}

func (m Model) renderCard(c presentation.Card, selected bool) string {
	d := c.Decoration
	style := cardStyle
	if d.Highlighted {
		style = highlightCardStyle
	}
	if selected {
		style = style.BorderForeground(primaryColor)
	}

	var badges []string
	if d.Sticky {
		badges = append(badges, featuredBadge.Render("Featured"))
	}
	if d.AvailableNowBadge {
		badges = append(badges, availableBadge.Render("Available Now"))
	}

	title := cardTitleStyle.Render(c.Listing.Title)
	if len(badges) > 0 {
		title += " " + strings.Join(badges, " ")
	}

	lines := []string{title}

	if meta := joinNonEmpty(" · ", c.Listing.Location, c.Listing.Category); meta != "" {
		lines = append(lines, mutedStyle.Render(meta))
	}
	if d.AvailableNowBadge {
		lines = append(lines, mutedStyle.Render(availabilityLine(d)))
	}

	idx := m.rotations.Index(c.Listing.ID)
	lines = append(lines, truncate(c.ImageAt(idx), m.cardWidth()-4))
	if d.RotationEnabled {
		lines = append(lines, rotationDots(idx, d.ImageCount))
	}

	return style.Width(m.cardWidth()).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func availabilityLine(d presentation.Decoration) string {
	if d.AvailabilityStale {
		return "availability window ended"
	}
	if d.AvailableRemaining > 0 {
		return d.AvailableRemaining.Round(time.Minute).String() + " left"
	}
	return ""
}

func rotationDots(current, count int) string {
	var b strings.Builder
	for i := 0; i < count; i++ {
		if i == current {
			b.WriteString("●")
		} else {
			b.WriteString("○")
		}
	}
	return b.String()
}

func joinNonEmpty(sep string, parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 1 || len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
