package views

import (
	"fmt"
	"math"

	"benchkit/ui/tui/state"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// MenuZoneID names the clickable zone of menu entry i.
func MenuZoneID(i int) string {
	return fmt.Sprintf("menu_%d", i)
}

type MenuView struct{}

func (v MenuView) Render(s state.AppState, props ViewProps) string {
	header := MenuHeaderStyle.Width(props.Width).Render("BENCHKIT // FIXTURES & CHARTS")

	var menuItems []string
	listStartY := 6

	for i, step := range state.Steps {
		// Animation Logic
		dist := math.Abs(float64(i) - props.AnimCursor)
		selectionStrength := 0.0
		if dist < 1.0 {
			selectionStrength = 1.0 - dist
		}

		// Mouse Gradient Logic
		itemCenterY := listStartY + (i * 3) + 1
		mouseDistY := math.Abs(float64(props.MouseY - itemCenterY))

		borderColor := BaseColor
		if mouseDistY < 10 && 1.0-(mouseDistY/10.0) > 0.5 {
			borderColor = lipgloss.Color("#aaa")
		}
		if selectionStrength > 0.1 || i == props.MenuCursor {
			borderColor = BrandColor
		}

		popOut := int(selectionStrength * 2)

		boxStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1).
			MarginLeft(2 + popOut).
			Width(40)

		if i == props.MenuCursor {
			boxStyle = boxStyle.Bold(true).Foreground(lipgloss.Color("#FFF"))
		} else {
			boxStyle = boxStyle.Foreground(lipgloss.Color("#AAA"))
		}

		text := fmt.Sprintf("%02d. %s", i+1, step)
		if s.Running != nil && *s.Running == step {
			text += " " + props.SpinnerView
		}
		menuItems = append(menuItems, zone.Mark(MenuZoneID(i), boxStyle.Render(text)))
	}

	menuList := lipgloss.JoinVertical(lipgloss.Left, menuItems...)

	subtitle := "Select a step to run."
	if s.Last != nil {
		subtitle = fmt.Sprintf("Last: %s %s", s.Last.Step, ColorForResult(s.Last.Err).Render(outcome(s.Last.Err)))
	}

	menuContent := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).PaddingLeft(2).Foreground(BrandColor).Render("STEPS"),
		CopyStyle.Render(subtitle),
		menuList,
	)

	controls := lipgloss.NewStyle().Foreground(lipgloss.Color("#555")).PaddingLeft(2).
		Render("\n[↑/↓] Navigate • [Enter] Run • [L] Log • [Q] Quit")

	body := lipgloss.JoinVertical(lipgloss.Left,
		MenuBoxStyle.Render(menuContent),
		controls,
	)

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, header, body))
}

func outcome(err error) string {
	if err != nil {
		return "failed"
	}
	return "ok"
}

var (
	BrandColor = lipgloss.Color("#f27b24")
	BaseColor  = lipgloss.Color("#444")

	MenuHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(BrandColor).
			Align(lipgloss.Left).
			Padding(1, 2)

	MenuBoxStyle = lipgloss.NewStyle().
			Padding(1, 0).
			MarginTop(1)

	CopyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888")).
			Italic(true).
			MarginBottom(1).
			PaddingLeft(2)
)
