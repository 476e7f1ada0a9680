package screen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"weather-screen/internal/icons"
	"weather-screen/internal/models"
)

const missing = "--"

func (m *Model) View() string {
	if m.forecast.Loading() {
		return m.place(m.viewLoading())
	}

	var sections []string
	sections = append(sections, m.viewSearchBar())
	if overlay := m.viewCandidates(); overlay != "" {
		sections = append(sections, overlay)
	}

	if err := m.forecast.Err(); err != nil {
		sections = append(sections, m.viewError(err))
	} else {
		sections = append(sections, m.viewCurrent(), m.viewDailyStrip())
	}

	sections = append(sections, m.viewHelp())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) place(content string) string {
	if m.width <= 0 || m.height <= 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) viewLoading() string {
	caption := "Loading forecast"
	if city := m.forecast.City(); city != "" {
		caption = fmt.Sprintf("Loading forecast for %s", city)
	}
	return m.spinner.View() + " " + mutedStyle.Render(caption)
}

func (m *Model) viewSearchBar() string {
	if !m.showSearch {
		return mutedStyle.Render("🔍 press / to search")
	}

	bar := searchBoxStyle.Render(m.input.View())
	if err := m.search.Err(); err != nil {
		bar = lipgloss.JoinVertical(lipgloss.Left, bar, errorStyle.Render("search failed: "+err.Error()))
	}
	return bar
}

// viewCandidates renders the candidate overlay; it is only shown while the
// search bar is open and there is something to pick.
func (m *Model) viewCandidates() string {
	candidates := m.search.Candidates()
	if !m.showSearch || len(candidates) == 0 {
		return ""
	}

	rows := make([]string, 0, len(candidates))
	for i, loc := range candidates {
		style := candidateStyle
		marker := "  "
		if i == m.selected {
			style = candidateSelectedStyle
			marker = "› "
		}
		rows = append(rows, style.Render(marker+"📍 "+loc.Label()))
	}

	return candidateListStyle.Render(strings.Join(rows, "\n"))
}

func (m *Model) viewCurrent() string {
	f := m.forecast.Payload()

	header := missing
	if place, ok := f.Place(); ok {
		header = cityStyle.Render(place.Name)
		if place.Country != "" {
			header += countryStyle.Render(", " + place.Country)
		}
	}

	condition, hasCondition := f.CurrentCondition()
	asset, _ := icons.For(condition)

	temp := missing
	if v, ok := f.CurrentTemp(); ok {
		temp = models.FormatTemp(v)
	}

	conditionText := missing
	if hasCondition {
		conditionText = condition
	}

	wind := missing
	if v, ok := f.CurrentWind(); ok {
		wind = strconv.FormatFloat(v, 'f', -1, 64) + " km"
	}
	humidity := missing
	if v, ok := f.CurrentHumidity(); ok {
		humidity = strconv.Itoa(v) + "%"
	}
	sunrise := missing
	if v, ok := f.Sunrise(); ok {
		sunrise = v
	}

	stats := lipgloss.JoinHorizontal(lipgloss.Top,
		statStyle.Render("💨 "+wind),
		statStyle.Render("💧 "+humidity),
		statStyle.Render("🌅 "+sunrise),
	)

	panel := lipgloss.JoinVertical(lipgloss.Center,
		header,
		"",
		asset.Glyph,
		tempStyle.Render(temp),
		conditionStyle.Render(conditionText),
		"",
		stats,
	)

	if m.width > 0 {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, panel)
	}
	return panel
}

// viewDailyStrip renders one card per forecast day, in payload order, and
// shows the window that fits the terminal width.
func (m *Model) viewDailyStrip() string {
	days := m.forecast.Payload().Days()
	title := sectionTitleStyle.Render("📅 Daily forecast")
	if len(days) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title, mutedStyle.Render("no daily forecast"))
	}

	visible := m.visibleDays()
	start := m.stripOffset
	end := min(start+visible, len(days))

	cards := make([]string, 0, end-start)
	for _, day := range days[start:end] {
		cards = append(cards, renderDayCard(day))
	}

	strip := lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	sections := []string{title, strip}
	if visible < len(days) {
		sections = append(sections, mutedStyle.Render(scrollIndicator(start, end, len(days))))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderDayCard(day models.DailyForecast) string {
	condition, _ := day.Condition()
	asset, _ := icons.For(condition)

	avg := missing
	if v, ok := day.AvgTemp(); ok {
		avg = models.FormatTemp(v)
	}

	return dayCardStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		asset.Glyph,
		day.DayName(),
		avg,
	))
}

func scrollIndicator(start, end, total int) string {
	left, right := " ", " "
	if start > 0 {
		left = "‹"
	}
	if end < total {
		right = "›"
	}
	return fmt.Sprintf("%s %d-%d of %d %s", left, start+1, end, total, right)
}

func (m *Model) viewError(err error) string {
	city := m.forecast.City()
	body := lipgloss.JoinVertical(lipgloss.Left,
		errorStyle.Render(fmt.Sprintf("Could not load the forecast for %s", city)),
		mutedStyle.Render(err.Error()),
		"",
		"press r to retry",
	)
	return errorPanelStyle.Render(body)
}

func (m *Model) viewHelp() string {
	if m.showSearch {
		return helpStyle.Render("↑/↓ choose · enter select · esc close")
	}
	if m.forecast.Err() != nil {
		return helpStyle.Render("r retry · / search · q quit")
	}
	return helpStyle.Render("/ search · ←/→ scroll · q quit")
}
