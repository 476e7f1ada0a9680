// Package screen is the interactive weather screen: a debounced city search,
// the forecast view model and the bubbletea program that renders them.
package screen

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"weather-screen/config"
	"weather-screen/internal/models"
	"weather-screen/pkg/logger"
)

// Model is the bubbletea model of the screen.
type Model struct {
	cfg      config.ScreenConfig
	l        *logger.Logger
	search   *SearchController
	forecast *ForecastViewModel

	input   textinput.Model
	spinner spinner.Model

	showSearch  bool
	selected    int
	stripOffset int
	width       int
	height      int
}

func New(ctx context.Context, client WeatherClient, cfg config.ScreenConfig, l *logger.Logger) *Model {
	ti := textinput.New()
	ti.Placeholder = "Search city"
	ti.Prompt = "🔍 "
	ti.CharLimit = 64
	ti.Width = 30

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = mutedStyle

	return &Model{
		cfg:      cfg,
		l:        l,
		search:   NewSearchController(ctx, client, cfg, l),
		forecast: NewForecastViewModel(ctx, client, cfg, l),
		input:    ti,
		spinner:  sp,
	}
}

func (m *Model) Search() *SearchController {
	return m.search
}

func (m *Model) Forecast() *ForecastViewModel {
	return m.forecast
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.forecast.LoadDefault(), m.spinner.Tick)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampStrip()
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case debounceMsg:
		return m, m.search.onDebounced(msg)

	case LocationsLoadedMsg:
		if m.search.onLoaded(msg) {
			m.selected = 0
		}
		return m, nil

	case ForecastLoadedMsg:
		if m.forecast.onLoaded(msg) && msg.Err == nil {
			m.stripOffset = 0
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// OnCandidateSelected clears the candidates and loads the chosen city.
func (m *Model) OnCandidateSelected(candidate models.Location) tea.Cmd {
	m.search.onSelected()
	m.selected = 0
	return m.forecast.Load(candidate.Name)
}

// ToggleSearch shows or hides the search bar. Text and candidates survive
// a toggle.
func (m *Model) ToggleSearch() tea.Cmd {
	m.showSearch = !m.showSearch
	if m.showSearch {
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}
	if m.forecast.Loading() {
		if msg.String() == "q" {
			return tea.Quit
		}
		return nil
	}
	if m.showSearch {
		return m.handleSearchKey(msg)
	}

	switch msg.String() {
	case "q":
		return tea.Quit
	case "/":
		return m.ToggleSearch()
	case "r":
		return m.forecast.Retry()
	case "left", "h":
		m.scrollStrip(-1)
	case "right", "l":
		m.scrollStrip(1)
	}
	return nil
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	candidates := m.search.Candidates()

	switch msg.String() {
	case "esc":
		return m.ToggleSearch()
	case "up":
		if m.selected > 0 {
			m.selected--
		}
		return nil
	case "down":
		if m.selected < len(candidates)-1 {
			m.selected++
		}
		return nil
	case "enter":
		if m.selected < len(candidates) {
			return m.OnCandidateSelected(candidates[m.selected])
		}
		return nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != before {
		return tea.Batch(cmd, m.search.OnTextChanged(value))
	}
	return cmd
}

// visibleDays is how many day cards fit across the terminal.
func (m *Model) visibleDays() int {
	total := len(m.forecast.Payload().Days())
	if m.width <= 0 {
		return total
	}
	fit := m.width / dayCardWidth
	if fit < 1 {
		fit = 1
	}
	return min(fit, total)
}

func (m *Model) scrollStrip(delta int) {
	m.stripOffset += delta
	m.clampStrip()
}

func (m *Model) clampStrip() {
	maxOffset := len(m.forecast.Payload().Days()) - m.visibleDays()
	if m.stripOffset > maxOffset {
		m.stripOffset = maxOffset
	}
	if m.stripOffset < 0 {
		m.stripOffset = 0
	}
}
