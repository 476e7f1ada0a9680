package screen

import (
	"context"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"weather-screen/config"
	"weather-screen/internal/models"
	"weather-screen/pkg/logger"
)

// SearchController turns search-box edits into debounced location searches
// and holds the resulting candidate list.
type SearchController struct {
	ctx      context.Context
	client   WeatherClient
	cfg      config.ScreenConfig
	l        *logger.Logger
	debounce *Debouncer
	inflight requests

	query      string
	candidates []models.Location
	err        error
}

func NewSearchController(ctx context.Context, client WeatherClient, cfg config.ScreenConfig, l *logger.Logger) *SearchController {
	return &SearchController{
		ctx:      ctx,
		client:   client,
		cfg:      cfg,
		l:        l,
		debounce: NewDebouncer(time.Duration(cfg.DebounceMS) * time.Millisecond),
	}
}

func (c *SearchController) Query() string {
	return c.query
}

// Candidates are in the order the provider returned them.
func (c *SearchController) Candidates() []models.Location {
	return c.candidates
}

// Err is the failure of the last applied search, if any.
func (c *SearchController) Err() error {
	return c.err
}

// OnTextChanged records the new search text and (re)starts the debounce
// timer. Text at or under the length threshold clears the candidates at once.
func (c *SearchController) OnTextChanged(text string) tea.Cmd {
	c.query = text
	if !c.searchable(text) {
		c.clear()
	}
	return c.debounce.Schedule(text)
}

// onDebounced issues the search once the text has been quiet for the delay.
func (c *SearchController) onDebounced(msg debounceMsg) tea.Cmd {
	text, ok := c.debounce.Fire(msg)
	if !ok || !c.searchable(text) {
		return nil
	}

	ctx, gen, cancel := c.inflight.start(c.ctx, c.cfg.DiscardStale)
	c.l.Debug("searching locations", map[string]any{"query": text, "gen": gen})

	return searchCmd(ctx, cancel, c.client, gen, text)
}

// onLoaded applies a search answer and reports whether it was used.
func (c *SearchController) onLoaded(msg LocationsLoadedMsg) bool {
	if !c.inflight.accept(msg.gen, c.cfg.DiscardStale) {
		c.l.Debug("discarding stale search results", map[string]any{"query": msg.Query, "gen": msg.gen})
		return false
	}

	if msg.Err != nil {
		c.err = msg.Err
		c.l.Warning("location search failed", map[string]any{"query": msg.Query, "err": msg.Err})
		return true
	}

	c.err = nil
	c.candidates = msg.Locations
	return true
}

// onSelected empties the list after the user picked a candidate. A pending
// debounce would only bring the list back, so it is dropped as well.
func (c *SearchController) onSelected() {
	c.debounce.Cancel()
	c.clear()
}

func (c *SearchController) clear() {
	c.candidates = nil
	c.err = nil
	if c.cfg.DiscardStale {
		c.inflight.invalidate()
	}
}

func (c *SearchController) searchable(text string) bool {
	return utf8.RuneCountInString(text) > c.cfg.MinQueryLength
}
