package ui

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"uvctl/internal/reconcile"
)

const maxSuggestions = 5

// suggestionSource collects candidate versions: recent history first, then
// bare versions from the last List Available, then installed ones.
func (m model) suggestionSource() []string {
	seen := map[string]struct{}{}
	var out []string
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	for _, h := range m.hist.Items() {
		add(h)
	}
	for _, a := range m.snap.Available {
		add(reconcile.PythonVersion(a.Key))
	}
	for _, v := range m.snap.Versions {
		add(v.Version)
	}
	return out
}

// rankSuggestions fuzzy-matches query against source, best first.
func rankSuggestions(query string, source []string, limit int) []string {
	query = strings.TrimSpace(query)
	if query == "" || len(source) == 0 {
		return nil
	}
	matches := fuzzy.Find(query, source)
	out := make([]string, 0, limit)
	for _, mt := range matches {
		if mt.Str == query {
			continue
		}
		out = append(out, mt.Str)
		if len(out) == limit {
			break
		}
	}
	return out
}

func (m *model) refreshSuggestions() {
	if !m.ti.Focused() {
		m.suggestions = nil
		m.suggestIndex = 0
		return
	}
	m.suggestions = rankSuggestions(m.ti.Value(), m.suggestionSource(), maxSuggestions)
	if m.suggestIndex >= len(m.suggestions) {
		m.suggestIndex = 0
	}
}

// completeSuggestion replaces the input with the selected suggestion.
func (m *model) completeSuggestion() bool {
	if len(m.suggestions) == 0 {
		return false
	}
	m.ti.SetValue(m.suggestions[m.suggestIndex])
	m.ti.CursorEnd()
	m.suggestions = nil
	m.suggestIndex = 0
	return true
}

func renderSuggestions(width int, items []string, sel int) []string {
	if len(items) == 0 {
		return nil
	}
	lines := make([]string, 0, len(items))
	for i, s := range items {
		s = truncCell(s, maxInt(4, width-4))
		if i == sel {
			lines = append(lines, AccentBold().Render("› "+s))
			continue
		}
		lines = append(lines, MutedStyle().Render("  "+s))
	}
	return lines
}
