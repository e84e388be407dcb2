package host

import (
	"cmp"
	"fmt"
	"html"
	"net/url"
	"slices"
	"strings"

	"go.trai.ch/assetloader/internal/core/domain"
)

// Priorities at which the host prints its own queues, matching where a
// CMS prints styles and scripts relative to hooked fragments.
const (
	StylesPriority        = 8
	HeadScriptsPriority   = 9
	FooterScriptsPriority = 20
)

// Page is the markup produced by one render.
type Page struct {
	Head   string `json:"head"`
	Footer string `json:"footer"`
	// Skipped lists enqueued handles left out because a dependency is not registered.
	Skipped []string `json:"skipped,omitempty"`
}

// String returns the page as one document fragment.
func (p Page) String() string {
	var b strings.Builder
	b.WriteString("<!-- head -->\n")
	b.WriteString(p.Head)
	b.WriteString("<!-- footer -->\n")
	b.WriteString(p.Footer)
	return b.String()
}

type section struct {
	priority int
	markup   string
}

// Render prints the enqueued styles and scripts along with every hooked fragment.
// Dependencies print before their dependents; a script loaded in the head pulls
// its dependencies into the head.
func (h *Host) Render() Page {
	h.mu.Lock()
	defer h.mu.Unlock()

	styles, skippedStyles := resolveOrder(h.styleQueue, func(handle string) ([]string, bool) {
		s, ok := h.styles[handle]
		if !ok {
			return nil, false
		}
		return s.Deps, true
	})
	scripts, skippedScripts := resolveOrder(h.scriptQueue, func(handle string) ([]string, bool) {
		s, ok := h.scripts[handle]
		if !ok {
			return nil, false
		}
		return s.Deps, true
	})

	inHead := make(map[string]bool)
	for i := len(scripts) - 1; i >= 0; i-- {
		s := h.scripts[scripts[i]]
		if !s.InFooter || inHead[s.Handle] {
			inHead[s.Handle] = true
			for _, dep := range s.Deps {
				inHead[dep] = true
			}
		}
	}

	var styleMarkup, headScripts, footerScripts strings.Builder
	for _, handle := range styles {
		styleMarkup.WriteString(styleTag(h.styles[handle]))
	}
	for _, handle := range scripts {
		tag := h.scriptTag(h.scripts[handle])
		if inHead[handle] {
			headScripts.WriteString(tag)
		} else {
			footerScripts.WriteString(tag)
		}
	}

	head := []section{
		{priority: StylesPriority, markup: styleMarkup.String()},
		{priority: HeadScriptsPriority, markup: headScripts.String()},
	}
	for _, f := range h.head {
		head = append(head, section{priority: f.priority, markup: f.markup})
	}
	footer := []section{{priority: FooterScriptsPriority, markup: footerScripts.String()}}
	for _, f := range h.footer {
		footer = append(footer, section{priority: f.priority, markup: f.markup})
	}

	return Page{
		Head:    joinSections(head),
		Footer:  joinSections(footer),
		Skipped: append(skippedStyles, skippedScripts...),
	}
}

func joinSections(sections []section) string {
	slices.SortStableFunc(sections, func(a, b section) int {
		return cmp.Compare(a.priority, b.priority)
	})
	var b strings.Builder
	for _, s := range sections {
		if s.markup == "" {
			continue
		}
		b.WriteString(s.markup)
		if !strings.HasSuffix(s.markup, "\n") {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// resolveOrder returns queue plus all transitive dependencies, dependencies first.
// Items with an unregistered dependency are skipped along with their dependents.
func resolveOrder(queue []string, deps func(string) ([]string, bool)) (order, skipped []string) {
	const (
		visiting = iota + 1
		done
		failed
	)
	state := make(map[string]int)

	var visit func(handle string) bool
	visit = func(handle string) bool {
		switch state[handle] {
		case visiting, done:
			return true
		case failed:
			return false
		}
		state[handle] = visiting

		list, ok := deps(handle)
		if !ok {
			state[handle] = failed
			return false
		}
		for _, dep := range list {
			if !visit(dep) {
				state[handle] = failed
				return false
			}
		}

		state[handle] = done
		order = append(order, handle)
		return true
	}

	for _, handle := range queue {
		if !visit(handle) {
			skipped = append(skipped, handle)
		}
	}
	return order, skipped
}

func (h *Host) scriptTag(s *domain.Script) string {
	if s.Src == "" {
		return ""
	}
	tag := fmt.Sprintf("<script src=\"%s\" id=\"%s-js\"></script>\n",
		html.EscapeString(versioned(s.Src, s.Version)), html.EscapeString(s.Handle))
	for _, f := range h.filters {
		tag = f.filter(tag, s.Handle, s.Src)
	}
	return tag
}

func styleTag(s *domain.Style) string {
	if s.Src == "" {
		return ""
	}
	return fmt.Sprintf("<link rel=\"stylesheet\" id=\"%s-css\" href=\"%s\" media=\"all\" />\n",
		html.EscapeString(s.Handle), html.EscapeString(versioned(s.Src, s.Version)))
}

func versioned(src, version string) string {
	if version == "" {
		return src
	}
	sep := "?"
	if strings.Contains(src, "?") {
		sep = "&"
	}
	return src + sep + "ver=" + url.QueryEscape(version)
}
