// Package host provides an in-memory implementation of the CMS host the loader
// registers assets into, and renders the resulting page markup.
package host

import (
	"slices"
	"sync"

	"go.trai.ch/assetloader/internal/core/domain"
	"go.trai.ch/assetloader/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.Registry      = (*Host)(nil)
	_ ports.Hooks         = (*Host)(nil)
	_ ports.BlockRegistry = (*Host)(nil)
)

type fragment struct {
	id       string
	priority int
	markup   string
}

type tagFilter struct {
	id     string
	filter ports.TagFilter
}

// Host holds the script, style and block registries of one page render.
// It is safe for concurrent use.
type Host struct {
	mu sync.Mutex

	scripts     map[string]*domain.Script
	scriptOrder []string
	styles      map[string]*domain.Style
	styleOrder  []string

	scriptQueue []string
	styleQueue  []string

	head    []fragment
	footer  []fragment
	filters []tagFilter

	blocks     map[string]domain.BlockType
	blockOrder []string
}

// New creates an empty Host.
func New() *Host {
	return &Host{
		scripts: make(map[string]*domain.Script),
		styles:  make(map[string]*domain.Style),
		blocks:  make(map[string]domain.BlockType),
	}
}

// RegisterScript adds a script. It returns false if the handle is already registered.
func (h *Host) RegisterScript(script domain.Script) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if script.Handle == "" {
		return false
	}
	if _, ok := h.scripts[script.Handle]; ok {
		return false
	}
	script.Deps = slices.Clone(script.Deps)
	h.scripts[script.Handle] = &script
	h.scriptOrder = append(h.scriptOrder, script.Handle)
	return true
}

// RegisterStyle adds a style. It returns false if the handle is already registered.
func (h *Host) RegisterStyle(style domain.Style) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if style.Handle == "" {
		return false
	}
	if _, ok := h.styles[style.Handle]; ok {
		return false
	}
	style.Deps = slices.Clone(style.Deps)
	h.styles[style.Handle] = &style
	h.styleOrder = append(h.styleOrder, style.Handle)
	return true
}

// Script returns a copy of the script registered under handle.
func (h *Host) Script(handle string) (domain.Script, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	s, ok := h.scripts[handle]
	if !ok {
		return domain.Script{}, false
	}
	out := *s
	out.Deps = slices.Clone(s.Deps)
	return out, true
}

// Style returns a copy of the style registered under handle.
func (h *Host) Style(handle string) (domain.Style, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	s, ok := h.styles[handle]
	if !ok {
		return domain.Style{}, false
	}
	out := *s
	out.Deps = slices.Clone(s.Deps)
	return out, true
}

// ScriptBySrc returns the first script registered with the given src.
func (h *Host) ScriptBySrc(src string) (domain.Script, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, handle := range h.scriptOrder {
		s := h.scripts[handle]
		if s.Src != "" && s.Src == src {
			out := *s
			out.Deps = slices.Clone(s.Deps)
			return out, true
		}
	}
	return domain.Script{}, false
}

// SetScriptDeps replaces the dependency list of a registered script in place.
func (h *Host) SetScriptDeps(handle string, deps []string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	s, ok := h.scripts[handle]
	if !ok {
		return false
	}
	s.Deps = slices.Clone(deps)
	return true
}

// EnqueueScript marks a registered script for output on the page.
func (h *Host) EnqueueScript(handle string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.scripts[handle]; !ok {
		return false
	}
	if !slices.Contains(h.scriptQueue, handle) {
		h.scriptQueue = append(h.scriptQueue, handle)
	}
	return true
}

// EnqueueStyle marks a registered style for output on the page.
func (h *Host) EnqueueStyle(handle string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.styles[handle]; !ok {
		return false
	}
	if !slices.Contains(h.styleQueue, handle) {
		h.styleQueue = append(h.styleQueue, handle)
	}
	return true
}

// Scripts returns every registered script in registration order.
func (h *Host) Scripts() []domain.Script {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]domain.Script, 0, len(h.scriptOrder))
	for _, handle := range h.scriptOrder {
		s := *h.scripts[handle]
		s.Deps = slices.Clone(s.Deps)
		out = append(out, s)
	}
	return out
}

// Styles returns every registered style in registration order.
func (h *Host) Styles() []domain.Style {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]domain.Style, 0, len(h.styleOrder))
	for _, handle := range h.styleOrder {
		s := *h.styles[handle]
		s.Deps = slices.Clone(s.Deps)
		out = append(out, s)
	}
	return out
}

// AddHeadFragment prints markup in the document head. Lower priorities print first.
func (h *Host) AddHeadFragment(id string, priority int, markup string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if hasFragment(h.head, id) {
		return false
	}
	h.head = append(h.head, fragment{id: id, priority: priority, markup: markup})
	return true
}

// AddFooterFragment prints markup at the end of the document body.
func (h *Host) AddFooterFragment(id string, priority int, markup string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if hasFragment(h.footer, id) {
		return false
	}
	h.footer = append(h.footer, fragment{id: id, priority: priority, markup: markup})
	return true
}

// AddScriptTagFilter installs a filter applied to every printed script tag.
func (h *Host) AddScriptTagFilter(id string, filter ports.TagFilter) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, f := range h.filters {
		if f.id == id {
			return false
		}
	}
	h.filters = append(h.filters, tagFilter{id: id, filter: filter})
	return true
}

// RegisterBlockType adds a block type.
func (h *Host) RegisterBlockType(block domain.BlockType) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if block.Name == "" {
		return domain.ErrBlockNameMissing
	}
	if _, ok := h.blocks[block.Name]; ok {
		return zerr.With(domain.ErrBlockAlreadyRegistered, "block", block.Name)
	}
	h.blocks[block.Name] = block
	h.blockOrder = append(h.blockOrder, block.Name)
	return nil
}

// BlockType returns the block registered under name.
func (h *Host) BlockType(name string) (domain.BlockType, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	b, ok := h.blocks[name]
	return b, ok
}

// BlockTypes returns every registered block in registration order.
func (h *Host) BlockTypes() []domain.BlockType {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]domain.BlockType, 0, len(h.blockOrder))
	for _, name := range h.blockOrder {
		out = append(out, h.blocks[name])
	}
	return out
}

func hasFragment(list []fragment, id string) bool {
	return slices.ContainsFunc(list, func(f fragment) bool { return f.id == id })
}
