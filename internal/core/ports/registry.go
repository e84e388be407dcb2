package ports

import "go.trai.ch/assetloader/internal/core/domain"

// Registry is the host's registry of scripts and styles.
//
// Registration never replaces an existing handle; callers that need to change
// a registration use SetScriptDeps.
//
//go:generate mockgen -source=registry.go -destination=mocks/mock_registry.go -package=mocks
type Registry interface {
	// RegisterScript adds a script. It returns false if the handle is already registered.
	RegisterScript(script domain.Script) bool

	// RegisterStyle adds a style. It returns false if the handle is already registered.
	RegisterStyle(style domain.Style) bool

	// Script returns a copy of the script registered under handle.
	Script(handle string) (domain.Script, bool)

	// Style returns a copy of the style registered under handle.
	Style(handle string) (domain.Style, bool)

	// ScriptBySrc returns the first script registered with the given src.
	ScriptBySrc(src string) (domain.Script, bool)

	// SetScriptDeps replaces the dependency list of a registered script in place.
	SetScriptDeps(handle string, deps []string) bool

	// EnqueueScript marks a registered script for output on the page.
	EnqueueScript(handle string) bool

	// EnqueueStyle marks a registered style for output on the page.
	EnqueueStyle(handle string) bool
}

// TagFilter rewrites the HTML of a script tag before it is printed.
type TagFilter func(tag, handle, src string) string

// Hooks lets the loader inject markup into the rendered page.
type Hooks interface {
	// AddHeadFragment prints markup in the document head. Lower priorities print first.
	// It returns false if a fragment with the same id exists.
	AddHeadFragment(id string, priority int, markup string) bool

	// AddFooterFragment prints markup at the end of the document body.
	// It returns false if a fragment with the same id exists.
	AddFooterFragment(id string, priority int, markup string) bool

	// AddScriptTagFilter installs a filter applied to every printed script tag.
	// It returns false if a filter with the same id exists.
	AddScriptTagFilter(id string, filter TagFilter) bool
}

// BlockRegistry is the host's registry of block types.
type BlockRegistry interface {
	// RegisterBlockType adds a block type.
	RegisterBlockType(block domain.BlockType) error

	// BlockType returns the block registered under name.
	BlockType(name string) (domain.BlockType, bool)
}
