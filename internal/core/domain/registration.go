package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Script is a script registration held by the host registry.
type Script struct {
	Handle   string   `json:"handle"`
	Src      string   `json:"src"`
	Deps     []string `json:"deps,omitempty"`
	Version  string   `json:"version,omitempty"`
	InFooter bool     `json:"in_footer"`
}

// Style is a style registration held by the host registry.
// An empty Src makes the style a dependency-only bundle.
type Style struct {
	Handle  string   `json:"handle"`
	Src     string   `json:"src,omitempty"`
	Deps    []string `json:"deps,omitempty"`
	Version string   `json:"version,omitempty"`
}

// HasDep reports whether the script depends on handle.
func (s Script) HasDep(handle string) bool {
	return slices.Contains(s.Deps, handle)
}

// Digest formats a 64-bit hash as 16 hex digits, the form used for
// content versions and runtime chunk handles.
func Digest(sum uint64) string {
	return fmt.Sprintf("%016x", sum)
}

// IsRuntimeHandle reports whether a handle was generated for a runtime chunk.
func IsRuntimeHandle(handle string) bool {
	return handle == DefaultRuntimeHandle || strings.HasPrefix(handle, RuntimeHandlePrefix)
}

// SplitRuntimeDeps separates runtime chunk handles from the other dependencies, keeping order.
func SplitRuntimeDeps(deps []string) (own, runtime []string) {
	for _, d := range deps {
		if IsRuntimeHandle(d) {
			runtime = append(runtime, d)
			continue
		}
		own = append(own, d)
	}
	return own, runtime
}

// IncludesHMRDependency reports whether deps require the hot-reloading runtime.
func IncludesHMRDependency(deps []string) bool {
	return slices.Contains(deps, HMRRuntimeHandle)
}
