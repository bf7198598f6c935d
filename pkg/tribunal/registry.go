// Package tribunal resolves validated case identifiers to the court
// system that owns them and builds public consultation links for the
// court's e-filing platform.
package tribunal

import (
	"fmt"
	"sort"
	"sync"

	"github.com/coolbeans/prazo/pkg/cnj"
)

// Branch classifies a court within the national judiciary.
type Branch string

const (
	BranchSupreme   Branch = "supreme"
	BranchSuperior  Branch = "superior"
	BranchFederal   Branch = "federal"
	BranchLabor     Branch = "labor"
	BranchElectoral Branch = "electoral"
	BranchMilitary  Branch = "military"
	BranchState     Branch = "state"
)

// Platform identifies the e-filing platform family a court runs on. The
// family selects the consultation-URL template.
type Platform string

const (
	PlatformPJe    Platform = "pje"
	PlatformESAJ   Platform = "esaj"
	PlatformEproc  Platform = "eproc"
	PlatformCustom Platform = "custom"
)

// Entry describes one court system in the registry. Read-only reference
// data.
type Entry struct {
	Name     string   `json:"name"`
	Acronym  string   `json:"acronym"`
	Platform Platform `json:"platform"`
	BaseURL  string   `json:"base_url"`
	Branch   Branch   `json:"branch"`
}

// Judicial-branch segment digits of the case identifier.
const (
	segmentSupreme       = 1
	segmentSuperior      = 2
	segmentFederal       = 3
	segmentMilitaryUnion = 4
	segmentLabor         = 5
	segmentElectoral     = 6
	segmentStateMilitary = 7
	segmentState         = 8
)

// Registry maps (segment, court code) keys to court entries. It is
// swappable reference data: courts absent from the seed table resolve to
// not-found, which callers treat as a normal outcome. Safe for concurrent
// use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// key builds the composite lookup key. Single-court segments (Supreme,
// Superior, Military union) ignore the court code.
func key(segment, court int) string {
	switch segment {
	case segmentSupreme, segmentSuperior, segmentMilitaryUnion:
		return fmt.Sprintf("%d", segment)
	default:
		return fmt.Sprintf("%d.%02d", segment, court)
	}
}

// Register adds or replaces an entry for a (segment, court code) pair.
func (r *Registry) Register(segment, court int, entry Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[key(segment, court)] = entry
}

// Resolve maps a validated identifier to its owning court system.
// The boolean is false for unknown segments and for courts missing from
// the registry; both are expected outcomes, never errors.
func (r *Registry) Resolve(id cnj.CaseIdentifier) (Entry, bool) {
	segment := id.SegmentDigit()
	switch segment {
	case segmentSupreme, segmentSuperior, segmentFederal,
		segmentMilitaryUnion, segmentLabor, segmentElectoral,
		segmentStateMilitary, segmentState:
		// Known segment; fall through to the table lookup.
	default:
		return Entry{}, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[key(segment, id.CourtCode())]
	return entry, ok
}

// List returns all registered entries sorted by acronym.
func (r *Registry) List() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries := make([]Entry, 0, len(r.entries))
	for _, entry := range r.entries {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Acronym < entries[j].Acronym
	})
	return entries
}

// Count returns the number of registered entries.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
