package bootstrap

import (
	"sort"

	"github.com/sirupsen/logrus"
)

// CapabilitySet is an unordered set of extension or layer names.
type CapabilitySet map[string]struct{}

// NewCapabilitySet builds a set from names. Duplicates collapse.
func NewCapabilitySet(names ...string) CapabilitySet {
	set := make(CapabilitySet, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

func (s CapabilitySet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Names returns the set contents sorted.
func (s CapabilitySet) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsSubset reports whether every name in required is present in available.
func IsSubset(available CapabilitySet, required []string) bool {
	return len(Missing(available, required)) == 0
}

// Missing returns the names of required that are absent from available, in
// the order they were required. Every name is checked.
func Missing(available CapabilitySet, required []string) []string {
	var missing []string
	for _, name := range required {
		if !available.Has(name) {
			missing = append(missing, name)
		}
	}
	return missing
}

// checkSubset is IsSubset with per-name reporting when diagnostics are on.
func checkSubset(log logrus.FieldLogger, diagnostics bool, kind CapabilityKind, available CapabilitySet, required []string) error {
	missing := Missing(available, required)
	if diagnostics {
		for _, name := range required {
			entry := log.WithField(string(kind), name)
			if available.Has(name) {
				entry.Debug("required capability found")
			} else {
				entry.Warn("required capability NOT found")
			}
		}
	}

	if len(missing) > 0 {
		return missingCapabilityError(kind, missing)
	}
	return nil
}
