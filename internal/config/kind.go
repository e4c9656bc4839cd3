package config

import (
	"fmt"
	"strings"

	flowerrors "gitflow.dev/gitflow/internal/errors"
)

// BranchKind is one of the five git-flow branch categories
type BranchKind int

const (
	// Feature branches carry new work for the next release
	Feature BranchKind = iota
	// Bugfix branches fix issues on develop
	Bugfix
	// Hotfix branches fix production and finish into master and develop
	Hotfix
	// Release branches stabilize a release and finish into master and develop
	Release
	// Support branches maintain old releases off master
	Support
)

// AllKinds lists every branch kind in display order
var AllKinds = []BranchKind{Feature, Bugfix, Release, Hotfix, Support}

func (k BranchKind) String() string {
	switch k {
	case Feature:
		return "feature"
	case Bugfix:
		return "bugfix"
	case Hotfix:
		return "hotfix"
	case Release:
		return "release"
	case Support:
		return "support"
	default:
		return fmt.Sprintf("BranchKind(%d)", int(k))
	}
}

// ParseBranchKind parses a lowercase kind name
func ParseBranchKind(s string) (BranchKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "feature":
		return Feature, nil
	case "bugfix":
		return Bugfix, nil
	case "hotfix":
		return Hotfix, nil
	case "release":
		return Release, nil
	case "support":
		return Support, nil
	default:
		return 0, fmt.Errorf("%w: unknown branch kind %q", flowerrors.ErrNoActiveKind, s)
	}
}

// Valid reports whether k is one of the five kinds
func (k BranchKind) Valid() bool {
	return k >= Feature && k <= Support
}

// PrefixKey returns the config key holding the kind's prefix
func (k BranchKind) PrefixKey() string {
	return "gitflow.prefix." + k.String()
}

// DefaultPrefix returns the prefix used when none is configured
func (k BranchKind) DefaultPrefix() string {
	return k.String() + "/"
}

// FinishesIntoMaster reports whether finishing merges into master, tags, and back-merges into develop
func (k BranchKind) FinishesIntoMaster() bool {
	return k == Release || k == Hotfix
}

// BasedOnMaster reports whether branches of this kind are compared against master rather than develop
func (k BranchKind) BasedOnMaster() bool {
	return k == Hotfix || k == Support
}
