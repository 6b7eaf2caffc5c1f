// SPDX-License-Identifier: MIT

package ensemble

import "fmt"

// Kind enumerates the supported ensemble families.
type Kind int

const (
	KindSpecifiedDegreeDist Kind = iota + 1
	KindErdosRenyi
	KindNM
	KindMultiGraph
)

// Type names used in definition files.
const (
	TypeSpecifiedDegreeDist = "SpecifiedDegreeDistEnsemble"
	TypeErdosRenyi          = "ErdosRenyiGraphEnsemble"
	TypeNM                  = "NMGraphEnsemble"
	TypeMultiGraph          = "MultiGraphEnsemble"
)

// Kinds lists every kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindSpecifiedDegreeDist, KindErdosRenyi, KindNM, KindMultiGraph}
}

// String returns the definition-file type name of k.
func (k Kind) String() string {
	switch k {
	case KindSpecifiedDegreeDist:
		return TypeSpecifiedDegreeDist
	case KindErdosRenyi:
		return TypeErdosRenyi
	case KindNM:
		return TypeNM
	case KindMultiGraph:
		return TypeMultiGraph
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps a definition-file type name to its Kind.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds() {
		if k.String() == name {
			return k, nil
		}
	}

	return 0, fmt.Errorf("ParseKind: %q: %w", name, ErrUnknownEnsemble)
}
