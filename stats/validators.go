// SPDX-License-Identifier: MIT

package stats

import "fmt"

// validateProperties checks a non-empty list of distinct, well-formed properties
// and returns the product of their dimensions.
func validateProperties(props []Property) (int, error) {
	if len(props) == 0 {
		return 0, ErrNoProperties
	}
	seen := make(map[string]struct{}, len(props))
	total := 1
	for _, p := range props {
		if p.Dimension < 1 {
			return 0, fmt.Errorf("property %q dimension %d: %w", p.ID, p.Dimension, ErrInvalidDimension)
		}
		if _, dup := seen[p.ID]; dup {
			return 0, fmt.Errorf("property %q: %w", p.ID, ErrDuplicateProperty)
		}
		seen[p.ID] = struct{}{}
		total *= p.Dimension
	}

	return total, nil
}

// without returns props with index i removed, order preserved.
func without(props []Property, i int) []Property {
	out := make([]Property, 0, len(props)-1)
	out = append(out, props[:i]...)

	return append(out, props[i+1:]...)
}
