package domain

import (
	"fmt"
	"strings"
)

// Wire-format limits from RFC 1035 ยง2.3.4.
const (
	// MaxLabelLength is the largest number of octets a single label may hold.
	MaxLabelLength = 63

	// MaxNameLength is the largest number of octets a dotted name may hold,
	// not counting a trailing dot.
	MaxNameLength = 253
)

// ValidateName checks that name is a non-empty dotted hostname whose labels
// each fit within a single wire-format length octet and whose total length
// fits a DNS message.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("name must not be empty")
	}
	trimmed := strings.TrimSuffix(name, ".")
	if len(trimmed) > MaxNameLength {
		return fmt.Errorf("name %q exceeds %d octets", name, MaxNameLength)
	}
	for _, label := range strings.Split(trimmed, ".") {
		if len(label) == 0 {
			return fmt.Errorf("name %q contains an empty label", name)
		}
		if len(label) > MaxLabelLength {
			return fmt.Errorf("label %q exceeds %d octets", label, MaxLabelLength)
		}
	}
	return nil
}
