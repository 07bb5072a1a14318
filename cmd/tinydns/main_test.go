package main

import (
	"testing"

	"github.com/matharman/tinydns/internal/dns/domain"
	"github.com/stretchr/testify/assert"
)

func TestRRTypeFromString(t *testing.T) {
	cases := []struct {
		input string
		want  domain.RRType
	}{
		{"A", domain.RRTypeA},
		{"a", domain.RRTypeA},
		{"AAAA", domain.RRTypeAAAA},
		{"aaaa", domain.RRTypeAAAA},
		{"CNAME", domain.RRTypeCNAME},
		{"TXT", domain.RRTypeTXT},
		{"SRV", domain.RRTypeSRV},
		{"", domain.RRTypeA},
		{"bogus", domain.RRTypeA},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, rrTypeFromString(tc.input))
	}
}
