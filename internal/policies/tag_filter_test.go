package policies

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagFilterMatches(t *testing.T) {
	tests := []struct {
		name    string
		include []string
		exclude []string
		tags    []string
		want    bool
	}{
		{name: "empty filter selects all", tags: []string{"anything"}, want: true},
		{name: "empty filter selects untagged", want: true},
		{name: "include exact match", include: []string{"release"}, tags: []string{"release"}, want: true},
		{name: "include exact miss", include: []string{"release"}, tags: []string{"dev"}, want: false},
		{name: "include misses untagged", include: []string{"release"}, want: false},
		{name: "include prefix", include: []string{"py*"}, tags: []string{"python3"}, want: true},
		{name: "include wildcard matches any tagged", include: []string{"*"}, tags: []string{"whatever"}, want: true},
		{name: "include wildcard misses untagged", include: []string{"*"}, want: false},
		{name: "exclude wins over include", include: []string{"release"}, exclude: []string{"release"}, tags: []string{"release"}, want: false},
		{name: "exclude prefix", exclude: []string{"third_*"}, tags: []string{"third_party"}, want: false},
		{name: "exclude miss keeps target", exclude: []string{"skip"}, tags: []string{"release"}, want: true},
		{name: "blank patterns are ignored", include: []string{"  ", ""}, tags: []string{"release"}, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := NewTagFilter(tt.include, tt.exclude)
			assert.Equal(t, tt.want, filter.Matches(tt.tags))
		})
	}
}
