package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThresholdFitsChain(t *testing.T) {
	// Chain thresholds are 1, 3, 6.
	chain := testChain()

	tests := []struct {
		name      string
		id        uint
		toLevelUp uint
		fits      bool
	}{
		{"middle level between neighbors", 2, 4, true},
		{"middle level keeps its threshold", 2, 3, true},
		{"middle level dropped to predecessor", 2, 1, false},
		{"middle level below predecessor", 2, 0, false},
		{"middle level raised to successor", 2, 6, false},
		{"middle level raised past successor", 2, 9, false},
		{"first level below successor", 1, 2, true},
		{"first level raised to successor", 1, 3, false},
		{"last level has no upper bound", 3, 100, true},
		{"last level dropped to predecessor", 3, 3, false},
		{"unknown level id", 7, 5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.fits, thresholdFitsChain(chain, tt.id, tt.toLevelUp))
		})
	}
}
