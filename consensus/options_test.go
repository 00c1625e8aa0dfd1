package consensus_test

import (
	"testing"

	"github.com/katalvlaran/distopt/consensus"
	"github.com/stretchr/testify/assert"
)

func TestVariant_String(t *testing.T) {
	assert.Equal(t, "relaxed", consensus.VariantRelaxed.String())
	assert.Equal(t, "difference", consensus.VariantDifference.String())
	assert.Equal(t, "tracking", consensus.VariantTracking.String())
	assert.Equal(t, "Variant(9)", consensus.Variant(9).String())
}

func TestDefaultOptions(t *testing.T) {
	o := consensus.DefaultOptions()

	assert.Equal(t, consensus.VariantRelaxed, o.Variant)
	assert.Equal(t, consensus.DefaultRounds, o.Rounds)
	assert.Equal(t, consensus.DefaultPenalty, o.Penalty)
	assert.Equal(t, consensus.DefaultThreshold, o.Threshold)
	assert.Equal(t, 1, o.Workers)
	assert.True(t, o.HaltOnDivergence)
	assert.False(t, o.RetainHistory)
}
