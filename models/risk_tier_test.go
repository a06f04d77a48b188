package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTierForRisk(t *testing.T) {
	assert.Equal(t, RiskTierLow, TierForRisk(0.5))
	assert.Equal(t, RiskTierLow, TierForRisk(0.99))
	assert.Equal(t, RiskTierMedium, TierForRisk(1.0))
	assert.Equal(t, RiskTierHigh, TierForRisk(1.01))
	assert.Equal(t, RiskTierHigh, TierForRisk(2.0))

	// out of range levels are not rejected
	assert.Equal(t, RiskTierLow, TierForRisk(-3))
	assert.Equal(t, RiskTierHigh, TierForRisk(50))
}

func TestDefaultTierTable(t *testing.T) {
	tiers := DefaultTierTable()
	assert.Equal(t, []string{"JNJ", "PG", "KO", "PEP", "WMT", "UNH"}, tiers.Symbols(RiskTierLow))
	assert.Equal(t, []string{"AAPL", "MSFT", "V", "GOOGL", "MA", "HD"}, tiers.Symbols(RiskTierMedium))
	assert.Equal(t, []string{"TSLA", "NVDA", "AMD", "NFLX", "SQ", "CRWD"}, tiers.Symbols(RiskTierHigh))
	assert.Equal(t, tiers.Symbols(RiskTierMedium), tiers.SymbolsForRisk(1.0))
	assert.Nil(t, tiers.Symbols(RiskTier(7)))
}

func TestTierTableSymbolsIsACopy(t *testing.T) {
	tiers := DefaultTierTable()
	symbols := tiers.Symbols(RiskTierLow)
	symbols[0] = "XXX"
	assert.Equal(t, "JNJ", tiers.Symbols(RiskTierLow)[0])
}

func TestNewTierTableOverrides(t *testing.T) {
	tiers := NewTierTable(map[RiskTier][]string{
		RiskTierHigh: {" btcusdt", "ETHUSDT", "", "BTCUSDT"},
		RiskTierLow:  {},
	})
	assert.Equal(t, []string{"BTCUSDT", "ETHUSDT"}, tiers.Symbols(RiskTierHigh))
	assert.Equal(t, DefaultTierTable().Symbols(RiskTierLow), tiers.Symbols(RiskTierLow))
}

func TestParseRiskTier(t *testing.T) {
	for _, tier := range RiskTiers {
		parsed, err := ParseRiskTier(tier.String())
		require.NoError(t, err)
		assert.Equal(t, tier, parsed)
	}
	parsed, err := ParseRiskTier(" High ")
	require.NoError(t, err)
	assert.Equal(t, RiskTierHigh, parsed)

	_, err = ParseRiskTier("extreme")
	assert.True(t, errors.Is(err, ErrInputFormat))
}

func TestConfigurationErrorIsDomainError(t *testing.T) {
	assert.True(t, errors.Is(ErrConfiguration, ErrDomain))
	assert.False(t, errors.Is(ErrDomain, ErrConfiguration))
}
