package models

import (
	"fmt"
	"strings"
)

// RiskTier buckets the risk level given by the user into a fixed basket of symbols.
type RiskTier int

const (
	RiskTierLow RiskTier = iota
	RiskTierMedium
	RiskTierHigh
)

// RiskTiers lists every tier in ascending risk order.
var RiskTiers = [...]RiskTier{RiskTierLow, RiskTierMedium, RiskTierHigh}

var defaultTierSymbols = [...][6]string{
	RiskTierLow:    {"JNJ", "PG", "KO", "PEP", "WMT", "UNH"},
	RiskTierMedium: {"AAPL", "MSFT", "V", "GOOGL", "MA", "HD"},
	RiskTierHigh:   {"TSLA", "NVDA", "AMD", "NFLX", "SQ", "CRWD"},
}

// TierForRisk maps a risk level to its tier: below 1 is low, exactly 1 is medium
// and anything above is high. Out of range values are accepted as they are.
func TierForRisk(risk float64) RiskTier {
	if risk < 1 {
		return RiskTierLow
	} else if risk == 1 {
		return RiskTierMedium
	}
	return RiskTierHigh
}

func (t RiskTier) String() string {
	switch t {
	case RiskTierLow:
		return "low"
	case RiskTierMedium:
		return "medium"
	case RiskTierHigh:
		return "high"
	default:
		return fmt.Sprintf("RiskTier(%d)", int(t))
	}
}

// ParseRiskTier parses a tier name as printed by String.
func ParseRiskTier(name string) (RiskTier, error) {
	for _, tier := range RiskTiers {
		if strings.EqualFold(strings.TrimSpace(name), tier.String()) {
			return tier, nil
		}
	}
	return RiskTierLow, fmt.Errorf("%w: unknown risk tier %q", ErrInputFormat, name)
}

// TierTable binds every RiskTier to its ordered symbol list. The order is the
// tie-break order used when two symbols forecast the same growth.
// A TierTable never changes after construction.
type TierTable struct {
	symbols [len(RiskTiers)][]string
}

// DefaultTierTable returns the built-in baskets.
func DefaultTierTable() TierTable {
	return NewTierTable(nil)
}

// NewTierTable returns the built-in baskets where tiers present in overrides with a
// non-empty list are replaced by the override.
func NewTierTable(overrides map[RiskTier][]string) TierTable {
	var table TierTable
	for _, tier := range RiskTiers {
		symbols := defaultTierSymbols[tier][:]
		if override := overrides[tier]; len(override) > 0 {
			symbols = override
		}
		table.symbols[tier] = normalizeSymbols(symbols)
	}
	return table
}

// Symbols returns a copy of the symbols of the tier, in declaration order.
func (tt TierTable) Symbols(tier RiskTier) []string {
	if tier < RiskTierLow || tier > RiskTierHigh {
		return nil
	}
	return append([]string(nil), tt.symbols[tier]...)
}

// SymbolsForRisk is a shortcut for Symbols(TierForRisk(risk)).
func (tt TierTable) SymbolsForRisk(risk float64) []string {
	return tt.Symbols(TierForRisk(risk))
}

// normalizeSymbols upper-cases, trims and drops blank or duplicated symbols while
// keeping the first occurrence order.
func normalizeSymbols(symbols []string) []string {
	seen := make(map[string]bool, len(symbols))
	result := make([]string, 0, len(symbols))
	for _, symbol := range symbols {
		symbol = strings.ToUpper(strings.TrimSpace(symbol))
		if symbol == "" || seen[symbol] {
			continue
		}
		seen[symbol] = true
		result = append(result, symbol)
	}
	return result
}
