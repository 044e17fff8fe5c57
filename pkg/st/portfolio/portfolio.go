// Package portfolio values the placeholder portfolio against the current markets.
package portfolio

import (
	"github.com/shopspring/decimal"

	"github.com/komsit37/sportstrader/pkg/st/types"
)

var hundred = decimal.NewFromInt(100)

// Sample returns the placeholder portfolio. Its positions reference SampleMarkets ids.
func Sample() types.Portfolio {
	return types.Portfolio{
		Cash: 1250,
		Positions: []types.Position{
			{MarketID: "nfl-kc-superbowl", Quantity: 120, AvgCost: 38},
			{MarketID: "ufc-main-ko", Quantity: 80, AvgCost: 49},
			{MarketID: "epl-ars-title", Quantity: 60, AvgCost: 41},
		},
	}
}

// Line is one valued position.
type Line struct {
	Position types.Position
	// Market is the zero value when Found is false.
	Market      types.Market
	Found       bool
	Mark        decimal.Decimal
	MarketValue decimal.Decimal
	PnL         decimal.Decimal
	DayChange   decimal.Decimal
}

// Summary is the valued portfolio.
type Summary struct {
	Cash      decimal.Decimal
	Value     decimal.Decimal
	DayChange decimal.Decimal
	// DayChangePct is DayChange relative to the value before the change, in percent.
	DayChangePct decimal.Decimal
	Lines        []Line
}

// Summarize values p against markets. Positions with no matching market are marked at cost.
func Summarize(p types.Portfolio, markets []types.Market) Summary {
	byID := make(map[string]types.Market, len(markets))
	for _, m := range markets {
		if _, ok := byID[m.ID]; !ok {
			byID[m.ID] = m
		}
	}

	cash := decimal.NewFromFloat(p.Cash)
	s := Summary{Cash: cash, Value: cash}
	for _, pos := range p.Positions {
		qty := decimal.NewFromFloat(pos.Quantity)
		cost := decimal.NewFromFloat(pos.AvgCost)
		l := Line{Position: pos, Mark: cost}
		if m, ok := byID[pos.MarketID]; ok {
			l.Market, l.Found = m, true
			l.Mark = decimal.NewFromFloat(m.Price)
			l.DayChange = qty.Mul(l.Mark.Sub(previousPrice(m)))
		}
		l.MarketValue = qty.Mul(l.Mark)
		l.PnL = qty.Mul(l.Mark.Sub(cost))

		s.Value = s.Value.Add(l.MarketValue)
		s.DayChange = s.DayChange.Add(l.DayChange)
		s.Lines = append(s.Lines, l)
	}

	if before := s.Value.Sub(s.DayChange); !before.IsZero() {
		s.DayChangePct = s.DayChange.Div(before).Mul(hundred).Round(2)
	}
	return s
}

// previousPrice is the price implied by m's current price and change percentage.
func previousPrice(m types.Market) decimal.Decimal {
	price := decimal.NewFromFloat(m.Price)
	factor := decimal.NewFromInt(1).Add(decimal.NewFromFloat(m.ChangePct).Div(hundred))
	if !factor.IsPositive() {
		return price
	}
	return price.Div(factor)
}
