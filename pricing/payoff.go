package pricing

import "math"

// Payoff calculates the profit or loss per share of an option position at a
// given underlying price.
//
// Parameters:
//   - pos: long or short
//   - opt: call or put
//   - strike: strike price in currency per share
//   - stock: underlying price in currency per share
//   - premium: premium per share, or nil for none (treated as 0.0)
//
// Returns:
//   - Long call:  max(stock - strike, 0)
//   - Long put:   max(strike - stock, 0)
//   - Short call: premium - max(stock - strike, 0)
//   - Short put:  premium - max(strike - stock, 0)
//   - ErrNonPositiveStrike when strike is negative
//   - ErrNonPositiveStock when stock is negative
//   - ErrNonPositivePremium when premium is negative
//
// Inputs are checked in that order and the first violation wins.
func Payoff(pos Position, opt OptionKind, strike, stock float64, premium *float64) (float64, error) {
	if strike < 0 {
		return 0, ErrNonPositiveStrike
	}
	if stock < 0 {
		return 0, ErrNonPositiveStock
	}
	pr := 0.0
	if premium != nil {
		pr = *premium
	}
	if pr < 0 {
		return 0, ErrNonPositivePremium
	}

	intrinsic := math.Max(stock-strike, 0)
	if opt == Put {
		intrinsic = math.Max(strike-stock, 0)
	}

	if pos == Short {
		return pr - intrinsic, nil
	}
	return intrinsic, nil
}

// PayoffCurve evaluates Payoff across a slice of underlying prices, keeping
// position, kind, strike, and premium fixed.
//
// Strike and premium are validated once up front; each underlying price is
// then checked in order and the first negative one aborts the whole curve.
// The returned slice is index-aligned with stocks.
func PayoffCurve(pos Position, opt OptionKind, strike float64, stocks []float64, premium *float64) ([]float64, error) {
	if strike < 0 {
		return nil, ErrNonPositiveStrike
	}
	if premium != nil && *premium < 0 {
		return nil, ErrNonPositivePremium
	}

	curve := make([]float64, len(stocks))
	for i, stock := range stocks {
		v, err := Payoff(pos, opt, strike, stock, premium)
		if err != nil {
			return nil, err
		}
		curve[i] = v
	}
	return curve, nil
}
