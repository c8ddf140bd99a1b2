package pricing

// BreakEven calculates the underlying price at which a position in the
// contract can be exercised or disposed of without a loss.
//
// Parameters:
//   - opt: call or put
//   - strike: strike price in currency per share
//   - premium: premium paid per share, or nil for none (treated as 0.0)
//
// Returns:
//   - Call: strike + premium
//   - Put: strike - premium
//   - ErrNonPositiveStrike when strike is negative
//   - ErrNonPositivePremium when premium is negative
func BreakEven(opt OptionKind, strike float64, premium *float64) (float64, error) {
	if strike < 0 {
		return 0, ErrNonPositiveStrike
	}
	pr := 0.0
	if premium != nil {
		pr = *premium
	}
	if pr < 0 {
		return 0, ErrNonPositivePremium
	}

	if opt == Call {
		return strike + pr, nil
	}
	return strike - pr, nil
}
