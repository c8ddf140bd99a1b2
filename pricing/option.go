// Package pricing provides closed-form valuation helpers for European-style
// vanilla options.
//
// Responsibilities:
//   - Black-Scholes theoretical pricing via a polynomial normal-CDF approximation
//   - Break-even point calculation for call and put positions
//   - Payoff (profit/loss) calculation for long and short positions
//
// Design notes:
//   - Every function is pure, deterministic, and safe for concurrent use
//   - The pricing path never validates or clamps: degenerate inputs (zero
//     strike, zero volatility, zero expiry) propagate as NaN or Inf
//   - Break-even and payoff validate their inputs and report failures through
//     the typed errors below
//   - Optional monetary inputs (premium, dividend yield) are pointers; nil is
//     substituted with 0.0 before any computation
package pricing

import "errors"

//
// ==========================
// Error taxonomy
// ==========================
//

// Typed errors allow callers and tests to detect failure categories
// without string matching. The taxonomy is closed: no wrapping, no chains.
var (
	ErrNonPositiveStrike  = errors.New("non-positive strike")
	ErrNonPositiveStock   = errors.New("non-positive stock")
	ErrNonPositivePremium = errors.New("non-positive premium")
)

//
// ==========================
// Contract variants
// ==========================
//

// OptionKind identifies the exercise style of a vanilla option contract.
type OptionKind string

const (
	Call OptionKind = "call" // right to buy the underlying at the strike
	Put  OptionKind = "put"  // right to sell the underlying at the strike
)

// Position identifies which side of a contract the holder is on.
// It is only meaningful to payoff calculations.
type Position string

const (
	Long  Position = "long"  // bought the contract, paid the premium
	Short Position = "short" // wrote the contract, collected the premium
)
