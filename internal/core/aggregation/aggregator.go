package aggregation

import (
	"github.com/shopspring/decimal"
)

// Weighting operators accepted by recommend.weighting.
const (
	OpCount = "count"
	OpSum   = "sum"
)

var one = decimal.NewFromInt(1)

// Contribution decides how much one resolved watch event adds to its bucket.
// Bucket weights are always the sum of contributions, so every operator is
// order-independent.
type Contribution interface {
	Of(watchTimeMS decimal.Decimal) decimal.Decimal
}

// ContributionFunc adapts a plain function to Contribution.
type ContributionFunc func(watchTimeMS decimal.Decimal) decimal.Decimal

func (f ContributionFunc) Of(watchTimeMS decimal.Decimal) decimal.Decimal {
	return f(watchTimeMS)
}

// Operators maps operator names to their per-event contribution.
var Operators = map[string]Contribution{
	// every view counts once, however long
	OpCount: ContributionFunc(func(decimal.Decimal) decimal.Decimal { return one }),
	OpSum:   ContributionFunc(func(ms decimal.Decimal) decimal.Decimal { return ms }),
}

// ValidOperator reports whether op is a registered weighting operator.
func ValidOperator(op string) bool {
	_, ok := Operators[op]
	return ok
}
