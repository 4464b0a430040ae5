package verify

import (
	"context"
	"math"
	"math/rand/v2"

	"github.com/shopspring/decimal"

	"github.com/LerianStudio/lib-legacy/legacy"
	"github.com/LerianStudio/lib-legacy/legacy/assert"
	"github.com/LerianStudio/lib-legacy/legacy/safe"
)

// divideStream selects the PCG stream of the divide sweeps.
const divideStream = 0x646976

// edgeOperands are mixed into every divide sweep.
var edgeOperands = []int{0, 1, -1, 2, -2, 7, -7, math.MaxInt, math.MinInt, math.MaxInt - 1, math.MinInt + 1}

func divideChecks(opts Options) []check {
	return []check{
		{name: "zero-divisor", run: checkDivideZeroDivisor},
		{name: "edge-operands", run: checkDivideEdgeOperands},
		{name: "overflow-saturates", run: checkDivideOverflow},
		{name: "zero-divisor-sweep", run: func(ctx context.Context, asserter *assert.Asserter) error {
			return sweepDivideZero(ctx, asserter, opts)
		}},
		{name: "quotient-sweep", run: func(ctx context.Context, asserter *assert.Asserter) error {
			return sweepDivide(ctx, asserter, opts)
		}},
		{name: "int32-sweep", run: func(ctx context.Context, asserter *assert.Asserter) error {
			return sweepDivideInt32(ctx, asserter, opts)
		}},
	}
}

func checkDivideZeroDivisor(ctx context.Context, asserter *assert.Asserter) error {
	return asserter.Equal(ctx, 0, legacy.SafeDivide(10, 0), "zero divisor must yield the sentinel")
}

func checkDivideEdgeOperands(ctx context.Context, asserter *assert.Asserter) error {
	for _, a := range edgeOperands {
		for _, b := range edgeOperands {
			if err := verifyQuotient(ctx, asserter, a, b); err != nil {
				return err
			}
		}
	}

	return nil
}

func checkDivideOverflow(ctx context.Context, asserter *assert.Asserter) error {
	if err := asserter.That(ctx, exceedsInt(math.MinInt, -1), "MinInt / -1 must exceed int"); err != nil {
		return err
	}

	return asserter.Equal(ctx, math.MaxInt, legacy.SafeDivide(math.MinInt, -1), "MinInt / -1 must saturate")
}

func sweepDivideZero(ctx context.Context, asserter *assert.Asserter, opts Options) error {
	rng := rand.New(rand.NewPCG(opts.Seed, divideStream))

	for i := 0; i < opts.Samples; i++ {
		if err := canceled(ctx, i); err != nil {
			return err
		}

		a := int(rng.Uint64())
		if err := asserter.Equal(ctx, 0, legacy.SafeDivide(a, 0), "zero divisor must yield the sentinel", "a", a); err != nil {
			return err
		}
	}

	return nil
}

func sweepDivide(ctx context.Context, asserter *assert.Asserter, opts Options) error {
	rng := rand.New(rand.NewPCG(opts.Seed, divideStream+1))

	for i := 0; i < opts.Samples; i++ {
		if err := canceled(ctx, i); err != nil {
			return err
		}

		a, b := randomOperands(rng)
		if err := verifyQuotient(ctx, asserter, a, b); err != nil {
			return err
		}
	}

	return nil
}

// randomOperands draws full-range dividends; half of the divisors are small so
// that quotients are not mostly 0 or ±1.
func randomOperands(rng *rand.Rand) (int, int) {
	a := int(rng.Uint64())

	switch rng.IntN(4) {
	case 0:
		return a, edgeOperands[rng.IntN(len(edgeOperands))]
	case 1:
		return a, rng.IntN(33) - 16
	default:
		return a, int(rng.Uint64())
	}
}

func verifyQuotient(ctx context.Context, asserter *assert.Asserter, a, b int) error {
	want := referenceQuotient(int64(a), int64(b))
	got := legacy.SafeDivide(a, b)

	return asserter.That(ctx, want.Equal(decimal.NewFromInt(int64(got))),
		"quotient must truncate toward zero", "a", a, "b", b, "want", want.String(), "got", got)
}

func sweepDivideInt32(ctx context.Context, asserter *assert.Asserter, opts Options) error {
	rng := rand.New(rand.NewPCG(opts.Seed, divideStream+2))

	maxInt32 := decimal.NewFromInt(math.MaxInt32)

	for i := 0; i < opts.Samples; i++ {
		if err := canceled(ctx, i); err != nil {
			return err
		}

		a, b := int32(rng.Uint32()), int32(rng.IntN(9)-4)
		if i%2 == 0 {
			b = int32(rng.Uint32())
		}

		want := decimal.Zero
		if b != 0 {
			want, _ = decimal.NewFromInt(int64(a)).QuoRem(decimal.NewFromInt(int64(b)), 0)
			want = decimal.Min(want, maxInt32)
		}

		got := safe.DivideIntOrZero(a, b)
		if err := asserter.That(ctx, want.Equal(decimal.NewFromInt(int64(got))),
			"int32 quotient must truncate toward zero", "a", a, "b", b, "got", got); err != nil {
			return err
		}
	}

	return nil
}
