package verify

import (
	"bytes"
	"context"
	"math/rand/v2"

	"github.com/LerianStudio/lib-legacy/legacy"
	"github.com/LerianStudio/lib-legacy/legacy/assert"
	"github.com/LerianStudio/lib-legacy/legacy/cstr"
)

// guardByte fills destination bytes that a copy must not touch.
const guardByte byte = 0xAA

// maxSlack is the largest number of guard bytes placed after the stated capacity.
const maxSlack = 4

// copyStream selects the PCG stream of the copy sweep.
const copyStream = 0x636f7079

func copyChecks(opts Options) []check {
	return []check{
		{name: "nil-destination", run: checkCopyNilDestination},
		{name: "zero-capacity", run: checkCopyZeroCapacity},
		{name: "nil-source", run: checkCopyNilSource},
		{name: "truncates", run: checkCopyTruncates},
		{name: "sweep", run: func(ctx context.Context, asserter *assert.Asserter) error {
			return sweepCopy(ctx, asserter, opts)
		}},
	}
}

func checkCopyNilDestination(ctx context.Context, asserter *assert.Asserter) error {
	n := legacy.BoundedStringCopy(nil, 10, []byte("abc"))

	return asserter.Equal(ctx, 0, n, "nil destination must copy nothing")
}

func checkCopyZeroCapacity(ctx context.Context, asserter *assert.Asserter) error {
	buf := []byte{'x', 'x', 'x', 0}

	n := legacy.BoundedStringCopy(buf, 0, []byte("abc"))
	if err := asserter.Equal(ctx, 0, n, "zero capacity must copy nothing"); err != nil {
		return err
	}

	return asserter.Equal(ctx, []byte{'x', 'x', 'x', 0}, buf, "zero capacity must leave the buffer unchanged")
}

func checkCopyNilSource(ctx context.Context, asserter *assert.Asserter) error {
	buf := []byte{'x', 'x', 'x', 'x'}

	n := legacy.BoundedStringCopy(buf, len(buf), nil)
	if err := asserter.Equal(ctx, 0, n, "nil source must copy nothing"); err != nil {
		return err
	}

	return asserter.Equal(ctx, []byte{0, 'x', 'x', 'x'}, buf, "nil source must only terminate the buffer")
}

func checkCopyTruncates(ctx context.Context, asserter *assert.Asserter) error {
	buf := make([]byte, 4)

	n := legacy.BoundedStringCopy(buf, len(buf), []byte("abcdef"))
	if err := asserter.Equal(ctx, 3, n, "copy must leave room for the terminator"); err != nil {
		return err
	}

	return asserter.Equal(ctx, []byte("abc\x00"), buf, "copy must truncate and terminate")
}

// copyCase is one generated BoundedStringCopy input.
type copyCase struct {
	src      []byte
	capacity int
	slack    int
}

func newCopyCase(rng *rand.Rand, maxSourceLen int) copyCase {
	c := copyCase{
		capacity: rng.IntN(maxSourceLen + 3),
		slack:    rng.IntN(maxSlack + 1),
	}

	// One case in sixteen exercises the absent source.
	if rng.IntN(16) == 0 {
		return c
	}

	c.src = make([]byte, rng.IntN(maxSourceLen+1))
	for i := range c.src {
		c.src[i] = byte(1 + rng.IntN(255))
	}

	// One case in eight carries an embedded terminator.
	if len(c.src) > 0 && rng.IntN(8) == 0 {
		c.src[rng.IntN(len(c.src))] = cstr.Terminator
	}

	return c
}

func (c copyCase) destination() []byte {
	return bytes.Repeat([]byte{guardByte}, c.capacity+c.slack)
}

func sweepCopy(ctx context.Context, asserter *assert.Asserter, opts Options) error {
	rng := rand.New(rand.NewPCG(opts.Seed, copyStream))

	for i := 0; i < opts.Samples; i++ {
		if err := canceled(ctx, i); err != nil {
			return err
		}

		if err := verifyCopyCase(ctx, asserter, newCopyCase(rng, opts.MaxSourceLen), i); err != nil {
			return err
		}
	}

	return nil
}

func verifyCopyCase(ctx context.Context, asserter *assert.Asserter, c copyCase, sample int) error {
	dst := c.destination()
	srcBefore := bytes.Clone(c.src)

	n := legacy.BoundedStringCopy(dst, c.capacity, c.src)

	kv := []any{"sample", sample, "capacity", c.capacity, "source", c.src}

	if err := asserter.Equal(ctx, srcBefore, c.src, "source must not be modified", kv...); err != nil {
		return err
	}

	if c.capacity == 0 {
		if err := asserter.Equal(ctx, 0, n, "zero capacity must copy nothing", kv...); err != nil {
			return err
		}

		return asserter.Equal(ctx, c.destination(), dst, "zero capacity must not write", kv...)
	}

	want := 0
	if c.src != nil {
		want = min(cstr.Len(c.src), c.capacity-1)
	}

	if err := asserter.Equal(ctx, want, n, "copied length must be min(len(source), capacity-1)", kv...); err != nil {
		return err
	}

	if err := asserter.Equal(ctx, cstr.Terminator, dst[n], "destination must be terminated after the copy", kv...); err != nil {
		return err
	}

	if n > 0 {
		if err := asserter.Equal(ctx, c.src[:n], dst[:n], "destination must hold the source prefix", kv...); err != nil {
			return err
		}
	}

	untouched := bytes.Count(dst[n+1:], []byte{guardByte}) == len(dst)-n-1
	if err := asserter.That(ctx, untouched, "bytes after the terminator must not be written", kv...); err != nil {
		return err
	}

	again := c.destination()
	if err := asserter.Equal(ctx, n, legacy.BoundedStringCopy(again, c.capacity, c.src), "copy must be idempotent", kv...); err != nil {
		return err
	}

	return asserter.Equal(ctx, dst, again, "copy must be idempotent", kv...)
}
