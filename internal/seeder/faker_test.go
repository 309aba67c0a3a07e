package seeder

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)

func newTestGenerator() *DataGenerator {
	return NewDataGenerator(42).WithClock(func() time.Time { return fixedNow })
}

func TestSameSeedSameValues(t *testing.T) {
	a := newTestGenerator()
	b := newTestGenerator()

	for i := 0; i < 5; i++ {
		ua, err := a.UUID()
		require.NoError(t, err)
		ub, err := b.UUID()
		require.NoError(t, err)
		assert.Equal(t, ua, ub)
	}
}

func TestUUIDIsVersion4(t *testing.T) {
	g := newTestGenerator()
	s, err := g.UUID()
	require.NoError(t, err)

	id, err := uuid.Parse(s)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), id.Version())
}

func TestTransactionHashShape(t *testing.T) {
	g := newTestGenerator()
	h, err := g.TransactionHash()
	require.NoError(t, err)
	assert.Len(t, h, 66)
	assert.Equal(t, "0x", h[:2])
}

func TestPositiveDecimalBounds(t *testing.T) {
	g := newTestGenerator()
	max := decimal.RequireFromString("99999.99")

	for i := 0; i < 500; i++ {
		d := g.PositiveDecimal(5, 2)
		assert.True(t, d.IsPositive(), d.String())
		assert.True(t, d.LessThanOrEqual(max), d.String())
		assert.LessOrEqual(t, -d.Exponent(), int32(2))
	}
}

func TestFractionBounds(t *testing.T) {
	g := newTestGenerator()
	for i := 0; i < 500; i++ {
		d := g.Fraction(4)
		assert.False(t, d.IsNegative())
		assert.True(t, d.LessThanOrEqual(decimal.NewFromInt(1)))
	}
}

func TestNumberBounds(t *testing.T) {
	g := newTestGenerator()
	for i := 0; i < 500; i++ {
		d := g.Number(5)
		assert.True(t, d.IsInteger())
		assert.True(t, d.LessThan(decimal.NewFromInt(100000)))
	}
}

func TestTimeThisDecade(t *testing.T) {
	g := newTestGenerator()
	start := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 200; i++ {
		ts := g.TimeThisDecade()
		assert.False(t, ts.Before(start), ts)
		assert.False(t, ts.After(fixedNow), ts)
	}
}

func TestMaybeTimeProducesBothOutcomes(t *testing.T) {
	g := newTestGenerator()
	var present, absent int
	for i := 0; i < 200; i++ {
		v := g.MaybeTimeThisDecade()
		if v.Valid {
			present++
			assert.False(t, v.V.IsZero())
		} else {
			absent++
			assert.True(t, v.V.IsZero())
		}
	}
	assert.Positive(t, present)
	assert.Positive(t, absent)
}

func TestPick(t *testing.T) {
	g := newTestGenerator()
	values := []string{"ETH", "USDC", "STRK"}
	for i := 0; i < 50; i++ {
		v, err := pick(g, values)
		require.NoError(t, err)
		assert.Contains(t, values, v)
	}

	_, err := pick(g, []string{})
	assert.Error(t, err)
}
