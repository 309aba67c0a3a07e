package seeder

import (
	"database/sql"
	"encoding/hex"
	"fmt"
	"math"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DataGenerator produces random but valid column values. A fixed seed makes
// a run reproducible.
type DataGenerator struct {
	faker *gofakeit.Faker
	now   func() time.Time
}

func NewDataGenerator(seed int64) *DataGenerator {
	return &DataGenerator{
		faker: gofakeit.New(seed),
		now:   time.Now,
	}
}

// WithClock fixes the reference time used for timestamps.
func (g *DataGenerator) WithClock(now func() time.Time) *DataGenerator {
	g.now = now
	return g
}

// UUID returns a version 4 UUID drawn from the generator's random source.
func (g *DataGenerator) UUID() (string, error) {
	id, err := uuid.NewRandomFromReader(g.faker.Rand)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// TransactionHash returns a 0x-prefixed 32-byte hex string.
func (g *DataGenerator) TransactionHash() (string, error) {
	buf := make([]byte, 32)
	if _, err := g.faker.Rand.Read(buf); err != nil {
		return "", err
	}
	return "0x" + hex.EncodeToString(buf), nil
}

func (g *DataGenerator) Address() string {
	return g.faker.Address().Address
}

func (g *DataGenerator) Bool() bool {
	return g.faker.Bool()
}

func (g *DataGenerator) IntRange(min, max int) int {
	return g.faker.IntRange(min, max)
}

func (g *DataGenerator) Username() string {
	return g.faker.Username()
}

func (g *DataGenerator) FirstName() string {
	return g.faker.FirstName()
}

func (g *DataGenerator) LastName() string {
	return g.faker.LastName()
}

func (g *DataGenerator) ImageURL() string {
	return g.faker.ImageURL(640, 480)
}

// Number returns a whole amount with up to digits digits.
func (g *DataGenerator) Number(digits int) decimal.Decimal {
	max := int(math.Pow10(digits)) - 1
	return decimal.NewFromInt(int64(g.faker.IntRange(0, max)))
}

// PositiveDecimal returns a value greater than zero with at most left integer
// digits and exactly right fractional digits.
func (g *DataGenerator) PositiveDecimal(left, right int) decimal.Decimal {
	max := int(math.Pow10(left+right)) - 1
	return decimal.New(int64(g.faker.IntRange(1, max)), int32(-right))
}

// Fraction returns a value in [0, 1] with the given number of places.
func (g *DataGenerator) Fraction(places int) decimal.Decimal {
	scale := int(math.Pow10(places))
	return decimal.New(int64(g.faker.IntRange(0, scale)), int32(-places))
}

// TimeThisDecade returns a time between the start of the current decade and
// now.
func (g *DataGenerator) TimeThisDecade() time.Time {
	now := g.now().UTC()
	start := time.Date(now.Year()-now.Year()%10, time.January, 1, 0, 0, 0, 0, time.UTC)
	return g.faker.DateRange(start, now).Truncate(time.Second)
}

// MaybeTimeThisDecade flips a coin and returns a timestamp on heads and an
// absent value on tails.
func (g *DataGenerator) MaybeTimeThisDecade() sql.Null[time.Time] {
	if !g.faker.Bool() {
		return sql.Null[time.Time]{}
	}
	return sql.Null[time.Time]{V: g.TimeThisDecade(), Valid: true}
}

// pick returns a uniformly chosen element of values.
func pick[T any](g *DataGenerator, values []T) (T, error) {
	var zero T
	if len(values) == 0 {
		return zero, fmt.Errorf("cannot sample from an empty set")
	}
	return values[g.faker.IntRange(0, len(values)-1)], nil
}
