package unique

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counter() Source {
	n := 0
	return func() (string, error) {
		n++
		return fmt.Sprintf("v%d", n), nil
	}
}

func constant(v string) Source {
	return func() (string, error) { return v, nil }
}

func TestNextIssuesDistinctValues(t *testing.T) {
	r := NewRegistry()
	src := counter()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		v, err := r.Next(WalletID, src)
		require.NoError(t, err)
		assert.False(t, seen[v], "value %s issued twice", v)
		seen[v] = true
	}
	assert.Equal(t, 100, r.Len(WalletID))
}

func TestNextSkipsCollisions(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Claim(TransactionHash, "a"))

	values := []string{"a", "a", "b"}
	i := 0
	v, err := r.Next(TransactionHash, func() (string, error) {
		v := values[i]
		i++
		return v, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "b", v)
}

func TestNextExhaustsOnRepeatingSource(t *testing.T) {
	r := NewRegistry(WithMaxAttempts(5))

	_, err := r.Next(TelegramID, constant("same"))
	require.NoError(t, err)

	_, err = r.Next(TelegramID, constant("same"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUniquenessExhausted))
}

func TestNextRespectsCapacity(t *testing.T) {
	r := NewRegistry(WithCapacity(WalletID, 2))
	src := counter()

	_, err := r.Next(WalletID, src)
	require.NoError(t, err)
	_, err = r.Next(WalletID, src)
	require.NoError(t, err)

	_, err = r.Next(WalletID, src)
	assert.ErrorIs(t, err, ErrUniquenessExhausted)
}

func TestDomainsAreIndependent(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Claim(WalletID, "x"))
	require.NoError(t, r.Claim(TransactionHash, "x"))

	assert.ErrorIs(t, r.Claim(WalletID, "x"), ErrDuplicate)
	assert.True(t, r.Contains(TransactionHash, "x"))
	assert.False(t, r.Contains(TelegramID, "x"))
}

func TestNextPropagatesSourceError(t *testing.T) {
	r := NewRegistry()
	boom := errors.New("boom")

	_, err := r.Next(WalletID, func() (string, error) { return "", boom })
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrUniquenessExhausted)
}
