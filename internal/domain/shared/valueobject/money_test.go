package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	m, err := NewMoney(decimal.NewFromInt(50000), IDR)
	require.NoError(t, err)
	assert.Equal(t, IDR, m.Currency())
	assert.True(t, m.Amount().Equal(decimal.NewFromInt(50000)))

	_, err = NewMoney(decimal.NewFromInt(1), "")
	assert.Error(t, err)
}

func TestNewMoneyIDRFromString(t *testing.T) {
	m, err := NewMoneyIDRFromString("75000")
	require.NoError(t, err)
	assert.True(t, m.Equals(NewMoneyIDRFromInt(75000)))

	_, err = NewMoneyIDRFromString("not-a-number")
	assert.Error(t, err)
}

func TestMoney_Add(t *testing.T) {
	a := NewMoneyIDRFromInt(50000)
	b := NewMoneyIDRFromInt(75000)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.True(t, sum.Equals(NewMoneyIDRFromInt(125000)))

	usd, _ := NewMoney(decimal.NewFromInt(10), USD)
	_, err = a.Add(usd)
	assert.Error(t, err)
}

func TestMoney_Subtract(t *testing.T) {
	a := NewMoneyIDRFromInt(125000)
	b := NewMoneyIDRFromInt(50000)

	diff, err := a.Subtract(b)
	require.NoError(t, err)
	assert.True(t, diff.Equals(NewMoneyIDRFromInt(75000)))
}

func TestMoney_Predicates(t *testing.T) {
	assert.True(t, ZeroIDR().IsZero())
	assert.True(t, NewMoneyIDRFromInt(1).IsPositive())
	assert.True(t, NewMoneyIDRFromInt(5).Negate().IsNegative())
}

func TestMoney_Comparisons(t *testing.T) {
	small := NewMoneyIDRFromInt(50000)
	big := NewMoneyIDRFromInt(125000)

	lt, err := small.LessThan(big)
	require.NoError(t, err)
	assert.True(t, lt)

	gte, err := big.GreaterThanOrEqual(big)
	require.NoError(t, err)
	assert.True(t, gte)

	usd, _ := NewMoney(decimal.NewFromInt(10), USD)
	_, err = small.LessThan(usd)
	assert.Error(t, err)
}

func TestMoney_String(t *testing.T) {
	assert.Equal(t, "50000 IDR", NewMoneyIDRFromInt(50000).String())
}

func TestMoney_JSONRoundTrip(t *testing.T) {
	original := NewMoneyIDRFromInt(125000)

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Money
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, original.Equals(decoded))
}
