package jsonpath

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, raw string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	return v
}

func TestResolve_NestedMapAndList(t *testing.T) {
	data := decode(t, `{"a":{"b":[10,20]}}`)

	value, ok := Resolve(data, "a.b.1")
	require.True(t, ok)
	assert.Equal(t, 20.0, value)
}

func TestResolve_SingleKey(t *testing.T) {
	data := decode(t, `{"name":"Tiago"}`)

	value, ok := Resolve(data, "name")
	require.True(t, ok)
	assert.Equal(t, "Tiago", value)
}

func TestResolve_KeyOnScalar(t *testing.T) {
	data := decode(t, `{"a":1}`)

	_, ok := Resolve(data, "a.b")
	assert.False(t, ok)
}

func TestResolve_IndexOutOfBounds(t *testing.T) {
	data := decode(t, `[1,2,3]`)

	_, ok := Resolve(data, "5")
	assert.False(t, ok)
}

func TestResolve_NegativeIndex(t *testing.T) {
	data := decode(t, `[1,2,3]`)

	_, ok := Resolve(data, "-1")
	assert.False(t, ok)
}

func TestResolve_NonNumericIndex(t *testing.T) {
	data := decode(t, `{"items":[1,2,3]}`)

	_, ok := Resolve(data, "items.first")
	assert.False(t, ok)
}

func TestResolve_MissingKey(t *testing.T) {
	data := decode(t, `{"a":{"b":1}}`)

	_, ok := Resolve(data, "a.c")
	assert.False(t, ok)
}

func TestResolve_NullValue(t *testing.T) {
	data := decode(t, `{"a":null}`)

	_, ok := Resolve(data, "a")
	assert.False(t, ok)
}

func TestResolve_SubStructure(t *testing.T) {
	data := decode(t, `{"summary":[{"total_balance":150.5,"account_count":2}]}`)

	value, ok := Resolve(data, "summary.0")
	require.True(t, ok)
	assert.Equal(t, map[string]any{"total_balance": 150.5, "account_count": 2.0}, value)
}

func TestResolve_SensorPath(t *testing.T) {
	data := decode(t, `{"summary":[{"total_balance":150.5}]}`)

	value, ok := Resolve(data, "summary.0.total_balance")
	require.True(t, ok)
	assert.Equal(t, 150.5, value)
}

func TestResolve_NilData(t *testing.T) {
	_, ok := Resolve(nil, "a.b")
	assert.False(t, ok)
}

func TestResolve_ScalarRoot(t *testing.T) {
	_, ok := Resolve("hello", "0")
	assert.False(t, ok)
}

func TestFloat(t *testing.T) {
	data := decode(t, `{"total":"42.50","count":3,"name":"x"}`)

	f, ok := Float(data, "total")
	require.True(t, ok)
	assert.InDelta(t, 42.50, f, 0.001)

	f, ok = Float(data, "count")
	require.True(t, ok)
	assert.InDelta(t, 3.0, f, 0.001)

	_, ok = Float(data, "name")
	assert.False(t, ok)

	_, ok = Float(data, "missing")
	assert.False(t, ok)
}

func TestAsFloat(t *testing.T) {
	f, ok := AsFloat(12.5)
	require.True(t, ok)
	assert.InDelta(t, 12.5, f, 0.001)

	f, ok = AsFloat("99.9")
	require.True(t, ok)
	assert.InDelta(t, 99.9, f, 0.001)

	f, ok = AsFloat(7)
	require.True(t, ok)
	assert.InDelta(t, 7.0, f, 0.001)

	_, ok = AsFloat("not a number")
	assert.False(t, ok)

	_, ok = AsFloat(nil)
	assert.False(t, ok)

	_, ok = AsFloat(true)
	assert.False(t, ok)
}
