package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONMap_RoundTrip(t *testing.T) {
	m := JSONMap{"title": "Porcelain Doll", "stock": float64(3)}

	v, err := m.Value()
	require.NoError(t, err)

	var got JSONMap
	require.NoError(t, got.Scan(v))
	assert.Equal(t, m, got)
}

func TestJSONMap_ScanMalformed(t *testing.T) {
	var m JSONMap
	// 损坏的JSON退化为空对象，不报错
	require.NoError(t, m.Scan("{not valid json"))
	assert.Equal(t, JSONMap{}, m)
}

func TestJSONMap_ScanNull(t *testing.T) {
	var m JSONMap
	require.NoError(t, m.Scan(nil))
	assert.Equal(t, JSONMap{}, m)
}

func TestJSONMap_ValueNil(t *testing.T) {
	var m JSONMap
	v, err := m.Value()
	require.NoError(t, err)
	assert.Equal(t, "{}", v)
}

func TestJSONArray_RoundTrip(t *testing.T) {
	a := JSONArray{
		map[string]interface{}{"id": "doll-1", "qty": float64(2)},
		map[string]interface{}{"id": "doll-2", "qty": float64(1)},
	}

	v, err := a.Value()
	require.NoError(t, err)

	var got JSONArray
	require.NoError(t, got.Scan(v))
	assert.Equal(t, a, got)
}

func TestJSONArray_ScanMalformed(t *testing.T) {
	var a JSONArray
	require.NoError(t, a.Scan([]byte("[1, 2,")))
	assert.Equal(t, JSONArray{}, a)
}

func TestJSONArray_ScanUnsupportedType(t *testing.T) {
	var a JSONArray
	assert.Error(t, a.Scan(42))
}
