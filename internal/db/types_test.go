package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringArray_ScanNil(t *testing.T) {
	var a StringArray
	require.NoError(t, a.Scan(nil))
	assert.Empty(t, a)
	assert.NotNil(t, a)
}

func TestStringArray_ScanJSONB(t *testing.T) {
	var a StringArray
	require.NoError(t, a.Scan([]byte(`["python","sql"]`)))
	assert.Equal(t, StringArray{"python", "sql"}, a)
}

func TestStringArray_ValueNil(t *testing.T) {
	var a StringArray
	v, err := a.Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), v)
}
