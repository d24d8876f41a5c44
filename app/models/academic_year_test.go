package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomDateUnmarshalJSON(t *testing.T) {
	var cd CustomDate
	require.NoError(t, cd.UnmarshalJSON([]byte(`"2025-09-01"`)))
	assert.Equal(t, 2025, cd.Year())
	assert.Equal(t, time.September, cd.Month())
	assert.Equal(t, 1, cd.Day())

	require.NoError(t, cd.UnmarshalJSON([]byte("null")))
	assert.True(t, cd.IsZero())

	assert.Error(t, cd.UnmarshalJSON([]byte(`"01/09/2025"`)))
}

func TestCustomDateMarshalJSON(t *testing.T) {
	cd := CustomDate{Time: time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)}
	out, err := json.Marshal(cd)
	require.NoError(t, err)
	assert.Equal(t, `"2025-06-30"`, string(out))
}

func TestCustomDateScan(t *testing.T) {
	var cd CustomDate
	require.NoError(t, cd.Scan(time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 15, cd.Day())

	require.NoError(t, cd.Scan(nil))
	assert.True(t, cd.IsZero())

	assert.Error(t, cd.Scan("2025-01-15"))
}
