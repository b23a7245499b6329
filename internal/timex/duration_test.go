package timex

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestUnmarshalJSON_String(t *testing.T) {
	var d Duration
	err := json.Unmarshal([]byte(`"90m"`), &d)
	require.NoError(t, err)
	require.Equal(t, 90*time.Minute, d.Duration)
}

func TestUnmarshalJSON_Nanoseconds(t *testing.T) {
	var d Duration
	err := json.Unmarshal([]byte(`1000000000`), &d)
	require.NoError(t, err)
	require.Equal(t, time.Second, d.Duration)
}

func TestUnmarshalJSON_Invalid(t *testing.T) {
	var d Duration
	require.Error(t, json.Unmarshal([]byte(`"not-a-duration"`), &d))
	require.Error(t, json.Unmarshal([]byte(`true`), &d))
}

func TestMarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration{Duration: time.Hour})
	require.NoError(t, err)
	require.Equal(t, `"1h0m0s"`, string(b))
}
