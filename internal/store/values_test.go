package store

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValues_GetString(t *testing.T) {
	v := NewValues(Map{"user": "ci", "blank": ""})

	s, ok := v.GetString("user")
	assert.True(t, ok)
	assert.Equal(t, "ci", s)

	s, ok = v.GetString("blank")
	assert.True(t, ok)
	assert.Equal(t, "", s)

	_, ok = v.GetString("missing")
	assert.False(t, ok)

	assert.Equal(t, "me", v.GetStringDefault("missing", "me"))
	assert.Equal(t, "", v.GetStringDefault("blank", "me"))
}

func TestValues_GetBool(t *testing.T) {
	tests := []struct {
		raw  string
		def  bool
		want bool
	}{
		{"true", false, true},
		{"TRUE", false, true},
		{"yes", false, true},
		{"on", false, true},
		{"1", false, true},
		{"", false, true},
		{"false", true, false},
		{"No", true, false},
		{"off", true, false},
		{"0", true, false},
		{" true ", false, true},
		{"maybe", true, true},
		{"maybe", false, false},
		{"   ", false, true},
		{"2", true, true},
		{"2", false, false},
		{"Off", true, false},
		{"y", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			v := NewValues(Map{"flag": tt.raw})
			assert.Equal(t, tt.want, v.GetBool("flag", tt.def))
		})
	}

	assert.True(t, NewValues(nil).GetBool("flag", true))
}

func TestValues_GetLong(t *testing.T) {
	tests := []struct {
		raw  string
		want int64
	}{
		{"0", 0},
		{"42", 42},
		{"-5", -5},
		{" 7 ", 7},
		{"2k", 2048},
		{"1M", 1 << 20},
		{"1g", 1 << 30},
		{"abc", -1},
		{"", -1},
		{"1.5", -1},
		{"99999999999g", -1},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			v := NewValues(Map{"n": tt.raw})
			assert.Equal(t, tt.want, v.GetLong("n", -1))
		})
	}

	assert.Equal(t, int64(10), NewValues(Map{}).GetLong("n", 10))
}

func TestValues_GetInt(t *testing.T) {
	v := NewValues(Map{"historyLimit": "25", "huge": "9223372036854775807"})
	assert.Equal(t, 25, v.GetInt("historyLimit", 10))
	assert.Equal(t, 10, v.GetInt("missing", 10))
	if math.MaxInt == math.MaxInt64 {
		assert.Equal(t, math.MaxInt, v.GetInt("huge", 10))
	} else {
		assert.Equal(t, 10, v.GetInt("huge", 10))
	}
}
