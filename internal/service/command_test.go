package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	cases := []struct {
		in      string
		cmd     Command
		keyword string
	}{
		{"yes", CommandYes, ""},
		{"YES", CommandYes, ""},
		{"  Yes \n", CommandYes, ""},
		{"no", CommandNo, ""},
		{"No", CommandNo, ""},
		{"STOP", CommandStop, ""},
		{"start", CommandStart, ""},
		{"Weigh", CommandKeyword, "weigh"},
		{"ZONES", CommandKeyword, "zones"},
		{"dailycheckup", CommandKeyword, "dailycheckup"},
		{"yes please", CommandUnknown, ""},
		{"hello", CommandUnknown, ""},
		{"", CommandUnknown, ""},
	}

	for _, tc := range cases {
		cmd, keyword := ParseCommand(tc.in)
		assert.Equal(t, tc.cmd, cmd, "input %q", tc.in)
		assert.Equal(t, tc.keyword, keyword, "input %q", tc.in)
	}
}

func TestCommandString(t *testing.T) {
	assert.Equal(t, "yes", CommandYes.String())
	assert.Equal(t, "unknown", CommandUnknown.String())
	assert.Equal(t, "keyword", CommandKeyword.String())
}
