package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEcho(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{nil, "\n"},
		{[]string{"hello"}, "hello\n"},
		{[]string{"hello", "world"}, "hello world\n"},
		{[]string{"-n", "--help", "x"}, "-n --help x\n"},
		{[]string{"a  b", ""}, "a  b \n"},
	}
	for _, tt := range tests {
		cmd := newRootCmd()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetArgs(tt.args)
		if tt.args == nil {
			cmd.SetArgs([]string{})
		}
		require.NoError(t, cmd.Execute())
		assert.Equal(t, tt.want, out.String())
	}
}

func TestEchoHasNoTrailingSpace(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, echo(&out, []string{"one", "two", "three"}))
	assert.Equal(t, "one two three\n", out.String())
	assert.NotContains(t, out.String(), " \n")
}
