package utils

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAskConfirmation(t *testing.T) {
	tests := []struct {
		input string
		force bool
		want  bool
	}{
		{"y\n", false, true},
		{"YES\n", false, true},
		{" yes ", false, true},
		{"n\n", false, false},
		{"\n", false, false},
		{"", false, false},
		{"", true, true},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		in := &InputUtils{In: strings.NewReader(tt.input), Out: &out}
		assert.Equal(t, tt.want, in.AskConfirmation("Delete everything?", tt.force), "input %q", tt.input)
		if !tt.force {
			assert.Equal(t, "Delete everything? (y/N): ", out.String())
		}
	}
}
