package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompterMinSupport(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		want       float64
		wantOutput string
		wantErr    bool
	}{
		{
			name:  "valid percentage",
			input: "60\n",
			want:  0.6,
		},
		{
			name:  "boundary values accepted",
			input: "100\n",
			want:  1.0,
		},
		{
			name:       "re-asks on non-numeric input",
			input:      "sixty\n45\n",
			want:       0.45,
			wantOutput: "Invalid input",
		},
		{
			name:       "re-asks on out-of-range input",
			input:      "150\n30\n",
			want:       0.3,
			wantOutput: "between 0 and 100",
		},
		{
			name:    "EOF before valid input",
			input:   "nope",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			prompter := NewPrompter(strings.NewReader(tt.input), &out)

			got, err := prompter.MinSupport()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
			if tt.wantOutput != "" {
				assert.Contains(t, out.String(), tt.wantOutput)
			}
		})
	}
}

func TestPrompterMinConfidence(t *testing.T) {
	var out bytes.Buffer
	prompter := NewPrompter(strings.NewReader("75\n"), &out)

	got, err := prompter.MinConfidence()
	require.NoError(t, err)
	assert.InDelta(t, 0.75, got, 1e-9)
	assert.Contains(t, out.String(), "minimum confidence")
}
