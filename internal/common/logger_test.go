package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		format  string
		wantErr bool
	}{
		{
			name:   "debug console",
			level:  "debug",
			format: "console",
		},
		{
			name:   "info json",
			level:  "info",
			format: "json",
		},
		{
			name:   "warn console",
			level:  "warn",
			format: "console",
		},
		{
			name:   "error json",
			level:  "error",
			format: "json",
		},
		{
			name:    "invalid level",
			level:   "verbose",
			format:  "console",
			wantErr: true,
		},
		{
			name:    "invalid format",
			level:   "info",
			format:  "xml",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SetupLogger(tt.level, tt.format)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
