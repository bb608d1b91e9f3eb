package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Setenv("BASKET_TEST_DIR", "/srv/basket")

	tests := []struct {
		name string
		path string
		want string
	}{
		{
			name: "empty path",
			path: "",
			want: "",
		},
		{
			name: "tilde prefix",
			path: "~/data/basket.db",
			want: filepath.Join(home, "data", "basket.db"),
		},
		{
			name: "bare tilde",
			path: "~",
			want: home,
		},
		{
			name: "env variable",
			path: "$BASKET_TEST_DIR/basket.db",
			want: "/srv/basket/basket.db",
		},
		{
			name: "absolute path unchanged",
			path: "/var/lib/basket/basket.db",
			want: "/var/lib/basket/basket.db",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.path))
		})
	}
}
