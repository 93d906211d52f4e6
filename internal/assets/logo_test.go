package assets_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libdash/internal/assets"
)

func TestLogoLoader(t *testing.T) {
	t.Run("reads the configured file", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "web/static/logo.svg", []byte("<svg>custom</svg>"), 0644))

		loader := assets.NewLogoLoader(fs, "web/static/logo.svg")
		assert.Equal(t, "<svg>custom</svg>", loader.Load())
	})

	t.Run("falls back when the file is missing", func(t *testing.T) {
		loader := assets.NewLogoLoader(afero.NewMemMapFs(), "web/static/logo.svg")
		svg := loader.Load()
		assert.Contains(t, svg, "<svg")
		assert.Contains(t, svg, "LIBDASH")
	})
}
