package credits

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalog(t *testing.T) {
	t.Run("missing file falls back to defaults", func(t *testing.T) {
		catalog, err := LoadCatalog(filepath.Join(t.TempDir(), "absent.yml"))
		require.ErrorIs(t, err, ErrCatalogNotFound)
		require.NotNil(t, catalog)
		assert.NoError(t, catalog.Validate(100, 50.0))
	})

	t.Run("valid file overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yml")
		content := "packages:\n  - credits: 50\n    price: 30.0\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		catalog, err := LoadCatalog(path)
		require.NoError(t, err)
		assert.NoError(t, catalog.Validate(50, 30.0))
		assert.Error(t, catalog.Validate(100, 50.0))
	})

	t.Run("empty catalog rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yml")
		require.NoError(t, os.WriteFile(path, []byte("packages: []\n"), 0o600))

		_, err := LoadCatalog(path)
		assert.Error(t, err)
	})

	t.Run("negative price rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yml")
		content := "packages:\n  - credits: 10\n    price: -1.0\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		_, err := LoadCatalog(path)
		assert.Error(t, err)
	})
}

func TestCatalogValidate(t *testing.T) {
	catalog := DefaultCatalog()

	tests := []struct {
		name    string
		credits int
		price   float64
		wantErr bool
	}{
		{"exact price", 100, 50.0, false},
		{"within one cent", 100, 50.009, false},
		{"price mismatch", 100, 49.0, true},
		{"unknown bundle", 42, 21.0, true},
		{"larger bundle", 500, 250.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := catalog.Validate(tt.credits, tt.price)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
