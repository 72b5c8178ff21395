package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "defaults with required password",
			env:  map[string]string{"DB_PASSWORD": "secret"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "8080", cfg.Server.Port)
				assert.Equal(t, "http://localhost:11434", cfg.Inference.Host)
				assert.Equal(t, "deepseek-coder:6.7b", cfg.Inference.Model)
				assert.InDelta(t, 0.2, cfg.Inference.Temperature, 1e-9)
				assert.Equal(t, 2048, cfg.Inference.NumCtx)
				assert.Equal(t, 20, cfg.Credits.SignupGrant)
			},
		},
		{
			name:    "missing DB password",
			env:     map[string]string{},
			wantErr: "DB_PASSWORD",
		},
		{
			name: "invalid context window",
			env: map[string]string{
				"DB_PASSWORD":   "secret",
				"MODEL_NUM_CTX": "-1",
			},
			wantErr: "MODEL_NUM_CTX",
		},
		{
			name: "temperature out of range",
			env: map[string]string{
				"DB_PASSWORD":       "secret",
				"MODEL_TEMPERATURE": "3.5",
			},
			wantErr: "MODEL_TEMPERATURE",
		},
		{
			name: "overrides from environment",
			env: map[string]string{
				"DB_PASSWORD": "secret",
				"SERVER_PORT": "9090",
				"MODEL_NAME":  "codellama:13b",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "9090", cfg.Server.Port)
				assert.Equal(t, "codellama:13b", cfg.Inference.Model)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}
