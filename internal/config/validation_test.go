package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RelayConfig)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(*RelayConfig) {},
		},
		{
			name:    "port out of range",
			mutate:  func(c *RelayConfig) { c.Server.Port = -1 },
			wantErr: "server.port",
		},
		{
			name:    "relative token URL",
			mutate:  func(c *RelayConfig) { c.FatSecret.TokenURL = "/connect/token" },
			wantErr: "fatsecret.tokenUrl",
		},
		{
			name:    "missing search URL",
			mutate:  func(c *RelayConfig) { c.FatSecret.SearchURL = "" },
			wantErr: "fatsecret.searchUrl",
		},
		{
			name:    "unknown log level",
			mutate:  func(c *RelayConfig) { c.Logging.Level = "loud" },
			wantErr: "logging.level",
		},
		{
			name:    "unknown log format",
			mutate:  func(c *RelayConfig) { c.Logging.Format = "xml" },
			wantErr: "logging.format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := GetDefaultConfig()
			tt.mutate(&cfg)

			err := Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidationErrors_Error(t *testing.T) {
	var errs ValidationErrors
	assert.Equal(t, "no validation errors", errs.Error())

	errs.Add("a", "bad")
	assert.Equal(t, "field 'a': bad", errs.Error())

	errs.Add("b", "worse")
	assert.Equal(t, "validation failed: field 'a': bad; field 'b': worse", errs.Error())
}
