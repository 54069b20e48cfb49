package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/aalvaropc/starapp/internal/domain"
)

func TestMapConfig_RejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name  string
		dto   yamlConfig
		field string
	}{
		{
			name:  "accent not a hex colour",
			dto:   yamlConfig{StarApp: yamlStarApp{UI: yamlUI{Accent: "purple"}}},
			field: "starapp.ui.accent",
		},
		{
			name:  "unknown log level",
			dto:   yamlConfig{StarApp: yamlStarApp{Log: yamlLog{Level: "loud"}}},
			field: "starapp.log.level",
		},
		{
			name:  "unknown output format",
			dto:   yamlConfig{StarApp: yamlStarApp{Output: yamlOutput{Format: "xml"}}},
			field: "starapp.output.format",
		},
		{
			name:  "address without port",
			dto:   yamlConfig{StarApp: yamlStarApp{Server: yamlServer{Addr: "localhost"}}},
			field: "starapp.server.addr",
		},
		{
			name:  "origin not a url",
			dto:   yamlConfig{StarApp: yamlStarApp{Server: yamlServer{AllowedOrigins: []string{"not a url"}}}},
			field: "starapp.server.allowed_origins[0]",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := mapConfig("starapp.yaml", c.dto)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !domain.IsKind(err, domain.KindInvalidConfig) {
				t.Fatalf("expected KindInvalidConfig, got %v", err)
			}
			if !errors.Is(err, domain.ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig in chain, got %v", err)
			}
			if !strings.Contains(err.Error(), c.field) {
				t.Fatalf("expected field %s in error, got %v", c.field, err)
			}
		})
	}
}

func TestMapConfig_ZeroDTOIsDefaults(t *testing.T) {
	cfg, err := mapConfig("starapp.yaml", yamlConfig{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	def := domain.DefaultConfig()
	if cfg.UI != def.UI || cfg.Log != def.Log || cfg.Output != def.Output || cfg.Server.Addr != def.Server.Addr {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestMapConfig_AcceptsBarePort(t *testing.T) {
	cfg, err := mapConfig("starapp.yaml", yamlConfig{StarApp: yamlStarApp{Server: yamlServer{Addr: ":9000"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Addr != ":9000" {
		t.Fatalf("addr=%s", cfg.Server.Addr)
	}
}
