package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/aalvaropc/starapp/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report yaml keys (ui.accent) rather than Go field names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// mapConfig validates the DTO and overlays its non-empty values on defaults.
func mapConfig(path string, y yamlConfig) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	if err := validate.Struct(y); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return cfg, invalidField(path, fieldPath(fe.Namespace()), fmt.Sprintf("failed %q check (value %v)", fe.Tag(), fe.Value()))
		}
		return cfg, invalidField(path, "starapp", err.Error())
	}

	s := y.StarApp
	if s.UI.Accent != "" {
		cfg.UI.Accent = s.UI.Accent
	}
	if s.Server.Addr != "" {
		cfg.Server.Addr = s.Server.Addr
	}
	if len(s.Server.AllowedOrigins) > 0 {
		cfg.Server.AllowedOrigins = append([]string(nil), s.Server.AllowedOrigins...)
	}
	if s.Log.Level != "" {
		cfg.Log.Level = s.Log.Level
	}
	if s.Output.Format != "" {
		cfg.Output.Format = s.Output.Format
	}

	return cfg, nil
}

// fieldPath turns "yamlConfig.starapp.ui.accent" into "starapp.ui.accent".
func fieldPath(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
