package config

import "fmt"

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the loaded configuration is usable in the
// current environment. Production refuses to start without real secrets;
// development and test fall back to permissive defaults.
func ValidateConfig(cfg *Config) error {
	if cfg.ServerPort == "" {
		return ValidationError{Field: "SERVER_PORT", Message: "must not be empty"}
	}
	if cfg.DBHost == "" || cfg.DBPort == "" || cfg.DBName == "" {
		return ValidationError{Field: "DB_HOST/DB_PORT/DB_NAME", Message: "database address is incomplete"}
	}

	if IsProduction() {
		if cfg.JWTSecret == "" {
			return ValidationError{Field: "JWT_SECRET", Message: "required in production"}
		}
		if cfg.DBPassword == "" {
			return ValidationError{Field: "DB_PASSWORD", Message: "required in production"}
		}
		if cfg.DBSSLMode == "disable" {
			return ValidationError{Field: "DB_SSL_MODE", Message: "must not be disabled in production"}
		}
	}

	return nil
}
