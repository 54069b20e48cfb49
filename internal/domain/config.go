package domain

// Config represents the StarApp configuration loaded from starapp.yaml.
type Config struct {
	UI     UIConfig
	Server ServerConfig
	Log    LogConfig
	Output OutputConfig
}

type UIConfig struct {
	Accent string
}

type ServerConfig struct {
	Addr           string
	AllowedOrigins []string
}

type LogConfig struct {
	Level string
}

type OutputConfig struct {
	Format string
}

// DefaultConfig provides sane defaults if starapp.yaml is missing or partial.
func DefaultConfig() Config {
	return Config{
		UI: UIConfig{Accent: "#9333EA"},
		Server: ServerConfig{
			Addr:           ":8080",
			AllowedOrigins: []string{"http://localhost:5173", "http://localhost:8080"},
		},
		Log:    LogConfig{Level: "info"},
		Output: OutputConfig{Format: "pretty"},
	}
}

// ConfigSpec describes where `starapp init` writes its files.
type ConfigSpec struct {
	Root string
}
