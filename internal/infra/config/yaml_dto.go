package config

type yamlConfig struct {
	StarApp yamlStarApp `yaml:"starapp"`
}

type yamlStarApp struct {
	UI     yamlUI     `yaml:"ui"`
	Server yamlServer `yaml:"server"`
	Log    yamlLog    `yaml:"log"`
	Output yamlOutput `yaml:"output"`
}

type yamlUI struct {
	Accent string `yaml:"accent" validate:"omitempty,hexcolor"`
}

type yamlServer struct {
	Addr           string   `yaml:"addr" validate:"omitempty,hostname_port"`
	AllowedOrigins []string `yaml:"allowed_origins" validate:"omitempty,dive,url"`
}

type yamlLog struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
}

type yamlOutput struct {
	Format string `yaml:"format" validate:"omitempty,oneof=pretty json"`
}
