package config

func ValidateForRun(cfg *Config) error {
	return cfg.Redis.Validate()
}
