package config

func loadTestConfig(cfg *Config) {
	cfg.Database.Path = ":memory:"
	cfg.JWT.Secret = "test-secret"
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 0
}
