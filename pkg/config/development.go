package config

func loadDevelopmentConfig(cfg *Config) {
	cfg.Database.Debug = true
	cfg.Database.Path = "./tmp/data.sqlite"
	cfg.JWT.Secret = "development-secret"
	cfg.Server.Host = "127.0.0.1"
}
