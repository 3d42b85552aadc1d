package config

func loadProductionConfig(cfg *Config) {
	cfg.Database.Path = "/data/estante.sqlite"
	cfg.Server.Host = "0.0.0.0"
}
