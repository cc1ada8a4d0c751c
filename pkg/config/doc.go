// Package config loads typed configuration structs from environment
// variables, with an optional .env file picked up once per process.
//
// Configuration is declared with struct tags:
//
//	type ServerConfig struct {
//	    Addr    string        `env:"HTTP_ADDR" envDefault:":8080"`
//	    Timeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
//	}
//
//	var cfg ServerConfig
//	config.MustLoad(&cfg)
//
// Every call parses the environment fresh; configuration structs are plain
// values handed to their consumers at bootstrap, never process-wide state.
package config
