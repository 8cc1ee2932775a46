// Package config loads the service configuration with Viper.
//
// Sources, lowest precedence first: built-in defaults, a YAML/JSON/TOML
// file, and HABITS_ prefixed environment variables
// (HABITS_SERVER_PORT=9090 overrides server.port).
//
//	cfg, err := config.LoadConfig("./config.yaml")
//
// A Loader can watch its file and hand reloaded configurations to a callback:
//
//	l := config.NewLoader(path)
//	cfg, err := l.Load()
//	l.Watch(func(c *config.Config) { ... }, func(err error) { ... })
//
// Example file:
//
//	app_name: habits
//	server:
//	  host: 0.0.0.0
//	  port: 8080
//	logger:
//	  level: 4
//	  format: json
//	  output: stdout
//	paging:
//	  default_page_size: 10
//	  max_page_size: 50
//	hateoas:
//	  base_url: https://api.example.com
package config
