// Package config provides configuration management for static-host.
//
// It utilizes Viper for loading configuration from environment variables,
// a .env file and an optional config.yaml.
//
// # Configuration Structure
//
//   - Server: control API settings (port, API key)
//   - FileServer: initial served folder, port and auto start flag
//   - Log: logging level and format
//
// Defaults come from the `default` struct tags. Environment variables map to
// nested keys by replacing dots with underscores (FILESERVER_PORT -> fileserver.port).
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.FileServer.Port)
package config
