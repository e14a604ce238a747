// Package config provides configuration management for the server.
//
// It requires a .env file in the working directory, loads it with godotenv
// (without overriding variables already set) and resolves the final values
// with Viper. Defaults come from the `default` struct tags; the variables
// with fixed names (NODE_ENV, DEBUG, PORT, REDIS_HOST, REDIS_PORT,
// REDIS_PASSWORD) come from the `env` tags; all other keys map to upper-case
// underscore names such as LOG_LEVEL or SERVER_PUBLIC_DIR.
//
// # Configuration Structure
//
//   - Server: environment, debug flag, port, asset directories, timings
//   - Store: Redis host, port and password
//   - Log: level, format, directory and rotation
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if errors.Is(err, config.ErrEnvFileMissing) {
//	    log.Fatal("Make sure .env is on the root folder.")
//	}
//	fmt.Println(cfg.Server.Port)
package config
