// Package config provides configuration for the cascade command.
//
// Configuration is loaded from environment variables and validated before
// the engine is built. Command-line flags override the loaded values.
//
// Example usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg)
package config
