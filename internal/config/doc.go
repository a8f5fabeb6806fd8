// Package config provides configuration management for foodrelay.
//
// Configuration is assembled in three layers, later layers winning:
//
//  1. Built-in defaults (GetDefaultConfig)
//  2. An optional config.yaml in the configuration directory
//     (~/.config/foodrelay by default, or the --config-path flag)
//  3. Process environment variables
//
// # Environment Variables
//
//   - FATSECRET_CLIENT_ID, FATSECRET_CLIENT_SECRET: client credentials
//   - PORT: listening port (default 3000)
//   - FATSECRET_TOKEN_URL, FATSECRET_SEARCH_URL: endpoint overrides
//   - LOG_LEVEL, LOG_FORMAT: logging overrides
//
// Missing credentials are not a load error. The relay still starts and every
// token exchange fails until they are provided.
//
// # File Format
//
//	server:
//	  host: 0.0.0.0
//	  port: 3000
//	fatsecret:
//	  clientId: my-client
//	  tokenUrl: https://oauth.fatsecret.com/connect/token
//	  singleFlight: true
//	logging:
//	  level: debug
//	  format: json
package config
