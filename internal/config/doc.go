// Package config manages application configuration for the club API.
//
// The config package loads and validates configuration from environment variables.
// All configuration is centralized here to provide a single source of truth.
//
// # Configuration Loading
//
// Configuration is loaded from environment variables, with a .env file
// in the working directory applied first when present:
//
//	cfg, err := config.Load()
//
// # Configuration Groups
//
// Configuration is organized into logical groups:
//
//   - ServerConfig: HTTP server settings (port, timeouts, CORS origins)
//   - DatabaseConfig: SurrealDB connection settings
//   - JWTConfig: JWT signing and validation settings
//   - ChatConfig: chat room settings (history window size)
//
// # Environment Variables
//
// Key environment variables:
//
//	SERVER_PORT          - HTTP server port (default: 8080)
//	SERVER_ENV           - development, production, or test
//	CORS_ALLOWED_ORIGINS - comma-separated list of allowed origins
//	DB_HOST              - SurrealDB host
//	DB_PORT              - SurrealDB port
//	DB_NAMESPACE         - database namespace
//	DB_DATABASE          - database name
//	JWT_PRIVATE_KEY_PATH - RSA private key for token signing
//	JWT_PUBLIC_KEY_PATH  - RSA public key for token validation
//	JWT_EXPIRATION_MINS  - token lifetime in minutes
//	CHAT_HISTORY_LIMIT   - number of chat messages kept in the window
//
// # Default Values
//
// Sensible defaults are provided for development:
//
//	func getEnv(key, defaultValue string) string {
//	    if value := os.Getenv(key); value != "" {
//	        return value
//	    }
//	    return defaultValue
//	}
package config
