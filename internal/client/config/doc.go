// Package config loads runtime configuration for the Mini-Reddit CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config, or $CONFIG.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the REST API
//	-t int      request timeout (seconds)
//
// # JSON schema
//
//	{
//	  "api_base_url": "http://127.0.0.1:8080/api/",
//	  "request_timeout": "10s"
//	}
package config
