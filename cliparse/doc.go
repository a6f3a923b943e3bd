// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Host: Listen host (default: 0.0.0.0)
  - Port: Listen port (default: 8000)
  - StaticDir: Directory served at /, empty serves a plain-text banner (default: empty)
  - RateLimitRPS: Requests per second per client, 0 disables (default: 20)
  - RateLimitBurst: Token bucket size (default: 40)
  - TrustProxy: Key rate limits on X-Forwarded-For/X-Real-IP (default: false)
  - LogLevel: debug, info, warn or error (default: info)
  - LogFormat: text or json (default: text)

# Sources

Values are resolved in this order, later sources overriding earlier ones:

 1. Defaults from the struct tags
 2. The dotenv file (-env-file, default .env), if it exists
 3. Environment variables
 4. CLI flags

The dotenv file never overrides a variable that is already set in the
process environment.

# CLI Flags

	-host        HOST
	-p           PORT
	-static      STATIC_DIR
	-rate        RATE_LIMIT_RPS
	-burst       RATE_LIMIT_BURST
	-trust-proxy TRUST_PROXY
	-log-level   LOG_LEVEL
	-log-format  LOG_FORMAT
	-env-file    dotenv path ("" to skip)

# Example

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	server := http.Server{Addr: cfg.Addr(), Handler: mux}
*/
package cliparse
