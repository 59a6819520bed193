package config

import (
	"flag"
	"os"
	"time"
)

// parseFlags parses all configuration flags from the process arguments.
//
// Flags:
//
//	-r remote REST base URL
//	-k remote api key
//	-t access token (bearer)
//	-d local database DSN
//	-c/-config json file path with configs
//	-request-timeout remote request timeout (e.g., "30s", "1m")
//	-probe-interval connectivity probe interval (e.g., "30s")
func parseFlags() *ClientConfig {
	return parseFlagsFrom(os.Args[1:])
}

func parseFlagsFrom(args []string) *ClientConfig {
	var (
		baseURL        string
		apiKey         string
		accessToken    string
		databaseDSN    string
		jsonConfigPath string
		requestTimeout time.Duration
		probeInterval  time.Duration
	)

	fs := flag.NewFlagSet("flightbag", flag.ContinueOnError)
	fs.StringVar(&baseURL, "r", "", "Remote REST base URL")
	fs.StringVar(&apiKey, "k", "", "Remote api key")
	fs.StringVar(&accessToken, "t", "", "Access token")
	fs.StringVar(&databaseDSN, "d", "", "Local database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Remote request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&probeInterval, "probe-interval", 0, "Connectivity probe interval (e.g., 30s)")
	_ = fs.Parse(args)

	return &ClientConfig{
		Remote: Remote{
			BaseURL:        baseURL,
			APIKey:         apiKey,
			AccessToken:    accessToken,
			RequestTimeout: requestTimeout,
		},
		Storage:      Storage{DB: DB{DSN: databaseDSN}},
		Sync:         Sync{ProbeInterval: probeInterval},
		JSONFilePath: jsonConfigPath,
	}
}
