package config

// defaults is the lowest layer of configuration.
func defaults() map[string]any {
	return map[string]any{
		"source.type": DefaultSourceType,
		"log_level":   DefaultLogLevel,
		"output":      DefaultOutput,
		"verbose":     false,
	}
}

// flagKeys maps flag names to config keys where they differ.
var flagKeys = map[string]string{
	"source":    "source.type",
	"path":      "source.path",
	"dsn":       "source.dsn",
	"schema":    "source.schema",
	"tables":    "source.tables",
	"log-level": "log_level",
}
