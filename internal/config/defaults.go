package config

const (
	defaultTempo        = 120
	defaultTicksPerBeat = 480
	defaultOutput       = "traffic.mid"
	defaultLogLevel     = "info"
	defaultLogFormat    = "console"

	minTempo = 20
	maxTempo = 400

	minTicksPerBeat = 24
	maxTicksPerBeat = 960
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Sonify: Sonify{
			Tempo:        defaultTempo,
			TicksPerBeat: defaultTicksPerBeat,
			Output:       defaultOutput,
			Limit:        0,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
