package config

const (
	defaultServerURL  = "http://localhost:3847"
	defaultStagingDir = "~/.local/share/forge3d/staging"
	defaultLogDir     = "~/.local/share/forge3d/logs"
	defaultLogFormat  = "console"
	defaultLogLevel   = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Server: Server{
			URL: defaultServerURL,
		},
		Paths: Paths{
			StagingDir: defaultStagingDir,
			LogDir:     defaultLogDir,
		},
		History: History{
			Enabled: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
