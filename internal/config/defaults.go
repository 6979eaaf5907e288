package config

const (
	defaultManifestPath     = "sourdough-starter-manifest.json"
	defaultProgressLog      = "ffmpeg_progress.log"
	defaultViewerCommand    = "open"
	defaultEncodeFPS        = 15
	defaultEncodeScale      = "1280:720"
	defaultEncodePreset     = "fast"
	defaultEncodeCRF        = 28
	defaultEncodeOutput     = "timelapse.mp4"
	defaultDockerImage      = "jrottenberg/ffmpeg:latest"
	defaultContainerName    = "wackywolffish"
	defaultProgressInterval = 2
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			Manifest:    defaultManifestPath,
			ProgressLog: defaultProgressLog,
		},
		Viewer: Viewer{
			Command: defaultViewerCommand,
		},
		Encode: Encode{
			FPS:           defaultEncodeFPS,
			Scale:         defaultEncodeScale,
			Preset:        defaultEncodePreset,
			CRF:           defaultEncodeCRF,
			Output:        defaultEncodeOutput,
			DockerImage:   defaultDockerImage,
			ContainerName: defaultContainerName,
		},
		Progress: Progress{
			IntervalSeconds: defaultProgressInterval,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
