// Package constants contains names and paths shared across hammer.
package constants

const (
	// AppName is the application name used for directory names.
	AppName = "hammer"

	// HomeEnv is the environment variable the data directory is derived from.
	HomeEnv = "HOME"

	// LogFilename is the default log file name for hammer.
	LogFilename = "hammer.log"

	// ConfigFilename is the default config file name for hammer.
	ConfigFilename = "config.yml"

	// DataSubPath is the data directory location relative to the user's home,
	// slash separated.
	DataSubPath = ".local/share/" + AppName
)

const (
	TaskCompletedFilename = "task.completed"
	TaskDataFilename      = "task.data"
	TimeCompletedFilename = "time.completed"
	TimeDataFilename      = "time.data"
)

// TrackingFilenames lists the tracking files in the order they are created.
func TrackingFilenames() []string {
	return []string{
		TaskCompletedFilename,
		TaskDataFilename,
		TimeCompletedFilename,
		TimeDataFilename,
	}
}
