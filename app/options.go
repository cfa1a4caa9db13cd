package app

// Options are the command line flags. Empty values leave the config file
// or the defaults in effect.
type Options struct {
	ConfigPath string
	LogDir     string
	LogLevel   string
}
