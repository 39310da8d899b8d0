package config

// this holds the resolved configuration values from CLI
//
//nolint:lll // readablity
var (
	LogLevel  string // sets the log level (zap log level values)
	LogFormat string // text vs json
	LogFilter string // zapfilter rules applied on top of the log level

	LayoutFile  string // path to yaml file with layout overrides
	FontRegular string // path to a TTF/OTF used for regular labels (empty: embedded Go font)
	FontBold    string // path to a TTF/OTF used for bold labels (empty: embedded Go font)

	Python      string // python interpreter used for the acquisition script
	FetchScript string // path to the acquisition script
	Year        int    // season of the event
	Event       string // event name or country as understood by the acquisition script
	Session     string // session identifier (Q, R, FP1, ...)
	DataDir     string // directory receiving/holding the driver record files
)

// Config holds the configuration values which are used by the render command
type Config struct {
	Driver1File string
	Driver2File string
	Output      string
	Format      string // gif or png
	Dither      bool   // use Floyd-Steinberg dithering when quantizing gif frames
	Refresh     bool   // run the acquisition script before rendering
}
