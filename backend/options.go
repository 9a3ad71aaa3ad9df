package backend

type Options struct {
	DataDir     string `short:"d" long:"data" env:"APPSESSION_DATA_DIR" description:"application data directory, defaults to the platform data directory"`
	Identifier  string `short:"i" long:"identifier" env:"APPSESSION_IDENTIFIER" default:"com.hasu.todo" description:"application identifier"`
	WidgetDir   string `long:"widget-dir" env:"APPSESSION_WIDGET_DIR" description:"widget data directory, defaults to the package files directory"`
	HTTPAddr    string `long:"http" env:"APPSESSION_HTTP" description:"serve commands over HTTP on the given address instead of stdio"`
	LogLevel    string `short:"l" long:"log-level" env:"APPSESSION_LOG_LEVEL" default:"info" description:"log level"`
	Development bool   `long:"development" env:"APPSESSION_DEVELOPMENT" description:"console log encoding"`
	Show        bool   `short:"s" long:"show" description:"print the stored session and exit"`
}
