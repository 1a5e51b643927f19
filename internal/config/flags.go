package config

import (
	"flag"
	"io"
)

// FromArgs builds the configuration from command-line arguments. The file
// named by -config is loaded first; flags given explicitly override it.
func FromArgs(name string, args []string, output io.Writer) (Config, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	if output != nil {
		fs.SetOutput(output)
	}

	var path string
	over := Default()
	fs.StringVar(&path, "config", "", "Path to a TOML configuration file")
	fs.StringVar(&path, "c", "", "Path to a TOML configuration file (shorthand)")
	fs.StringVar(&over.Title, "title", over.Title, "Window title")
	fs.StringVar(&over.Icon, "icon", over.Icon, "Window icon PNG (default: search for PaintIcon.png)")
	fs.StringVar(&over.LogLevel, "log-level", over.LogLevel, "Log level: debug, info, warn, error")
	fs.IntVar(&over.Canvas.Width, "width", over.Canvas.Width, "Canvas width in pixels")
	fs.IntVar(&over.Canvas.Height, "height", over.Canvas.Height, "Canvas height in pixels")
	fs.StringVar(&over.Canvas.Background, "background", over.Canvas.Background, "Canvas background color")
	fs.IntVar(&over.Brush.Size, "size", over.Brush.Size, "Initial brush size (1-20)")
	fs.StringVar(&over.Brush.Color, "color", over.Brush.Color, "Initial brush color")
	fs.IntVar(&over.History.Limit, "history", over.History.Limit, "Maximum undo history entries")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg, err := Load(path)
	if err != nil {
		return Config{}, err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			cfg.Title = over.Title
		case "icon":
			cfg.Icon = over.Icon
		case "log-level":
			cfg.LogLevel = over.LogLevel
		case "width":
			cfg.Canvas.Width = over.Canvas.Width
		case "height":
			cfg.Canvas.Height = over.Canvas.Height
		case "background":
			cfg.Canvas.Background = over.Canvas.Background
		case "size":
			cfg.Brush.Size = over.Brush.Size
		case "color":
			cfg.Brush.Color = over.Brush.Color
		case "history":
			cfg.History.Limit = over.History.Limit
		}
	})
	return cfg, cfg.Validate()
}
