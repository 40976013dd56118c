package flags

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// Flags stores the parsed command-line options.
type Flags struct {
	Mode  string
	Night string
	Mute  bool
	Reset bool
}

// Parse parses command-line flags. The boolean reports whether any flag was
// set away from its default; when none were, saved settings stay in force.
func Parse() (*Flags, bool) {
	var mode string
	var night string
	var mute bool
	var reset bool

	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)

	fs.StringVar(&mode, "mode", "classic", "Game mode: chill, classic, or frantic")
	fs.StringVar(&night, "night", "", "Night dimming: never, always or real (at your location)")
	fs.BoolVar(&mute, "mute", false, "Mute all sounds")
	fs.BoolVar(&reset, "reset", false, "Reset saved high scores and settings")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fs.PrintDefaults()
	}
	fs.Parse(os.Args[1:])

	// Check if any flags have been set non-default
	hasCustom := false
	fs.Visit(func(f *flag.Flag) {
		if f.Value.String() != f.DefValue {
			hasCustom = true
		}
	})
	if !hasCustom {
		return nil, false
	}

	mode = strings.ToLower(mode)
	if mode != "chill" && mode != "classic" && mode != "frantic" {
		fmt.Fprintf(os.Stderr, "Invalid game mode: %s. Use 'chill', 'classic', or 'frantic'.\n", mode)
		fs.Usage()
		os.Exit(1)
	}

	if night != "" {
		night = strings.ToLower(night)
		if night != "never" && night != "always" && night != "real" {
			fmt.Fprintf(os.Stderr, "Invalid night option: %s. Use 'never', 'always', or 'real'.\n", night)
			fs.Usage()
			os.Exit(1)
		}
	}

	return &Flags{
		Mode:  mode,
		Night: night,
		Mute:  mute,
		Reset: reset,
	}, true
}
