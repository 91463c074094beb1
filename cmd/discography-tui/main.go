package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/handiism/discography-manager/internal/config"
	"github.com/handiism/discography-manager/internal/tui"
)

func main() {
	configFlag := flag.String("config", "", "Path to config file")
	dataFlag := flag.String("data", "", "Discography data file (overrides config)")
	flag.Parse()

	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	if err := settings.ApplyEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *dataFlag != "" {
		settings.DataFile = *dataFlag
	}

	if err := tui.Run(settings); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
