// Package config provides configuration management for the discography manager.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Overriding settings from the environment and a .env file
//   - Conversion to the option types used by other packages
//
// # Default Settings
//
//	settings := config.DefaultSettings()
//	// Reads Pink_Floyd_DB.txt from the working directory
//	// Skips malformed track records
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	// Uses defaults if the file doesn't exist
//
// # Environment
//
//	if err := settings.ApplyEnv(); err != nil {
//	    // a variable held a value that could not be parsed
//	}
//
// Recognised variables: DISCOGRAPHY_DATA_FILE, DISCOGRAPHY_STRICT,
// DISCOGRAPHY_VERBOSE.
package config
