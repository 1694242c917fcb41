// Package conf contains the constants that are used across packages for
// versioning, and the configuration file shared by the command line tools.
package conf

import (
	"fmt"
	"time"
)

const (
	// VERSION is the version of the minire application.
	VERSION = "minire 0.1.0"
	// VERSIONMAJORN is the major version.
	VERSIONMAJORN = 0
	// VERSIONMINORN is the minor version.
	VERSIONMINORN = 1
	// VERSIONPATCHN is the patch version.
	VERSIONPATCHN = 0
	// CONFIGFILE is the name of the config file looked up in the home directory.
	CONFIGFILE = ".minire.yaml"
	// DEFAULTPROMPT is the repl prompt.
	DEFAULTPROMPT = "> "
	// CONTINUEPROMPT is the repl prompt while a line is continued.
	CONTINUEPROMPT = "...> "
	// DEFAULTTIMEFORMAT is the strftime format of log timestamps.
	DEFAULTTIMEFORMAT = "%Y-%m-%d %H:%M:%S"
)

// FullVersion returns the version and copyright.
func FullVersion() string {
	return fmt.Sprintf("%v %v", VERSION, Copyright())
}

// Copyright is the copyright to be written out in the CLI.
func Copyright() string {
	return fmt.Sprintf("Copyright (C) %v", time.Now().Year())
}
