package main

import (
	"fmt"
	"os"

	xappdirs "github.com/chasinglogic/appdirs"
)

const (
	appName     = "nasa-data-explorer"
	logFileName = "nasa-data-explorer.log"
)

// appDirs represents the app's local directories for storing logs etc.
type appDirs struct {
	log string
}

func newAppDirs() appDirs {
	ad := xappdirs.New(appName)
	return appDirs{log: ad.UserLog()}
}

func (ad appDirs) initLogFile() (string, error) {
	if err := os.MkdirAll(ad.log, os.ModePerm); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s", ad.log, logFileName), nil
}
