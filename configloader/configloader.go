package configloader

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// EnvFile is read from the working directory on import.
const EnvFile = "DESTool.env"

func init() {
	reportEnv(EnvFile, LoadEnv(EnvFile))
}

// LoadEnv loads KEY=VALUE pairs from the given files without overriding
// variables that are already set.
func LoadEnv(files ...string) error {
	return godotenv.Load(files...)
}

// reportEnv logs the outcome of loading file. The file is optional, so a
// failure is a warning only.
func reportEnv(file string, err error) {
	if err != nil {
		logrus.Warnf("CONFIGLOADER: Note: %s not loaded: %v. Relying on the process environment.", file, err)
		return
	}
	logrus.Infof("CONFIGLOADER: %s loaded.", file)
}
