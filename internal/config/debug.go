package config

import "os"

func IsDebug() bool {
	return os.Getenv("CSBOT_DEBUG") == "1"
}
