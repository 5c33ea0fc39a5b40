package installer

import "strconv"

type InstallState struct {
	RuntimePath string
	EnvVars     map[string]string
}

func NewInstallState(runtimePath string) *InstallState {
	return &InstallState{
		RuntimePath: runtimePath,
		EnvVars:     make(map[string]string),
	}
}

// Enabled reports whether a boolean env var was switched on.
func (s *InstallState) Enabled(key string) bool {
	v, _ := strconv.ParseBool(s.EnvVars[key])
	return v
}
