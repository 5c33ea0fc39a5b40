package installer

import (
	"fmt"
	"net"
)

func NewWebAddrStep() Step {
	s := newInputStep("Address for the web API:", "CSBOT_WEB_ADDR", ":8080", ":8080")
	s.when = func(st *InstallState) bool { return st.Enabled("CSBOT_ENABLE_WEB") }
	s.validate = func(v string) error {
		if _, _, err := net.SplitHostPort(v); err != nil {
			return fmt.Errorf("expected host:port, got %q", v)
		}
		return nil
	}
	return s
}
