package installer

import (
	"fmt"
	"time"
)

func durationValidator(v string) error {
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("expected a duration like 1s or 500ms, got %q", v)
	}
	if d < 0 {
		return fmt.Errorf("duration must not be negative")
	}
	return nil
}

func NewDelayMinStep() Step {
	s := newInputStep("Minimum time the assistant \"types\" before answering:", "CSBOT_REPLY_DELAY_MIN", "1s", "1s")
	s.validate = durationValidator
	return s
}

func NewDelayJitterStep() Step {
	s := newInputStep("Extra random typing time, up to:", "CSBOT_REPLY_DELAY_JITTER", "1s", "1s")
	s.validate = durationValidator
	return s
}
