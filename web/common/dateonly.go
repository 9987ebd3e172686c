package common

import (
	"encoding/json"
	"time"

	"hrmslite.com/hrmslite/utils"
)

// DateOnly renders a calendar day as yyyy-MM-dd on the wire and accepts
// any ISO-8601 shape on input, discarding the time-of-day component.
type DateOnly struct {
	time.Time
}

func (d *DateOnly) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	// An empty string is rejected like any other unparseable input; a
	// zero date is never a valid calendar day here.
	day, err := utils.ParseDay(s)
	if err != nil {
		return err
	}

	d.Time = day
	return nil
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return json.Marshal("")
	}
	return json.Marshal(d.Format(utils.DateLayout))
}
