package settings

import (
	"time"
)

const (
	DEFAULT_SEGMENT_SIZE = 10 * 1024 * 1024
	LOOP_DELAY           = 10 * time.Millisecond // one control tick
	MS_TO_KPH            = 3.6
	KPH_TO_MS            = 1 / 3.6
	MPH_TO_KPH           = 1.609344
)
