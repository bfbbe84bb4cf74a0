package rawdata

import "time"

// Capture is one unmodified API payload kept for provenance and
// replay. Captures are write-once.
type Capture struct {
	Dataset     string
	CapturedAt  time.Time
	Params      map[string]string
	RecordCount int
	Payload     []byte
}
