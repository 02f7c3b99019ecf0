package xmfa

// ParseUnitInt is only exported for testing.
var ParseUnitInt = parseUnitInt

// ReadRecords starts reading records wherever the Reader is, without
// checking for a coordinate line first.
func (r *Reader) ReadRecords() (Block, error) { return r.readRecords() }
