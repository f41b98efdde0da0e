package types

// ForwardingStatistics is a snapshot of a combinator's counters.
type ForwardingStatistics struct {
	// Received is the number of frames pulled from the upstream source.
	Received uint64 `json:",omitempty"`
	// Sent is the number of frames accepted by the downstream stage.
	Sent uint64 `json:",omitempty"`
	// Rejected is the number of pushes the downstream stage handed back.
	Rejected uint64 `json:",omitempty"`
	// Pending is the number of polls which returned Pending.
	Pending uint64 `json:",omitempty"`
	// CloseAttempts is the number of PollClose calls (a single logical close
	// may take several attempts).
	CloseAttempts uint64 `json:",omitempty"`
	// EndOfStream is true if the upstream source reported end-of-stream.
	EndOfStream bool `json:",omitempty"`
}
