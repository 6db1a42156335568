package models

// ReplicationPayload is the queued form of a weekday replication request.
type ReplicationPayload struct {
	RequestID  string `json:"requestId"`
	DoctorID   string `json:"doctorId"`
	SourceDate string `json:"sourceDate"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`
}

// ReplicationSummary reports the outcome of a replication run. Each
// weekday of the target month lands in exactly one of the two counters.
type ReplicationSummary struct {
	Applied int `json:"applied"`
	Skipped int `json:"skipped"`
}

// ReplicateRequest is the API payload for copying one date's schedule to
// every Monday-Friday date of a month.
type ReplicateRequest struct {
	SourceDate string `json:"sourceDate" binding:"required"`
	Month      int    `json:"month" binding:"required"`
	Year       int    `json:"year" binding:"required"`
	Async      bool   `json:"async"`
}
