package attendance

// SyncFailure reports one employee whose punches could not be reconciled.
type SyncFailure struct {
	EmployeeID string `json:"employee_id"`
	Reason     string `json:"reason"`
}

// SyncDayResult reports what a day sync did. Failures are collected, not
// fatal: one unreachable employee never blocks the rest of the run.
type SyncDayResult struct {
	Date       string        `json:"date"`
	RowsSynced int           `json:"rows_synced"`
	Failures   []SyncFailure `json:"failures,omitempty"`
}
