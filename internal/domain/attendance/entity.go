package attendance

import "time"

// Direction of a punch event.
type Direction string

const (
	DirectionIn  Direction = "in"
	DirectionOut Direction = "out"
)

// Punch is one clock-machine event, as delivered by the external punch
// source. Raw biometric ingestion happens upstream; by the time a punch
// reaches this service it is already attributed to an employee.
type Punch struct {
	Timestamp time.Time
	Direction Direction
}
