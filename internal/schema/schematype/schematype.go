// Package schematype holds Go types embedded in ent JSON columns.
package schematype

// AvailabilitySlot is one entry of a doctor's declared working hours,
// e.g. {Day: "monday", From: "09:00", To: "13:00"}.
type AvailabilitySlot struct {
	Day  string `json:"day"`
	From string `json:"from"`
	To   string `json:"to"`
}
