package add_booking

// AddBookingRequest HTTP request model
type AddBookingRequest struct {
	Name string `json:"name"`
	Slot string `json:"slot"` // "Morning" | "Afternoon" | "Evening" | "All Day"
}
