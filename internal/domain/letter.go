package domain

// Letter is the data a thank-you letter template renders.
type Letter struct {
	ID              string
	Name            string
	Representatives Representatives
}

// NewLetter builds the template data for an attendee.
func NewLetter(a Attendee, reps Representatives) Letter {
	return Letter{ID: a.ID, Name: a.FirstName, Representatives: reps}
}
