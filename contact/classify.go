package contact

// State is the confirmation state of a single contact. The set is closed:
// the aggregator handles every case exhaustively.
type State int

const (
	Unconfirmed State = iota
	ConfirmedLoTW
	ConfirmedCard
	ConfirmedBoth
)

// Classify computes the confirmation state from the record's two independent
// flags. Both flags may be true at once; the paper card and the electronic
// match are separate events.
func Classify(r Record) State {
	switch {
	case r.LoTWConfirmed && r.CardConfirmed:
		return ConfirmedBoth
	case r.LoTWConfirmed:
		return ConfirmedLoTW
	case r.CardConfirmed:
		return ConfirmedCard
	default:
		return Unconfirmed
	}
}

func (s State) String() string {
	switch s {
	case ConfirmedLoTW:
		return "LOTW"
	case ConfirmedCard:
		return "CARD"
	case ConfirmedBoth:
		return "BOTH"
	default:
		return "UNCONFIRMED"
	}
}
