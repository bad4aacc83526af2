package game

// Role is the standing a seat earned from the previous round's
// finishing order.
type Role int

const (
	RoleCitizen Role = iota
	RolePresident
	RoleVicePresident
	RoleViceAsshole
	RoleAsshole
)

var roleNames = map[Role]string{
	RoleCitizen:       "citizen",
	RolePresident:     "president",
	RoleVicePresident: "vice_president",
	RoleViceAsshole:   "vice_asshole",
	RoleAsshole:       "asshole",
}

func (r Role) String() string {
	return roleNames[r]
}

// Seat is a fixed position in turn order, independent of which actor
// currently occupies it. Seat identity is stable across reconnects;
// mapping a transport handle to a seat is the boundary layer's job.
type Seat struct {
	ID    string
	Name  string
	Index int

	// Occupied=false marks a vacated seat: the sequencer skips it and
	// a later joiner replaces it in place, inheriting the hand.
	Occupied bool
	// Attended=false with Occupied=true puts the seat under automation.
	Attended bool

	Hand         *Hand
	FinishedRank int // 0 while still holding cards
	Role         Role
}

func (s *Seat) finished() bool {
	return s.FinishedRank > 0
}

// active reports whether the seat still participates in the current
// round: occupied with cards left.
func (s *Seat) active() bool {
	return s.Occupied && !s.Hand.IsEmpty()
}
