package checkout

// State is the per-user payment flow state, kept in Redis.
type State string

const (
	StateIdle            State = "idle"
	StateAwaitingPayment State = "awaiting_payment"
)

var validNext = map[State]map[State]bool{
	StateIdle:            {StateAwaitingPayment: true},
	StateAwaitingPayment: {StateIdle: true},
}

func CanTransition(from, to State) bool {
	return validNext[from][to]
}
