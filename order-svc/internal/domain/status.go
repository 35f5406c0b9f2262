package domain

type Status string

const (
	StatusNew            Status = "new"
	StatusPendingPayment Status = "pending_payment"
	StatusPaid           Status = "paid"
	StatusCompleted      Status = "completed"
	StatusCancelled      Status = "cancelled"
)

type Actor string

const (
	ActorStaff   Actor = "staff"
	ActorPayment Actor = "payment"
)

var transitions = map[Status]map[Status]Actor{
	StatusNew: {
		StatusCompleted: ActorStaff,
		StatusCancelled: ActorStaff,
	},
	StatusPendingPayment: {
		StatusPaid:      ActorPayment,
		StatusCancelled: ActorStaff,
	},
	StatusPaid: {
		StatusCompleted: ActorStaff,
		StatusCancelled: ActorStaff,
	},
}

func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusPendingPayment, StatusPaid, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransition reports whether actor may move an order from one status to another.
func CanTransition(from, to Status, actor Actor) bool {
	allowed, ok := transitions[from][to]
	return ok && allowed == actor
}

// InitialStatus is new for cash orders and pending_payment for online ones.
func InitialStatus(method PaymentMethod) Status {
	if method == PaymentOnline {
		return StatusPendingPayment
	}
	return StatusNew
}
