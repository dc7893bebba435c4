package entities

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusDelivered  Status = "delivered"
	StatusCompleted  Status = "completed"
	StatusCancelling Status = "cancelling"
	StatusCancelled  Status = "cancelled"
)

// Statuses lists every order status in lifecycle order.
var Statuses = []Status{
	StatusPending,
	StatusProcessing,
	StatusDelivered,
	StatusCompleted,
	StatusCancelling,
	StatusCancelled,
}

func (s Status) Valid() bool {
	for _, st := range Statuses {
		if s == st {
			return true
		}
	}
	return false
}

// Terminal reports whether no transition leads out of s.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

type Actor string

const (
	ActorCustomer Actor = "customer"
	ActorAdmin    Actor = "admin"
)

// EventKind tags the notification sent on order creation and on
// terminal transitions.
type EventKind string

const (
	EventNewOrder  EventKind = "new_order"
	EventCancelled EventKind = "cancelled"
	EventCompleted EventKind = "completed"
)

type edge struct {
	from Status
	to   Status
}

// TransitionRule describes one legal edge of the lifecycle graph.
type TransitionRule struct {
	// Customer marks edges a customer may trigger; every edge is open to admins.
	Customer bool
	// RequiresReason marks edges that must carry a non-empty cancel reason.
	RequiresReason bool
	// Notify is the event to send after the transition persists, if any.
	Notify EventKind
}

// The lifecycle graph. Cancellation is a request (cancelling) arbitrated by
// the admin, who either approves it (cancelled) or sends the order back to
// production (processing). Admins may also cancel outright before completion.
var transitions = map[edge]TransitionRule{
	{StatusPending, StatusProcessing}:    {},
	{StatusProcessing, StatusDelivered}:  {},
	{StatusDelivered, StatusCompleted}:   {Customer: true, Notify: EventCompleted},
	{StatusPending, StatusCancelling}:    {Customer: true, RequiresReason: true},
	{StatusProcessing, StatusCancelling}: {Customer: true, RequiresReason: true},
	{StatusCancelling, StatusCancelled}:  {Notify: EventCancelled},
	{StatusCancelling, StatusProcessing}: {},
	{StatusPending, StatusCancelled}:     {Notify: EventCancelled},
	{StatusProcessing, StatusCancelled}:  {Notify: EventCancelled},
	{StatusDelivered, StatusCancelled}:   {Notify: EventCancelled},
}

// Transition looks up the rule for the (from, to) edge. The second result is
// false when the edge is not part of the lifecycle graph.
func Transition(from, to Status) (TransitionRule, bool) {
	rule, ok := transitions[edge{from, to}]
	return rule, ok
}

func (r TransitionRule) Allows(actor Actor) bool {
	if actor == ActorAdmin {
		return true
	}
	return r.Customer
}
