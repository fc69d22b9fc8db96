package order

import "strings"

// allowed holds the legal (from, to) pairs. PREPARING -> PREPARING is the
// "continue preparing" step that reopens the scanning workflow.
var allowed = map[Status]map[Status]bool{
	StatusNew:       {StatusPreparing: true, StatusRejected: true},
	StatusPreparing: {StatusPreparing: true, StatusConfirmed: true, StatusRejected: true},
	StatusConfirmed: {StatusShipped: true, StatusRejected: true},
	StatusRejected:  {},
	StatusShipped:   {},
}

// CanTransition checks if from->to is allowed.
func CanTransition(from, to Status) bool {
	nexts := allowed[from]
	return nexts != nil && nexts[to]
}

func (s Status) Valid() bool {
	_, ok := allowed[s]
	return ok
}

// Terminal reports whether no transition leaves s.
func (s Status) Terminal() bool {
	nexts, ok := allowed[s]
	return ok && len(nexts) == 0
}

func (s Status) String() string {
	return string(s)
}

// ParseStatus accepts any letter case, e.g. "preparing".
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToUpper(strings.TrimSpace(raw)))
	if !s.Valid() {
		return "", UnknownStatusError(Status(raw))
	}
	return s, nil
}

func checkTransition(from, to Status) error {
	if !to.Valid() {
		return UnknownStatusError(to)
	}
	if !CanTransition(from, to) {
		return &TransitionError{From: from, To: to}
	}
	return nil
}
