package topics

// Checker reports whether the network is reachable. The repository
// consults it before issuing any request.
type Checker interface {
	Online() bool
}

// AlwaysOnline is the default Checker. It assumes connectivity and lets
// the transport surface real failures.
type AlwaysOnline struct{}

func (AlwaysOnline) Online() bool { return true }
