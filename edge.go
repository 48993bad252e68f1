package flownet

import "fmt"

// Edge is one directed capacitated arc From→To together with its
// implicit reverse residual arc To→From. Rather than materializing two
// edge objects that must be kept in sync, a single record is queried
// bidirectionally: residual capacity is Capacity−Flow in the forward
// direction and Flow in the reverse direction.
//
// The network's arena holds the authoritative records; accessors hand
// out copies, and flow is mutated only through Network.Augment.
type Edge struct {
	From     int
	To       int
	Capacity float64
	Flow     float64
}

// Other returns the endpoint of e opposite to v, or ErrIllegalEndpoint
// if v is neither endpoint.
func (e Edge) Other(v int) (int, error) {
	switch v {
	case e.From:
		return e.To, nil
	case e.To:
		return e.From, nil
	default:
		return 0, fmt.Errorf("%w: vertex %d on %v", ErrIllegalEndpoint, v, e)
	}
}

// Residual returns the residual capacity of e when traversed starting
// at vertex from: Capacity−Flow in the forward direction, Flow in the
// reverse (residual) direction. Pure function of current state.
func (e Edge) Residual(from int) (float64, error) {
	switch from {
	case e.From:
		return e.Capacity - e.Flow, nil
	case e.To:
		return e.Flow, nil
	default:
		return 0, fmt.Errorf("%w: vertex %d on %v", ErrIllegalEndpoint, from, e)
	}
}

// residualFrom is Residual without the endpoint check; v must be an
// endpoint of e.
func (e Edge) residualFrom(v int) float64 {
	if v == e.From {
		return e.Capacity - e.Flow
	}
	return e.Flow
}

// String renders the edge as "(u -(flow/cap)-> v)".
func (e Edge) String() string {
	return fmt.Sprintf("(%d -(%g/%g)-> %d)", e.From, e.Flow, e.Capacity, e.To)
}
