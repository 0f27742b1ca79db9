package abort

// Controller is an AbortController: it owns exactly one Signal and is the
// only way most callers fire one.
type Controller struct {
	signal *Signal
}

// NewController returns a controller wrapping a fresh, non-aborted signal.
func NewController() *Controller {
	return &Controller{signal: NewSignal()}
}

// Signal returns the controller's signal. Every call returns the same
// pointer.
func (c *Controller) Signal() *Signal { return c.signal }

// Abort fires the controller's signal with reason.
func (c *Controller) Abort(reason any) { c.signal.SignalAbort(reason) }
