package engine

// CursorController is implemented by hosts that own a pointer
type CursorController interface {
	SetCursor(visible, locked bool)
}

// CursorState is the pointer visibility and capture mode
type CursorState struct {
	Visible bool `json:"visible"`
	Locked  bool `json:"locked"`
}

// InitialCursor is hidden and captured for first-person look
var InitialCursor = CursorState{Visible: false, Locked: true}

// PausedCursor returns the cursor mode requested by a pause state
func PausedCursor(paused bool) CursorState {
	if paused {
		return CursorState{Visible: true, Locked: false}
	}
	return InitialCursor
}

// CursorResource collects cursor requests from systems during a frame
// CursorApplySystem is the only writer to the host controller
// Within a frame the last request wins; Toggle flips the effective state including pending requests
type CursorResource struct {
	current CursorState
	pending CursorState
	dirty   bool
}

// NewCursorResource creates a resource with initial queued for the first apply
func NewCursorResource(initial CursorState) *CursorResource {
	return &CursorResource{
		current: initial,
		pending: initial,
		dirty:   true,
	}
}

// Request queues a cursor state
func (c *CursorResource) Request(s CursorState) {
	c.pending = s
	c.dirty = true
}

// Toggle queues the inverse of the effective state
func (c *CursorResource) Toggle() {
	s := c.Effective()
	c.Request(CursorState{Visible: !s.Visible, Locked: !s.Locked})
}

// Effective returns the pending state if any, else the applied one
func (c *CursorResource) Effective() CursorState {
	if c.dirty {
		return c.pending
	}
	return c.current
}

// Current returns the last applied state
func (c *CursorResource) Current() CursorState {
	return c.current
}

// Pending reports whether a request awaits apply
func (c *CursorResource) Pending() bool {
	return c.dirty
}

// Apply writes the pending request to ctrl, returns false when nothing was pending
// A nil ctrl still commits the state so headless runs track it
func (c *CursorResource) Apply(ctrl CursorController) bool {
	if !c.dirty {
		return false
	}
	c.current = c.pending
	c.dirty = false
	if ctrl != nil {
		ctrl.SetCursor(c.current.Visible, c.current.Locked)
	}
	return true
}
