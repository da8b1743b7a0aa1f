package disclosure

// Actions are the operations a widget exposes through a [Controller].
// Nil entries are no-ops.
type Actions struct {
	Open   func()
	Close  func()
	Toggle func()
	Clear  func()
	Focus  func()
	Blur   func()
}

// Controller is a stable imperative handle the host creates and passes to a
// widget through its props. The widget binds its operations on mount and
// unbinds on Dispose; calls while unbound do nothing.
//
// The handle runs exactly the same code path as the equivalent prop-driven
// or user-driven change.
//
//	ctrl := disclosure.NewController()
//	acc := widgets.NewAccordion(sched, widgets.AccordionProps{Controller: ctrl})
//	showButton.OnPress = ctrl.Open
type Controller struct {
	actions Actions
	binding uint64
	bound   bool
}

// NewController creates an unbound controller.
func NewController() *Controller {
	return &Controller{}
}

// Bind attaches actions, replacing any earlier binding. The returned
// function unbinds them; it does nothing if a later Bind replaced them.
func (c *Controller) Bind(a Actions) (unbind func()) {
	c.binding++
	token := c.binding
	c.actions = a
	c.bound = true
	return func() {
		if c.binding == token {
			c.actions = Actions{}
			c.bound = false
		}
	}
}

// Attached reports whether a widget is bound.
func (c *Controller) Attached() bool {
	return c != nil && c.bound
}

// Open opens the bound widget.
func (c *Controller) Open() {
	if c != nil {
		call(c.actions.Open)
	}
}

// Close closes the bound widget.
func (c *Controller) Close() {
	if c != nil {
		call(c.actions.Close)
	}
}

// Toggle toggles the bound widget.
func (c *Controller) Toggle() {
	if c != nil {
		call(c.actions.Toggle)
	}
}

// Clear resets the bound widget's value.
func (c *Controller) Clear() {
	if c != nil {
		call(c.actions.Clear)
	}
}

// Focus focuses the bound widget.
func (c *Controller) Focus() {
	if c != nil {
		call(c.actions.Focus)
	}
}

// Blur removes focus from the bound widget.
func (c *Controller) Blur() {
	if c != nil {
		call(c.actions.Blur)
	}
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}
