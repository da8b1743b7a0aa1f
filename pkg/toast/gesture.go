package toast

import (
	"math"

	"github.com/go-drift/motion/pkg/animation"
)

// DragStart pauses a toast's countdown while the user drags it.
func (m *Manager) DragStart(id string) {
	e := m.find(id)
	if m.disposed || e == nil || e.exiting || e.dragging {
		return
	}
	e.dragging = true
	e.dragOffset = e.drag.Sample()
	e.timer.Stop()
	e.progress.Cancel()
}

// DragUpdate moves a dragged toast by a pointer delta. Only the component
// along the toast's swipe axis counts: horizontal for edge-centered anchors,
// vertical for corners.
func (m *Manager) DragUpdate(id string, dx, dy float64) {
	e := m.find(id)
	if m.disposed || e == nil || !e.dragging {
		return
	}
	if e.payload.Position.IsCorner() {
		e.dragOffset += dy
	} else {
		e.dragOffset += dx
	}
	e.drag.Jump(e.dragOffset)
}

// DragEnd releases a dragged toast. Past the swipe threshold it leaves in
// the swipe direction; otherwise it springs back and its countdown restarts
// from the full duration.
func (m *Manager) DragEnd(id string) {
	e := m.find(id)
	if m.disposed || e == nil || !e.dragging {
		return
	}
	e.dragging = false
	if math.Abs(e.dragOffset) >= m.cfg.SwipeThreshold {
		m.log.Debug().Str("id", id).Float64("drag", e.dragOffset).Msg("toast swiped away")
		m.exit(e, e.dragOffset)
		return
	}
	e.dragOffset = 0
	e.drag.SetTarget(0, animation.Spring(animation.IOSSpring()), nil)
	m.startTimer(e)
}

// Dragging reports whether a toast is being dragged.
func (m *Manager) Dragging(id string) bool {
	e := m.find(id)
	return e != nil && e.dragging
}
