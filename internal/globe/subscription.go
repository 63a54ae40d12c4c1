package globe

// Subscription delivers View snapshots after every change. The channel holds
// at most one pending snapshot; a slow reader only ever sees the newest one.
type Subscription struct {
	ch chan View
	c  *Controller
}

// Subscribe registers a new subscription and immediately queues the current
// view. On a closed controller the returned channel is already closed.
func (c *Controller) Subscribe() *Subscription {
	c.mu.Lock()
	defer c.mu.Unlock()

	sub := &Subscription{ch: make(chan View, 1), c: c}
	if c.closed {
		close(sub.ch)
		return sub
	}
	c.subs[sub] = struct{}{}
	sub.ch <- c.viewLocked()
	return sub
}

// C returns the snapshot channel. It is closed by Close or by the controller
// shutting down.
func (s *Subscription) C() <-chan View {
	return s.ch
}

// Close unsubscribes. It is safe to call more than once.
func (s *Subscription) Close() {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	if _, ok := s.c.subs[s]; !ok {
		return
	}
	delete(s.c.subs, s)
	close(s.ch)
}

// publish pushes the current view to every subscriber, replacing any
// snapshot still waiting in its buffer. mu must be held.
func (c *Controller) publish() {
	v := c.viewLocked()
	for sub := range c.subs {
		select {
		case <-sub.ch:
		default:
		}
		select {
		case sub.ch <- v:
		default:
		}
	}
}
