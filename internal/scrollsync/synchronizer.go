package scrollsync

// Synchronizer keeps two panes aligned as scroll events arrive.
//
// A pane written by a propagation reports a scroll of its own the next time
// it is notified. That echo is dropped as long as the pane has not moved
// since the write, so panes never bounce offsets back and forth.
type Synchronizer struct {
	page, text Pane
	mode       Denominator
	enabled    bool

	// echo is set after a write to target and holds the offset it ended at.
	echo struct {
		pending bool
		target  Source
		offset  float64
	}
}

// New creates an enabled synchronizer for the two panes.
func New(page, text Pane, mode Denominator) *Synchronizer {
	return &Synchronizer{page: page, text: text, mode: mode, enabled: true}
}

// Mode returns the denominator in use.
func (s *Synchronizer) Mode() Denominator { return s.mode }

// SetMode changes the denominator.
func (s *Synchronizer) SetMode(d Denominator) { s.mode = d }

// Enabled reports whether scroll events are propagated.
func (s *Synchronizer) Enabled() bool { return s.enabled }

// SetEnabled turns propagation on or off.
func (s *Synchronizer) SetEnabled(enabled bool) {
	s.enabled = enabled
	s.echo.pending = false
}

// Toggle flips propagation and returns the new state.
func (s *Synchronizer) Toggle() bool {
	s.SetEnabled(!s.enabled)
	return s.enabled
}

// Pane returns the pane handle for src.
func (s *Synchronizer) Pane(src Source) Pane {
	if src == SourceText {
		return s.text
	}
	return s.page
}

// Notify handles a scroll event from src. It reports whether the other
// pane was written. Disabled synchronizers and echoes of a previous write
// are no-ops.
func (s *Synchronizer) Notify(src Source) (bool, error) {
	if !s.enabled {
		return false, nil
	}
	if s.isEcho(src) {
		return false, nil
	}
	return s.Align(src)
}

// Align propagates the position of src even when propagation is disabled.
func (s *Synchronizer) Align(src Source) (bool, error) {
	s.echo.pending = false
	if err := Sync(src, s.page, s.text, s.mode); err != nil {
		return false, err
	}
	target := src.Other()
	s.echo.pending = true
	s.echo.target = target
	s.echo.offset = s.Pane(target).ScrollOffset()
	return true, nil
}

func (s *Synchronizer) isEcho(src Source) bool {
	if !s.echo.pending || s.echo.target != src {
		return false
	}
	s.echo.pending = false
	p := s.Pane(src)
	return p != nil && p.ScrollOffset() == s.echo.offset
}
