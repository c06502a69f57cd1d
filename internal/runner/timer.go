package runner

import "time"

// deadline is a one-shot timer checked against the clock once per frame.
// Expiry only flips flags in the game; it never touches entity lists.
type deadline struct {
	at    time.Time
	armed bool
}

// Arm (re)starts the timer. Re-arming an armed timer extends it.
func (d *deadline) Arm(now time.Time, dur time.Duration) {
	d.at = now.Add(dur)
	d.armed = true
}

// Disarm cancels the timer.
func (d *deadline) Disarm() {
	d.armed = false
}

// Armed reports whether the timer is pending.
func (d *deadline) Armed() bool {
	return d.armed
}

// Fire reports whether the timer expired and disarms it if so.
func (d *deadline) Fire(now time.Time) bool {
	if !d.armed || now.Before(d.at) {
		return false
	}
	d.armed = false
	return true
}

// messageBox is a transient HUD message that hides itself.
type messageBox struct {
	text  string
	timer deadline
}

func (m *messageBox) Show(now time.Time, text string, dur time.Duration) {
	m.text = text
	m.timer.Arm(now, dur)
}

func (m *messageBox) Hide() {
	m.text = ""
	m.timer.Disarm()
}

// Expire hides the message once its time is up.
func (m *messageBox) Expire(now time.Time) {
	if m.timer.Fire(now) {
		m.text = ""
	}
}

// Text returns the visible message, or "" when hidden.
func (m *messageBox) Text() string {
	return m.text
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
