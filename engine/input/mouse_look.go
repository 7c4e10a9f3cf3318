package input

// MouseLook turns absolute cursor samples into accumulated pitch/yaw angles in degrees.
// The camera's Rotate overwrites orientation from absolute angles, so the accumulation lives here.
type MouseLook struct {
	sensitivity float32
	pitchLimit  float32

	yaw   float32
	pitch float32

	lastX, lastY float64
	seeded       bool
	dirty        bool
}

// NewMouseLook creates a MouseLook with sensitivity 0.3, a pitch clamp of ±88 degrees and a starting
// orientation of yaw -90, pitch 0 (looking down -Z).
//
// Parameters:
//   - options: functional options to configure the mouse look
//
// Returns:
//   - *MouseLook: the new mouse look
func NewMouseLook(options ...MouseLookOption) *MouseLook {
	m := &MouseLook{
		sensitivity: 0.3,
		pitchLimit:  88,
		yaw:         -90,
		pitch:       0,
	}
	for _, option := range options {
		option(m)
	}
	m.pitch = m.clamp(m.pitch)
	return m
}

// CursorMoved feeds one cursor position sample in screen coordinates.
// The first sample only records the position. Later samples add the scaled delta to yaw and pitch
// (screen Y grows downward, so moving the cursor up raises pitch) and clamp pitch.
//
// Parameters:
//   - x, y: cursor position in screen coordinates
func (m *MouseLook) CursorMoved(x, y float64) {
	if !m.seeded {
		m.lastX, m.lastY = x, y
		m.seeded = true
	}

	xoff := float32(x-m.lastX) * m.sensitivity
	yoff := float32(m.lastY-y) * m.sensitivity
	m.lastX, m.lastY = x, y

	m.yaw += xoff
	m.pitch = m.clamp(m.pitch + yoff)
	m.dirty = true
}

// Angles returns the accumulated pitch and yaw in degrees.
//
// Returns:
//   - pitch: clamped pitch in degrees
//   - yaw: yaw in degrees
func (m *MouseLook) Angles() (pitch, yaw float32) {
	return m.pitch, m.yaw
}

// Consume returns the current angles and whether a cursor sample arrived since the previous Consume.
//
// Returns:
//   - pitch, yaw: accumulated angles in degrees
//   - bool: true if the angles should be applied to the camera
func (m *MouseLook) Consume() (pitch, yaw float32, changed bool) {
	changed = m.dirty
	m.dirty = false
	return m.pitch, m.yaw, changed
}

// Sensitivity returns the degrees-per-pixel multiplier.
func (m *MouseLook) Sensitivity() float32 {
	return m.sensitivity
}

func (m *MouseLook) clamp(pitch float32) float32 {
	if pitch > m.pitchLimit {
		return m.pitchLimit
	}
	if pitch < -m.pitchLimit {
		return -m.pitchLimit
	}
	return pitch
}
