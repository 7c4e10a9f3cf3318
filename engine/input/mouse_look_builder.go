package input

// MouseLookOption is a functional option for configuring a MouseLook.
type MouseLookOption func(*MouseLook)

// WithSensitivity sets the degrees of rotation per pixel of cursor travel.
//
// Parameters:
//   - sensitivity: multiplier for cursor deltas
//
// Returns:
//   - MouseLookOption: functional option to set the sensitivity
func WithSensitivity(sensitivity float32) MouseLookOption {
	return func(m *MouseLook) {
		m.sensitivity = sensitivity
	}
}

// WithPitchLimit sets the symmetric pitch clamp in degrees.
//
// Parameters:
//   - limit: maximum absolute pitch in degrees
//
// Returns:
//   - MouseLookOption: functional option to set the pitch clamp
func WithPitchLimit(limit float32) MouseLookOption {
	return func(m *MouseLook) {
		m.pitchLimit = limit
	}
}

// WithInitialAngles sets the starting pitch and yaw in degrees.
//
// Parameters:
//   - pitch: starting pitch in degrees
//   - yaw: starting yaw in degrees
//
// Returns:
//   - MouseLookOption: functional option to set the starting orientation
func WithInitialAngles(pitch, yaw float32) MouseLookOption {
	return func(m *MouseLook) {
		m.pitch = pitch
		m.yaw = yaw
	}
}
