package presentation

import "log"

// PresentationOption is a functional option for configuring a Presentation.
type PresentationOption func(*Presentation)

// WithPath replaces the tour constants.
//
// Parameters:
//   - path: the tour constants to use
//
// Returns:
//   - PresentationOption: option function to apply
func WithPath(path Path) PresentationOption {
	return func(p *Presentation) {
		p.path = path
	}
}

// WithLogger sets the logger used for start/stop and phase messages.
//
// Parameters:
//   - logger: destination logger; nil keeps the default
//
// Returns:
//   - PresentationOption: option function to apply
func WithLogger(logger *log.Logger) PresentationOption {
	return func(p *Presentation) {
		if logger != nil {
			p.logger = logger
		}
	}
}
