package renderer

import "errors"

var (
	ErrSceneNotDefined  = errors.New("renderer: no scene defined")
	ErrCameraNotDefined = errors.New("renderer: no camera defined")
	ErrInvalidFrameSize = errors.New("renderer: frame dimensions must be non-zero")
	ErrClosed           = errors.New("renderer: renderer is closed")
)
