package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// TimeStep is the fixed simulation step in seconds.
	TimeStep = 1.0 / 60.0
)
