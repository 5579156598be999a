package core

import "time"

// FrameDuration is the nominal frame the physics constants are tuned for.
// Velocities are expressed in world units per nominal frame.
const FrameDuration = time.Second / 60

// Frames converts elapsed wall time into nominal frames.
// Zero or negative durations produce no motion.
func Frames(elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(elapsed) / float64(FrameDuration)
}

// Millis converts an integer millisecond count from a config file.
func Millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
