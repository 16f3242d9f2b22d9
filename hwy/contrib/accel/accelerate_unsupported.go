//go:build accelerate && (noaccelerate || !(cgo && darwin && arm64))

package accel

// The accelerate tag asks for Apple Accelerate, which only exists on Apple
// Silicon macOS and is reached through cgo. Refuse to build anywhere else,
// and refuse the contradictory accelerate,noaccelerate pair.
var _ = accelerate_requires_darwin_arm64_with_cgo
