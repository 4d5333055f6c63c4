package ecs

import "go.uber.org/zap"

// noopLogger is used when a Registry is constructed without WithLogger,
// keeping the library silent by default the way the teacher's pecs-go
// never logs at all. Hosts that want visibility into auto-registration
// and growth events wire their own *zap.Logger in.
func noopLogger() *zap.Logger {
	return zap.NewNop()
}
