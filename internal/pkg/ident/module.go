package ident

import "go.uber.org/fx"

// Module provides the identifier generator via fx.
var Module = fx.Provide(func() Generator { return NewUUIDGenerator() })
