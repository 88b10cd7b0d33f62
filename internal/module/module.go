// Package module provides process-wide state containers that outlive any single window.
package module

// Module is long-lived simulation state. Modules are created once at process start
// and only cleared through Reset, which the restart path calls on every module.
type Module interface {
	Name() string
	Reset()
}
