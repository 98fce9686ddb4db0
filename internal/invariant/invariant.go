// Package invariant reports programming errors inside the game core.
// A violation is never recoverable by the player. The default hook panics; a process can install a hook
// that logs instead, in which case the core carries on with the safest no-op.
package invariant

import "fmt"

// Hook receives a description of the violated invariant
type Hook func(msg string)

// Panic is the default hook
func Panic(msg string) {
	panic("invariant violated: " + msg)
}

// Violated formats the message and hands it to hook, falling back to Panic when hook is nil
func Violated(hook Hook, format string, a ...interface{}) {
	if hook == nil {
		hook = Panic
	}

	hook(fmt.Sprintf(format, a...))
}
