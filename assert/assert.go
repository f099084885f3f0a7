package assert

import "github.com/oomph-ac/orbit/oerror"

// IsTrue panics with a formatted error if ok is false. It guards against programmer errors, such as missing
// collaborators, and never against runtime input.
func IsTrue(ok bool, message string, args ...interface{}) {
	if !ok {
		panic(oerror.New(message, args...))
	}
}
