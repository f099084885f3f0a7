package assert

import (
	"errors"
	"testing"

	"github.com/oomph-ac/orbit/oerror"
)

func TestIsTrue(t *testing.T) {
	IsTrue(true, "unreachable")

	defer func() {
		r := recover()
		err, ok := r.(error)
		var oerr *oerror.Error
		if !ok || !errors.As(err, &oerr) || oerr.Error() != "bad value 3" {
			t.Fatalf("expected a formatted *oerror.Error panic, got %v", r)
		}
	}()
	IsTrue(false, "bad value %d", 3)
}
