package input

import (
	"fmt"

	"github.com/vovakirdan/jewel-legend/internal/core"
)

// Event is an accepted key press.
type Event struct {
	Code   byte
	Action core.Action
}

func (e Event) String() string {
	return fmt.Sprintf("%v(%#02x)", e.Action, e.Code)
}
