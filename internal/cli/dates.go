package cli

import (
	"github.com/mharmon/rchub/internal/api"
	"github.com/mharmon/rchub/internal/hub"
)

// resolveDate validates an explicit date or defaults to the local
// calendar date. Validation happens here, before any network call.
func resolveDate(arg string) (string, error) {
	if arg == "" {
		return hub.Today(), nil
	}
	if err := hub.ValidateDate(arg); err != nil {
		return "", api.ValidationError("%v", err)
	}
	return arg, nil
}
