package identity

import (
	"time"

	domainerrors "portaljobs/internal/domain/errors"

	"github.com/pkg/errors"
)

// The backend emits ISO 8601 timestamps, sometimes without a zone suffix.
var backendTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

func parseBackendTime(s string) (time.Time, error) {
	for _, layout := range backendTimeLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}

	return time.Time{}, errors.Wrapf(domainerrors.ErrProviderUnavailable, "unparseable timestamp %q", s)
}
