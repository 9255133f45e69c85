package wavlmap

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger is the package-level logger used to trace rebalancing and
// range-mutation events at debug level. It defaults to a no-op level
// (Disabled) so a program that never calls SetLogger pays nothing; set it
// with SetLogger or by lowering its level directly.
var Logger = zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.Disabled)

// SetLogger replaces the package-level logger, e.g. to route wavlmap's
// debug events into an application's own zerolog.Logger.
func SetLogger(l zerolog.Logger) {
	Logger = l
}

func logRebalance(event string) {
	Logger.Debug().Str("component", "rebalance").Msg(event)
}

func logRangeMutation(event string, count int) {
	Logger.Debug().Str("component", "range").Int("count", count).Msg(event)
}
