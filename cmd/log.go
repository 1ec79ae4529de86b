package cmd

import (
	"errors"

	"github.com/theirongolddev/motolog/internal/ledger"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
)

// logInfo reports a completed action unless --quiet is set.
func logInfo(format string, args ...any) {
	if flagQuiet {
		return
	}
	tl.Log(tl.Info1, palette.Green, format, args...)
}

// logVerbose reports plumbing details.
func logVerbose(format string, args ...any) {
	if flagQuiet {
		return
	}
	tl.Log(tl.Verbose, palette.CyanDim, format, args...)
}

func logWarn(format string, args ...any) {
	tl.Log(tl.Warning, palette.PurpleBright, format, args...)
}

func logError(err error) {
	tl.Log(tl.Error, palette.RedBold, "%s", err.Error())
}

// logStorageWarning is the record store's warn hook.
func logStorageWarning(err error) {
	logWarn("Storage problem, continuing with in-memory data: %s", err.Error())
}

// rejected explains a validation rejection and returns errRejected.
// Nothing was changed.
func rejected(err error) error {
	switch {
	case errors.Is(err, ledger.ErrEmptyLabel):
		logWarn("Nothing saved: the description must not be empty")
	case errors.Is(err, ledger.ErrInvalidAmount):
		logWarn("Nothing saved: '%s'", err.Error())
	case errors.Is(err, ledger.ErrNotFound):
		logWarn("Nothing changed: %s", err.Error())
	default:
		return err
	}
	return errRejected
}
