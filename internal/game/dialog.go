package game

import (
	"errors"

	"github.com/ncruces/zenity"
)

// Dialogs asks the player for decisions the canvas cannot express.
type Dialogs interface {
	// ConfirmReset reports whether the player agreed to discard the best score.
	ConfirmReset() (bool, error)
	// SaveTracePath returns where to save the last stroke, or "" if cancelled.
	SaveTracePath() (string, error)
}

// NativeDialogs implements Dialogs with the platform's native dialogs.
type NativeDialogs struct{}

func (NativeDialogs) ConfirmReset() (bool, error) {
	err := zenity.Question("Reset your best score?",
		zenity.Title("Perfect Circle"),
		zenity.OKLabel("Reset"),
		zenity.CancelLabel("Keep"),
		zenity.WarningIcon,
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (NativeDialogs) SaveTracePath() (string, error) {
	filename, err := zenity.SelectFileSave(
		zenity.Title("Save Stroke"),
		zenity.Filename("stroke.yaml"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "Trace",
			Patterns: []string{"*.yaml", "*.yml"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}
	return filename, nil
}

// ShowError reports a fatal error in a native dialog. Dialog failures are ignored
// since the error has nowhere else to go.
func ShowError(err error) {
	_ = zenity.Error(err.Error(),
		zenity.Title("Perfect Circle"),
		zenity.ErrorIcon,
	)
}
