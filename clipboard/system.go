package clipboard

import (
	"context"

	atotto "github.com/atotto/clipboard"
)

// System is the production Clipboard backed by the host OS clipboard. It
// shells out through github.com/atotto/clipboard (pbcopy/pbpaste, xclip/xsel,
// clip.exe depending on platform).
type System struct{}

var _ Clipboard = System{}

// NewSystem returns the host OS clipboard.
func NewSystem() System { return System{} }

func (System) ReadText(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	text, err := atotto.ReadAll()
	if err != nil {
		return "", &Error{
			Op:       OpRead,
			Platform: platformInfo(),
			Guidance: platformGuidance(err.Error()),
			Err:      err,
		}
	}
	return text, nil
}

func (System) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := atotto.WriteAll(text); err != nil {
		return &Error{
			Op:       OpWrite,
			Platform: platformInfo(),
			Guidance: platformGuidance(err.Error()),
			Err:      err,
		}
	}
	return nil
}
