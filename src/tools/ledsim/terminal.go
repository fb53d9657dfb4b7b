package ledsim

import (
	"context"
	"io"
	"os"

	tty "github.com/mattn/go-tty"
)

// Terminal is where the panel is drawn and where the quit key is read.
// Without a controlling terminal (CI, pipes) it falls back to stdout and
// never reports a key.
type Terminal struct {
	io  *tty.TTY
	out io.Writer
}

func OpenTerminal() *Terminal {
	t, err := tty.Open()
	if err != nil {
		return &Terminal{out: os.Stdout}
	}
	return &Terminal{io: t, out: t.Output()}
}

func (t *Terminal) Output() io.Writer {
	return t.out
}

// WatchQuit calls cancel when q, Q or ctrl-c is typed.
func (t *Terminal) WatchQuit(ctx context.Context, cancel context.CancelFunc) {
	if t.io == nil {
		return
	}
	go func() {
		for ctx.Err() == nil {
			r, err := t.io.ReadRune()
			if err != nil {
				return
			}
			switch r {
			case 'q', 'Q', 3:
				cancel()
				return
			}
		}
	}()
}

func (t *Terminal) Close() error {
	if t.io == nil {
		return nil
	}
	return t.io.Close()
}
