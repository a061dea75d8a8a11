// Command neko-demo draws a couple of registered objects at 30 FPS
// until Ctrl+C or q is pressed.
package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/nekotui/neko/input"
	"github.com/nekotui/neko/object"
	"github.com/nekotui/neko/session"
	"github.com/nekotui/neko/terminal"
)

var accentColor = terminal.RGB{R: 100, G: 200, B: 220}

func main() {
	driver := terminal.NewDriver()

	cfg, err := session.New(30)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	sess, err := cfg.Clear().RawMode().AlternateScreen().HideCursor().Start(driver)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// A panic under raw mode leaves the shell unusable; restore first,
	// then print the trace
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\ncrash: %v\r\n%s\r\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	objects := object.NewRegistry()
	objects.Add("text", object.NewText("Hello world!"), object.Point{X: 0, Y: 0})
	objects.Add("hint",
		object.NewText("q or Ctrl+C to quit, arrows to move the block").
			Styled(terminal.StyleDefault.Bold()),
		object.Point{X: 0, Y: 1})
	objects.Add("block",
		object.Block{Width: 4, Height: 2, Style: terminal.StyleDefault.Foreground(accentColor)},
		object.Point{X: 10, Y: 5})

	keys := input.NewReader(driver)
	blockPos := object.Point{X: 10, Y: 5}

	for {
		err := sess.Draw(func(s terminal.Surface) error {
			for _, key := range []string{"text", "hint", "block"} {
				if err := objects.Draw(key, s); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			break
		}

		key, err := keys.Get()
		if err != nil {
			break
		}

		switch key {
		case input.Ctrl('c'), input.Plain('q'):
			if err := sess.Exit(); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			return
		case input.Key{Kind: input.KindUp}:
			blockPos.Y--
		case input.Key{Kind: input.KindDown}:
			blockPos.Y++
		case input.Key{Kind: input.KindLeft}:
			blockPos.X--
		case input.Key{Kind: input.KindRight}:
			blockPos.X++
		}
		objects.Move("block", blockPos)
	}

	sess.Exit()
}
