package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface the REPL drives. *App satisfies it.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Open(ctx context.Context, view string) error
	Vitals(ctx context.Context) error
	Meds(ctx context.Context) error
	Take(ctx context.Context, id string) error
	Emergency(ctx context.Context) error
}

// runREPL reads commands line by line from r and dispatches them to a until
// EOF, "exit" or "quit". The first token is the command; the rest are its
// arguments. Prompts and usage hints go to w.
//
// Errors returned by handlers are ignored here; handlers report their own
// failures to the user.
func runREPL(ctx context.Context, a execIface, statusFn func() string, r *bufio.Reader, w io.Writer) {
	say := func(args ...any) { fmt.Fprintln(w, args...) }

	for {
		fmt.Fprintf(w, "hg%s> ", statusFn())

		line, err := r.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				say("Available commands: whoami, open <view>, vitals, meds, take <id>, emergency, logout, exit")
			} else {
				say("Available commands: login, open <view>, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "open":
			if len(args) == 0 {
				say("Usage: open <view>")
				continue
			}
			_ = a.Open(ctx, args[0])

		case "vitals":
			_ = a.Vitals(ctx)

		case "meds":
			_ = a.Meds(ctx)

		case "take":
			if len(args) == 0 {
				say("Usage: take <id>")
				continue
			}
			_ = a.Take(ctx, args[0])

		case "emergency":
			_ = a.Emergency(ctx)

		case "exit", "quit":
			say("Bye!")
			return

		default:
			say("Unknown command:", cmd)
		}
	}
}
