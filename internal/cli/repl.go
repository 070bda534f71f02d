package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with
// a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	AddPhoto(ctx context.Context, args []string) error
	Caption(ctx context.Context, args []string) error
	Remove(ctx context.Context, args []string) error
	Like(ctx context.Context, args []string) error
	Favorite(ctx context.Context, args []string) error
	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	SetPicture(ctx context.Context, args []string) error
	ToggleTheme(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop.
//
// It reads a line from the scanner, parses the first token as the command,
// and dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on scanner EOF or when the user types "exit" or
// "quit". Errors returned by command handlers are ignored here; handlers
// print their own messages, which keeps the loop focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("memoria %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, add <path>, caption <id>, remove <id>, like <id>, fav <id>, profile, edit, picture <path>, theme, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "add":
			_ = a.AddPhoto(ctx, args)

		case "caption":
			_ = a.Caption(ctx, args)

		case "remove":
			_ = a.Remove(ctx, args)

		case "like":
			_ = a.Like(ctx, args)

		case "fav":
			_ = a.Favorite(ctx, args)

		case "profile":
			_ = a.Profile(ctx)

		case "edit":
			_ = a.EditProfile(ctx)

		case "picture":
			_ = a.SetPicture(ctx, args)

		case "theme":
			_ = a.ToggleTheme(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
