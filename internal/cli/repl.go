package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	List(ctx context.Context) error
	Search(ctx context.Context, query string) error
	Category(ctx context.Context, id string) error
	Categories(ctx context.Context) error
	Add(ctx context.Context) error
	Show(ctx context.Context, arg string) error
}

// runREPL starts a simple read–eval–print loop for the marketplace CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Browsing commands (list, search, category, categories, show) work without
// a session; register/login/logout/profile/add follow the session state.
// Errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("mercadito> %s", statusFn()))
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
				printlnFn("Comandos: (l)ist, search <texto>, category <id>, categories, show <n>, add, profile, edit, logout, exit")
			} else {
				printlnFn("Comandos: (l)ist, search <texto>, category <id>, categories, show <n>, register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "edit":
			_ = a.EditProfile(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "search":
			_ = a.Search(ctx, strings.Join(args, " "))

		case "category":
			if len(args) == 0 {
				printlnFn("Uso: category <id|all>")
				continue
			}
			_ = a.Category(ctx, args[0])

		case "categories":
			_ = a.Categories(ctx)

		case "add":
			_ = a.Add(ctx)

		case "show":
			if len(args) == 0 {
				printlnFn("Uso: show <n>")
				continue
			}
			_ = a.Show(ctx, args[0])

		case "exit", "quit":
			printlnFn("¡Hasta pronto!")
			return

		default:
			printlnFn("Comando desconocido:", cmd)
		}
	}
}
