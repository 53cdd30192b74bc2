package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
)

// historyPath resolves the REPL history file: SAVANT_HISTORY if set,
// otherwise ~/.savant_history.
func historyPath() string {
	if env := os.Getenv("SAVANT_HISTORY"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	if home == "" {
		return ""
	}
	return filepath.Join(home, ".savant_history")
}

func runREPL() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:                 "savant> ",
		HistoryFile:            historyPath(),
		InterruptPrompt:        "^C",
		EOFPrompt:              "exit",
		HistorySearchFold:      true,
		DisableAutoSaveHistory: false,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	fmt.Println("savant — exact symbolic calculator. :help for commands, :quit to exit.")
	fmt.Println()

	session := newSession()

	for {
		line, err := rl.Readline()

		// Ctrl+C drops the current line, Ctrl+D exits.
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			fmt.Println()
			return nil
		}
		if err != nil {
			return err
		}

		trim := strings.TrimSpace(line)
		if trim == "" {
			continue
		}

		if strings.HasPrefix(trim, ":") {
			handleCommand(trim, session)
			continue
		}

		if err := session.runLine(line); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
}

func handleCommand(cmd string, session *session) {
	switch cmd {
	case ":q", ":quit", ":exit":
		os.Exit(0)

	case ":h", ":help":
		fmt.Println("Commands:")
		fmt.Println("  :help     Show this help")
		fmt.Println("  :quit     Exit")
		fmt.Println("  :vars     Show session bindings")
		fmt.Println("  :reset    Drop all session bindings")
		fmt.Println("  :clear    Clear the screen")
		fmt.Println()
		fmt.Println("Input:")
		fmt.Println("  expression          Evaluate and print")
		fmt.Println("  name = expression   Evaluate, bind the result to name")
		fmt.Println()
		fmt.Println("The imaginary unit is bound to i; assigning i shadows it.")

	case ":vars":
		names := session.names()
		if len(names) == 0 {
			fmt.Println("(no bindings)")
			return
		}
		for _, name := range names {
			fmt.Printf("%s = %s\n", name, session.bindings[name])
		}

	case ":reset":
		session.reset()
		fmt.Println("(bindings cleared)")

	case ":clear":
		fmt.Print("\033[2J\033[H")

	default:
		fmt.Println("Unknown command. Try :help")
	}
}
