package main

import (
	"bufio"
	"fmt"
	"os"
)

func usage() {
	fmt.Println("Usage:")
	fmt.Println("  savant                 Start the interactive calculator")
	fmt.Println("  savant <expression>... Evaluate each argument and exit")
	fmt.Println("  savant -               Evaluate lines from standard input")
}

func main() {
	args := os.Args[1:]

	if len(args) == 0 {
		if err := runREPL(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if args[0] == "-h" || args[0] == "--help" {
		usage()
		return
	}

	if len(args) == 1 && args[0] == "-" {
		failed, err := runStdin()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if failed {
			os.Exit(1)
		}
		return
	}

	// Each argument is one calculator line; bindings carry across
	// arguments left to right.
	session := newSession()
	failed := false
	for _, arg := range args {
		if err := session.runLine(arg); err != nil {
			fmt.Fprintln(os.Stderr, err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func runStdin() (bool, error) {
	session := newSession()
	failed := false

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if err := session.runLine(scanner.Text()); err != nil {
			fmt.Fprintln(os.Stderr, err)
			failed = true
		}
	}
	return failed, scanner.Err()
}
