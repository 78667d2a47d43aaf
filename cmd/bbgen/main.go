package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/vvka-141/bbgen/internal/cli"
	"github.com/vvka-141/bbgen/pkg/bbgen"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(bbgen.ExitPanic)
		}
	}()

	if err := cli.Execute(context.Background()); err != nil {
		os.Exit(bbgen.ExitCodeForError(err))
	}
}
