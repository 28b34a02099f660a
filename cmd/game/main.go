package main

import (
	"bufio"
	"os"

	"github.com/tomz197/herojump/internal/config"
	"github.com/tomz197/herojump/internal/loop"
	"golang.org/x/term"
)

func main() {
	// The game owns stdout.
	logger := config.NewLogger(os.Stderr)

	tuning, err := config.FromEnv()
	if err != nil {
		logger.Fatal("invalid tuning", "err", err)
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		logger.Fatal("failed to enable raw mode", "err", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	reader := bufio.NewReader(os.Stdin)
	err = loop.Run(reader, os.Stdout, loop.Options{
		Tuning: tuning,
		Logger: logger,
	})
	if err != nil {
		_ = term.Restore(fd, oldState)
		logger.Fatal("game error", "err", err)
	}
}
