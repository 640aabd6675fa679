package main

import (
	"bufio"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/tomz197/fishnet/internal/config"
	"github.com/tomz197/fishnet/internal/loop/client"
	loopconfig "github.com/tomz197/fishnet/internal/loop/config"
	"github.com/tomz197/fishnet/internal/loop/server"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fail("failed to load .env: %v", err)
	}

	tuning, err := loopconfig.ResolveTuning(config.GetEnv("FISHNET_TUNING", ""))
	if err != nil {
		fail("%v", err)
	}

	// The terminal belongs to the game, so logs only go to a file.
	var logOut io.Writer = io.Discard
	if path := config.GetEnv("FISHNET_LOG_FILE", ""); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fail("failed to open log file: %v", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := config.NewLogger(logOut, "game")

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fail("failed to enable raw mode: %v", err)
	}

	reader := bufio.NewReader(os.Stdin)
	c := client.NewClient(server.NewServer(), reader, os.Stdout, client.ClientOptions{
		Username: config.GetEnv("USER", "player"),
		Tuning:   &tuning,
		Logger:   logger,
	})
	runErr := c.Run()
	_ = term.Restore(fd, oldState)

	if runErr != nil {
		fail("game error: %v", runErr)
	}
	color.New(color.FgCyan, color.Bold).Println("Thanks for fishing!")
}

// fail prints a highlighted error and exits.
func fail(format string, args ...any) {
	color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "fishnet: "+format+"\n", args...)
	os.Exit(1)
}
