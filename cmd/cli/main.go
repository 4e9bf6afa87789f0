// Command cli runs a single bot command against the command core without
// connecting to Discord, which is handy for trying transforms locally:
//
//	go run ./cmd/cli clap hello world
//	go run ./cmd/cli react o0f
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"hatysa/internal/command"
)

func main() {
	// Guild-independent commands only; karma needs a live guild and storage.
	command.Register(command.NewInfo(time.Now()))
	command.Register(command.NewZalgo(time.Now().UnixNano()))
	command.Register(command.NewSketchify(nil))

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	name := os.Args[1]
	input := strings.Join(os.Args[2:], " ")

	cmd, ok := command.Get(name)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", name)
		usage()
		os.Exit(1)
	}

	resp, err := cmd.Run(context.Background(), input)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	switch r := resp.(type) {
	case command.Text:
		fmt.Println(r.Content)
	case command.React:
		fmt.Println(strings.Join(r.Emojis, " "))
	case command.Link:
		fmt.Println(r.URL)
	case command.Info:
		fmt.Printf("version %s, up %s, %s\n", r.Version, r.Uptime.Round(time.Second), r.Homepage)
	default:
		fmt.Printf("%+v\n", resp)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: cli <command> [input...]")
	fmt.Fprintln(os.Stderr, "commands:")
	for _, cmd := range command.All() {
		fmt.Fprintf(os.Stderr, "  %-10s %s\n", cmd.Name(), cmd.Description())
	}
}
