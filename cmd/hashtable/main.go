package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/gostonefire/hashtable/internal/cli"
	"github.com/jessevdk/go-flags"
)

func main() {
	var opts cli.Options

	parser := cli.NewParser(&opts)
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Println(err)
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		os.Exit(1)
	}

	if err := cli.Run(opts, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
