package main

import "os"

func main() {
	options, err := ParseArgs(os.Args[1:], os.Stderr)
	if err == nil {
		err = RunApp(options, os.Stdout, os.Stderr)
	}

	os.Exit(HandleExitError(os.Stderr, err))
}
