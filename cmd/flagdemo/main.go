// FILE: cmd/flagdemo/main.go
package main

import (
	"fmt"
	"os"

	"flags"
)

var (
	host    = flags.String("host", "localhost", "address to listen on")
	port    = flags.Int32("port", 8080, "port to listen on")
	retries = flags.Uint32("retries", 3, "connection attempts before giving up")
	rate    = flags.Float64("rate", 1.0, "requests per second")
	verbose = flags.Bool("verbose", flags.BoolFromEnv("FLAGDEMO_VERBOSE", false), "enable verbose output")
)

func validPort(name string, value int32) bool {
	if value > 0 && value < 32768 {
		return true
	}
	fmt.Printf("invalid value for --%s: %d\n", name, value)
	return false
}

func main() {
	flags.RegisterInt32Validator(port, validPort)
	flags.SetUsageMessage("flagdemo [--host=H] [--port=N] [--verbose] args...")
	flags.SetVersionString("1.0")

	argv, _ := flags.ParseCommandLineFlags(os.Args, true)

	if *verbose {
		fmt.Print(flags.CommandLineFlagsIntoString())
	}

	var cfg struct {
		Host    string  `flag:"host"`
		Port    int32   `flag:"port"`
		Retries uint32  `flag:"retries"`
		Rate    float64 `flag:"rate"`
	}
	if err := flags.Scan(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, "scan:", err)
		os.Exit(1)
	}

	fmt.Printf("serving on %s:%d (rate %g, retries %d)\n", cfg.Host, cfg.Port, cfg.Rate, cfg.Retries)
	fmt.Println("positional args:", argv[1:])
}
