package main

import (
	"fmt"
	"os"

	"solis/runtime-go/pkg/operators"
	"solis/runtime-go/pkg/units"
)

const cliToolVersion = "solis-ops 0.0.0-dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return 1
	}
	switch args[0] {
	case "--help", "-h":
		printUsage()
		return 0
	case "--version", "-V", "version":
		fmt.Fprintln(os.Stdout, cliToolVersion)
		return 0
	case "check":
		return runCheck(args[1:])
	case "mode":
		return runMode(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", args[0])
		printUsage()
		return 1
	}
}

// runCheck executes operator conformance fixture files and reports failures.
func runCheck(paths []string) int {
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "check: no fixture files given")
		return 1
	}
	failures := 0
	total := 0
	for _, path := range paths {
		file, err := operators.LoadFixtureFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			return 1
		}
		fileFailures := 0
		for i := range file.Cases {
			total++
			if err := file.Cases[i].Check(); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
				fileFailures++
			}
		}
		failures += fileFailures
		fmt.Fprintf(os.Stdout, "%s: %d cases, %d failures\n", path, len(file.Cases), fileFailures)
	}
	fmt.Fprintf(os.Stdout, "total: %d cases, %d failures\n", total, failures)
	if failures > 0 {
		return 1
	}
	return 0
}

// runMode resolves the operator mode of units against a project manifest.
func runMode(args []string) int {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "mode: usage: solis-ops mode <solis.yml> <unit>...")
		return 1
	}
	manifest, err := units.LoadManifest(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	resolver := units.NewResolver(manifest)
	for _, unit := range args[1:] {
		fmt.Fprintf(os.Stdout, "%s: %s\n", unit, resolver.ModeFor(unit))
	}
	return 0
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `usage:
  solis-ops check <fixtures.yaml>...   run operator conformance fixtures
  solis-ops mode <solis.yml> <unit>... resolve the operator mode of units
  solis-ops --version                  print the tool version`)
}
