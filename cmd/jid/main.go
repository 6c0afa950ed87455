// Copyright 2026 The Tinder Authors
// SPDX-License-Identifier: Apache-2.0

// jid is a command-line toolbox for XMPP addresses: escaping and
// un-escaping node parts (XEP-0106), normalizing addresses to
// canonical form, comparing addresses for equivalence and order, and
// emitting structured address records for other tools.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/akrherz/tinder/lib/codec"
	"github.com/akrherz/tinder/lib/jid"
	"github.com/akrherz/tinder/lib/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) < 2 {
		printUsage()
		return fmt.Errorf("subcommand required")
	}

	subcommand := os.Args[1]
	switch subcommand {
	case "escape":
		return runEscape(os.Args[2:])
	case "unescape":
		return runUnescape(os.Args[2:])
	case "normalize":
		return runNormalize(os.Args[2:])
	case "compare":
		return runCompare(os.Args[2:])
	case "inspect":
		return runInspect(os.Args[2:])
	case "version":
		fmt.Printf("jid %s\n", version.Info())
		return nil
	case "-h", "--help", "help":
		printUsage()
		return nil
	default:
		printUsage()
		return fmt.Errorf("unknown subcommand: %q", subcommand)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: jid <subcommand> [flags]

Subcommands:
  escape      Escape a node part per XEP-0106 (e.g. "Joe Smith" -> "Joe\20Smith")
  unescape    Reverse XEP-0106 escaping on a node part
  normalize   Print the canonical form of an address
  compare     Compare two addresses for equivalence and order
  inspect     Emit a structured address record (JSON or CBOR)
  version     Print version information

Run 'jid <subcommand> --help' for subcommand flags.
`)
}

func runEscape(args []string) error {
	flagSet := pflag.NewFlagSet("jid escape", pflag.ContinueOnError)
	if err := parseArgs(flagSet, args, 1, "<node>"); err != nil {
		return err
	}
	fmt.Println(jid.EscapeNode(flagSet.Arg(0)))
	return nil
}

func runUnescape(args []string) error {
	flagSet := pflag.NewFlagSet("jid unescape", pflag.ContinueOnError)
	if err := parseArgs(flagSet, args, 1, "<node>"); err != nil {
		return err
	}
	fmt.Println(jid.UnescapeNode(flagSet.Arg(0)))
	return nil
}

func runNormalize(args []string) error {
	flagSet := pflag.NewFlagSet("jid normalize", pflag.ContinueOnError)
	bare := flagSet.Bool("bare", false, "print the bare form (resource stripped)")
	if err := parseArgs(flagSet, args, 1, "<address>"); err != nil {
		return err
	}

	address, err := jid.Parse(flagSet.Arg(0))
	if err != nil {
		return err
	}
	if *bare {
		fmt.Println(address.Bare())
		return nil
	}
	fmt.Println(address.String())
	return nil
}

func runCompare(args []string) error {
	flagSet := pflag.NewFlagSet("jid compare", pflag.ContinueOnError)
	if err := parseArgs(flagSet, args, 2, "<address> <address>"); err != nil {
		return err
	}

	a, err := jid.Parse(flagSet.Arg(0))
	if err != nil {
		return err
	}
	b, err := jid.Parse(flagSet.Arg(1))
	if err != nil {
		return err
	}

	switch jid.Compare(a, b) {
	case 0:
		fmt.Println("equal")
	case -1:
		fmt.Printf("%s < %s\n", a, b)
	default:
		fmt.Printf("%s > %s\n", a, b)
	}
	return nil
}

// addressRecord is the structured form emitted by inspect. The json
// tags control field naming for both JSON and CBOR output (lib/codec
// reads json tags as fallback).
type addressRecord struct {
	JID      jid.JID `json:"jid"`
	Node     string  `json:"node,omitempty"`
	Domain   string  `json:"domain"`
	Resource string  `json:"resource,omitempty"`
	Bare     string  `json:"bare"`
	Hash     string  `json:"hash"`
}

func recordFor(address jid.JID) addressRecord {
	return addressRecord{
		JID:      address,
		Node:     address.Node(),
		Domain:   address.Domain(),
		Resource: address.Resource(),
		Bare:     address.Bare(),
		Hash:     fmt.Sprintf("%016x", address.Hash()),
	}
}

// runInspect emits one address record per input address. The address
// comes from the command line, or one per line on stdin when the
// argument is "-". JSON output is the default; --cbor switches to a
// deterministic CBOR stream for piping into other tools.
func runInspect(args []string) error {
	flagSet := pflag.NewFlagSet("jid inspect", pflag.ContinueOnError)
	asCBOR := flagSet.Bool("cbor", false, "emit deterministic CBOR instead of JSON")
	if err := parseArgs(flagSet, args, 1, "<address> (or - for stdin)"); err != nil {
		return err
	}

	emit := func(address jid.JID) error {
		record := recordFor(address)
		if *asCBOR {
			return codec.NewEncoder(os.Stdout).Encode(record)
		}
		data, err := json.MarshalIndent(record, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Printf("%s\n", data)
		return err
	}

	input := flagSet.Arg(0)
	if input != "-" {
		address, err := jid.Parse(input)
		if err != nil {
			return err
		}
		return emit(address)
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		address, err := jid.Parse(line)
		if err != nil {
			return err
		}
		if err := emit(address); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil && err != io.EOF {
		return fmt.Errorf("reading stdin: %w", err)
	}
	return nil
}

// parseArgs parses flags and enforces the positional argument count,
// printing usage on mismatch.
func parseArgs(flagSet *pflag.FlagSet, args []string, positional int, usage string) error {
	if err := flagSet.Parse(args); err != nil {
		return err
	}
	if flagSet.NArg() != positional {
		return fmt.Errorf("usage: %s %s", flagSet.Name(), usage)
	}
	return nil
}
