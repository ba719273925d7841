// Copyright 2026 sigtrace project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

// sigtrace-symbolize resolves raw stack addresses against a binary's
// symbol table. Input is whitespace-separated hex addresses, one crash
// trace per invocation, from a file argument or stdin.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sigtrace/sigtrace/pkg/log"
	"github.com/sigtrace/sigtrace/pkg/symbolize"
)

var (
	flagBin  = flag.String("bin", "", "binary to resolve against (defaults to this tool's own executable)")
	flagBias = flag.Uint64("bias", 0, "load bias subtracted from addresses (for PIE binaries)")
)

func main() {
	flag.Parse()
	input := os.Stdin
	switch len(flag.Args()) {
	case 0:
	case 1:
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatalf("failed to open input file: %v", err)
		}
		defer f.Close()
		input = f
	default:
		fmt.Fprintf(os.Stderr, "usage: sigtrace-symbolize [flags] [addresses_file]\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	var resolver *symbolize.ELFResolver
	var err error
	if *flagBin != "" {
		resolver, err = symbolize.NewELFResolver(*flagBin)
	} else {
		exe, exeErr := os.Executable()
		if exeErr != nil {
			log.Fatalf("failed to locate own executable: %v", exeErr)
		}
		resolver, err = symbolize.NewELFResolver(exe)
	}
	if err != nil {
		log.Fatalf("failed to load symbols: %v", err)
	}
	resolver.Bias = *flagBias

	frames, err := readFrames(input)
	if err != nil {
		log.Fatalf("failed to read addresses: %v", err)
	}
	os.Stdout.WriteString(symbolize.Render(resolver, frames, "\n"))
}

func readFrames(f *os.File) ([]uintptr, error) {
	var frames []uintptr
	scanner := bufio.NewScanner(f)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		tok := strings.TrimPrefix(scanner.Text(), "0x")
		addr, err := strconv.ParseUint(tok, 16, 64)
		if err != nil {
			return nil, fmt.Errorf("bad address %q: %w", scanner.Text(), err)
		}
		frames = append(frames, uintptr(addr))
	}
	return frames, scanner.Err()
}
