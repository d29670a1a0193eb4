package main

import (
	"flag"
	"fmt"
	"os"

	"qsltracker/adif"
)

// adifdump prints the raw field stream of an ADIF file, one field per line,
// followed by any parse warnings. Useful when a log parses oddly and the
// question is what the tokenizer actually sees.
func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: adifdump <file.adi>")
		os.Exit(2)
	}

	content, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading file: %v\n", err)
		os.Exit(1)
	}

	tok := adif.NewTokenizer(content)
	fields, records := 0, 0
	for {
		t, ok := tok.Next()
		if !ok {
			break
		}
		if t.Control {
			fmt.Printf("<%s>\n", t.Tag)
			if t.Tag == "EOR" {
				records++
			}
			continue
		}
		fields++
		fmt.Printf("%-20s %q\n", t.Tag, t.Value)
	}

	fmt.Printf("\n%d fields, %d records\n", fields, records)
	for _, w := range tok.Warnings() {
		fmt.Printf("warning: %s\n", w)
	}
}
