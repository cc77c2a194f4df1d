// Command sasslint parses one or more stylesheet files through the
// grammar engine and reports any syntax error it finds, in either plain
// text or JSON. It is a thin consumer of the parser package: it holds
// no grammar of its own.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/nschonni/ruby-sass/expr/literal"
	"github.com/nschonni/ruby-sass/parser"
)

type jsonError struct {
	File    string `json:"file"`
	Line    int    `json:"line"`
	Message string `json:"message"`
}

func main() {
	format := flag.String("format", "text", `output format: "text" or "json"`)
	stopOnFirst := flag.Bool("x", false, "stop after the first file with an error")
	flag.Parse()

	if *format != "text" && *format != "json" {
		log.Fatalf("sasslint: unknown -format %q, want \"text\" or \"json\"", *format)
	}

	if flag.NArg() == 0 {
		log.Fatal("sasslint: no input files")
	}

	failed := false
	for _, path := range flag.Args() {
		if err := lintFile(path, *format); err != nil {
			failed = true
			if *stopOnFirst {
				break
			}
		}
	}

	if failed {
		os.Exit(1)
	}
}

func lintFile(path, format string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		log.Printf("sasslint: %s: %v", path, err)
		return err
	}

	_, perr := parser.Parse(string(source), literal.New)
	if perr == nil {
		return nil
	}

	switch format {
	case "json":
		reportJSON(path, perr)
	default:
		fmt.Printf("%s: %s\n", path, perr)
	}
	return perr
}

func reportJSON(path string, err error) {
	line := 0
	if pe, ok := err.(*parser.Error); ok {
		line = pe.Line
	}
	enc := json.NewEncoder(os.Stdout)
	_ = enc.Encode(jsonError{File: path, Line: line, Message: err.Error()})
}
