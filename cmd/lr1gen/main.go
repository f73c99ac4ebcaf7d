// Command lr1gen is a thin demonstration driver over the lr1gen library:
// it builds one of a handful of built-in grammars, optionally prints its
// ACTION table, and parses terminal lines typed at a prompt (or given on
// the command line) into a concrete syntax tree.
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/pflag"

	"github.com/brennalabs/lr1gen"
	"github.com/brennalabs/lr1gen/grammar"
	"github.com/brennalabs/lr1gen/internal/version"
	"github.com/brennalabs/lr1gen/lrerr"
	"github.com/brennalabs/lr1gen/lrtable"
	"github.com/brennalabs/lr1gen/parse"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "lr1gen: fatal: %v\n", r)
			os.Exit(2)
		}
	}()

	grammarName := pflag.StringP("grammar", "g", "expression", "built-in grammar to use (canonical, expression, epsilon)")
	showTable := pflag.BoolP("table", "t", false, "print the ACTION table and exit")
	parseLine := pflag.StringP("parse", "p", "", "parse a whitespace-separated line of terminal names and print the CST")
	savePath := pflag.String("save", "", "save the built table to this path before exiting")
	loadPath := pflag.String("load", "", "load a previously-saved table instead of building one")
	showVersion := pflag.BoolP("version", "v", false, "print the version and exit")
	pflag.Parse()

	if *showVersion {
		fmt.Println(version.Current)
		return
	}

	table, err := loadOrBuildTable(*loadPath, *grammarName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lr1gen: %v\n", err)
		os.Exit(1)
	}

	if *savePath != "" {
		if err := table.Save(*savePath); err != nil {
			fmt.Fprintf(os.Stderr, "lr1gen: %v\n", err)
			os.Exit(1)
		}
	}

	if *showTable {
		fmt.Println(table.String())
		return
	}

	if *parseLine != "" {
		runParse(table, *parseLine)
		return
	}

	repl(table)
}

func loadOrBuildTable(loadPath, grammarName string) (*lrtable.Table, error) {
	if loadPath != "" {
		return lrtable.Load(loadPath)
	}

	build, ok := builtinGrammars[grammarName]
	if !ok {
		names := make([]string, 0, len(builtinGrammars))
		for name := range builtinGrammars {
			names = append(names, name)
		}
		sort.Strings(names)
		return nil, lrerr.Malformedf("unknown grammar %q (have: %s)", grammarName, strings.Join(names, ", "))
	}
	g, err := build()
	if err != nil {
		return nil, err
	}

	b := lr1gen.NewBuilder(g)
	return lr1gen.BuildTable(b, nil)
}

func runParse(table *lrtable.Table, line string) {
	node, err := parse.Parse(table, tokenize(line))
	if err != nil {
		fmt.Fprintf(os.Stderr, "lr1gen: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(node)
}

func tokenize(line string) *parse.SliceStream {
	fields := strings.Fields(line)
	symbols := make([]grammar.Symbol, 0, len(fields)+1)
	for _, f := range fields {
		if f == "$" {
			continue
		}
		symbols = append(symbols, grammar.NewTerminal(f))
	}
	symbols = append(symbols, grammar.EndOfInput)
	return parse.NewSliceStream(symbols)
}

func repl(table *lrtable.Table) {
	rl, err := readline.New("lr1gen> ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "lr1gen: %v\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		node, err := parse.Parse(table, tokenize(line))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Print(node)
	}
}
