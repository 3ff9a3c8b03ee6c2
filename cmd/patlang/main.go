// Command patlang is an interactive shell for the builtin function
// library. It loads a binary file as the evaluation data source and
// dispatches lines of the form
//
//	std.mem.read_unsigned 0 4
//
// through the registry, printing the resulting value or abort.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"patlang/builtins"
	"patlang/types"
)

const (
	appName     = "patlang"
	historyFile = ".patlang_history"
	prompt      = "pl> "
	banner      = "patlang shell — Ctrl+D to exit, :help for commands."
	helpText    = `
Shell commands:
  :help            Show this help
  :quit / :exit    Exit the shell
  :funcs [prefix]  List registered functions, optionally filtered
  :files           List open file handles

Calls are one per line: a function name followed by arguments.
  "text"   string        0x1F     unsigned (hex)
  42       unsigned      -7       signed
  3.14     float         'a'      character
`
)

func main() {
	var (
		dataPath  = flag.String("data", "", "binary file to expose as the data source")
		base      = flag.Uint64("base", 0, "base address of the data source")
		dangerous = flag.Bool("dangerous", false, "permit dangerous functions (file, network)")
		evalStr   = flag.String("e", "", "evaluate a single call and exit")
	)
	flag.Parse()

	source, err := loadSource(*dataPath, *base)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}

	ctx := types.NewEvalContext(source)
	ctx.AllowDangerous = *dangerous

	table := builtins.NewFileTable()
	defer table.CloseAll()

	reg := builtins.NewRegistry()
	reg.RegisterFileBuiltins(table)
	reg.RegisterHTTPBuiltins()

	if *evalStr != "" {
		os.Exit(runLine(reg, ctx, *evalStr))
	}
	os.Exit(runShell(reg, ctx, table))
}

func loadSource(path string, base uint64) (*types.MemSource, error) {
	if path == "" {
		return &types.MemSource{Base: base}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	return &types.MemSource{Base: base, Data: data}, nil
}

func runLine(reg *builtins.Registry, ctx *types.EvalContext, line string) int {
	name, args, err := parseCall(line)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		return 1
	}
	res := reg.Call(ctx, name, args)
	if res.IsAbort() {
		fmt.Fprintf(os.Stderr, "abort: %s\n", res.Message)
		return 1
	}
	if res.HasValue() {
		fmt.Println(res.Val.String())
	}
	return 0
}

func runShell(reg *builtins.Registry, ctx *types.EvalContext, table *builtins.FileTable) int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	names := reg.Names()
	ln.SetCompleter(func(line string) []string {
		var out []string
		for _, n := range names {
			if strings.HasPrefix(n, line) {
				out = append(out, n+" ")
			}
		}
		return out
	})

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			break
		}
		if err != nil {
			// Ctrl+C drops the current line.
			continue
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		ln.AppendHistory(trimmed)

		if strings.HasPrefix(trimmed, ":") {
			if handleCommand(reg, table, trimmed) {
				break
			}
			continue
		}

		name, args, err := parseCall(trimmed)
		if err != nil {
			fmt.Println(err)
			continue
		}
		res := reg.Call(ctx, name, args)
		switch {
		case res.IsAbort():
			fmt.Printf("abort: %s\n", res.Message)
		case res.HasValue():
			fmt.Println(res.Val.String())
		}
	}

	if f, err := os.Create(histPath); err == nil {
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}
	return 0
}

func handleCommand(reg *builtins.Registry, table *builtins.FileTable, line string) (exit bool) {
	fields := strings.Fields(line)
	switch strings.ToLower(fields[0]) {
	case ":help":
		fmt.Print(helpText)
	case ":quit", ":exit":
		return true
	case ":funcs":
		prefix := ""
		if len(fields) > 1 {
			prefix = fields[1]
		}
		names := reg.Names()
		sort.Strings(names)
		for _, n := range names {
			if strings.HasPrefix(n, prefix) {
				fmt.Println(n)
			}
		}
	case ":files":
		handles := table.Handles()
		if len(handles) == 0 {
			fmt.Println("no open files")
			break
		}
		for _, h := range handles {
			fmt.Println(h)
		}
	default:
		fmt.Println("unknown command. Type :help for help.")
	}
	return false
}

// parseCall splits a line into a function name and literal arguments.
func parseCall(line string) (string, []types.Value, error) {
	tokens, err := tokenize(line)
	if err != nil {
		return "", nil, err
	}
	if len(tokens) == 0 {
		return "", nil, errors.New("empty call")
	}
	args := make([]types.Value, 0, len(tokens)-1)
	for _, tok := range tokens[1:] {
		v, err := parseLiteral(tok)
		if err != nil {
			return "", nil, err
		}
		args = append(args, v)
	}
	return tokens[0], args, nil
}

// tokenize splits on spaces while keeping quoted strings intact.
func tokenize(line string) ([]string, error) {
	var tokens []string
	i := 0
	for i < len(line) {
		switch {
		case line[i] == ' ' || line[i] == '\t':
			i++
		case line[i] == '"':
			end := i + 1
			for end < len(line) && line[end] != '"' {
				if line[end] == '\\' {
					end++
				}
				end++
			}
			if end >= len(line) {
				return nil, errors.New("unterminated string literal")
			}
			tokens = append(tokens, line[i:end+1])
			i = end + 1
		default:
			end := i
			for end < len(line) && line[end] != ' ' && line[end] != '\t' {
				end++
			}
			tokens = append(tokens, line[i:end])
			i = end
		}
	}
	return tokens, nil
}

func parseLiteral(tok string) (types.Value, error) {
	switch {
	case strings.HasPrefix(tok, `"`):
		s, err := strconv.Unquote(tok)
		if err != nil {
			return nil, fmt.Errorf("bad string literal %s", tok)
		}
		return types.NewStr(s), nil
	case strings.HasPrefix(tok, "'"):
		s, err := strconv.Unquote(tok)
		if err != nil || len(s) != 1 {
			return nil, fmt.Errorf("bad character literal %s", tok)
		}
		return types.NewChar(s[0]), nil
	case strings.HasPrefix(tok, "0x") || strings.HasPrefix(tok, "0X"):
		n, err := strconv.ParseUint(tok[2:], 16, 64)
		if err != nil {
			return nil, fmt.Errorf("bad hex literal %s", tok)
		}
		return types.NewUnsigned64(n), nil
	case strings.HasPrefix(tok, "-"):
		if strings.ContainsAny(tok, ".eE") {
			f, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, fmt.Errorf("bad float literal %s", tok)
			}
			return types.NewFloat(f), nil
		}
		n, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad signed literal %s", tok)
		}
		return types.NewSigned64(n), nil
	case strings.ContainsAny(tok, ".eE"):
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("bad float literal %s", tok)
		}
		return types.NewFloat(f), nil
	default:
		n, err := strconv.ParseUint(tok, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad literal %s", tok)
		}
		return types.NewUnsigned64(n), nil
	}
}
