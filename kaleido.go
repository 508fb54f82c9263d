package main

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/peterh/liner"
	"github.com/urfave/cli"

	"github.com/isaacev/Kaleido/frontend"
	"github.com/isaacev/Kaleido/source"
)

const historyFile = ".kaleido_history"

var errorNoColor bool
var errorPretty bool
var debugShowAST bool
var operatorsFile string

func readSourceFiles(args []string) (files []*source.File) {
	var filenames []string

	for _, arg := range args {
		// Try to convert every argument to an absolute path. If not possible,
		// claim the file could not be found. If a path can be produced but has
		// the wrong extension, admit defeat for that argument. If both of
		// these tests are passed, add the absolute file to `filenames`
		if abs, err := filepath.Abs(arg); err == nil {
			if path.Ext(abs) == ".ks" {
				filenames = append(filenames, abs)
			} else {
				fmt.Printf("could not use '%s' with extension '%s'\n", abs, path.Ext(abs))
			}
		} else {
			fmt.Printf("could not find '%s'\n", arg)
		}
	}

	for _, filename := range filenames {
		buf, err := os.ReadFile(filename)

		// If any error is produced during the file read, print the error and
		// quit trying to process this filename
		if err != nil {
			fmt.Println(err.Error())
			continue
		}

		files = append(files, source.NewFile(filename, string(buf)))
	}

	return files
}

// newOpTable builds the operator precedence table for a parse session: the
// four built-in operators plus any extensions loaded from the --operators
// TOML file
func newOpTable() (*frontend.OpTable, error) {
	table := frontend.NewOpTable()

	if operatorsFile == "" {
		return table, nil
	}

	var config struct {
		Operators map[string]int `toml:"operators"`
	}

	if _, err := toml.DecodeFile(operatorsFile, &config); err != nil {
		return nil, err
	}

	for op, precedence := range config.Operators {
		runes := []rune(op)

		if len(runes) != 1 {
			return nil, fmt.Errorf("operator %q must be a single character", op)
		}

		table.Set(runes[0], precedence)
	}

	return table, nil
}

// digestFile runs the top-level dispatch loop over one file: definitions,
// externs, bare expressions and stray ';' separators, each reported on the
// log channel as it completes. A failed construct is reported and costs one
// token of resynchronization; the loop itself only stops at end-of-stream
func digestFile(file *source.File, table *frontend.OpTable, log io.Writer) *frontend.Program {
	parser := frontend.NewParser(file, table)
	prog := &frontend.Program{}

	for {
		node, done, msg := parser.ParseTopLevel()

		if done {
			return prog
		}

		if msg != nil {
			if errorPretty {
				fmt.Fprintln(log, msg.Make(!errorNoColor))
			} else {
				fmt.Fprintf(log, "LogError: %s\n", msg.Text())
			}

			continue
		}

		// A nil node with a nil message is a skipped statement separator
		if node == nil {
			continue
		}

		prog.Constructs = append(prog.Constructs, node)
		fmt.Fprintln(log, describe(node))
	}
}

// describe maps a parsed top-level construct to its report line
func describe(generic frontend.Node) string {
	switch node := generic.(type) {
	case *frontend.Function:
		if node.Proto.Name == "" {
			return "Parsed a top-level expr"
		}

		return "Parsed a function definition."
	case *frontend.Prototype:
		return "Parsed an extern"
	default:
		return fmt.Sprintf("Parsed an unknown construct %T", node)
	}
}

func dumpAST(prog *frontend.Program) {
	fmt.Println("#######################")
	fmt.Println("##        AST        ##")
	fmt.Println("#######################")
	fmt.Println()
	fmt.Println(frontend.StringifyAST(prog))
	fmt.Println()
}

func repl() error {
	table, err := newOpTable()

	if err != nil {
		return err
	}

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt("ready> ")

		if err == io.EOF {
			fmt.Println()
			return nil
		} else if err == liner.ErrPromptAborted {
			continue
		} else if err != nil {
			return err
		}

		if line == ":quit" {
			return nil
		}

		if line == "" {
			continue
		}

		// Each line is its own parse session, but the operator table is
		// shared so user-defined precedences persist across lines
		prog := digestFile(source.NewFile("<stdin>", line), table, os.Stderr)

		if debugShowAST && len(prog.Constructs) > 0 {
			dumpAST(prog)
		}

		ln.AppendHistory(line)
	}
}

func main() {
	app := cli.NewApp()
	app.Name = "kaleido"
	app.Usage = "a front-end for a small expression language"

	noColorFlag := cli.BoolFlag{
		Name:        "no-color",
		Usage:       "hide colors in error messages",
		Destination: &errorNoColor,
	}

	prettyFlag := cli.BoolFlag{
		Name:        "pretty",
		Usage:       "render errors as source code selections instead of log lines",
		Destination: &errorPretty,
	}

	debugAstFlag := cli.BoolFlag{
		Name:        "debug-ast",
		Usage:       "show a basic representation of the abstract-syntax-tree",
		Destination: &debugShowAST,
	}

	operatorsFlag := cli.StringFlag{
		Name:        "operators",
		Usage:       "TOML file of extra single-character operator precedences",
		Destination: &operatorsFile,
	}

	app.Commands = []cli.Command{
		{
			Name:    "parse",
			Aliases: []string{"p"},
			Usage:   "Check the syntax of file(s) and report each construct",
			Flags: []cli.Flag{
				noColorFlag,
				prettyFlag,
				debugAstFlag,
				operatorsFlag,
			},
			Action: func(c *cli.Context) error {
				table, err := newOpTable()

				if err != nil {
					return err
				}

				for _, f := range readSourceFiles(c.Args()) {
					prog := digestFile(f, table, os.Stderr)

					if debugShowAST {
						fmt.Printf("# %s\n", f.Filename)
						dumpAST(prog)
					}
				}

				return nil
			},
		},
		{
			Name:    "eval",
			Aliases: []string{"e"},
			Usage:   "Parse program text given as command-line arguments",
			Flags: []cli.Flag{
				noColorFlag,
				prettyFlag,
				debugAstFlag,
				operatorsFlag,
			},
			Action: func(c *cli.Context) error {
				table, err := newOpTable()

				if err != nil {
					return err
				}

				// All arguments are concatenated into one character stream
				// with single-space separators
				prog := digestFile(source.FromArgs(c.Args()), table, os.Stderr)

				if debugShowAST {
					dumpAST(prog)
				}

				return nil
			},
		},
		{
			Name:    "repl",
			Aliases: []string{"r"},
			Usage:   "Parse constructs interactively",
			Flags: []cli.Flag{
				noColorFlag,
				prettyFlag,
				debugAstFlag,
				operatorsFlag,
			},
			Action: func(c *cli.Context) error {
				return repl()
			},
		},
	}

	app.Action = func(c *cli.Context) error {
		cli.ShowAppHelp(c)
		return nil
	}

	// A parse session that reaches the end of its stream always exits with
	// status 0, no matter how many constructs failed along the way
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
	}
}
