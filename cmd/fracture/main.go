package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	flag "github.com/spf13/pflag"

	"pkt.systems/fracture"
)

func main() {
	compact := flag.BoolP("compact", "c", false, "minify instead of pretty-printing")
	output := flag.StringP("output", "o", "", "write to file instead of stdout")

	maxWidth := flag.Int("max-width", 120, "maximum total line length")
	indent := flag.Int("indent", 4, "spaces per indentation level")
	tabs := flag.Bool("tabs", false, "indent with tabs")
	eol := flag.String("eol", "lf", "line endings: lf or crlf")

	comments := flag.String("comments", "error", "comment handling: error, remove, or preserve")
	trailingCommas := flag.Bool("trailing-commas", false, "allow trailing commas in input")
	preserveBlanks := flag.Bool("preserve-blanks", false, "keep blank lines from the input")

	numberAlign := flag.String("number-align", "decimal", "number column alignment: left, right, decimal, or normalize")
	maxInlineComplexity := flag.Int("max-inline-complexity", 2, "deepest nesting allowed on a single line")
	maxCompactComplexity := flag.Int("max-compact-complexity", 2, "deepest nesting allowed in compact multi-line arrays")
	maxTableComplexity := flag.Int("max-table-complexity", 2, "deepest nesting allowed in table rows")
	alwaysExpandDepth := flag.Int("always-expand-depth", -1, "force expanded layout at or above this depth")
	simpleBracketPadding := flag.Bool("simple-bracket-padding", false, "pad brackets of flat containers")
	noNestedBracketPadding := flag.Bool("no-nested-bracket-padding", false, "don't pad brackets of nested containers")

	jsonl := flag.Bool("jsonl", false, "treat input as JSON Lines, one document per line")
	jsonlErrors := flag.String("jsonl-errors", "fail", "JSONL line errors: fail, skip, or passthrough")

	noColor := flag.Bool("no-color", false, "disable colorized output, even when writing to a TTY")
	paletteName := flag.String("palette", "default", "color palette (--palette list to see them)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [file...]\n\nReads stdin when no files are given; \"-\" also means stdin.\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "fracture"})

	if *paletteName == "list" {
		fmt.Println(strings.Join(fracture.PaletteNames(), "\n"))
		return
	}

	f := fracture.NewFormatter()
	f.Options.MaxTotalLineLength = *maxWidth
	f.Options.IndentSpaces = *indent
	f.Options.UseTabToIndent = *tabs
	f.Options.AllowTrailingCommas = *trailingCommas
	f.Options.PreserveBlankLines = *preserveBlanks
	f.Options.MaxInlineComplexity = *maxInlineComplexity
	f.Options.MaxCompactArrayComplexity = *maxCompactComplexity
	f.Options.MaxTableRowComplexity = *maxTableComplexity
	f.Options.AlwaysExpandDepth = *alwaysExpandDepth
	f.Options.SimpleBracketPadding = *simpleBracketPadding
	f.Options.NestedBracketPadding = !*noNestedBracketPadding

	switch strings.ToLower(*eol) {
	case "lf":
		f.Options.JsonEolStyle = fracture.EolLf
	case "crlf":
		f.Options.JsonEolStyle = fracture.EolCrlf
	default:
		logger.Fatalf("invalid --eol %q: use lf or crlf", *eol)
	}

	switch strings.ToLower(*comments) {
	case "error":
		f.Options.CommentPolicy = fracture.CommentsError
	case "remove":
		f.Options.CommentPolicy = fracture.CommentsRemove
	case "preserve":
		f.Options.CommentPolicy = fracture.CommentsPreserve
	default:
		logger.Fatalf("invalid --comments %q: use error, remove, or preserve", *comments)
	}

	switch strings.ToLower(*numberAlign) {
	case "left":
		f.Options.NumberListAlignment = fracture.NumbersLeft
	case "right":
		f.Options.NumberListAlignment = fracture.NumbersRight
	case "decimal":
		f.Options.NumberListAlignment = fracture.NumbersDecimal
	case "normalize":
		f.Options.NumberListAlignment = fracture.NumbersNormalize
	default:
		logger.Fatalf("invalid --number-align %q: use left, right, decimal, or normalize", *numberAlign)
	}

	switch *jsonlErrors {
	case "fail", "skip", "passthrough":
	default:
		logger.Fatalf("invalid --jsonl-errors %q: use fail, skip, or passthrough", *jsonlErrors)
	}

	out := os.Stdout
	if *output != "" {
		file, err := os.Create(*output)
		if err != nil {
			logger.Fatal(err)
		}
		defer file.Close()
		out = file
	}

	useColor := !*noColor && !*compact && *output == "" && isatty.IsTerminal(out.Fd())
	renderer := lipgloss.NewRenderer(out)
	palette, err := fracture.ResolvePalette(*paletteName, renderer, useColor)
	if err != nil {
		logger.Fatal(err)
	}

	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	for _, path := range paths {
		data, err := readInput(path)
		if err != nil {
			logger.Fatal(err)
		}

		var result string
		if *jsonl {
			result, err = processJSONL(f, string(data), *compact, *jsonlErrors, logger)
		} else if *compact {
			result, err = f.Minify(string(data))
		} else {
			result, err = f.Reformat(string(data), 0)
		}
		if err != nil {
			logger.Fatalf("%s: %s", path, err)
		}

		if useColor {
			result = fracture.Colorize(result, palette)
		}
		if _, err := io.WriteString(out, result); err != nil {
			logger.Fatalf("write error: %s", err)
		}
	}
}

// processJSONL formats line by line so a bad line can be skipped or passed
// through instead of killing the whole stream.
func processJSONL(f *fracture.Formatter, input string, compact bool, onError string, logger *log.Logger) (string, error) {
	if onError == "fail" {
		if compact {
			return f.MinifyJSONL(input)
		}
		return f.ReformatJSONL(input)
	}

	var outputLines []string
	lines := strings.Split(strings.TrimSuffix(input, "\n"), "\n")
	for lineNum, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			outputLines = append(outputLines, "")
			continue
		}
		var formatted string
		var err error
		if compact {
			formatted, err = f.Minify(line)
		} else {
			formatted, err = f.Reformat(line, 0)
		}
		if err != nil {
			if onError == "passthrough" {
				logger.Warn("passing through malformed line", "line", lineNum+1, "err", err)
				outputLines = append(outputLines, line)
			} else {
				logger.Warn("skipping malformed line", "line", lineNum+1, "err", err)
			}
			continue
		}
		outputLines = append(outputLines, strings.TrimRight(formatted, " \t\r\n"))
	}
	joined := strings.Join(outputLines, "\n")
	if joined != "" {
		joined += "\n"
	}
	return joined, nil
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return data, nil
}
