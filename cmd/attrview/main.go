// attrview inspects and converts stored attribute items.
//
// It reads one item in DynamoDB-JSON or CBOR form, validates that every
// attribute carries exactly one variant tag and prints the item as an
// indented tree. With --to it re-encodes the item; with -i it opens a
// browser over the item's top-level attributes.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/attrconv/attribute"
)

const (
	formatJSON = "json"
	formatCBOR = "cbor"
)

type options struct {
	in          string
	out         string
	format      string
	to          string
	configPath  string
	interactive bool
	verbose     bool
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var opts options
	flagSet := pflag.NewFlagSet("attrview", pflag.ContinueOnError)
	flagSet.StringVar(&opts.in, "in", "", "item file to read (- for stdin)")
	flagSet.StringVar(&opts.format, "format", "", "input format: json or cbor (default: from extension)")
	flagSet.StringVar(&opts.to, "to", "", "re-encode the item as json or cbor")
	flagSet.StringVarP(&opts.out, "out", "o", "", "output file for --to (default: stdout)")
	flagSet.StringVar(&opts.configPath, "config", defaultConfigPath(), "YAML config file")
	flagSet.BoolVarP(&opts.interactive, "interactive", "i", false, "browse the item in a TUI")
	flagSet.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output to stderr")
	flagSet.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: attrview --in <item.json|item.cbor> [--to json|cbor] [-o file] [-i]")
		flagSet.PrintDefaults()
	}
	if err := flagSet.Parse(args); err != nil {
		return err
	}
	if opts.in == "" && flagSet.NArg() > 0 {
		opts.in = flagSet.Arg(0)
	}
	if opts.in == "" {
		flagSet.Usage()
		return fmt.Errorf("no input file")
	}

	log := zap.NewNop()
	if opts.verbose {
		dev, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("logger: %w", err)
		}
		log = dev
	}
	defer log.Sync() //nolint:errcheck

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	log.Debug("config loaded", zap.String("path", opts.configPath), zap.String("format", cfg.Format))

	format := opts.format
	if format == "" {
		format = detectFormat(opts.in, cfg.Format)
	}

	data, err := readInput(opts.in)
	if err != nil {
		return err
	}
	item, err := decodeItem(data, format)
	if err != nil {
		return fmt.Errorf("decode %s: %w", opts.in, err)
	}
	log.Debug("item decoded", zap.String("format", format), zap.Int("attributes", len(item)))

	if opts.interactive {
		width, height := terminalSize()
		program := tea.NewProgram(newInteractiveModel(opts.in, item, cfg.styles(), width, height), tea.WithAltScreen())
		_, err := program.Run()
		return err
	}

	if opts.to != "" {
		out, err := encodeItem(item, opts.to, cfg.Indent)
		if err != nil {
			return err
		}
		if opts.out == "" {
			_, err = os.Stdout.Write(out)
			return err
		}
		log.Debug("writing item", zap.String("path", opts.out), zap.Int("bytes", len(out)))
		return os.WriteFile(opts.out, out, 0o644)
	}

	color := cfg.Color == nil || *cfg.Color
	if color && term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println(cfg.styles().renderItem(item))
	} else {
		fmt.Println(attribute.FormatItem(item))
	}
	return nil
}

func detectFormat(path, fallback string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".cbor":
		return formatCBOR
	case ".json":
		return formatJSON
	}
	if fallback != "" {
		return fallback
	}
	return formatJSON
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return data, nil
}

func decodeItem(data []byte, format string) (attribute.Item, error) {
	switch format {
	case formatJSON:
		return attribute.UnmarshalItemJSON(data)
	case formatCBOR:
		return attribute.UnmarshalItemCBOR(data)
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

func encodeItem(item attribute.Item, format, indent string) ([]byte, error) {
	switch format {
	case formatJSON:
		if indent == "" {
			return attribute.MarshalItemJSON(item)
		}
		out, err := attribute.MarshalItemJSONIndent(item, indent)
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	case formatCBOR:
		return attribute.MarshalItemCBOR(item)
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

func terminalSize() (int, int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 80, 24
	}
	return width, height
}
