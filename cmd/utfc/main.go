// Command utfc compresses and decompresses UTF-8 text with the UTF-C codec.
//
// Usage:
//
//	utfc [-d] [-method utfc|none|lz4|auto] [-raw] [-stats] [-v] [-in FILE] [-out FILE]
//	utfc -tiers
//
// By default stdin is compressed into a block container on stdout, using
// UTF-C when it shrinks the text and raw storage otherwise.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/coregx/utfc"
	"github.com/coregx/utfc/block"
)

type options struct {
	decompress bool
	method     string
	raw        bool
	stats      bool
	verbose    bool
	tiers      bool
	width      int
	in         string
	out        string
}

var errUsage = errors.New("usage")

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("utfc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&opts.decompress, "d", false, "Decompress instead of compress")
	fs.StringVar(&opts.method, "method", "auto", "Block method: utfc, none, lz4 or auto")
	fs.BoolVar(&opts.raw, "raw", false, "Use the bare UTF-C wire format without a block container")
	fs.BoolVar(&opts.stats, "stats", false, "Print sizes and compression ratio to stderr")
	fs.BoolVar(&opts.verbose, "v", false, "Verbose (development) logging")
	fs.BoolVar(&opts.tiers, "tiers", false, "List the scanner tiers and exit")
	fs.IntVar(&opts.width, "width", 0, "Maximum vector width in bytes (0, 16, 32 or 64)")
	fs.StringVar(&opts.in, "in", "", "Input file (default stdin)")
	fs.StringVar(&opts.out, "out", "", "Output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("%w: unexpected argument %q", errUsage, fs.Arg(0))
	}
	if opts.raw && opts.method != "auto" && opts.method != "utfc" {
		return opts, fmt.Errorf("%w: -raw only supports -method utfc", errUsage)
	}
	return opts, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fatalf("%v", err)
	}

	logger, err := newLogger(opts.verbose)
	if err != nil {
		fatalf("create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	block.SetLogger(logger)

	if err := run(opts, logger, os.Stdin, os.Stdout, os.Stderr); err != nil {
		logger.Error("utfc failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(opts options, logger *zap.Logger, stdin io.Reader, stdout, stderr io.Writer) error {
	config := utfc.DefaultConfig()
	config.MaxVectorWidth = opts.width
	codec, err := utfc.NewCodec(config)
	if err != nil {
		return err
	}
	logger.Debug("scanner configured", zap.Strings("tiers", codec.Tiers()))

	if opts.tiers {
		return printTiers(stdout, codec)
	}

	input, err := readInput(opts.in, stdin)
	if err != nil {
		return err
	}

	var output []byte
	if opts.decompress {
		output, err = decode(opts, codec, input)
	} else {
		output, err = encode(opts, codec, input)
	}
	if err != nil {
		return err
	}

	if opts.stats {
		printStats(stderr, opts.decompress, len(input), len(output))
	}
	return writeOutput(opts.out, stdout, output)
}

func encode(opts options, codec *utfc.Codec, input []byte) ([]byte, error) {
	if opts.raw {
		return codec.Compress(input)
	}
	if opts.method == "auto" {
		return block.CompressWithFallback(block.NewUTFCCodec(codec), input)
	}
	c, err := block.ParseMethod(opts.method)
	if err != nil {
		return nil, err
	}
	if c.MethodByte() == block.MethodUTFC {
		c = block.NewUTFCCodec(codec)
	}
	return block.CompressBlock(c, input)
}

func decode(opts options, codec *utfc.Codec, input []byte) ([]byte, error) {
	if opts.raw {
		return codec.Decompress(input)
	}
	return block.DecompressBlockWith(input, block.NewUTFCCodec(codec))
}

func printStats(w io.Writer, decompress bool, in, out int) {
	compressed, original := out, in
	if decompress {
		compressed, original = in, out
	}
	ratio := 0.0
	if original > 0 {
		ratio = float64(compressed) / float64(original)
	}
	fmt.Fprintf(w, "original: %d bytes, compressed: %d bytes, ratio: %.3f\n", original, compressed, ratio)
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}

func writeOutput(path string, stdout io.Writer, data []byte) error {
	if path == "" {
		if _, err := stdout.Write(data); err != nil {
			return fmt.Errorf("write stdout: %w", err)
		}
		return nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "utfc: "+format+"\n", args...)
	os.Exit(2)
}
