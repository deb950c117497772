package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"

	huffman "github.com/peacewalker122/huffman-text-compression"
)

const progName = "huff"
const usageMessageRaw = `
Usage: huff MODE -f INPUT -o OUTPUT [-codes] [-debug]

Modes:
  -c, -compress
	Compress INPUT and write the result to OUTPUT.

  -d, -decompress
	Decompress INPUT, which must have been written by "huff -c", and
	write the original data to OUTPUT.

Options:
  -f, -file INPUT      file to read
  -o, -output OUTPUT   file to write
  -codes               after compressing, list the code of every byte
  -debug               enable debug logging
`

var log = logging.MustGetLogger(progName)

type nullWriter struct{}

func (n *nullWriter) Write(p []byte) (int, error) {
	return len(p), nil
}

func usageMessage() string {
	return strings.TrimLeft(usageMessageRaw, "\n")
}

func usageErrorf(detailFmt string, detailArgs ...interface{}) {
	detail := fmt.Sprintf(detailFmt, detailArgs...)
	fmt.Fprintf(os.Stderr, "%s: %s\n%s", progName, detail, usageMessage())
	os.Exit(64)
}

func exitError(err error) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", progName, describeError(err))
	os.Exit(1)
}

// describeError turns the library's error kinds into a diagnostic a user can
// act on.
func describeError(err error) string {
	switch {
	case errors.Is(err, huffman.ErrEmptyAlphabet):
		return "input is empty, nothing to compress"
	case errors.Is(err, huffman.ErrInvalidFormat):
		return fmt.Sprintf("not a huff file: %v", err)
	case errors.Is(err, huffman.ErrCorruptStream):
		return fmt.Sprintf("compressed data is damaged: %v", err)
	case errors.Is(err, huffman.ErrUnknownSymbol):
		return fmt.Sprintf("input changed while compressing: %v", err)
	case errors.Is(err, huffman.ErrEmptyContainer):
		return fmt.Sprintf("internal error: %v", err)
	default:
		return err.Error()
	}
}

var leveledLogBackend logging.Leveled

func startLogging() {
	backend := logging.NewLogBackend(os.Stderr, progName+": ", 0)
	formatSpec := "%{level:8s} %{module:-8s} | %{message}"
	formatter := logging.MustStringFormatter(formatSpec)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
	leveledLogBackend = leveled
}

type config struct {
	compress   bool
	decompress bool
	inputPath  string
	outputPath string
	dumpCodes  bool
	debug      bool
}

func parseArgs(args []string) (config, error) {
	var cfg config
	ourFlags := flag.NewFlagSet(progName, flag.ContinueOnError)
	ourFlags.Usage = func() {}
	ourFlags.SetOutput(&nullWriter{})

	// Usage strings are hardcoded above.

	ourFlags.BoolVar(&cfg.compress, "compress", false, "")
	ourFlags.BoolVar(&cfg.compress, "c", false, "")
	ourFlags.BoolVar(&cfg.decompress, "decompress", false, "")
	ourFlags.BoolVar(&cfg.decompress, "d", false, "")
	ourFlags.StringVar(&cfg.inputPath, "file", "", "")
	ourFlags.StringVar(&cfg.inputPath, "f", "", "")
	ourFlags.StringVar(&cfg.outputPath, "output", "", "")
	ourFlags.StringVar(&cfg.outputPath, "o", "", "")
	ourFlags.BoolVar(&cfg.dumpCodes, "codes", false, "")
	ourFlags.BoolVar(&cfg.debug, "debug", false, "")

	if err := ourFlags.Parse(args); err != nil {
		return cfg, err
	}

	switch {
	case ourFlags.NArg() != 0:
		return cfg, fmt.Errorf("unexpected argument \"%s\"", ourFlags.Arg(0))
	case cfg.compress == cfg.decompress:
		return cfg, errors.New("exactly one of -c or -d is required")
	case cfg.inputPath == "":
		return cfg, errors.New("missing input file (-f)")
	case cfg.outputPath == "":
		return cfg, errors.New("missing output file (-o)")
	}
	return cfg, nil
}

func main() {
	startLogging()

	cfg, argErr := parseArgs(os.Args[1:])
	if argErr == flag.ErrHelp {
		io.WriteString(os.Stdout, usageMessage())
		os.Exit(0)
	} else if argErr != nil {
		usageErrorf("%s", argErr.Error())
	}

	if cfg.debug {
		leveledLogBackend.SetLevel(logging.DEBUG, "")
	}

	if err := run(cfg, os.Stdout); err != nil {
		exitError(err)
	}
}

// run performs the requested operation.  The output file is removed again if
// the operation fails.
func run(cfg config, stdout io.Writer) (err error) {
	in, err := os.Open(cfg.inputPath)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(cfg.outputPath)
	if err != nil {
		return err
	}
	defer func() {
		closeErr := out.Close()
		if err == nil {
			err = closeErr
		}
		if err != nil {
			os.Remove(cfg.outputPath)
		}
	}()

	if cfg.compress {
		return compressFile(cfg, in, out, stdout)
	}
	return decompressFile(in, out)
}

func compressFile(cfg config, in io.ReadSeeker, out io.Writer, stdout io.Writer) error {
	stats, err := huffman.Compress(out, in)
	if err != nil {
		return err
	}
	log.Infof("compressed %s -> %s: %v", cfg.inputPath, cfg.outputPath, stats)

	if cfg.dumpCodes {
		if _, err := stats.Codes.Dump(stdout); err != nil {
			return err
		}
	}
	return nil
}

func decompressFile(in io.Reader, out io.Writer) error {
	stats, err := huffman.Decompress(out, in)
	if err != nil {
		return err
	}
	log.Infof("decompressed %v", stats)
	return nil
}
