// Command syncscan reads a byte stream from stdin and reports every
// syncword occurrence found in it. It is a thin operator-facing front end
// over syncwindow/syncconfig, in the spirit of the teacher's many
// single-purpose cmd/ tools (cmd/fxrec, cmd/tnctest, cmd/kissutil, ...) -
// not a benchmark harness.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/kb2gnd/syncframe/syncconfig"
)

func main() {
	var (
		configFile = pflag.StringP("config", "c", "", "Path to a syncconfig YAML file. Overrides -w/-m/-k/-t/-s below.")
		width      = pflag.IntP("width", "w", 32, "Syncword width in bits: 16 or 32")
		mode       = pflag.StringP("mode", "m", "single", "Block mode: single or double")
		kind       = pflag.StringP("kind", "k", "exact", "Comparator kind: exact, popcount, lzc, twoscmpl")
		tolerance  = pflag.UintP("tolerance", "t", 0, "Bit-error tolerance (ignored by exact)")
		syncword   = pflag.StringP("syncword", "s", "", "Syncword as hex, e.g. 1ACFFC1D")
		blockSize  = pflag.IntP("block-size", "b", 4096, "Bytes to read from stdin per chunk")
		help       = pflag.BoolP("help", "h", false, "Display help text")
	)

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: syncscan [options] < stream\n\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if *help {
		pflag.Usage()
		return
	}

	logger := log.New(os.Stderr)

	spec := syncconfig.Spec{
		Width:      syncconfig.Width(*width),
		Mode:       syncconfig.Mode(*mode),
		Comparator: syncconfig.ComparatorKind(*kind),
		Tolerance:  *tolerance,
		Syncword:   *syncword,
	}
	if *configFile != "" {
		loaded, err := loadSpec(*configFile)
		if err != nil {
			logger.Fatal("loading config", "path", *configFile, "err", err)
		}
		spec = loaded
	}

	scanner, err := syncconfig.Build(spec)
	if err != nil {
		logger.Fatal("building detector", "err", err)
	}

	if *blockSize <= 0 {
		logger.Fatal("block-size must be positive", "value", *blockSize)
	}

	logger.Info("scanning", "width", spec.Width, "mode", spec.Mode, "comparator", spec.Comparator, "tolerance", spec.Tolerance)

	// Extend requires a multiple of the detector's own block size (2, 4 or
	// 8 bytes depending on width/mode); all three divide 8, so chunking
	// reads to a multiple of 8 and carrying any remainder keeps every
	// Extend call valid regardless of which mode was configured.
	const chunkAlign = 8

	reader := bufio.NewReader(os.Stdin)
	readBuf := make([]byte, *blockSize)
	var pending []byte
	var totalBytes int64
	var totalMatches int

	for {
		n, readErr := reader.Read(readBuf)
		if n > 0 {
			pending = append(pending, readBuf[:n]...)
			usable := len(pending) - len(pending)%chunkAlign
			if usable > 0 {
				scanner.Extend(pending[:usable])
				totalBytes += int64(usable)
				pending = pending[usable:]

				for _, m := range scanner.Detect() {
					totalMatches++
					logger.Info("match", "shift", m.Shift, "tail_len", len(m.Tail), "offset", totalBytes)
				}
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			logger.Fatal("reading stdin", "err", readErr)
		}
	}

	if len(pending) > 0 {
		logger.Debug("trailing bytes short of one 8-byte chunk, discarded", "count", len(pending))
	}

	logger.Info("done", "bytes_scanned", totalBytes, "matches", totalMatches)
}
