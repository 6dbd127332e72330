package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/pprof"

	"github.com/lestrrat-go/xmlc14n"
	"github.com/lestrrat-go/xmlc14n/internal/xmlbuild"
)

const usage = `c14n-bench - profile repeated canonicalization of an XML file

Usage:
  c14n-bench [options] <xml-file>

Options:
  -iterations int   Number of canonicalization passes (default: 2000)
  -profile string   Profile type: cpu, mem (default: cpu)
  -exclusive        Use exclusive canonicalization
  -comments         Include comments
  -out string       Profile output file (default: c14n_<profile>.prof)
  -help             Show this help message
`

func main() {
	var (
		iterations = flag.Int("iterations", 2000, "Number of canonicalization passes")
		profile    = flag.String("profile", "cpu", "Profile type: cpu, mem")
		exclusive  = flag.Bool("exclusive", false, "Use exclusive canonicalization")
		comments   = flag.Bool("comments", false, "Include comments")
		out        = flag.String("out", "", "Profile output file")
		help       = flag.Bool("help", false, "Show help message")
	)
	flag.Parse()

	if *help {
		fmt.Print(usage)
		os.Exit(0)
	}
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: XML file argument required\n\n%s", usage)
		os.Exit(1)
	}
	if *profile != "cpu" && *profile != "mem" {
		fmt.Fprintf(os.Stderr, "Error: profile must be 'cpu' or 'mem'\n")
		os.Exit(1)
	}

	profileFile := *out
	if profileFile == "" {
		profileFile = fmt.Sprintf("c14n_%s.prof", *profile)
	}

	if err := run(flag.Arg(0), *iterations, *profile, profileFile, *comments, *exclusive); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("profile written to %s\n", profileFile)
}

func run(xmlFile string, iterations int, profileType, profileFile string, comments, exclusive bool) error {
	xmlData, err := os.ReadFile(xmlFile)
	if err != nil {
		return fmt.Errorf("failed to read XML file: %w", err)
	}

	c14n.SetTracingEnabled(false)
	ctx := context.Background()

	switch profileType {
	case "cpu":
		return generateCPUProfile(ctx, xmlData, iterations, profileFile, comments, exclusive)
	case "mem":
		return generateMemProfile(ctx, xmlData, iterations, profileFile, comments, exclusive)
	default:
		return fmt.Errorf("unsupported profile type: %s", profileType)
	}
}

func generateCPUProfile(ctx context.Context, xmlData []byte, iterations int, profileFile string, comments, exclusive bool) error {
	f, err := os.Create(profileFile)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := pprof.StartCPUProfile(f); err != nil {
		return err
	}
	defer pprof.StopCPUProfile()

	for i := 0; i < iterations; i++ {
		doc, err := xmlbuild.Parse(bytes.NewReader(xmlData))
		if err != nil {
			return fmt.Errorf("parse failed at iteration %d: %w", i, err)
		}
		c := c14n.New(io.Discard, comments, exclusive)
		if err := c.Write(ctx, doc); err != nil {
			return fmt.Errorf("canonicalization failed at iteration %d: %w", i, err)
		}
	}
	return nil
}

func generateMemProfile(ctx context.Context, xmlData []byte, iterations int, profileFile string, comments, exclusive bool) error {
	var written int64
	for i := 0; i < iterations; i++ {
		doc, err := xmlbuild.Parse(bytes.NewReader(xmlData))
		if err != nil {
			return fmt.Errorf("parse failed at iteration %d: %w", i, err)
		}
		c := c14n.New(&countingWriter{n: &written}, comments, exclusive)
		if err := c.Write(ctx, doc); err != nil {
			return fmt.Errorf("canonicalization failed at iteration %d: %w", i, err)
		}
	}

	f, err := os.Create(profileFile)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := pprof.WriteHeapProfile(f); err != nil {
		return err
	}

	// Keep written reachable so the compiler can't prove the loop above dead.
	_ = written
	return nil
}

type countingWriter struct {
	n *int64
}

func (w *countingWriter) Write(p []byte) (int, error) {
	*w.n += int64(len(p))
	return len(p), nil
}

