package driver

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vginneken/bufferinsert/bufferinsert"
	"github.com/vginneken/bufferinsert/internal/rlog"
	"github.com/vginneken/bufferinsert/materialize"
	"github.com/vginneken/bufferinsert/rcdot"
	"github.com/vginneken/bufferinsert/rcio"
	"github.com/vginneken/bufferinsert/rctree"
	"github.com/vginneken/bufferinsert/solution"
	"github.com/vginneken/bufferinsert/techconfig"
)

// Options configures a single Run.
type Options struct {
	// Step is the candidate spacing passed to bufferinsert.Run; zero or
	// negative falls back to bufferinsert.DefaultStep.
	Step int

	// DotPath, if non-empty, receives a Graphviz dump of the
	// post-materialization tree.
	DotPath string

	// Logger receives progress messages. A nil Logger is treated as
	// rlog.Null.
	Logger rlog.Logger

	// Report receives the textual summary block that would otherwise go
	// to standard output. A nil Report defaults to os.Stdout.
	Report io.Writer
}

// Run reads techPath and treePath, performs buffer insertion and
// materialization, writes the resulting tree to
// "<stem of treePath>_out.json" in the current working directory, and
// prints a summary of what was inserted. Any failure is returned
// unwrapped of its underlying error-kind distinction: every failure is
// treated identically at this process boundary, a diagnostic followed by
// a non-zero exit.
func Run(techPath, treePath string, opts Options) error {
	log := opts.Logger
	if log == nil {
		log = rlog.Null
	}
	report := opts.Report
	if report == nil {
		report = os.Stdout
	}

	cfg, err := readConfig(techPath)
	if err != nil {
		return err
	}

	store, treeIDs, err := readTree(treePath)
	if err != nil {
		return err
	}
	log.Info("loaded tree: %d nodes, %d edges", store.NodeCount(), store.EdgeCount())

	step := opts.Step
	if step <= 0 {
		step = bufferinsert.DefaultStep
	}

	start := time.Now()
	best, err := bufferinsert.Run(store, cfg, step)
	if err != nil {
		return fmt.Errorf("running buffer insertion: %w", err)
	}
	elapsed := time.Since(start)
	log.Debug("engine selected a %d-candidate chain", len(best))

	if err := materialize.Materialize(store, best, cfg.Buffer()); err != nil {
		return fmt.Errorf("materializing solution: %w", err)
	}

	outPath := outputPathFor(treePath)
	if err := writeTree(outPath, store, treeIDs); err != nil {
		return err
	}
	log.Info("wrote %s", outPath)

	if opts.DotPath != "" {
		if err := writeDot(opts.DotPath, store); err != nil {
			return err
		}
		log.Info("wrote %s", opts.DotPath)
	}

	writeReport(report, best, elapsed)
	return nil
}

func readConfig(path string) (techconfig.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return techconfig.Config{}, fmt.Errorf("opening technology file %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := rcio.ReadConfig(f)
	if err != nil {
		return techconfig.Config{}, fmt.Errorf("reading technology file %s: %w", path, err)
	}
	return cfg, nil
}

func readTree(path string) (*rctree.Store, rcio.Ids, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, rcio.Ids{}, fmt.Errorf("opening tree file %s: %w", path, err)
	}
	defer f.Close()

	store, ids, err := rcio.ReadTree(f)
	if err != nil {
		return nil, rcio.Ids{}, fmt.Errorf("reading tree file %s: %w", path, err)
	}
	return store, ids, nil
}

func writeTree(path string, store *rctree.Store, ids rcio.Ids) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file %s: %w", path, err)
	}
	defer f.Close()

	if err := rcio.WriteTree(f, store, ids); err != nil {
		return fmt.Errorf("writing output file %s: %w", path, err)
	}
	return nil
}

func writeDot(path string, store *rctree.Store) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating dot file %s: %w", path, err)
	}
	defer f.Close()

	if err := rcdot.Write(f, store); err != nil {
		return fmt.Errorf("writing dot file %s: %w", path, err)
	}
	return nil
}

func outputPathFor(treePath string) string {
	base := filepath.Base(treePath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return stem + "_out.json"
}

func writeReport(w io.Writer, best solution.Solution, elapsed time.Duration) {
	for _, c := range best {
		if !c.HasBuffer {
			continue
		}
		fmt.Fprintf(w, "p=(%d,%d) rat=%.4f capacity=%.4f edge_id=%d\n", c.P.X, c.P.Y, c.RAT, c.Capacity, c.EdgeID)
	}
	fmt.Fprintf(w, "root rat=%.4f\n", best.Frontier().RAT)
	fmt.Fprintf(w, "elapsed_ms=%.3f\n", float64(elapsed.Microseconds())/1000.0)
}
