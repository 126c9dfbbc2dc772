// Package batch drives the pipeline over a directory of source
// documents. Documents are processed sequentially in filename-numeric
// order; a failure in one document never aborts the batch.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/gaurav-prasanna/recipepipe/core"
	"github.com/gaurav-prasanna/recipepipe/core/assemble"
	"github.com/gaurav-prasanna/recipepipe/core/steps"
)

// maxLoggedRejections bounds per-document rejection logging; the full
// histogram still lands in the summary.
const maxLoggedRejections = 10

// Summary is the operator-facing result of one batch run. It is a side
// channel only; nothing downstream consumes it.
type Summary struct {
	Accepted int
	Rejected int
	Reasons  map[string]int
}

// Driver runs decode → extract → assemble per document.
type Driver struct {
	decoder   core.Decoder
	assembler *assemble.Assembler
	logger    *zap.Logger
}

// New creates a Driver.
func New(decoder core.Decoder, assembler *assemble.Assembler, logger *zap.Logger) *Driver {
	return &Driver{decoder: decoder, assembler: assembler, logger: logger}
}

// Run processes every HTML document under dir. An unreadable directory
// is fatal; everything below that is isolated per document.
func (d *Driver) Run(dir string) ([]core.Recipe, *Summary, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("reading source directory %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext == ".html" || ext == ".htm" {
			files = append(files, e.Name())
		}
	}
	if len(files) == 0 {
		return nil, nil, fmt.Errorf("no html files found in %s", dir)
	}
	sort.SliceStable(files, func(i, j int) bool {
		return numericKey(files[i]) < numericKey(files[j])
	})

	d.logger.Info("batch started", zap.String("dir", dir), zap.Int("files", len(files)))

	summary := &Summary{Reasons: map[string]int{}}
	var recipes []core.Recipe
	for _, name := range files {
		raw, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			d.reject(summary, name, "读取失败")
			continue
		}

		rec, reason := d.assembler.Assemble(d.decoder.Decode(raw))
		switch {
		case rec == nil:
			d.reject(summary, name, reason)
			continue
		case rec.Name == "":
			d.reject(summary, name, "缺少名称")
			continue
		case rec.Name == core.UnknownName:
			d.reject(summary, name, "无法提取名称")
			continue
		}

		// The assembler already guarantees this; belt and suspenders.
		if len(rec.Steps) == 0 {
			rec.Steps = []core.Step{steps.Default(rec.Image)}
		}

		recipes = append(recipes, *rec)
		summary.Accepted++
	}

	d.logger.Info("batch finished",
		zap.Int("accepted", summary.Accepted),
		zap.Int("rejected", summary.Rejected),
		zap.Any("reasons", summary.Reasons))
	return recipes, summary, nil
}

func (d *Driver) reject(s *Summary, file, reason string) {
	s.Rejected++
	s.Reasons[reason]++
	if s.Rejected <= maxLoggedRejections {
		d.logger.Warn("document rejected", zap.String("file", file), zap.String("reason", reason))
	}
}

// numericKey orders files by the number embedded in the filename
// (1.html, 2.html, ... 10.html); non-numeric names sort as 0.
func numericKey(name string) int {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	n, err := strconv.Atoi(base)
	if err != nil {
		return 0
	}
	return n
}
