package scanner

import (
	"context"
	"errors"
	"os"
	"sort"
	"sync"

	"github.com/arjunmahishi/tshl/highlight"
	"github.com/arjunmahishi/tshl/language"
	"github.com/arjunmahishi/tshl/types"
)

var errNoLanguage = errors.New("no language for file")

// Stats summarises the highlighted files of one language.
type Stats struct {
	Language string         `json:"language"`
	Files    int            `json:"files"`
	Skipped  int            `json:"skipped,omitempty"`
	Spans    int            `json:"spans"`
	Captures map[string]int `json:"captures"`
}

type fileResult struct {
	language string
	captures map[string]int
	spans    int
	err      error
}

// Run highlights files on a pool of workers and returns per-language stats
// sorted by language name. Files that cannot be read or parsed are counted
// as skipped.
func Run(ctx context.Context, registry *language.Registry, files []types.FileJob, jobs int) []Stats {
	results := make(chan fileResult, 128)
	jobQueue := make(chan types.FileJob, 128)
	var wg sync.WaitGroup

	workerCount := jobs
	if workerCount < 1 {
		workerCount = 1
	}
	if workerCount > len(files) {
		workerCount = len(files)
	}

	worker := func() {
		defer wg.Done()
		for job := range jobQueue {
			results <- highlightFile(ctx, registry, job)
		}
	}

	wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go worker()
	}

	go func() {
		defer close(jobQueue)
		for _, f := range files {
			select {
			case jobQueue <- f:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	byLang := make(map[string]*Stats)
	for r := range results {
		st, ok := byLang[r.language]
		if !ok {
			st = &Stats{Language: r.language, Captures: make(map[string]int)}
			byLang[r.language] = st
		}
		if r.err != nil {
			st.Skipped++
			continue
		}
		st.Files++
		st.Spans += r.spans
		for name, n := range r.captures {
			st.Captures[name] += n
		}
	}

	out := make([]Stats, 0, len(byLang))
	for _, st := range byLang {
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Language < out[j].Language })
	return out
}

func highlightFile(ctx context.Context, registry *language.Registry, job types.FileJob) fileResult {
	res := fileResult{language: job.Language}

	lang := registry.Get(job.Language)
	if lang == nil {
		lang = registry.Select(job.AbsPath)
	}
	if lang == nil {
		res.err = errNoLanguage
		return res
	}
	res.language = lang.Name()

	source, err := os.ReadFile(job.AbsPath)
	if err != nil {
		res.err = err
		return res
	}
	spans, err := highlight.Spans(ctx, lang, source)
	if err != nil {
		res.err = err
		return res
	}

	res.spans = len(spans)
	res.captures = make(map[string]int)
	for _, sp := range spans {
		res.captures[sp.Capture]++
	}
	return res
}
