package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/moodlist/moodlist/internal/export"
	"github.com/moodlist/moodlist/internal/library"
	"github.com/moodlist/moodlist/internal/shared"
	"github.com/moodlist/moodlist/internal/store"
)

// Opts contains configuration for catalog backups.
type Opts struct {
	OutputDir  string // Base output directory (default: moodlist_backup_{epoch})
	NumWorkers int    // Concurrent workers (default: 4)
}

// AccountResult records the outcome of exporting a single account.
type AccountResult struct {
	Username string `json:"username"`
	File     string `json:"file,omitempty"`
	Success  bool   `json:"success"`
	Error    string `json:"error,omitempty"`
}

// Result summarizes a whole-catalog backup.
type Result struct {
	TotalAccounts     int             `json:"total_accounts"`
	SuccessfulExports int             `json:"successful_exports"`
	FailedExports     int             `json:"failed_exports"`
	OutputDirectory   string          `json:"output_directory"`
	ManifestPath      string          `json:"manifest_path,omitempty"`
	Results           []AccountResult `json:"results"`
}

// exportJob pairs one username with its persisted record.
type exportJob struct {
	Username string
	Record   store.Record
}

// Engine runs catalog backups against a [store.Store].
type Engine struct {
	store  store.Store
	logger *log.Logger
}

// NewEngine creates an Engine. A nil logger falls back to the package default.
func NewEngine(s store.Store, logger *log.Logger) *Engine {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Engine{store: s, logger: logger}
}

// sendProgress sends a progress update through the channel without blocking.
// Uses select with default to ensure progress reporting never blocks execution.
func (e *Engine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}

// Run exports every account in the catalog concurrently.
//
// A worker pool writes one {username}_playlists.json per account. Malformed
// records are flagged in the result instead of aborting the run, and an
// export_manifest.json summarizing the outcome is written last.
func (e *Engine) Run(ctx context.Context, prog chan<- ProgressUpdate, opts Opts) (*Result, error) {
	if e.store == nil {
		return nil, fmt.Errorf("%w: store not initialized", shared.ErrServiceUnavailable)
	}

	if opts.OutputDir == "" {
		opts.OutputDir = fmt.Sprintf("moodlist_backup_%d", time.Now().Unix())
	}
	if opts.NumWorkers <= 0 {
		opts.NumWorkers = 4
	}
	if opts.NumWorkers > 8 {
		opts.NumWorkers = 8
	}

	catalog, err := e.store.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load account catalog: %w", err)
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	usernames := make([]string, 0, len(catalog))
	for username := range catalog {
		usernames = append(usernames, username)
	}
	sort.Strings(usernames)

	result := &Result{
		TotalAccounts:   len(usernames),
		OutputDirectory: opts.OutputDir,
		Results:         make([]AccountResult, 0, len(usernames)),
	}

	jobs := make(chan exportJob, len(usernames))
	results := make(chan AccountResult, len(usernames))

	var wg sync.WaitGroup
	for i := 0; i < opts.NumWorkers; i++ {
		wg.Add(1)
		go e.exportWorker(ctx, &wg, jobs, results, opts)
	}

	go func() {
		e.sendProgress(prog, scanCatalogUpdate(len(usernames)))
		for i, username := range usernames {
			select {
			case <-ctx.Done():
				close(jobs)
				return
			default:
			}

			jobs <- exportJob{Username: username, Record: catalog[username]}
			e.sendProgress(prog, exportingAccountUpdate(i+1, len(usernames), username))
		}
		close(jobs)
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	completed := 0
	for res := range results {
		completed++
		result.Results = append(result.Results, res)

		if res.Success {
			result.SuccessfulExports++
			e.sendProgress(prog, exportCompletedUpdate(completed, len(usernames), res.Username))
		} else {
			result.FailedExports++
			e.sendProgress(prog, exportFailedUpdate(completed, len(usernames), res.Username, res.Error))
		}
	}

	// Workers finish in arbitrary order; the manifest lists accounts sorted.
	sort.Slice(result.Results, func(i, j int) bool {
		return result.Results[i].Username < result.Results[j].Username
	})

	manifestPath := filepath.Join(opts.OutputDir, "export_manifest.json")
	if err := e.writeManifest(result, manifestPath); err != nil {
		return result, fmt.Errorf("backup completed but failed to write manifest: %w", err)
	}
	result.ManifestPath = manifestPath
	return result, nil
}

// exportWorker is a worker goroutine that exports accounts from the jobs channel.
func (e *Engine) exportWorker(
	ctx context.Context,
	wg *sync.WaitGroup,
	jobs <-chan exportJob,
	results chan<- AccountResult,
	opts Opts,
) {
	defer wg.Done()

	for job := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
		}

		results <- e.exportAccount(job, opts)
	}
}

// exportAccount validates a single record and writes its playlists as JSON.
func (e *Engine) exportAccount(j exportJob, opts Opts) AccountResult {
	result := AccountResult{Username: j.Username}

	if err := j.Record.Validate(); err != nil {
		e.logger.Warn("skipping malformed account record", "username", j.Username, "error", err)
		result.Error = fmt.Sprintf("malformed record: %v", err)
		return result
	}

	profile := library.NewProfile(library.ProfileOpts{
		Username: j.Username,
		Password: *j.Record.Password,
		Moods:    j.Record.Playlists,
		Favorite: j.Record.FavoriteMood,
	})

	path, err := export.Write(profile, export.FormatJSON, "", opts.OutputDir)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	result.File = path
	result.Success = true
	return result
}

func (e *Engine) writeManifest(result *Result, path string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to generate manifest: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}
