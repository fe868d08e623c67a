// strategy.go
//
// Degraded-mode restore as an explicit ordered list of strategies with typed
// outcomes, instead of nested error handling: bulk endpoint, then per-item
// creates, then a local snapshot cache that keeps the data readable after a
// full backend outage. The runner warns at each degradation step.

package restore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goldtek/quotetrack/internal/project"
)

// Outcome classifies a strategy attempt.
type Outcome int

const (
	// OutcomeSuccess means the snapshot was applied (possibly partially;
	// see Result.Failed).
	OutcomeSuccess Outcome = iota
	// OutcomeSoftFail means this strategy is unusable but the next fallback
	// should be tried.
	OutcomeSoftFail
	// OutcomeHardFail means the payload itself was rejected; trying further
	// strategies would re-submit a bad request.
	OutcomeHardFail
)

// Result is one strategy attempt's report.
type Result struct {
	Outcome  Outcome
	Strategy string
	Message  string
	Restored int
	Failed   int
}

// Strategy is one rung of the fallback ladder.
type Strategy interface {
	Name() string
	Restore(ctx context.Context, items []project.Project) Result
}

// Run tries strategies in order until one succeeds or hard-fails, invoking
// warn before each degradation step. Returns the final result.
func Run(ctx context.Context, items []project.Project, strategies []Strategy, warn func(string)) Result {
	var last Result
	for i, s := range strategies {
		if i > 0 && warn != nil {
			warn(fmt.Sprintf("%s failed (%s); degrading to %s", last.Strategy, last.Message, s.Name()))
		}

		last = s.Restore(ctx, items)
		if last.Outcome != OutcomeSoftFail {
			return last
		}
	}
	return last
}

// Bulk posts the entire snapshot to the transactional restore endpoint.
type Bulk struct {
	Client *Client
}

func (b *Bulk) Name() string { return "bulk restore" }

func (b *Bulk) Restore(ctx context.Context, items []project.Project) Result {
	result, err := b.Client.BulkRestore(ctx, items)
	if err != nil {
		return classify(b.Name(), err)
	}
	return Result{
		Outcome:  OutcomeSuccess,
		Strategy: b.Name(),
		Message:  fmt.Sprintf("restored %d projects", result.Count),
		Restored: result.Count,
		Failed:   result.FailCount,
	}
}

// PerItem creates projects one at a time, accepting partial success and
// reporting a success/fail count.
type PerItem struct {
	Client *Client
}

func (p *PerItem) Name() string { return "per-item restore" }

func (p *PerItem) Restore(ctx context.Context, items []project.Project) Result {
	restored, failed := 0, 0
	for _, item := range items {
		if item.ID == "" {
			failed++
			continue
		}
		if err := p.Client.CreateProject(ctx, item); err != nil {
			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				// Network failure: backend is gone, degrade.
				return classify(p.Name(), err)
			}
			failed++
			continue
		}
		restored++
	}

	if restored == 0 && failed > 0 {
		return Result{
			Outcome:  OutcomeSoftFail,
			Strategy: p.Name(),
			Message:  fmt.Sprintf("all %d items failed", failed),
			Failed:   failed,
		}
	}

	return Result{
		Outcome:  OutcomeSuccess,
		Strategy: p.Name(),
		Message:  fmt.Sprintf("restored %d projects, %d failed", restored, failed),
		Restored: restored,
		Failed:   failed,
	}
}

// LocalCache writes the snapshot to a local file so the data stays readable
// (read-only) after a full backend outage.
type LocalCache struct {
	Path string
}

func (l *LocalCache) Name() string { return "local snapshot cache" }

func (l *LocalCache) Restore(ctx context.Context, items []project.Project) Result {
	raw, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return Result{Outcome: OutcomeHardFail, Strategy: l.Name(), Message: err.Error()}
	}

	if err := os.MkdirAll(filepath.Dir(l.Path), 0o755); err != nil {
		return Result{Outcome: OutcomeHardFail, Strategy: l.Name(), Message: err.Error()}
	}
	if err := os.WriteFile(l.Path, raw, 0o644); err != nil {
		return Result{Outcome: OutcomeHardFail, Strategy: l.Name(), Message: err.Error()}
	}

	return Result{
		Outcome:  OutcomeSuccess,
		Strategy: l.Name(),
		Message:  fmt.Sprintf("backend unreachable; cached %d projects read-only at %s", len(items), l.Path),
		Restored: len(items),
	}
}

// LoadCache reads a snapshot previously written by LocalCache.
func LoadCache(path string) ([]project.Project, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var items []project.Project
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// classify turns a client error into a soft or hard failure.
func classify(strategy string, err error) Result {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Permanent() {
		return Result{Outcome: OutcomeHardFail, Strategy: strategy, Message: err.Error()}
	}
	return Result{Outcome: OutcomeSoftFail, Strategy: strategy, Message: err.Error()}
}
