package techstack

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/errgroup"
)

// maxSniffSize bounds how much of a manifest is read for content rules.
const maxSniffSize = 1 << 20

// contentReaders bounds concurrent open files during content sniffing.
const contentReaders = 8

type set map[string]struct{}

func (s set) add(name string) {
	s[name] = struct{}{}
}

func (s set) sorted() []string {
	out := make([]string, 0, len(s))
	for name := range s {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Stack is the inferred technology profile of a repository: seven disjoint
// sets of lowercase identifiers.
type Stack struct {
	categories map[Category]set
}

// NewStack returns an empty profile with every category present.
func NewStack() *Stack {
	st := &Stack{categories: make(map[Category]set, len(Categories))}
	for _, cat := range Categories {
		st.categories[cat] = make(set)
	}
	return st
}

func (st *Stack) add(cat Category, name string) {
	st.categories[cat].add(strings.ToLower(name))
}

// Has reports whether the named technology was detected in the category.
func (st *Stack) Has(cat Category, name string) bool {
	_, ok := st.categories[cat][strings.ToLower(name)]
	return ok
}

// Technologies returns the sorted technologies detected in one category.
func (st *Stack) Technologies(cat Category) []string {
	return st.categories[cat].sorted()
}

// All returns every detected technology across categories, sorted and
// deduplicated.
func (st *Stack) All() []string {
	merged := make(set)
	for _, s := range st.categories {
		for name := range s {
			merged.add(name)
		}
	}
	return merged.sorted()
}

// ToMap serializes the profile as a map of category name to sorted,
// deduplicated technology list. Every category key is always present.
func (st *Stack) ToMap() map[string][]string {
	out := make(map[string][]string, len(Categories))
	for _, cat := range Categories {
		out[string(cat)] = append([]string{}, st.categories[cat].sorted()...)
	}
	return out
}

// Detector resolves a declarative rule table against repository files.
// The table is read-only after construction, so one Detector may serve
// concurrent callers.
type Detector struct {
	rules  []Rule
	logger hclog.Logger
}

// New creates a Detector over the base table plus any caller-supplied rules.
func New(logger hclog.Logger, extra ...Rule) *Detector {
	rules := BaseRules()
	rules = append(rules, extra...)
	return &Detector{rules: rules, logger: logger}
}

// matchGlob reports whether the slash-separated relative path matches the
// pattern, either as a full path or by base name.
func matchGlob(pattern, relPath string) bool {
	if ok, _ := path.Match(pattern, relPath); ok {
		return true
	}
	ok, _ := path.Match(pattern, path.Base(relPath))
	return ok
}

// DetectFromFiles infers the stack from an already-enumerated path list, for
// callers that hold a file listing (e.g. a pull-request diff) rather than a
// checkout. Only glob-only rules can fire: content rules need file bodies.
// The result is independent of input order.
func (d *Detector) DetectFromFiles(paths []string) *Stack {
	stack := NewStack()
	for _, raw := range paths {
		relPath := filepath.ToSlash(raw)
		for _, rule := range d.rules {
			if len(rule.Contains) > 0 {
				continue
			}
			for _, glob := range rule.Globs {
				if matchGlob(glob, relPath) {
					stack.add(rule.Category, rule.Name)
					break
				}
			}
		}
	}
	return stack
}

// Detect walks the repository rooted at root and resolves every rule,
// including content rules that sniff manifest bodies for substrings. A
// missing root fails the call; individual unreadable or binary files are
// skipped. ctx bounds only the filesystem traversal, not the in-memory
// matching.
func (d *Detector) Detect(ctx context.Context, root string) (*Stack, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to access repository root %q: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("repository root %q is not a directory", root)
	}

	var relPaths []string
	err = filepath.WalkDir(root, func(p string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// unreadable subtree, keep scanning the rest
			d.logger.Debug("skipping unreadable path", "path", p, "error", walkErr)
			if entry != nil && entry.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if entry.IsDir() {
			if entry.Name() == ".git" {
				return fs.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return nil
		}
		relPaths = append(relPaths, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("repository walk aborted: %w", err)
	}

	stack := d.DetectFromFiles(relPaths)
	if err := d.applyContentRules(ctx, root, relPaths, stack); err != nil {
		return nil, err
	}
	return stack, nil
}

// applyContentRules evaluates rules that require substring sniffing inside
// matched files. Reads run on a bounded worker group; results accumulate into
// the stack under a lock since set insertion order is irrelevant.
func (d *Detector) applyContentRules(ctx context.Context, root string, relPaths []string, stack *Stack) error {
	type sniffTarget struct {
		relPath string
		rules   []Rule
	}

	var targets []sniffTarget
	for _, relPath := range relPaths {
		var matched []Rule
		for _, rule := range d.rules {
			if len(rule.Contains) == 0 {
				continue
			}
			for _, glob := range rule.Globs {
				if matchGlob(glob, relPath) {
					matched = append(matched, rule)
					break
				}
			}
		}
		if len(matched) > 0 {
			targets = append(targets, sniffTarget{relPath: relPath, rules: matched})
		}
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(contentReaders)

	for _, target := range targets {
		target := target
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			content, ok := d.readTextFile(filepath.Join(root, filepath.FromSlash(target.relPath)))
			if !ok {
				return nil
			}
			lower := strings.ToLower(content)
			for _, rule := range target.rules {
				for _, want := range rule.Contains {
					if strings.Contains(lower, strings.ToLower(want)) {
						mu.Lock()
						stack.add(rule.Category, rule.Name)
						mu.Unlock()
						break
					}
				}
			}
			return nil
		})
	}

	return g.Wait()
}

// readTextFile reads up to maxSniffSize bytes and rejects binary content.
// Errors are reported as "skip", never as failures: one unreadable manifest
// must not abort a repository scan.
func (d *Detector) readTextFile(path string) (string, bool) {
	f, err := os.Open(path)
	if err != nil {
		d.logger.Debug("skipping unreadable file", "path", path, "error", err)
		return "", false
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxSniffSize))
	if err != nil {
		d.logger.Debug("skipping unreadable file", "path", path, "error", err)
		return "", false
	}
	if bytes.ContainsRune(data, 0) {
		d.logger.Debug("skipping binary file", "path", path)
		return "", false
	}
	return string(data), true
}
