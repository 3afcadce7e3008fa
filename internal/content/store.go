// Package content loads the site's markdown posts from disk, renders them
// to HTML, and caches the results.
package content

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"
)

// Post is a rendered site post.
type Post struct {
	Slug        string
	Title       string
	Date        time.Time
	Summary     string
	Interactive bool // Interactive posts embed the harmonic viewer.
	HTML        template.HTML
}

// frontMatter is the YAML header of a post file.
type frontMatter struct {
	Title       string `yaml:"title"`
	Date        string `yaml:"date"`
	Summary     string `yaml:"summary"`
	Interactive bool   `yaml:"interactive"`
}

// Store loads posts from a directory of markdown files named <slug>.md.
type Store struct {
	dataDir string
	md      goldmark.Markdown
	cache   map[string]*Post // Cache rendered posts.
	mu      sync.RWMutex     // Protect cache.
}

// NewStore creates a new post store rooted at dataDir.
func NewStore(dataDir string) *Store {
	return &Store{
		dataDir: dataDir,
		md:      goldmark.New(goldmark.WithExtensions(extension.GFM)),
		cache:   make(map[string]*Post),
	}
}

// Get returns the post with the given slug, loading and rendering it on
// first access.
func (s *Store) Get(slug string) (*Post, error) {
	if !validSlug(slug) {
		return nil, fmt.Errorf("invalid slug %q", slug)
	}

	s.mu.RLock()
	if post, ok := s.cache[slug]; ok {
		s.mu.RUnlock()
		return post, nil
	}
	s.mu.RUnlock()

	raw, err := os.ReadFile(filepath.Join(s.dataDir, slug+".md"))
	if err != nil {
		return nil, fmt.Errorf("failed to read post %q: %w", slug, err)
	}

	post, err := s.render(slug, raw)
	if err != nil {
		return nil, fmt.Errorf("failed to render post %q: %w", slug, err)
	}

	s.mu.Lock()
	s.cache[slug] = post
	s.mu.Unlock()

	return post, nil
}

// List returns all posts sorted newest first.
func (s *Store) List() ([]*Post, error) {
	var slugs []string
	err := filepath.WalkDir(s.dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}
		slugs = append(slugs, strings.TrimSuffix(d.Name(), ".md"))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan posts in %s: %w", s.dataDir, err)
	}

	posts := make([]*Post, 0, len(slugs))
	for _, slug := range slugs {
		post, err := s.Get(slug)
		if err != nil {
			// Skip unreadable posts rather than failing the whole listing.
			continue
		}
		posts = append(posts, post)
	}

	sort.Slice(posts, func(i, j int) bool {
		return posts[i].Date.After(posts[j].Date)
	})

	return posts, nil
}

// render splits the front matter from the markdown body and converts the
// body to HTML.
func (s *Store) render(slug string, raw []byte) (*Post, error) {
	meta, body := splitFrontMatter(raw)

	var fm frontMatter
	if len(meta) > 0 {
		if err := yaml.Unmarshal(meta, &fm); err != nil {
			return nil, fmt.Errorf("invalid front matter: %w", err)
		}
	}
	if fm.Title == "" {
		fm.Title = slug
	}

	var date time.Time
	if fm.Date != "" {
		parsed, err := time.Parse("2006-01-02", fm.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", fm.Date, err)
		}
		date = parsed
	}

	var buf bytes.Buffer
	if err := s.md.Convert(body, &buf); err != nil {
		return nil, fmt.Errorf("markdown conversion failed: %w", err)
	}

	return &Post{
		Slug:        slug,
		Title:       fm.Title,
		Date:        date,
		Summary:     fm.Summary,
		Interactive: fm.Interactive,
		HTML:        template.HTML(buf.String()),
	}, nil
}

// splitFrontMatter separates a leading "---" delimited YAML block from the
// markdown body. Files without front matter return the whole input as body.
func splitFrontMatter(raw []byte) (meta, body []byte) {
	const delim = "---\n"

	if !bytes.HasPrefix(raw, []byte(delim)) {
		return nil, raw
	}

	rest := raw[len(delim):]
	end := bytes.Index(rest, []byte("\n---"))
	if end < 0 {
		return nil, raw
	}

	meta = rest[:end]
	body = rest[end+len("\n---"):]
	body = bytes.TrimPrefix(body, []byte("\n"))
	return meta, body
}

// validSlug accepts lowercase alphanumerics and hyphens only, which keeps
// slugs safe to join onto the data directory.
func validSlug(slug string) bool {
	if slug == "" {
		return false
	}
	for _, r := range slug {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '-':
		default:
			return false
		}
	}
	return true
}
