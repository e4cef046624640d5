// Package runtime handles the infrastructure-level tasks like loading embedded data
// and running the background reply pipeline.
package runtime

import (
	"bufio"
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"time"
	"werkstatt/domain"
	"werkstatt/errors"

	"gopkg.in/yaml.v3"
)

//go:embed censored/* seed/*
var assets embed.FS

// Assets exposes the embedded censored word lists and seed catalogs.
func Assets() fs.FS {
	return assets
}

// CensoredData carries the result of the loading process including metadata for logging.
type CensoredData struct {
	Words     []string
	Languages []string
}

// CensoredLoader is responsible for reading and parsing blacklisted words from embedded files.
type CensoredLoader struct {
	fs fs.FS
}

func NewCensoredLoader(f fs.FS) *CensoredLoader {
	return &CensoredLoader{fs: f}
}

// LoadAll scans the given directory, identifying .txt files as language dictionaries
// and parsing their contents into a unique list of words.
func (l *CensoredLoader) LoadAll(dir string) (*CensoredData, error) {
	entries, err := fs.ReadDir(l.fs, dir)
	if err != nil {
		return nil, err
	}

	var languages []string
	uniqueWords := make(map[string]struct{})

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}

		// "de.txt" -> "de"
		languages = append(languages, strings.TrimSuffix(entry.Name(), ".txt"))

		data, err := fs.ReadFile(l.fs, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}

		// ⚠️Don't use strings.Split, the scanner handles \n and \r\n alike
		scanner := bufio.NewScanner(bytes.NewReader(data))
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line != "" && !strings.HasPrefix(line, "#") {
				uniqueWords[line] = struct{}{}
			}
		}

		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}

	if len(uniqueWords) == 0 {
		return nil, errors.ErrEmptyWords
	}

	words := make([]string, 0, len(uniqueWords))
	for w := range uniqueWords {
		words = append(words, w)
	}

	return &CensoredData{
		Words:     words,
		Languages: languages,
	}, nil
}

// SeedMessage is a sample chat message whose timestamp is relative to the moment it is handed out.
type SeedMessage struct {
	Role       domain.Role `yaml:"role"`
	Content    string      `yaml:"content"`
	AgeSeconds int64       `yaml:"ageSeconds"`
	Read       bool        `yaml:"read"`
}

type SeedConversation struct {
	ExpertID string        `yaml:"expertId"`
	Messages []SeedMessage `yaml:"messages"`
}

// Catalog is the static content shipped with the binary.
type Catalog struct {
	Guides        []domain.Guide
	Experts       []domain.Expert
	Conversations []SeedConversation
	ExpertReplies []string
	Posts         []domain.Post
}

type guidesFile struct {
	Guides []domain.Guide `yaml:"guides"`
}

type expertsFile struct {
	Experts       []domain.Expert    `yaml:"experts"`
	Conversations []SeedConversation `yaml:"conversations"`
	Replies       []string           `yaml:"replies"`
}

type postsFile struct {
	Posts []domain.Post `yaml:"posts"`
}

// SeedLoader decodes the YAML catalogs found in a directory of the given filesystem.
type SeedLoader struct {
	fs fs.FS
}

func NewSeedLoader(f fs.FS) *SeedLoader {
	return &SeedLoader{fs: f}
}

// Load reads guides.yaml, experts.yaml and posts.yaml from dir.
func (l *SeedLoader) Load(dir string) (*Catalog, error) {
	var (
		guides  guidesFile
		experts expertsFile
		posts   postsFile
	)
	for name, out := range map[string]any{
		"guides.yaml":  &guides,
		"experts.yaml": &experts,
		"posts.yaml":   &posts,
	} {
		data, err := fs.ReadFile(l.fs, path.Join(dir, name))
		if err != nil {
			return nil, err
		}
		if err = yaml.Unmarshal(data, out); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", name, err)
		}
	}
	if len(experts.Replies) == 0 {
		return nil, fmt.Errorf("experts.yaml: no canned replies")
	}
	for i := range posts.Posts {
		posts.Posts[i].Timestamp = posts.Posts[i].Timestamp.UTC()
	}

	return &Catalog{
		Guides:        guides.Guides,
		Experts:       experts.Experts,
		Conversations: experts.Conversations,
		ExpertReplies: experts.Replies,
		Posts:         posts.Posts,
	}, nil
}

// InitialThreads builds a fresh thread record: the assistant thread with its welcome
// message and the sample conversations attached to their experts.
func (c *Catalog) InitialThreads(now time.Time) domain.ThreadsRecord {
	threads := domain.ThreadsRecord{domain.AIThreadID: domain.NewAIThread(now)}
	for _, conv := range c.Conversations {
		expert, ok := c.Expert(conv.ExpertID)
		if !ok {
			continue
		}
		thread := domain.ChatThread{ID: expert.ID, Expert: &expert, LastUpdated: now}
		for _, m := range conv.Messages {
			thread.Messages = append(thread.Messages, domain.ExpertMessage{
				Role:      m.Role,
				Content:   m.Content,
				Timestamp: now.Add(-time.Duration(m.AgeSeconds) * time.Second),
				Read:      m.Read,
			})
		}
		threads[expert.ID] = thread
	}
	return threads
}

func (c *Catalog) Expert(id string) (domain.Expert, bool) {
	for _, e := range c.Experts {
		if e.ID == id {
			return e, true
		}
	}
	return domain.Expert{}, false
}
