// Package runtime builds the immutable matching state at startup and loads its embedded resources.
package runtime

import (
	"bufio"
	"bytes"
	"chat-bot/errors"
	"embed"
	"io/fs"
	"strings"

	"github.com/samber/lo"
)

//go:embed stopwords/*
var stopwordsFolder embed.FS

// StopwordData carries the loaded words and the languages they came from.
type StopwordData struct {
	Words     []string
	Languages []string
}

// StopwordLoader reads stopword lists, one word per line, from a filesystem.
type StopwordLoader struct {
	fs fs.FS
}

func NewStopwordLoader(f fs.FS) *StopwordLoader {
	return &StopwordLoader{fs: f}
}

// LoadAll reads every .txt file of path. The file name is the language ("en.txt" -> "en").
// Words are lowercased and deduplicated, first occurrence kept.
func (l *StopwordLoader) LoadAll(path string) (*StopwordData, error) {
	entries, err := fs.ReadDir(l.fs, path)
	if err != nil {
		return nil, err
	}

	var languages, words []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		languages = append(languages, strings.TrimSuffix(entry.Name(), ".txt"))

		data, err := fs.ReadFile(l.fs, path+"/"+entry.Name())
		if err != nil {
			return nil, err
		}

		// Scanner handles both \n and \r\n
		scanner := bufio.NewScanner(bytes.NewReader(data))
		for scanner.Scan() {
			line := strings.ToLower(strings.TrimSpace(scanner.Text()))
			if line != "" && !strings.HasPrefix(line, "#") {
				words = append(words, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}

	if len(words) == 0 {
		return nil, errors.ErrEmptyWords
	}
	return &StopwordData{Words: lo.Uniq(words), Languages: languages}, nil
}
