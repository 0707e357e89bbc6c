package internal

import (
	"chat-bot/domain"
	"context"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/samber/lo"
)

//go:embed inspect.html
var templatesFS embed.FS

// KnowledgeInspector is the read-only view of the matching state shown by the inspector.
type KnowledgeInspector interface {
	Entries() []domain.KnowledgeEntry
	VocabularySize() int
	FindBestAnswer(text string, threshold float64) domain.Match
}

type InspectRow struct {
	Index    int
	Question string
	Tokens   string
	Answer   string
	Best     bool
}

type PageData struct {
	Query      string
	Threshold  float64
	Entries    int
	Vocabulary int
	Matched    bool
	BestIndex  int
	BestScore  float64
	Items      []InspectRow
}

// NewInspectHandler renders every entry with its normalized tokens.
// The "q" query parameter scores a question against the knowledge base.
func NewInspectHandler(inspector KnowledgeInspector, threshold float64) http.Handler {
	tmpl := template.Must(template.ParseFS(templatesFS, "inspect.html"))
	mux := http.NewServeMux()

	mux.HandleFunc("/inspect", func(w http.ResponseWriter, r *http.Request) {
		entries := inspector.Entries()
		data := PageData{
			Query:      strings.TrimSpace(r.URL.Query().Get("q")),
			Threshold:  threshold,
			Entries:    len(entries),
			Vocabulary: inspector.VocabularySize(),
			BestIndex:  -1,
		}
		if data.Query != "" {
			match := inspector.FindBestAnswer(data.Query, threshold)
			data.Matched, data.BestIndex, data.BestScore = match.OK, match.Index, match.Score
		}
		data.Items = lo.Map(entries, func(e domain.KnowledgeEntry, i int) InspectRow {
			return InspectRow{
				Index:    i,
				Question: e.Question,
				Tokens:   strings.Join(e.Tokens, " "),
				Answer:   e.Answer,
				Best:     i == data.BestIndex,
			}
		})

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = tmpl.Execute(w, data)
	})
	return mux
}

// StartInspectServer serves handler on addr until ctx is done.
func StartInspectServer(ctx context.Context, addr string, handler http.Handler, log *slog.Logger) error {
	server := &http.Server{Addr: addr, Handler: handler, ReadHeaderTimeout: 5 * time.Second}

	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting inspector", "url", "http://"+addr+"/inspect")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err, ok := <-errChan:
		if ok {
			return err
		}
		return nil
	}
}
