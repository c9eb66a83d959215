package insight

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nightcatdev/aiwrap/internal/model"
	"github.com/nightcatdev/aiwrap/internal/pipeline"
)

func TestNewClientRejectsEmptyEndpoint(t *testing.T) {
	if c := NewClient("", "key"); c != nil {
		t.Error("NewClient(\"\") != nil")
	}
	if c := NewClient("   ", ""); c != nil {
		t.Error("NewClient(blank) != nil")
	}
}

func TestAnalyze(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")

		var req analyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		if len(req.Titles) != 2 {
			t.Errorf("got %d titles, want 2", len(req.Titles))
		}

		_ = json.NewEncoder(w).Encode(Analysis{
			Headline: "A year of debugging",
			Titles:   []string{"Fix the login bug", "Write release notes"},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret")
	analysis, err := c.Analyze(context.Background(), []string{"untitled", "untitled 2"})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if gotAuth != "Bearer secret" {
		t.Errorf("Authorization = %q, want Bearer secret", gotAuth)
	}
	if analysis.Headline != "A year of debugging" {
		t.Errorf("Headline = %q", analysis.Headline)
	}
	if len(analysis.Titles) != 2 {
		t.Errorf("got %d refined titles, want 2", len(analysis.Titles))
	}
}

func TestAnalyzeServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	if _, err := c.Analyze(context.Background(), []string{"x"}); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("error = %v, want ErrUnavailable", err)
	}
}

func TestAnalyzeMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	if _, err := c.Analyze(context.Background(), []string{"x"}); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("error = %v, want ErrUnavailable", err)
	}
}

func TestMerge(t *testing.T) {
	snap := model.MetricsSnapshot{
		TotalConversations: 4,
		Topics: []model.TopicCount{
			{Name: pipeline.TopicExploration, Conversations: 4, Percentage: 100},
		},
	}
	analysis := Analysis{Titles: []string{
		"Debug the SQL migration",
		"Fix react error",
		"Write a poem for mom",
		"plan the team meeting",
	}}

	merged := Merge(snap, analysis)
	if len(merged.Topics) != 3 {
		t.Fatalf("len(Topics) = %d, want 3", len(merged.Topics))
	}
	if merged.Topics[0].Name != pipeline.TopicCoding || merged.Topics[0].Conversations != 2 {
		t.Errorf("Topics[0] = %+v, want coding x2", merged.Topics[0])
	}
	if merged.Topics[0].Percentage != 50 {
		t.Errorf("Percentage = %d, want 50", merged.Topics[0].Percentage)
	}
	if merged.TotalConversations != 4 {
		t.Errorf("TotalConversations changed to %d", merged.TotalConversations)
	}
}

func TestMergeEmptyAnalysisKeepsSnapshot(t *testing.T) {
	snap := model.MetricsSnapshot{
		TotalConversations: 2,
		Topics:             []model.TopicCount{{Name: pipeline.TopicCoding, Conversations: 2, Percentage: 100}},
	}
	merged := Merge(snap, Analysis{})
	if len(merged.Topics) != 1 || merged.Topics[0].Name != pipeline.TopicCoding {
		t.Errorf("Merge with empty analysis altered topics: %+v", merged.Topics)
	}
}
