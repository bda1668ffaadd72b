package out

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"studyhub/internal/modules/motivation/domain"
	"studyhub/internal/platform/api"
)

type staticToken struct{}

func (staticToken) Token(ctx context.Context) (string, error) { return "tok", nil }
func (staticToken) ForceLogout(ctx context.Context) error     { return nil }

type seqIDs struct{}

func (seqIDs) New() string { return "id" }

func newClient(baseURL string) *api.Client {
	return api.New(baseURL, time.Second, staticToken{}, seqIDs{}, zerolog.Nop())
}

func TestEnhancedSendsUserInputAndDecodesContentKey(t *testing.T) {
	t.Parallel()

	var gotBody map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/enhanced-motivation" {
			t.Errorf("path: %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.Write([]byte(`{"motivation": {
			"quote": {"content": "Stay curious.", "author": "Anon"},
			"tip": {"tip": "Short sessions beat marathons."},
			"encouragement": "Nice streak!",
			"mood_analysis": {"detected_mood": "tired", "energy_level": "low", "confidence_level": "high", "suggestions": ["sleep"]}
		}}`))
	}))
	defer server.Close()

	client := NewAPIMotivationClient(newClient(server.URL))
	motivation, err := client.Enhanced(context.Background(), domain.Request{Mood: "tired"})
	if err != nil {
		t.Fatalf("enhanced: %v", err)
	}
	if gotBody["user_input"] != "tired" {
		t.Fatalf("request body: %v", gotBody)
	}
	if motivation.Quote.Text != "Stay curious." || motivation.Quote.Author != "Anon" {
		t.Fatalf("quote: %+v", motivation.Quote)
	}
	if motivation.Tip.Text != "Short sessions beat marathons." || motivation.Encouragement != "Nice streak!" {
		t.Fatalf("tip or encouragement: %+v", motivation)
	}
	if motivation.Analysis == nil || motivation.Analysis.DetectedMood != "tired" {
		t.Fatalf("analysis: %+v", motivation.Analysis)
	}
}

func TestEnhancedDecodesLegacyQuoteKey(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"motivation": {"quote": {"quote": "Old shape.", "author": "Legacy"}}}`))
	}))
	defer server.Close()

	client := NewAPIMotivationClient(newClient(server.URL))
	motivation, err := client.Enhanced(context.Background(), domain.Request{Mood: "fine"})
	if err != nil {
		t.Fatalf("enhanced: %v", err)
	}
	if motivation.Quote.Text != "Old shape." || motivation.Quote.Author != "Legacy" {
		t.Fatalf("legacy quote shape not decoded: %+v", motivation.Quote)
	}
	if motivation.Analysis != nil {
		t.Fatalf("analysis should be nil when omitted")
	}
}
