package model

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestParseSentiment(t *testing.T) {
	tests := []struct {
		in   string
		want Sentiment
	}{
		{"positive", SentimentPositive},
		{"negative", SentimentNegative},
		{"neutral", SentimentNeutral},
		{"pending", SentimentPending},
		{" Negative ", SentimentUnknown},
		{"NEUTRAL", SentimentUnknown},
		{"Positive", SentimentUnknown},
		{"", SentimentUnknown},
		{"mixed", SentimentUnknown},
	}
	for _, tt := range tests {
		if got := ParseSentiment(tt.in); got != tt.want {
			t.Errorf("ParseSentiment(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestItemDecodesServiceRecord(t *testing.T) {
	var items []Item
	body := `[{"id":5,"text":"Great product","sentiment":"positive","key_points":"Fast shipping"},
	          {"id":6,"text":"Meh","sentiment":null,"key_points":null},
	          {"id":7,"text":"Odd","sentiment":"ecstatic","key_points":"-"}]`
	if err := json.Unmarshal([]byte(body), &items); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if items[0].ID != PermanentID(5) || items[0].Sentiment != SentimentPositive || items[0].KeyPoints != "Fast shipping" {
		t.Fatalf("unexpected first item: %+v", items[0])
	}
	if items[1].Sentiment != SentimentUnknown {
		t.Fatalf("null sentiment should decode as unknown, got %q", items[1].Sentiment)
	}
	if items[2].Sentiment != SentimentUnknown {
		t.Fatalf("unrecognised sentiment should decode as unknown, got %q", items[2].Sentiment)
	}
}

func TestIDForms(t *testing.T) {
	temp := TemporaryID(3)
	perm := PermanentID(3)
	if temp == perm {
		t.Fatal("temporary and permanent ids with the same number must differ")
	}
	if temp.String() != "temp-3" || temp.Display() != "…" {
		t.Fatalf("temp id rendered as %q / %q", temp.String(), temp.Display())
	}
	if perm.String() != "3" || perm.Display() != "3" {
		t.Fatalf("permanent id rendered as %q / %q", perm.String(), perm.Display())
	}

	if _, err := ParseID("temp-3"); err == nil {
		t.Fatal("temporary ids must not be parsed from text")
	}
	got, err := ParseID("42")
	if err != nil || got != PermanentID(42) {
		t.Fatalf("ParseID(42) = %v, %v", got, err)
	}
	if _, err := ParseID("abc"); err == nil {
		t.Fatal("expected error for non-numeric id")
	}
	if !(ID{}).IsZero() || perm.IsZero() || temp.IsZero() {
		t.Fatal("IsZero should only hold for the unassigned id")
	}

	b, err := json.Marshal(Item{ID: temp, Text: "x", Sentiment: SentimentPending, Optimistic: true})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(b), `"id":"temp-3"`) {
		t.Fatalf("temporary id encoded as %s", b)
	}
}

func TestWireIDsAreNeverTemporary(t *testing.T) {
	tests := []struct {
		body    string
		want    ID
		wantErr bool
	}{
		{body: `{"id":7}`, want: PermanentID(7)},
		{body: `{"id":"8"}`, want: PermanentID(8)},
		{body: `{"id":"temp-1"}`, wantErr: true},
		{body: `{"id":"abc"}`, wantErr: true},
		{body: `{"id":true}`, wantErr: true},
	}
	for _, tt := range tests {
		var it Item
		err := json.Unmarshal([]byte(tt.body), &it)
		if tt.wantErr {
			if err == nil {
				t.Errorf("%s: decoded as %v, want error", tt.body, it.ID)
			}
			continue
		}
		if err != nil || it.ID != tt.want || it.ID.IsTemporary() {
			t.Errorf("%s: got %v, %v", tt.body, it.ID, err)
		}
	}
}

func TestExcerpt(t *testing.T) {
	it := Item{Text: "héllo wörld"}
	if got := it.Excerpt(5); got != "héllo" {
		t.Fatalf("Excerpt(5) = %q", got)
	}
	if got := it.Excerpt(60); got != it.Text {
		t.Fatalf("Excerpt(60) = %q", got)
	}
}
