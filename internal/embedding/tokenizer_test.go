package embedding

import "testing"

func TestTokens_StripsPunctuation(t *testing.T) {
	got := Tokens("Best pasta is at Trattoria Roma.")
	want := []string{"best", "pasta", "is", "at", "trattoria", "roma"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWordTokenizer_Shape(t *testing.T) {
	tok := &WordTokenizer{}
	ids, mask, types := tok.Tokenize("a short sentence", 16)
	if len(ids) != 16 || len(mask) != 16 || len(types) != 16 {
		t.Fatalf("expected padded length 16, got %d/%d/%d", len(ids), len(mask), len(types))
	}
	if ids[0] != 101 {
		t.Errorf("expected [CLS] at position 0, got %d", ids[0])
	}
	if mask[0] != 1 || mask[1] != 1 {
		t.Error("expected attention on CLS and first token")
	}
	if mask[15] != 0 {
		t.Error("expected padding positions to be masked out")
	}
}

func TestHashToken_Deterministic(t *testing.T) {
	if HashToken("paris") != HashToken("paris") {
		t.Error("hash not deterministic")
	}
	if HashToken("paris") == HashToken("rome") {
		t.Error("expected different hashes for different tokens")
	}
}
