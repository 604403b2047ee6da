package hasher

import "testing"

func TestContentHash(t *testing.T) {
	a := ContentHash([]byte("pixels"), 0)
	if len(a) != 16 {
		t.Fatalf("full hash length: got %d", len(a))
	}
	if b := ContentHash([]byte("pixels"), 0); a != b {
		t.Errorf("not deterministic: %s vs %s", a, b)
	}
	if short := ContentHash([]byte("pixels"), 8); short != a[:8] {
		t.Errorf("truncated: got %s, want %s", short, a[:8])
	}
	if ContentHash([]byte("other"), 0) == a {
		t.Error("different inputs share a hash")
	}
	if got := ContentHash(nil, 99); len(got) != 16 {
		t.Errorf("oversized length should return full hash, got %q", got)
	}
}

func TestName(t *testing.T) {
	data := []byte("encoded")
	got := Name("banner.jpg", data, 8, "webp")
	want := "banner." + ContentHash(data, 8) + ".webp"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got := Name("noext", data, 4, "png"); got != "noext."+ContentHash(data, 4)+".png" {
		t.Errorf("no extension: got %q", got)
	}
}
