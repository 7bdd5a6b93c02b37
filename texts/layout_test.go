package texts

import (
	"slices"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSplit(t *testing.T) {
	first, second, removed, ok := Split("Hello there friend")
	if !ok {
		t.Fatal()
	}
	if first != "Hello there" || second != "friend" || removed != " " {
		t.Fatalf("got %q %q", first, second)
	}

	// ties prefer the earlier whitespace
	// 18 runes, mid 9: spaces at 7 and 10 are 2 and 1 away
	first, second, _, _ = Split("aaaaaaa bb ccccccc")
	if first != "aaaaaaa bb" || second != "ccccccc" {
		t.Fatalf("got %q %q", first, second)
	}
	// spaces at 8 and 10 are both 1 away from 9
	first, second, _, _ = Split("aaaaaaaa b aaaaaaa")
	if first != "aaaaaaaa" || second != "b aaaaaaa" {
		t.Fatalf("got %q %q", first, second)
	}

	// no whitespace
	first, second, removed, ok = Split("Supercalifragilistic")
	if !ok || removed != "" {
		t.Fatal()
	}
	if first != "Supercali" || second != "fragilistic" {
		t.Fatalf("got %q %q", first, second)
	}
}

func TestSplitThreshold(t *testing.T) {
	short := strings.Repeat("a b ", 4)[:SplitThreshold-1]
	if _, _, _, ok := Split(short); ok {
		t.Fatalf("split %q", short)
	}
	at := strings.Repeat("ab ", 6)[:SplitThreshold]
	if _, _, _, ok := Split(at); !ok {
		t.Fatalf("did not split %q", at)
	}
}

func TestSplitReconstructs(t *testing.T) {
	for _, text := range []string{
		"Hello there friend",
		"Cats land on their feet; so will you",
		"You're not a superhero",
		"Ünïcödé wörds ärë fïnë töö",
		"nowhitespaceatallinthisone",
		"Give it time",
	} {
		first, second, removed, ok := Split(text)
		if !ok {
			if utf8.RuneCountInString(text) >= SplitThreshold {
				t.Fatalf("did not split %q", text)
			}
			continue
		}
		if first+removed+second != text {
			t.Fatalf("%q: got %q + %q + %q", text, first, removed, second)
		}
	}
}

func TestLines(t *testing.T) {
	if lines := Lines("Give it time", false); !slices.Equal(lines, []string{"Give it time"}) {
		t.Fatalf("got %v", lines)
	}
	if lines := Lines("Hello there friend", true); !slices.Equal(lines, []string{"Hello there", "friend"}) {
		t.Fatalf("got %v", lines)
	}
	if lines := Lines("Hello there friend", false); !slices.Equal(lines, []string{"Hello there..."}) {
		t.Fatalf("got %v", lines)
	}
}

func TestIsLong(t *testing.T) {
	if IsLong("Hello there friend") {
		t.Fatal()
	}
	if IsLong(strings.Repeat("x", LongThreshold)) {
		t.Fatal()
	}
	if !IsLong("Cats land on their feet; so will you") {
		t.Fatal()
	}
}
