package audio

import (
	"bytes"
	"testing"
)

func TestBellPlayerRingsForAttentionCues(t *testing.T) {
	var buf bytes.Buffer
	p := NewBellPlayer(&buf, false)

	p.Play(CueClick)
	p.Play(CueCorrect)
	if buf.Len() != 0 {
		t.Errorf("expected silent click/correct, got %q", buf.String())
	}

	p.Play(CueBuy)
	p.Play(CueLoss)
	if buf.String() != "\a\a" {
		t.Errorf("expected two bells, got %q", buf.String())
	}
}

func TestBellPlayerMute(t *testing.T) {
	var buf bytes.Buffer
	p := NewBellPlayer(&buf, false)

	if !p.ToggleMute() {
		t.Fatal("expected muted after first toggle")
	}
	p.Play(CueWin)
	if buf.Len() != 0 {
		t.Errorf("expected no output while muted, got %q", buf.String())
	}

	if p.ToggleMute() {
		t.Fatal("expected unmuted after second toggle")
	}
	if p.Muted() {
		t.Error("expected Muted() false")
	}
	p.Play(CueWin)
	if buf.String() != "\a" {
		t.Errorf("expected one bell, got %q", buf.String())
	}
}

func TestToneRecipes(t *testing.T) {
	for _, c := range []Cue{CueClick, CueBuy, CueSell, CueWin, CueLoss, CueCorrect, CueWrong} {
		if len(Tones(c)) == 0 {
			t.Errorf("expected tones for %s", c)
		}
	}
	if got := Length(CueWin); got < 0.69 || got > 0.71 {
		t.Errorf("expected win fanfare of 0.7s, got %v", got)
	}
}
