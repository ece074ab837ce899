package token

import (
	"reflect"
	"testing"
)

func TestWords(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{
			name: "basic",
			body: "Hello, World!",
			want: []string{"hello", "world"},
		},
		{
			name: "apostrophes kept inside words",
			body: "don't worry, it’s fine",
			want: []string{"don't", "worry", "it's", "fine"},
		},
		{
			name: "digits and unicode letters",
			body: "café at 9pm",
			want: []string{"café", "at", "9pm"},
		},
		{
			name: "emoji and punctuation stripped",
			body: "nice!! \U0001f602\U0001f602",
			want: []string{"nice"},
		},
		{
			name: "empty",
			body: "...",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Words(tt.body)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Words(%q) = %v, want %v", tt.body, got, tt.want)
			}
		})
	}
}

func TestWithoutStopWords(t *testing.T) {
	got := WithoutStopWords([]string{"the", "quick", "brown", "fox", "is", "here"})
	want := []string{"quick", "brown", "fox"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("WithoutStopWords = %v, want %v", got, want)
	}
}

func TestEmojis(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{
			name: "single emoji",
			body: "hello \U0001f600",
			want: []string{"\U0001f600"},
		},
		{
			name: "zwj family stays one token",
			body: "\U0001f468‍\U0001f469‍\U0001f467",
			want: []string{"\U0001f468‍\U0001f469‍\U0001f467"},
		},
		{
			name: "skin tone modifier stays attached",
			body: "\U0001f44d\U0001f3fd ok",
			want: []string{"\U0001f44d\U0001f3fd"},
		},
		{
			name: "flag pair is one token",
			body: "\U0001f1fa\U0001f1f8",
			want: []string{"\U0001f1fa\U0001f1f8"},
		},
		{
			name: "heart with variation selector",
			body: "love ❤️",
			want: []string{"❤️"},
		},
		{
			name: "plain text has none",
			body: "no emoji here",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Emojis(tt.body)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Emojis(%q) = %v, want %v", tt.body, got, tt.want)
			}
		})
	}
}
