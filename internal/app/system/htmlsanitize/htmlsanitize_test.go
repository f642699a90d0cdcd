package htmlsanitize_test

import (
	"strings"
	"testing"

	"github.com/dalemusser/institutionhub/internal/app/system/htmlsanitize"
)

func TestPlainText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain", "I.E. Valle Grande", "I.E. Valle Grande"},
		{"trims", "  Sala 1  ", "Sala 1"},
		{"ampersand", "Ciencias & Letras", "Ciencias & Letras"},
		{"bold tag", "<b>Sala</b> Roja", "Sala Roja"},
		{"script", "Sala<script>alert('x')</script>", "Sala"},
		{"attribute handler", `<span onclick="evil()">Azul</span>`, "Azul"},
		{"escaped script", "Sala &lt;script&gt;alert(1)&lt;/script&gt;", "Sala"},
		{"double escaped tag", "&amp;lt;b&amp;gt;Sala&amp;lt;/b&amp;gt; Roja", "Sala Roja"},
		{"escaped ampersand", "Ciencias &amp; Letras", "Ciencias & Letras"},
		{"bare less-than", "edad < 5", "edad < 5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := htmlsanitize.PlainText(tt.input); got != tt.want {
				t.Errorf("PlainText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPlainText_DeepEscapingLeavesNoTags(t *testing.T) {
	in := "<b>x</b>"
	for range 12 {
		in = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;").Replace(in)
	}
	got := htmlsanitize.PlainText(in)
	if strings.ContainsAny(got, "<>") {
		t.Errorf("PlainText left markup: %q", got)
	}
}
