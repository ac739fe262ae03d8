package cmd

import "testing"

func TestResolveLocale(t *testing.T) {
	tests := []struct {
		name      string
		requested string
		lcAll     string
		lang      string
		want      string
	}{
		{name: "explicit request", requested: "ko", lang: "en_US.UTF-8", want: "ko-KR"},
		{name: "lc_all before lang", lcAll: "ko_KR.UTF-8", lang: "en_US.UTF-8", want: "ko-KR"},
		{name: "lang", lang: "ko_KR.UTF-8", want: "ko-KR"},
		{name: "posix default", lang: "C", want: "en-US"},
		{name: "unsupported", requested: "fr-FR", want: "en-US"},
		{name: "nothing set", want: "en-US"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LC_ALL", tt.lcAll)
			t.Setenv("LC_MESSAGES", "")
			t.Setenv("LANG", tt.lang)

			if got := ResolveLocale(tt.requested); got != tt.want {
				t.Fatalf("ResolveLocale(%q) = %q, want %q", tt.requested, got, tt.want)
			}
		})
	}
}
