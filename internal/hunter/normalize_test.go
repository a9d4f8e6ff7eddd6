package hunter_test

import (
	"testing"

	"leadhunter/internal/hunter"
)

func TestNormalizeDomain(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"acme.com.br", "acme.com.br"},
		{"Acme.COM.br", "acme.com.br"},
		{"  acme.com.br  ", "acme.com.br"},
		{"http://acme.com.br", "acme.com.br"},
		{"https://www.acme.com.br", "acme.com.br"},
		{"https://acme.com.br/contato?x=1#topo", "acme.com.br"},
		{"acme.com.br:8080", "acme.com.br"},
		{"www.acme.com.br", "acme.com.br"},
		{"", ""},
		{"///", ""},
		{"https://", ""},
	}

	for _, tc := range cases {
		if got := hunter.NormalizeDomain(tc.in); got != tc.want {
			t.Errorf("NormalizeDomain(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNewScanTarget(t *testing.T) {
	target := hunter.NewScanTarget("https://www.Padaria-Estrela.com.br/sobre")
	if target.Domain != "padaria-estrela.com.br" {
		t.Fatalf("unexpected domain %q", target.Domain)
	}
	if target.FallbackCompanyName != "padaria-estrela" {
		t.Fatalf("unexpected fallback name %q", target.FallbackCompanyName)
	}

	empty := hunter.NewScanTarget("   ")
	if empty.Domain != "" || empty.FallbackCompanyName != "" {
		t.Fatalf("expected empty target, got %+v", empty)
	}
}
