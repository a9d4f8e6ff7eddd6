package pipeline_test

import (
	"testing"

	"leadhunter/internal/hunter/pipeline"
)

func TestCleanResultTitle(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Jane Silva - Marketing Manager - Acme | LinkedIn", "Jane Silva - Marketing Manager - Acme"},
		{"Carlos Souza - Diretor Comercial - LinkedIn", "Carlos Souza - Diretor Comercial"},
		{"Ana Lima | LinkedIn Brasil", "Ana Lima"},
		{"Pedro Alves - Fundador na ...", "Pedro Alves - Fundador na"},
		{"  João Pereira  ", "João Pereira"},
	}

	for _, tc := range cases {
		if got := pipeline.CleanResultTitle(tc.in); got != tc.want {
			t.Errorf("CleanResultTitle(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseTitle(t *testing.T) {
	cases := []struct {
		in       string
		wantName string
		wantRole string
		wantOK   bool
	}{
		{"Jane Silva - Marketing Manager - Acme", "Jane Silva", "Marketing Manager", true},
		{"Carlos Souza – Diretor Comercial", "Carlos Souza", "Diretor Comercial", true},
		{"Ana Lima | Gerente de Vendas na Acme", "Ana Lima", "Gerente de Vendas", true},
		{"Pedro Alves, Fundador da Padaria Estrela", "Pedro Alves", "Fundador", true},
		// no separator: whole title is the name, role falls back
		{"Maria Fernanda Costa", "Maria Fernanda Costa", pipeline.GenericRole, true},
		// empty role after trimming connectors falls back
		{"Ana Lima - na Acme", "Ana Lima", pipeline.GenericRole, true},
		// single token names are rejected
		{"Acme", "", "", false},
		// digits disqualify the name
		{"Top 10 Empresas - Ranking", "", "", false},
		{"", "", "", false},
	}

	for _, tc := range cases {
		got, ok := pipeline.ParseTitle(tc.in)
		if ok != tc.wantOK {
			t.Errorf("ParseTitle(%q) ok = %v, want %v", tc.in, ok, tc.wantOK)
			continue
		}
		if !ok {
			continue
		}
		if got.Name != tc.wantName || got.Role != tc.wantRole {
			t.Errorf("ParseTitle(%q) = %+v, want name %q role %q", tc.in, got, tc.wantName, tc.wantRole)
		}
	}
}

func TestGuessCompanyName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Acme Alimentos | Site Oficial", "Acme Alimentos"},
		{"Home - Padaria Estrela", "Padaria Estrela"},
		{"Welcome: Acme", "Acme"},
		{"Início | Home", ""},
		{"", ""},
	}

	for _, tc := range cases {
		if got := pipeline.GuessCompanyName(tc.in); got != tc.want {
			t.Errorf("GuessCompanyName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
