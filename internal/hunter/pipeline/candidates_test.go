package pipeline_test

import (
	"reflect"
	"testing"

	"leadhunter/internal/hunter/pipeline"
)

func TestGenerateEmails(t *testing.T) {
	cases := []struct {
		name  string
		host  string
		short bool
		want  []string
	}{
		{"Jane Silva", "acme.com.br", false, []string{"jane.silva@acme.com.br"}},
		{"Jane Silva", "acme.com.br", true, []string{"jane.silva@acme.com.br", "jane@acme.com.br"}},
		// middle names are ignored
		{"Maria Fernanda Costa", "acme.com.br", false, []string{"maria.costa@acme.com.br"}},
		// diacritics fold to ASCII
		{"José Conceição", "acme.com.br", true, []string{"jose.conceicao@acme.com.br", "jose@acme.com.br"}},
		// single-token names generate nothing
		{"Acme", "acme.com.br", true, nil},
		{"Jane Silva", "", true, nil},
	}

	for _, tc := range cases {
		got := pipeline.GenerateEmails(tc.name, tc.host, tc.short)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("GenerateEmails(%q, %q, %v) = %v, want %v", tc.name, tc.host, tc.short, got, tc.want)
		}
	}
}

func TestGenerateEmails_Deterministic(t *testing.T) {
	first := pipeline.GenerateEmails("Jane Silva", "acme.com.br", true)
	second := pipeline.GenerateEmails("Jane Silva", "acme.com.br", true)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical output, got %v and %v", first, second)
	}
}

func TestSplitName(t *testing.T) {
	cases := []struct {
		in        string
		wantFirst string
		wantLast  string
	}{
		{"Jane Silva", "Jane", "Silva"},
		{"Maria Fernanda Costa", "Maria", "Fernanda Costa"},
		{"Jane", "Jane", ""},
		{"", "", ""},
	}

	for _, tc := range cases {
		first, last := pipeline.SplitName(tc.in)
		if first != tc.wantFirst || last != tc.wantLast {
			t.Errorf("SplitName(%q) = (%q, %q), want (%q, %q)", tc.in, first, last, tc.wantFirst, tc.wantLast)
		}
	}
}

func TestNameFromLocalPart(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"joao.silva@acme.com.br", "Joao Silva"},
		{"maria_costa@acme.com.br", "Maria Costa"},
		{"ana-lima@acme.com.br", "Ana Lima"},
		{"contato@acme.com.br", "Contato"},
	}

	for _, tc := range cases {
		if got := pipeline.NameFromLocalPart(tc.in); got != tc.want {
			t.Errorf("NameFromLocalPart(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
