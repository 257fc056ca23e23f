package sequence

import (
	"reflect"
	"testing"
)

func TestValid(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"ACGT", true},
		{"acgu", true},
		{"AaCcGgTtUu", true},
		{"ACGX", false},
		{"AC GT", false},
		{"acg7", false},
	}
	for _, tt := range tests {
		if got := Valid(tt.in); got != tt.want {
			t.Errorf("Valid(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestConversions(t *testing.T) {
	if got := ToDNA("AUGU"); got != "ATGT" {
		t.Errorf("ToDNA(AUGU) = %q, want ATGT", got)
	}
	if got := ToRNA("ATGT"); got != "AUGU" {
		t.Errorf("ToRNA(ATGT) = %q, want AUGU", got)
	}
	if got := ToDNA(ToRNA("ACGT")); got != "ACGT" {
		t.Errorf("ToDNA(ToRNA(ACGT)) = %q, want ACGT", got)
	}
}

func TestSplitReverse(t *testing.T) {
	seq := Split("ACGT")
	if want := []string{"A", "C", "G", "T"}; !reflect.DeepEqual(seq, want) {
		t.Fatalf("Split(ACGT) = %v, want %v", seq, want)
	}
	if want := []string{"T", "G", "C", "A"}; !reflect.DeepEqual(Reverse(seq), want) {
		t.Errorf("Reverse = %v, want %v", Reverse(seq), want)
	}
	if got := Reverse(nil); len(got) != 0 {
		t.Errorf("Reverse(nil) = %v, want empty", got)
	}
}

func TestAddSuffix(t *testing.T) {
	got := AddSuffix([]string{"A", "T"}, "_lod1")
	if want := []string{"A_lod1", "T_lod1"}; !reflect.DeepEqual(got, want) {
		t.Errorf("AddSuffix = %v, want %v", got, want)
	}
}

func TestComplement(t *testing.T) {
	tests := []struct {
		name string
		pair func(string) string
		in   []string
		want []string
	}{
		{"dna", ComplementDNA, []string{"A", "T", "G", "C"}, []string{"T", "A", "C", "G"}},
		{"rna", ComplementRNA, []string{"A", "U", "G", "C"}, []string{"U", "A", "C", "G"}},
		{"identity", Identity, []string{"A", "T"}, []string{"A", "T"}},
		{"unknown passthrough", ComplementDNA, []string{"N"}, []string{"N"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Complement(tt.in, tt.pair); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Complement(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
