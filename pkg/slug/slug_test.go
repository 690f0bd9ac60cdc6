package slug

import "testing"

func TestMake(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Rumah Sakit Umum", "rumah-sakit-umum"},
		{"Preventive Maintenance", "preventive-maintenance"},
		{"  Kalibrasi / Perbaikan  ", "kalibrasi-perbaikan"},
		{"X-Ray (Mobile)", "x-ray-mobile"},
		{"ALREADY-SLUGGED", "already-slugged"},
		{"", ""},
		{"---", ""},
	}
	for _, tt := range tests {
		if got := Make(tt.in); got != tt.want {
			t.Errorf("Make(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUnique_AppendsSuffixUntilFree(t *testing.T) {
	used := map[string]bool{"klinik": true, "klinik-2": true}
	got, err := Unique("Klinik", func(s string) (bool, error) {
		return used[s], nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if got != "klinik-3" {
		t.Fatalf("got %q", got)
	}
}

func TestUnique_FirstCandidateFree(t *testing.T) {
	got, err := Unique("Puskesmas Kota", func(string) (bool, error) { return false, nil })
	if err != nil {
		t.Fatal(err)
	}
	if got != "puskesmas-kota" {
		t.Fatalf("got %q", got)
	}
}
