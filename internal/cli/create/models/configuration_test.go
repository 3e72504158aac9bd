package models

import "testing"

func TestParsePackageManager(t *testing.T) {
	tests := []struct {
		input   string
		want    PackageManager
		wantErr bool
	}{
		{"pnpm", PNPM, false},
		{"npm", NPM, false},
		{"yarn", Yarn, false},
		{"bun", "", true},
		{"PNPM", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePackageManager(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePackageManager(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParsePackageManager(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseBaseColor(t *testing.T) {
	for _, c := range BaseColors() {
		got, err := ParseBaseColor(string(c))
		if err != nil || got != c {
			t.Errorf("ParseBaseColor(%q) = %q, %v", c, got, err)
		}
	}

	if _, err := ParseBaseColor("purple"); err == nil {
		t.Errorf("ParseBaseColor(purple) error = nil, want error")
	}
}

func TestPromptOrder(t *testing.T) {
	if pms := PackageManagers(); pms[0] != PNPM || len(pms) != 3 {
		t.Errorf("PackageManagers() = %v, want pnpm first of 3", pms)
	}
	if colors := BaseColors(); colors[0] != Neutral || len(colors) != 5 {
		t.Errorf("BaseColors() = %v, want neutral first of 5", colors)
	}
}
