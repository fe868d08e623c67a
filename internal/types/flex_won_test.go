package types

import (
	"encoding/json"
	"testing"
)

func TestFlexWonUnmarshal(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want int64
	}{
		{"number", `5800000`, 5800000},
		{"numeric string", `"5800000"`, 5800000},
		{"grouped string", `"5,800,000"`, 5800000},
		{"currency decorations", `"₩1,234,000원"`, 1234000},
		{"negative string", `"-1,000"`, -1000},
		{"empty string", `""`, 0},
		{"null", `null`, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var f FlexWon
			if err := json.Unmarshal([]byte(tc.in), &f); err != nil {
				t.Fatalf("unmarshal %s: %v", tc.in, err)
			}
			if f.Int64() != tc.want {
				t.Errorf("FlexWon(%s) = %d, want %d", tc.in, f.Int64(), tc.want)
			}
		})
	}
}

func TestFlexWonUnmarshalRejectsOtherTypes(t *testing.T) {
	var f FlexWon
	if err := json.Unmarshal([]byte(`{"amount":1}`), &f); err == nil {
		t.Error("object input should fail")
	}
}

func TestFlexWonMarshalsAsNumber(t *testing.T) {
	raw, err := json.Marshal(FlexWon(1234))
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != "1234" {
		t.Errorf("marshaled as %s, want 1234", raw)
	}
}

func TestParseWon(t *testing.T) {
	if v, _ := ParseWon("  ₩5,800,000원  "); v != 5800000 {
		t.Errorf("ParseWon currency = %d", v)
	}
	if v, _ := ParseWon("won"); v != 0 {
		t.Errorf("all-decoration string should parse to 0, got %d", v)
	}
	if v, _ := ParseWon(""); v != 0 {
		t.Errorf("empty string should parse to 0, got %d", v)
	}
}
