package opts

import (
	"net/url"
	"testing"
	"time"
)

func TestParseBoolVariants(t *testing.T) {
	trueVals := []string{"1", "true", "TRUE", "yes", "On"}
	falseVals := []string{"0", "false", "FALSE", "no", "OFF"}

	for _, tc := range trueVals {
		t.Run("true/"+tc, func(t *testing.T) {
			got, err := ParseBool(tc, "flag")
			if err != nil {
				t.Fatalf("ParseBool(%q) error: %v", tc, err)
			}
			if !got {
				t.Fatalf("ParseBool(%q) = false, want true", tc)
			}
		})
	}

	for _, tc := range falseVals {
		t.Run("false/"+tc, func(t *testing.T) {
			got, err := ParseBool(tc, "flag")
			if err != nil {
				t.Fatalf("ParseBool(%q) error: %v", tc, err)
			}
			if got {
				t.Fatalf("ParseBool(%q) = true, want false", tc)
			}
		})
	}

	if _, err := ParseBool("maybe", "flag"); err == nil {
		t.Fatal("ParseBool should reject unknown values")
	}
}

func TestParseIntInRange(t *testing.T) {
	got, err := ParseIntInRange("500", "debounce_ms", 50, 60000)
	if err != nil {
		t.Fatalf("ParseIntInRange error: %v", err)
	}
	if got != 500 {
		t.Fatalf("ParseIntInRange = %d, want 500", got)
	}

	if _, err := ParseIntInRange("10", "debounce_ms", 50, 60000); err == nil {
		t.Fatal("ParseIntInRange should reject values below min")
	}
	if _, err := ParseIntInRange("99999", "debounce_ms", 50, 60000); err == nil {
		t.Fatal("ParseIntInRange should reject values above max")
	}
}

func TestNormalizeAndValidate(t *testing.T) {
	o := Defaults()
	o.Output = "JSON"
	o.Color = "Always"
	o.Action = " Annotate "
	if err := NormalizeAndValidate(&o); err != nil {
		t.Fatalf("NormalizeAndValidate error: %v", err)
	}
	if o.Output != "json" {
		t.Fatalf("Output normalized incorrectly: %q", o.Output)
	}
	if o.Color != "always" {
		t.Fatalf("Color normalized incorrectly: %q", o.Color)
	}
	if o.Action != "annotate" {
		t.Fatalf("Action normalized incorrectly: %q", o.Action)
	}

	bad := Defaults()
	bad.Output = "xml"
	if err := NormalizeAndValidate(&bad); err == nil {
		t.Fatal("NormalizeAndValidate should fail for invalid output")
	}

	deb := Defaults()
	deb.DebounceMS = 10
	if err := NormalizeAndValidate(&deb); err == nil {
		t.Fatal("NormalizeAndValidate should fail for debounce below minimum")
	}

	style := Defaults()
	style.Styles = []string{"baroque"}
	if err := NormalizeAndValidate(&style); err == nil {
		t.Fatal("NormalizeAndValidate should fail for unknown style")
	}

	langs := Defaults()
	langs.Languages = []string{"  "}
	if err := NormalizeAndValidate(&langs); err == nil {
		t.Fatal("NormalizeAndValidate should fail for empty languages")
	}
}

func TestApplyWebQueryToOptions(t *testing.T) {
	def := Defaults()
	q := url.Values{}
	q.Set("file", "src/app.ts")
	q.Set("lang", "typescript")
	q.Set("output", "json")
	q.Set("auto_detect", "no")
	q.Set("debounce_ms", "250")
	q.Set("languages", "Spanish,Korean")

	got, err := ApplyWebQueryToOptions(def, q)
	if err != nil {
		t.Fatalf("ApplyWebQueryToOptions error: %v", err)
	}
	if got.File != "src/app.ts" {
		t.Fatalf("File mismatch: %q", got.File)
	}
	if got.Lang != "typescript" {
		t.Fatalf("Lang mismatch: %q", got.Lang)
	}
	if got.AutoDetect {
		t.Fatal("AutoDetect should be false")
	}
	if got.DebounceMS != 250 {
		t.Fatalf("DebounceMS mismatch: %d", got.DebounceMS)
	}
	if len(got.Languages) != 2 || got.Languages[0] != "Spanish" || got.Languages[1] != "Korean" {
		t.Fatalf("Languages mismatch: %v", got.Languages)
	}

	bad := url.Values{}
	bad.Set("inline_actions", "maybe")
	if _, err := ApplyWebQueryToOptions(def, bad); err == nil {
		t.Fatal("ApplyWebQueryToOptions should reject invalid bool")
	}
}

func TestDebounceDuration(t *testing.T) {
	o := Defaults()
	if o.Debounce() != time.Second {
		t.Fatalf("default debounce = %v, want 1s", o.Debounce())
	}
}

func TestSplitMulti(t *testing.T) {
	vals := []string{"a,b", " c ", "", ",d"}
	got := SplitMulti(vals)
	want := []string{"a", "b", "c", "d"}
	if len(got) != len(want) {
		t.Fatalf("SplitMulti length mismatch: got=%d want=%d", len(got), len(want))
	}
	for i, v := range want {
		if got[i] != v {
			t.Fatalf("SplitMulti mismatch at %d: got=%q want=%q", i, got[i], v)
		}
	}
}
