package conformance

import "testing"

func TestSuites(t *testing.T) {
	suites, err := LoadDir("testdata")
	if err != nil {
		t.Fatalf("loading suites: %v", err)
	}
	if len(suites) == 0 {
		t.Fatal("no conformance suites found")
	}

	for _, loaded := range suites {
		t.Run(loaded.Suite.Name, func(t *testing.T) {
			for _, tc := range loaded.Suite.Tests {
				t.Run(tc.Name, func(t *testing.T) {
					out, err := RunCase(tc)
					if err != nil {
						t.Fatalf("running case: %v", err)
					}
					if err := Check(tc, out); err != nil {
						t.Error(err)
					}
				})
			}
		})
	}
}
