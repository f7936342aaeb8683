// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestRenderAndSave(t *testing.T) {
	cfg := Config{
		Title:  "Speed Gain",
		XLabel: "Data Size",
		YLabel: "Gain (%)",
		YFixed: true,
		YMin:   -175,
		YMax:   10,
		RefLines: []RefLine{
			{X: 156, Label: "threshold", Color: color.NRGBA{0xff, 0, 0, 0xff}, YMin: 0.05, YMax: 0.95},
		},
		LegendLeft: true,
	}
	sizes := []int{16, 32, 64, 128, 256}
	gains := []float64{0, -10, -45, -80, -99}

	pl, err := Render(cfg, sizes,
		Series{Name: "usual vs best", Values: gains, Color: color.NRGBA{0xff, 0, 0, 0xff}})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if pl.Y.Min != -175 || pl.Y.Max != 10 {
		t.Errorf("Y range: got [%v, %v], want [-175, 10]", pl.Y.Min, pl.Y.Max)
	}

	for _, name := range []string{"out.svg", "out.png"} {
		path := filepath.Join(t.TempDir(), name)
		if err := Save(pl, path); err != nil {
			t.Fatalf("Save %s: %v", name, err)
		}
		fi, err := os.Stat(path)
		if err != nil {
			t.Fatalf("Stat %s: %v", name, err)
		}
		if fi.Size() == 0 {
			t.Errorf("%s: empty artifact", name)
		}
	}
}

func TestRenderLineStyle(t *testing.T) {
	pl, err := Render(Config{}, []int{16, 32}, Series{Values: []float64{1, 2}, Style: Line})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if err := Save(pl, filepath.Join(t.TempDir(), "line.png")); err != nil {
		t.Fatalf("Save: %v", err)
	}
}

func TestRenderEmpty(t *testing.T) {
	// An empty series must render axes without crashing.
	pl, err := Render(Config{Title: "empty"}, nil, Series{Values: nil})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if err := Save(pl, filepath.Join(t.TempDir(), "empty.svg")); err != nil {
		t.Fatalf("Save: %v", err)
	}
}

func TestRenderLengthMismatch(t *testing.T) {
	_, err := Render(Config{}, []int{16, 32}, Series{Name: "short", Values: []float64{1}})
	if err == nil {
		t.Fatal("unexpected success")
	}
}

func TestPow2Ticks(t *testing.T) {
	test := func(min, max float64, want ...float64) {
		t.Helper()
		ticks := Pow2Ticks{}.Ticks(min, max)
		if len(ticks) != len(want) {
			t.Errorf("Ticks(%v, %v): got %d ticks, want %d", min, max, len(ticks), len(want))
			return
		}
		for i, tick := range ticks {
			if tick.Value != want[i] {
				t.Errorf("Ticks(%v, %v)[%d]: got %v, want %v", min, max, i, tick.Value, want[i])
			}
		}
	}
	test(16, 128, 16, 32, 64, 128)
	test(10, 100, 16, 32, 64)
	test(1, 2, 1, 2)
	test(5, 5) // no power of two inside the range

	if ticks := (Pow2Ticks{}).Ticks(0, 10); ticks != nil {
		t.Errorf("Ticks(0, 10): got %v, want nil", ticks)
	}

	ticks := Pow2Ticks{}.Ticks(16, 64)
	if ticks[0].Label != "16" {
		t.Errorf("label: got %q, want %q", ticks[0].Label, "16")
	}
}
