package images

import "testing"

func TestFitRect(t *testing.T) {
	tests := []struct {
		name             string
		intrW, intrH     int
		targetW, targetH int
		wantW, wantH     int
	}{
		{"intrinsic", 100, 50, 0, 0, 100, 50},
		{"scale by width", 100, 50, 200, 0, 200, 100},
		{"scale by height", 100, 50, 0, 200, 400, 200},
		{"fit box", 100, 50, 150, 150, 150, 75},
		{"never collapses to zero", 100, 50, 0, 1, 2, 1},
		{"oversized intrinsic clamped", 100000, 50000, 0, 0, 8192, 4096},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := fitRect(tt.intrW, tt.intrH, tt.targetW, tt.targetH)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("fitRect(%d, %d, %d, %d) = %dx%d, want %dx%d",
					tt.intrW, tt.intrH, tt.targetW, tt.targetH, w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestRasterizeSVGToImage(t *testing.T) {
	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 50"><rect width="50" height="50" fill="#000000"/></svg>`)

	img, err := RasterizeSVGToImage(svg, 200, 0)
	if err != nil {
		t.Fatalf("RasterizeSVGToImage() error = %v", err)
	}
	if img.Bounds().Dx() != 200 || img.Bounds().Dy() != 100 {
		t.Fatalf("bounds = %v, want 200x100", img.Bounds())
	}

	// left half carries the filled rect, right half stays white background
	r, g, b, _ := img.At(50, 50).RGBA()
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("pixel inside the shape = (%d,%d,%d), want black", r, g, b)
	}
	r, g, b, _ = img.At(150, 50).RGBA()
	if r != 0xffff || g != 0xffff || b != 0xffff {
		t.Errorf("background pixel = (%d,%d,%d), want white", r, g, b)
	}
}

func TestRasterizeSVGToImage_HostileViewBox(t *testing.T) {
	huge := []byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100000 100000"><rect width="100000" height="100000"/></svg>`)

	img, err := RasterizeSVGToImage(huge, 0, 0)
	if err != nil {
		t.Fatalf("RasterizeSVGToImage() error = %v", err)
	}
	if img.Bounds().Dx() > maxRasterDim || img.Bounds().Dy() > maxRasterDim {
		t.Fatalf("bounds not clamped: %v", img.Bounds())
	}
}

func TestRasterizeSVGToImage_BadInput(t *testing.T) {
	if _, err := RasterizeSVGToImage([]byte("not an svg"), 0, 0); err == nil {
		t.Fatal("expected error for malformed input")
	}
}
