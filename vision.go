// Package main - vision.go
//
// This file implements the low-level image operations the perception layer
// is built from: region extraction, HSV color masking, contour filtering,
// edge density, and text enhancement for OCR.
//
// Conventions:
//   - All frames are BGR Mats
//   - Callers own every returned Mat and must Close it
//   - Out-of-bounds regions are clamped; a fully out-of-bounds region
//     yields an empty Mat instead of panicking
//   - Color masses mirror a summed binary mask (255 per hit pixel), so
//     thresholds carry over between resolutions of the same UI scale
package main

import (
	"image"

	"gocv.io/x/gocv"
)

// HSVRange is an inclusive HSV color band.
type HSVRange struct {
	LowH, LowS, LowV    float64
	HighH, HighS, HighV float64
}

// Color bands used by the battle and quest heuristics. Red wraps around
// the hue axis and is handled by redMass with two bands.
var (
	hsvGreen  = HSVRange{40, 80, 80, 80, 255, 255}
	hsvBlue   = HSVRange{100, 120, 80, 130, 255, 255}
	hsvYellow = HSVRange{18, 120, 80, 35, 255, 255}

	hsvButtonBlue   = HSVRange{100, 50, 50, 130, 255, 255}
	hsvButtonGreen  = HSVRange{40, 50, 50, 80, 255, 255}
	hsvButtonOrange = HSVRange{10, 100, 100, 25, 255, 255}
	hsvPale         = HSVRange{0, 0, 150, 180, 50, 255}
)

// ExtractRegion returns a copy of the region of the frame, clamped to the
// frame bounds. An empty Mat is returned when nothing of the region is
// inside the frame.
func ExtractRegion(frame gocv.Mat, r Region) gocv.Mat {
	if frame.Empty() {
		return gocv.NewMat()
	}
	clamped := r.ClampTo(frame.Cols(), frame.Rows())
	if clamped.Empty() {
		return gocv.NewMat()
	}
	roi := frame.Region(image.Rect(clamped.X, clamped.Y, clamped.X+clamped.W, clamped.Y+clamped.H))
	defer roi.Close()
	return roi.Clone()
}

// ToHSV converts a BGR frame to HSV.
func ToHSV(frame gocv.Mat) gocv.Mat {
	hsv := gocv.NewMat()
	if !frame.Empty() {
		gocv.CvtColor(frame, &hsv, gocv.ColorBGRToHSV)
	}
	return hsv
}

// ToGray converts a BGR frame to grayscale.
func ToGray(frame gocv.Mat) gocv.Mat {
	gray := gocv.NewMat()
	if !frame.Empty() {
		gocv.CvtColor(frame, &gray, gocv.ColorBGRToGray)
	}
	return gray
}

// ColorMask builds a binary mask of pixels inside the HSV band.
func ColorMask(hsv gocv.Mat, band HSVRange) gocv.Mat {
	mask := gocv.NewMat()
	if hsv.Empty() {
		return mask
	}
	lb := gocv.NewScalar(band.LowH, band.LowS, band.LowV, 0)
	ub := gocv.NewScalar(band.HighH, band.HighS, band.HighV, 0)
	gocv.InRangeWithScalar(hsv, lb, ub, &mask)
	return mask
}

// maskMass sums a binary mask (255 per hit pixel).
func maskMass(mask gocv.Mat) float64 {
	if mask.Empty() {
		return 0
	}
	return mask.Sum().Val1
}

// colorMass measures how much of the HSV frame falls inside the band.
func colorMass(hsv gocv.Mat, band HSVRange) float64 {
	mask := ColorMask(hsv, band)
	defer mask.Close()
	return maskMass(mask)
}

// redMass measures red coverage. Red straddles the hue wrap, so two bands
// are combined. The saturation/value floors differ between the big Fight
// button probe and the tighter button strip probe, hence the parameters.
func redMass(hsv gocv.Mat, satMin, valMin float64) float64 {
	if hsv.Empty() {
		return 0
	}
	low := ColorMask(hsv, HSVRange{0, satMin, valMin, 10, 255, 255})
	defer low.Close()
	high := ColorMask(hsv, HSVRange{170, satMin, valMin, 180, 255, 255})
	defer high.Close()

	both := gocv.NewMat()
	defer both.Close()
	gocv.BitwiseOr(low, high, &both)
	return maskMass(both)
}

// EdgeDensity returns the fraction of Canny edge pixels in a BGR frame.
func EdgeDensity(frame gocv.Mat) float64 {
	if frame.Empty() {
		return 0
	}
	gray := ToGray(frame)
	defer gray.Close()

	edges := gocv.NewMat()
	defer edges.Close()
	gocv.Canny(gray, &edges, 50, 150)

	total := edges.Rows() * edges.Cols()
	if total == 0 {
		return 0
	}
	return float64(gocv.CountNonZero(edges)) / float64(total)
}

// Box is a contour bounding rectangle with its contour area.
type Box struct {
	Region Region
	Area   float64
}

// FindBoxes finds external contours in a binary mask and returns bounding
// boxes filtered by contour area and aspect ratio.
func FindBoxes(mask gocv.Mat, minArea, maxArea, minAspect, maxAspect float64) []Box {
	if mask.Empty() {
		return nil
	}
	contours := gocv.FindContours(mask, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()

	var boxes []Box
	for i := 0; i < contours.Size(); i++ {
		c := contours.At(i)
		area := gocv.ContourArea(c)
		if area < minArea || (maxArea > 0 && area > maxArea) {
			continue
		}
		rect := gocv.BoundingRect(c)
		aspect := 0.0
		if rect.Dy() > 0 {
			aspect = float64(rect.Dx()) / float64(rect.Dy())
		}
		if aspect < minAspect || (maxAspect > 0 && aspect > maxAspect) {
			continue
		}
		boxes = append(boxes, Box{
			Region: NewRegion(rect.Min.X, rect.Min.Y, rect.Dx(), rect.Dy()),
			Area:   area,
		})
	}
	return boxes
}

// EdgeBoxes runs Canny on a BGR frame and returns contour boxes of the
// edge image. Used by the menu heuristic.
func EdgeBoxes(frame gocv.Mat, minArea, minAspect, maxAspect float64) []Box {
	if frame.Empty() {
		return nil
	}
	gray := ToGray(frame)
	defer gray.Close()
	edges := gocv.NewMat()
	defer edges.Close()
	gocv.Canny(gray, &edges, 50, 150)
	return FindBoxes(edges, minArea, 0, minAspect, maxAspect)
}

// EnhanceText prepares a crop for OCR: grayscale, adaptive threshold and a
// small morphological close to heal broken glyphs.
func EnhanceText(frame gocv.Mat) gocv.Mat {
	out := gocv.NewMat()
	if frame.Empty() {
		return out
	}
	gray := ToGray(frame)
	defer gray.Close()

	thresh := gocv.NewMat()
	defer thresh.Close()
	gocv.AdaptiveThreshold(gray, &thresh, 255, gocv.AdaptiveThresholdGaussian, gocv.ThresholdBinary, 11, 2)

	kernel := gocv.GetStructuringElement(gocv.MorphRect, image.Pt(2, 2))
	defer kernel.Close()
	gocv.MorphologyEx(thresh, &out, gocv.MorphClose, kernel)
	return out
}

// ContrastInvert boosts contrast with CLAHE and returns the inverted Otsu
// threshold. Outlined light-on-dark text survives OCR much better this way.
func ContrastInvert(frame gocv.Mat) gocv.Mat {
	out := gocv.NewMat()
	if frame.Empty() {
		return out
	}
	gray := ToGray(frame)
	defer gray.Close()

	clahe := gocv.NewCLAHEWithParams(3.0, image.Pt(8, 8))
	defer clahe.Close()
	enhanced := gocv.NewMat()
	defer enhanced.Close()
	clahe.Apply(gray, &enhanced)

	thresh := gocv.NewMat()
	defer thresh.Close()
	gocv.Threshold(enhanced, &thresh, 0, 255, gocv.ThresholdBinary+gocv.ThresholdOtsu)
	gocv.BitwiseNot(thresh, &out)
	return out
}

// OtsuBinary returns the Otsu threshold of a BGR frame, optionally after a
// Gaussian blur of the given kernel size.
func OtsuBinary(frame gocv.Mat, blurKernel int) gocv.Mat {
	out := gocv.NewMat()
	if frame.Empty() {
		return out
	}
	gray := ToGray(frame)
	defer gray.Close()
	if blurKernel > 1 {
		gocv.GaussianBlur(gray, &gray, image.Pt(blurKernel, blurKernel), 0, 0, gocv.BorderDefault)
	}
	gocv.Threshold(gray, &out, 0, 255, gocv.ThresholdBinary+gocv.ThresholdOtsu)
	return out
}

// MorphClose applies a morphological close with the given kernel shape,
// size and iteration count.
func MorphClose(mask gocv.Mat, shape gocv.MorphShape, kw, kh, iterations int) gocv.Mat {
	out := gocv.NewMat()
	if mask.Empty() {
		return out
	}
	kernel := gocv.GetStructuringElement(shape, image.Pt(kw, kh))
	defer kernel.Close()
	gocv.MorphologyExWithParams(mask, &out, gocv.MorphClose, kernel, iterations, gocv.BorderConstant)
	return out
}

// UpscaleCubic resizes a crop by an integer factor with cubic
// interpolation. Small nameplate crops need this before OCR.
func UpscaleCubic(frame gocv.Mat, scale int) gocv.Mat {
	out := gocv.NewMat()
	if frame.Empty() || scale <= 1 {
		if !frame.Empty() {
			out = frame.Clone()
		}
		return out
	}
	gocv.Resize(frame, &out, image.Pt(frame.Cols()*scale, frame.Rows()*scale), 0, 0, gocv.InterpolationCubic)
	return out
}
