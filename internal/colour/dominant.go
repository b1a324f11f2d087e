package colour

import (
	"fmt"
	"image"
	"math"
	"math/rand/v2"
)

// DominantExtractor finds the most representative colour of an image using
// k-means clustering over a grid sample of its pixels.
type DominantExtractor struct {
	clusters      int
	maxIterations int
	convergence   float64
	maxSamples    int
	seed          uint64
}

// NewDominantExtractor creates a DominantExtractor with default settings.
// Runs are deterministic: the same image always yields the same colour.
func NewDominantExtractor() *DominantExtractor {
	return &DominantExtractor{
		clusters:      5,
		maxIterations: 20,
		convergence:   2.0,
		maxSamples:    2000,
		seed:          0x746f6e616c,
	}
}

// Dominant returns the centroid of the largest pixel cluster in img as an
// opaque colour. Fully transparent pixels are ignored.
func Dominant(img image.Image) (Colour, error) {
	return NewDominantExtractor().Extract(img)
}

// point3D is a point in RGB space.
type point3D struct {
	R, G, B float64
}

func (p point3D) distance(other point3D) float64 {
	dr := p.R - other.R
	dg := p.G - other.G
	db := p.B - other.B
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// Extract runs the clustering and returns the heaviest centroid.
func (e *DominantExtractor) Extract(img image.Image) (Colour, error) {
	if img == nil {
		return Colour{}, fmt.Errorf("image cannot be nil")
	}

	points := e.samplePixels(img)
	if len(points) == 0 {
		return Colour{}, fmt.Errorf("no opaque pixels found in image")
	}

	k := min(e.clusters, len(points))
	rng := rand.New(rand.NewPCG(e.seed, uint64(len(points))))
	centroids, weights := e.kmeans(rng, points, k)

	best := 0
	for i, w := range weights {
		if w > weights[best] {
			best = i
		}
	}

	c := centroids[best]
	return Opaque(roundChannel(c.R), roundChannel(c.G), roundChannel(c.B)), nil
}

// samplePixels grid-samples non-transparent pixels. The grid step is rounded
// up so that at most about maxSamples points are taken, spread evenly over
// the whole image.
func (e *DominantExtractor) samplePixels(img image.Image) []point3D {
	bounds := img.Bounds()
	total := bounds.Dx() * bounds.Dy()
	if total <= 0 {
		return nil
	}

	step := max(int(math.Ceil(math.Sqrt(float64(total)/float64(e.maxSamples)))), 1)

	points := make([]point3D, 0, min(total, e.maxSamples))
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			c := FromColor(img.At(x, y))
			if c.A == 0 {
				continue
			}
			points = append(points, point3D{R: float64(c.R), G: float64(c.G), B: float64(c.B)})
		}
	}
	return points
}

// kmeans clusters points into k groups and returns centroids with their
// relative weights (cluster sizes summing to 1).
func (e *DominantExtractor) kmeans(rng *rand.Rand, points []point3D, k int) ([]point3D, []float64) {
	centroids := e.initialCentroids(rng, points, k)
	assignments := make([]int, len(points))

	for range e.maxIterations {
		changed := 0
		for i, p := range points {
			nearest := nearestCentroid(p, centroids)
			if assignments[i] != nearest {
				assignments[i] = nearest
				changed++
			}
		}

		// Fewer than 1% of assignments moved.
		if float64(changed)/float64(len(points)) < 0.01 {
			break
		}

		next := recalculateCentroids(rng, points, assignments, k)
		movement := 0.0
		for i := range centroids {
			movement += centroids[i].distance(next[i])
		}
		centroids = next

		if movement/float64(k) < e.convergence {
			break
		}
	}

	weights := make([]float64, k)
	for _, a := range assignments {
		weights[a]++
	}
	for i := range weights {
		weights[i] /= float64(len(points))
	}

	return centroids, weights
}

// initialCentroids seeds centroids with k-means++.
func (e *DominantExtractor) initialCentroids(rng *rand.Rand, points []point3D, k int) []point3D {
	centroids := make([]point3D, 0, k)
	centroids = append(centroids, points[rng.IntN(len(points))])

	distances := make([]float64, len(points))
	for len(centroids) < k {
		total := 0.0
		for i, p := range points {
			d := p.distance(centroids[nearestCentroid(p, centroids)])
			distances[i] = d * d
			total += distances[i]
		}

		if total == 0 {
			last := centroids[len(centroids)-1]
			centroids = append(centroids, point3D{R: last.R + 0.1, G: last.G + 0.1, B: last.B + 0.1})
			continue
		}

		target := rng.Float64() * total
		cumulative := 0.0
		for i, d := range distances {
			cumulative += d
			if cumulative >= target {
				centroids = append(centroids, points[i])
				break
			}
		}
	}

	return centroids
}

func nearestCentroid(p point3D, centroids []point3D) int {
	best := 0
	bestDist := math.MaxFloat64
	for i, c := range centroids {
		if d := p.distance(c); d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

func recalculateCentroids(rng *rand.Rand, points []point3D, assignments []int, k int) []point3D {
	sums := make([]point3D, k)
	counts := make([]int, k)
	for i, p := range points {
		c := assignments[i]
		sums[c].R += p.R
		sums[c].G += p.G
		sums[c].B += p.B
		counts[c]++
	}

	centroids := make([]point3D, k)
	for i := range k {
		if counts[i] == 0 {
			centroids[i] = points[rng.IntN(len(points))]
			continue
		}
		n := float64(counts[i])
		centroids[i] = point3D{R: sums[i].R / n, G: sums[i].G / n, B: sums[i].B / n}
	}
	return centroids
}
