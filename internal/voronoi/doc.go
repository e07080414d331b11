// Package voronoi rasterises Voronoi diagrams.
//
// Every pixel is assigned to the nearest seed point under a chosen distance
// metric and painted with that seed's theme colour. The scan is brute force:
// each pixel is compared against every seed, and ties go to the seed with the
// lowest index.
package voronoi
