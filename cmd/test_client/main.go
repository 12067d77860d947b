package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"
)

// Manual smoke-test client for a locally running server. Each request is
// independent; run with -address or -lat/-lng against a live instance.
func main() {
	var (
		endpoint = flag.String("endpoint", "http://localhost:8080", "server base URL")
		address  = flag.String("address", "", "address to analyze")
		lat      = flag.Float64("lat", 0, "latitude (used when no address)")
		lng      = flag.Float64("lng", 0, "longitude (used when no address)")
	)
	flag.Parse()

	payload := map[string]any{}
	switch {
	case *address != "":
		payload["address"] = *address
	case *lat != 0 || *lng != 0:
		payload["coordinates"] = map[string]float64{"lat": *lat, "lng": *lng}
	default:
		// Koganei area, a convenient default with dense coverage.
		payload["coordinates"] = map[string]float64{"lat": 35.6995, "lng": 139.4814}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	body, err := json.Marshal(payload)
	if err != nil {
		log.Fatalf("marshal request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, *endpoint+"/api/v1/analyze", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatalf("request failed: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var result struct {
		AnalysisID string  `json:"analysis_id"`
		Address    string  `json:"address"`
		TotalScore float64 `json:"total_score"`
		Grade      string  `json:"grade"`
		Breakdown  map[string]struct {
			Score           float64 `json:"score"`
			TotalFacilities int     `json:"total_facilities"`
			DefaultUsed     bool    `json:"default_used"`
		} `json:"breakdown"`
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Fatalf("decode response (%d): %v", resp.StatusCode, err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Fatalf("server returned %d: %s (%s)", resp.StatusCode, result.Error, result.Message)
	}

	fmt.Printf("Analysis %s\n", result.AnalysisID)
	if result.Address != "" {
		fmt.Printf("Address:  %s\n", result.Address)
	}
	fmt.Printf("Total:    %.1f (%s)\n\n", result.TotalScore, result.Grade)

	for name, d := range result.Breakdown {
		marker := ""
		if d.DefaultUsed {
			marker = " (default)"
		}
		fmt.Printf("  %-12s %6.1f  facilities=%d%s\n", name, d.Score, d.TotalFacilities, marker)
	}
}
