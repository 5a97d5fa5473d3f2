// Command smoke probes a running API instance against a list of
// endpoints and fails when any critical probe misbehaves. Intended for
// post-deploy checks.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type probe struct {
	Name       string `json:"name"`
	Method     string `json:"method"`
	Path       string `json:"path"`
	WantStatus int    `json:"want_status"`
	Critical   bool   `json:"critical"`
	Auth       bool   `json:"auth"`
}

type probeConfig struct {
	Probes []probe `json:"probes"`
}

type result struct {
	Probe    probe
	Status   int
	Duration time.Duration
	Err      error
}

func main() {
	var (
		baseURL    string
		probesPath string
		token      string
		timeout    time.Duration
	)

	flag.StringVar(&baseURL, "base", "http://localhost:4000", "API base URL")
	flag.StringVar(&probesPath, "probes", filepath.Join("scripts", "smoke", "probes.json"), "Path to JSON probes file")
	flag.StringVar(&token, "token", os.Getenv("SMOKE_BEARER_TOKEN"), "Bearer token for authenticated probes")
	flag.DurationVar(&timeout, "timeout", 5*time.Second, "HTTP client timeout")
	flag.Parse()

	probes, err := loadProbes(probesPath)
	if err != nil {
		log.Fatalf("failed to load probes: %v", err)
	}

	client := &http.Client{Timeout: timeout}
	var results []result
	criticalFailures := 0

	for _, p := range probes {
		res := runProbe(client, baseURL, token, p)
		if !passed(res) && p.Critical {
			criticalFailures++
		}
		results = append(results, res)
	}

	printReport(results)
	fmt.Printf("Critical failures: %d\n", criticalFailures)
	if criticalFailures > 0 {
		os.Exit(1)
	}
}

func loadProbes(path string) ([]probe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg probeConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if len(cfg.Probes) == 0 {
		return nil, fmt.Errorf("no probes defined in %s", path)
	}
	return cfg.Probes, nil
}

func runProbe(client *http.Client, baseURL, token string, p probe) result {
	res := result{Probe: p}

	method := strings.ToUpper(strings.TrimSpace(p.Method))
	if method == "" {
		method = http.MethodGet
	}
	path := p.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	url := strings.TrimRight(baseURL, "/") + path

	req, err := http.NewRequest(method, url, nil)
	if err != nil {
		res.Err = err
		return res
	}
	if p.Auth && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := client.Do(req)
	res.Duration = time.Since(start)
	if err != nil {
		res.Err = err
		return res
	}
	defer resp.Body.Close()

	res.Status = resp.StatusCode
	return res
}

func passed(res result) bool {
	if res.Err != nil {
		return false
	}
	want := res.Probe.WantStatus
	if want == 0 {
		want = http.StatusOK
	}
	return res.Status == want
}

func printReport(results []result) {
	fmt.Println("Smoke Report")
	fmt.Println("============")
	for _, res := range results {
		status := "PASS"
		if !passed(res) {
			status = "FAIL"
		}
		name := res.Probe.Name
		if name == "" {
			name = res.Probe.Path
		}
		fmt.Printf("[%s] %s %s (%s)\n", status, res.Probe.Method, name, res.Duration)
		if res.Err != nil {
			fmt.Printf("  Error: %v\n", res.Err)
			continue
		}
		want := res.Probe.WantStatus
		if want == 0 {
			want = http.StatusOK
		}
		fmt.Printf("  Status: %d (want %d) | Critical: %t\n", res.Status, want, res.Probe.Critical)
	}
}
