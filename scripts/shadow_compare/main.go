package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/noah-isme/faculty-portal/pkg/apiclient"
)

type comparison struct {
	Name        string
	PortalCount int
	RecordCount int
	Error       error
}

type sessionEnvelope struct {
	Data struct {
		SessionID   string `json:"sessionId"`
		Departments struct {
			Total int    `json:"total"`
			Error string `json:"error"`
		} `json:"departments"`
		Teachers struct {
			Total int    `json:"total"`
			Error string `json:"error"`
		} `json:"teachers"`
	} `json:"data"`
}

// shadow_compare opens a portal session and checks that its initial views mirror the records API.
func main() {
	var (
		portalBase   string
		upstreamBase string
		timeout      time.Duration
	)

	flag.StringVar(&portalBase, "portal", "http://localhost:8080/api/v1", "Portal API base URL")
	flag.StringVar(&upstreamBase, "upstream", "https://milestone1-ogfx.onrender.com", "Records API base URL")
	flag.DurationVar(&timeout, "timeout", 10*time.Second, "HTTP client timeout")
	flag.Parse()

	httpClient := &http.Client{Timeout: timeout}
	session, err := openSession(httpClient, portalBase)
	if err != nil {
		log.Fatalf("failed to open portal session: %v", err)
	}
	defer closeSession(httpClient, portalBase, session.Data.SessionID)

	records := apiclient.New(upstreamBase, apiclient.WithHTTPClient(httpClient))
	ctx := context.Background()

	comparisons := []comparison{
		compare("departments", session.Data.Departments.Total, session.Data.Departments.Error, func() (int, error) {
			items, err := records.Departments().List(ctx)
			return len(items), err
		}),
		compare("teachers", session.Data.Teachers.Total, session.Data.Teachers.Error, func() (int, error) {
			items, err := records.Professors().List(ctx)
			return len(items), err
		}),
	}

	diffs := printReport(comparisons)
	fmt.Printf("Diffs: %d\n", diffs)
	if diffs > 0 {
		os.Exit(1)
	}
}

func compare(name string, portalCount int, portalErr string, count func() (int, error)) comparison {
	comp := comparison{Name: name, PortalCount: portalCount}
	if portalErr != "" {
		comp.Error = fmt.Errorf("portal: %s", portalErr)
		return comp
	}
	n, err := count()
	if err != nil {
		comp.Error = fmt.Errorf("records api: %w", err)
		return comp
	}
	comp.RecordCount = n
	return comp
}

func openSession(client *http.Client, base string) (*sessionEnvelope, error) {
	url := strings.TrimRight(base, "/") + "/sessions"
	resp, err := client.Post(url, "application/json", bytes.NewReader(nil))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	var env sessionEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

func closeSession(client *http.Client, base, id string) {
	req, err := http.NewRequest(http.MethodDelete, strings.TrimRight(base, "/")+"/sessions/current", nil)
	if err != nil {
		return
	}
	req.Header.Set("X-Session-ID", id)
	if resp, err := client.Do(req); err == nil {
		resp.Body.Close()
	}
}

func printReport(results []comparison) int {
	fmt.Println("Shadow Compare Report")
	fmt.Println("======================")
	diffs := 0
	for _, res := range results {
		status := "OK"
		switch {
		case res.Error != nil:
			status = "ERROR"
			diffs++
		case res.PortalCount != res.RecordCount:
			status = "DIFF"
			diffs++
		}
		fmt.Printf("[%s] %s\n", status, res.Name)
		if res.Error != nil {
			fmt.Printf("  Error: %v\n", res.Error)
			continue
		}
		fmt.Printf("  Portal: %d | Records API: %d\n", res.PortalCount, res.RecordCount)
	}
	return diffs
}
