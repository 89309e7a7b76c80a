package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/apex/log/handlers/text"
	"github.com/bytedance/sonic"
)

var imageExts = map[string]bool{".jpg": true, ".jpeg": true}

func main() {
	var (
		endpoint = flag.String("endpoint", "http://localhost:8080/analyze", "analyze endpoint")
		dataDir  = flag.String("data", filepath.Join(".", "data", "jpg"), "directory with jpeg images")
		prompt   = flag.String("prompt", "", "question sent with every image")
		timeout  = flag.Duration("timeout", 2*time.Minute, "per request timeout")
	)
	flag.Parse()

	log.SetHandler(text.New(os.Stderr))

	images, err := os.ReadDir(*dataDir)
	if err != nil {
		log.WithError(err).Fatal("read data dir")
	}

	client := &http.Client{Timeout: *timeout}
	ctx := context.Background()

	var results []BenchResult
	for _, image := range images {
		if image.IsDir() || !imageExts[strings.ToLower(filepath.Ext(image.Name()))] {
			continue
		}

		res := benchmarkImage(ctx, client, *endpoint, filepath.Join(*dataDir, image.Name()), *prompt)
		if res.Err != nil {
			log.WithError(res.Err).WithField("file", res.File).Error("request failed")
		} else {
			log.WithField("file", res.File).WithDuration(res.Duration).Info("ok")
		}
		results = append(results, res)
	}

	fmt.Print(renderMarkdown(results))
}

func benchmarkImage(ctx context.Context, client *http.Client, endpoint, filePath, prompt string) BenchResult {
	start := time.Now()

	raw, err := os.ReadFile(filePath)
	if err != nil {
		return BenchResult{File: filepath.Base(filePath), Err: err}
	}

	answer, err := analyze(ctx, client, endpoint, AnalyzeRequest{
		Image: base64.StdEncoding.EncodeToString(raw),
		Text:  prompt,
	})

	return BenchResult{
		File:     filepath.Base(filePath),
		Duration: time.Since(start),
		Chars:    len(answer),
		Err:      err,
		Size:     int64(len(raw)),
	}
}

func analyze(ctx context.Context, client *http.Client, endpoint string, req AnalyzeRequest) (string, error) {
	body, err := sonic.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("marshal req: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var out AnalyzeResponse
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("bad status %d: %s", resp.StatusCode, out.Error)
	}
	return out.Response, nil
}

func aggregate(results []BenchResult) Agg {
	var a Agg
	for _, r := range results {
		if r.Err != nil {
			a.Failed++
			continue
		}
		a.Count++
		a.TotalBytes += r.Size
		a.Total += r.Duration
	}
	return a
}

func renderMarkdown(results []BenchResult) string {
	var b strings.Builder
	b.WriteString("\n## Benchmark Results\n\n")
	b.WriteString("| Requests | Failed | Avg Time | Total Time | Avg Image Size |\n")
	b.WriteString("|----------|--------|----------|------------|----------------|\n")

	a := aggregate(results)
	if a.Count == 0 {
		fmt.Fprintf(&b, "| 0 | %d | - | - | - |\n", a.Failed)
		return b.String()
	}

	avg := a.Total / time.Duration(a.Count)
	avgSize := a.TotalBytes / int64(a.Count)
	fmt.Fprintf(&b, "| %d | %d | %v | %v | %s |\n",
		a.Count,
		a.Failed,
		avg.Round(time.Millisecond),
		a.Total.Round(time.Millisecond),
		humanBytes(avgSize),
	)
	return b.String()
}

func humanBytes(size int64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
	)
	switch {
	case size >= GB:
		return fmt.Sprintf("%.2f GB", float64(size)/GB)
	case size >= MB:
		return fmt.Sprintf("%.2f MB", float64(size)/MB)
	case size >= KB:
		return fmt.Sprintf("%.2f KB", float64(size)/KB)
	default:
		return fmt.Sprintf("%d B", size)
	}
}
