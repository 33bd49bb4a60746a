package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"
)

// BookingRequest is the POST /bookings payload
type BookingRequest struct {
	SlotID        string `json:"slot_id"`
	VehicleNumber string `json:"vehicle_number"`
	VehicleType   string `json:"vehicle_type"`
}

// RequestResult contains metrics for a single request
type RequestResult struct {
	StatusCode   int
	ResponseTime time.Duration
	Err          error
}

// RunStats aggregates results across all workers
type RunStats struct {
	Total         int
	Created       int
	Conflicts     int
	Failed        int
	TotalTime     time.Duration
	ResponseTimes []time.Duration
	StatusCounts  map[int]int
	ErrorCounts   map[string]int
	Lock          sync.Mutex
}

var vehicleTypes = []string{"sedan", "suv", "hatchback", "van"}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of booking attempts")
	userIDsStr := flag.String("users", "", "Comma-separated user IDs to act as")
	slotIDsStr := flag.String("slots", "", "Comma-separated slot IDs to contend for")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	flag.Parse()

	userIDs := splitIDs(*userIDsStr)
	slotIDs := splitIDs(*slotIDsStr)
	if len(userIDs) == 0 || len(slotIDs) == 0 {
		fmt.Println("Both -users and -slots are required; register users and create slots first")
		return
	}

	fmt.Printf("Load testing bookings across %d users and %d slots\n", len(userIDs), len(slotIDs))
	fmt.Printf("Concurrency: %d goroutines, total requests: %d, delay: %d ms\n",
		*concurrency, *totalRequests, *delayMs)

	stats := &RunStats{
		Total:         *totalRequests,
		ResponseTimes: make([]time.Duration, 0, *totalRequests),
		StatusCounts:  make(map[int]int),
		ErrorCounts:   make(map[string]int),
	}

	jobs := make(chan int, *totalRequests)
	results := make(chan RequestResult, *totalRequests)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			worker(workerID, *baseURL, *delayMs, userIDs, slotIDs, jobs, results)
		}(i)
	}

	go func() {
		for i := 0; i < *totalRequests; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for result := range results {
			stats.Lock.Lock()
			stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
			stats.StatusCounts[result.StatusCode]++
			switch {
			case result.Err != nil:
				stats.Failed++
				stats.ErrorCounts[result.Err.Error()]++
			case result.StatusCode == http.StatusCreated:
				stats.Created++
			case result.StatusCode == http.StatusConflict:
				stats.Conflicts++
			default:
				stats.Failed++
			}
			stats.Lock.Unlock()
		}
	}()

	startTime := time.Now()
	wg.Wait()
	close(results)
	<-done
	stats.TotalTime = time.Since(startTime)

	printResults(stats)
}

func splitIDs(s string) []string {
	var ids []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			ids = append(ids, trimmed)
		}
	}
	return ids
}

func worker(id int, baseURL string, delayMs int, userIDs, slotIDs []string,
	jobs <-chan int, results chan<- RequestResult) {

	client := &http.Client{Timeout: 10 * time.Second}

	for jobID := range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		userID := userIDs[rand.Intn(len(userIDs))]
		slotID := slotIDs[rand.Intn(len(slotIDs))]

		payload := BookingRequest{
			SlotID:        slotID,
			VehicleNumber: fmt.Sprintf("LT-%02d-%04d", id, jobID),
			VehicleType:   vehicleTypes[rand.Intn(len(vehicleTypes))],
		}

		jsonData, err := json.Marshal(payload)
		if err != nil {
			results <- RequestResult{Err: err}
			continue
		}

		req, err := http.NewRequest(http.MethodPost, baseURL+"/bookings", bytes.NewBuffer(jsonData))
		if err != nil {
			results <- RequestResult{Err: err}
			continue
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", userID)

		startTime := time.Now()
		resp, err := client.Do(req)
		responseTime := time.Since(startTime)

		result := RequestResult{ResponseTime: responseTime}
		if err != nil {
			result.Err = err
		} else {
			result.StatusCode = resp.StatusCode
			resp.Body.Close()
		}

		results <- result
	}
}

func printResults(stats *RunStats) {
	tps := float64(stats.Total) / stats.TotalTime.Seconds()

	var totalResponseTime time.Duration
	for _, rt := range stats.ResponseTimes {
		totalResponseTime += rt
	}
	var avgResponseTime time.Duration
	if len(stats.ResponseTimes) > 0 {
		avgResponseTime = totalResponseTime / time.Duration(len(stats.ResponseTimes))
	}

	var p50, p95, p99 time.Duration
	if len(stats.ResponseTimes) > 0 {
		sorted := make([]time.Duration, len(stats.ResponseTimes))
		copy(sorted, stats.ResponseTimes)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
		p50 = sorted[len(sorted)*50/100]
		p95 = sorted[len(sorted)*95/100]
		p99 = sorted[len(sorted)*99/100]
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:   %d in %.2f seconds (%.2f req/s)\n",
		stats.Total, stats.TotalTime.Seconds(), tps)
	fmt.Printf("Bookings Created: %d (%.1f%%)\n", stats.Created,
		float64(stats.Created)/float64(stats.Total)*100)
	fmt.Printf("Slot Conflicts:   %d (%.1f%%)\n", stats.Conflicts,
		float64(stats.Conflicts)/float64(stats.Total)*100)
	fmt.Printf("Failures:         %d (%.1f%%)\n", stats.Failed,
		float64(stats.Failed)/float64(stats.Total)*100)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average: %v  P50: %v  P95: %v  P99: %v\n", avgResponseTime, p50, p95, p99)

	fmt.Println("\n----------------- STATUS CODES -----------------")
	for code, count := range stats.StatusCounts {
		if count > 0 {
			fmt.Printf("HTTP %d: %d\n", code, count)
		}
	}

	if len(stats.ErrorCounts) > 0 {
		fmt.Println("\n----------------- ERRORS -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d\n", errMsg, count)
		}
	}
	fmt.Println("================================================")
}
