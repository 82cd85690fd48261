package smoketest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/okian/captain/pkg/logger"
)

// Run executes the complete smoke test: liveness check, one schedule image
// upload, and verification of the orchestration result.
func Run(ctx context.Context, config *Config) error {
	start := time.Now()

	logger.Get().Info(ctx, "starting captain smoke test",
		logger.String("baseURL", config.BaseURL),
		logger.Int64("teamID", config.TeamID),
		logger.String("imageFile", config.ImageFile),
		logger.String("timeout", config.Timeout.String()),
		logger.Any("verbose", config.Verbose))

	// Step 1: Check service health
	if err := checkServiceHealth(ctx, config); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	// Step 2: Build and submit the upload
	result, err := submitUpload(ctx, config)
	if err != nil {
		return fmt.Errorf("schedule upload failed: %w", err)
	}

	// Step 3: Verify the orchestration arithmetic
	if err := verifyResult(ctx, result); err != nil {
		return fmt.Errorf("result verification failed: %w", err)
	}

	logger.Get().Info(ctx, "smoke test completed successfully",
		logger.String("duration", time.Since(start).String()))
	return nil
}

// checkServiceHealth verifies the coordinator is running and identifies
// itself.
func checkServiceHealth(ctx context.Context, config *Config) error {
	logger.Get().Info(ctx, "checking service health")

	client := newHTTPClient(config.Timeout)
	resp, err := client.Get(ctx, config.BaseURL+"/health")
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}

	body, err := readResponseBody(resp)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("service health check failed with status: %d", resp.StatusCode)
	}

	var health healthResponse
	if err := json.Unmarshal(body, &health); err != nil {
		return fmt.Errorf("unreadable health body: %w", err)
	}
	if health.Status != "healthy" {
		return fmt.Errorf("service reported status %q", health.Status)
	}

	logger.Get().Info(ctx, "service is healthy", logger.String("service", health.Service))
	return nil
}

// submitUpload posts one schedule image through the coordinator's tool
// surface and decodes the orchestration result.
func submitUpload(ctx context.Context, config *Config) (*orchestrationResult, error) {
	upload, err := buildUpload(config)
	if err != nil {
		return nil, err
	}

	logger.Get().Info(ctx, "uploading schedule image",
		logger.String("fileName", upload.FileName),
		logger.Int64("fileSize", upload.FileSize))

	client := newHTTPClient(config.Timeout)
	resp, err := client.Post(ctx, config.BaseURL+"/tools/upload_schedule_image", upload)
	if err != nil {
		return nil, err
	}

	body, err := readResponseBody(resp)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("upload answered status %d: %s", resp.StatusCode, string(body))
	}

	var result orchestrationResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("unreadable orchestration result: %w", err)
	}

	if config.Verbose {
		pretty, err := json.MarshalIndent(result, "", "  ")
		if err == nil {
			fmt.Printf("\n%s\n\n", pretty)
		}
	}

	return &result, nil
}

// verifyResult checks the invariants every orchestration result must hold.
func verifyResult(ctx context.Context, result *orchestrationResult) error {
	logger.Get().Info(ctx, "orchestration result",
		logger.Any("success", result.Success),
		logger.String("message", result.Message),
		logger.Int("eventsFound", result.EventsFound),
		logger.Int("eventsCreated", result.EventsCreated),
		logger.Int("eventsFailed", result.EventsFailed),
		logger.Float64("confidence", result.Confidence))

	if !result.Success {
		return fmt.Errorf("orchestration reported failure: %s", result.Error)
	}
	if result.EventsCreated+result.EventsFailed != result.EventsFound {
		return fmt.Errorf("count mismatch: created %d + failed %d != found %d",
			result.EventsCreated, result.EventsFailed, result.EventsFound)
	}

	logger.Get().Info(ctx, "orchestration counts check out")
	return nil
}
