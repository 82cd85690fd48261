package smoketest

import (
	"encoding/base64"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// buildUpload assembles the upload payload, either from a user-provided
// image file or from synthetic bytes unique to this run.
func buildUpload(config *Config) (uploadRequest, error) {
	var (
		content  []byte
		fileName string
		mimeType string
	)

	if config.ImageFile != "" {
		raw, err := os.ReadFile(config.ImageFile)
		if err != nil {
			return uploadRequest{}, fmt.Errorf("failed to read image file: %w", err)
		}
		content = raw
		fileName = filepath.Base(config.ImageFile)
		mimeType = mime.TypeByExtension(filepath.Ext(config.ImageFile))
	} else {
		// The analyzer is content-agnostic, so any unique byte blob works
		// as a stand-in schedule photo.
		content = []byte("captain smoke test image " + uuid.NewString())
		fileName = fmt.Sprintf("smoke_%s.png", uuid.NewString())
		mimeType = "image/png"
	}

	return uploadRequest{
		TeamID:          config.TeamID,
		FileName:        fileName,
		MIMEType:        mimeType,
		FileContent:     base64.StdEncoding.EncodeToString(content),
		FileSize:        int64(len(content)),
		UploadTimestamp: time.Now().UTC().Format(time.RFC3339),
	}, nil
}
