package minimaxspeech

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// FileService uploads audio files for voice cloning.
type FileService struct {
	client *Client
}

// newFileService creates a new file service.
func newFileService(client *Client) *FileService {
	return &FileService{client: client}
}

// Upload sends a local audio file to the service and returns its record.
// An empty purpose defaults to voice cloning. The returned FileID is what
// VoiceCloneRequest refers to. A missing path is reported as a
// *NotFoundError without touching the network.
func (s *FileService) Upload(ctx context.Context, path string, purpose FilePurpose) (*FileInfo, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return s.UploadReader(ctx, f, filepath.Base(path), purpose)
}

// UploadReader streams file content from r under the given filename. Use
// this when the audio does not live on disk.
func (s *FileService) UploadReader(ctx context.Context, r io.Reader, filename string, purpose FilePurpose) (*FileInfo, error) {
	if purpose == "" {
		purpose = FilePurposeVoiceClone
	}

	slog.Debug("minimax: upload file", "filename", filename, "purpose", purpose)

	fields := map[string]string{
		"purpose": string(purpose),
	}

	var resp FileUploadResponse
	u := s.client.http.endpointURL(endpointFileUpload, true)
	if err := s.client.http.upload(ctx, "upload file", u, r, filename, fields, &resp); err != nil {
		return nil, err
	}

	slog.Debug("minimax: upload done", "file_id", resp.File.FileID, "bytes", resp.File.Bytes)

	return &resp.File, nil
}
