package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateUpload(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		filename    string
		contentType string
		size        int64
		wantErr     error
	}{
		{
			name:        "valid jpeg",
			filename:    "beach.jpg",
			contentType: "image/jpeg",
			size:        2 * 1024 * 1024,
		},
		{
			name:        "valid png at the limit",
			filename:    "map.png",
			contentType: "image/png",
			size:        MaxUploadSize,
		},
		{
			name:    "missing file",
			size:    0,
			wantErr: ErrNoFile,
		},
		{
			name:        "pdf rejected",
			filename:    "brochure.pdf",
			contentType: "application/pdf",
			size:        1024,
			wantErr:     ErrNotAnImage,
		},
		{
			name:        "oversized image rejected",
			filename:    "panorama.jpg",
			contentType: "image/jpeg",
			size:        12 * 1024 * 1024,
			wantErr:     ErrFileTooLarge,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateUpload(tt.filename, tt.contentType, tt.size)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
