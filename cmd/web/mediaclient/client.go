package mediaclient

import (
	"context"
	"io"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"inkwell/cmd/web/dto"
)

// Client는 첨부 본문 파일을 외부 미디어 호스트(Cloudinary)에 올리는 얇은 클라이언트다.
// 호스트 자체는 이 시스템의 통제 밖이고, 여기서는 업로드/삭제만 감싼다.
// 설정은 CLOUDINARY_URL 환경변수로만 받는다.
type Client struct {
	cld    *cloudinary.Cloudinary
	preset string
}

// NewFromEnv 는 CLOUDINARY_URL 과 CLOUDINARY_UPLOAD_PRESET 환경변수로 클라이언트를 생성한다.
// preset 이 비어 있으면 "ml_default" 를 사용한다.
func NewFromEnv() (*Client, error) {
	cld, err := cloudinary.New()
	if err != nil {
		return nil, err
	}

	preset := os.Getenv("CLOUDINARY_UPLOAD_PRESET")
	if preset == "" {
		preset = "ml_default"
	}
	return &Client{cld: cld, preset: preset}, nil
}

// Upload sends the file and returns its hosted URL and public id.
func (c *Client) Upload(ctx context.Context, file io.Reader, filename string) (dto.UploadResultDTO, error) {
	resp, err := c.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		UploadPreset:     c.preset,
		FilenameOverride: filename,
	})
	if err != nil {
		return dto.UploadResultDTO{}, err
	}
	return dto.UploadResultDTO{
		URL:      resp.SecureURL,
		PublicID: resp.PublicID,
		Bytes:    resp.Bytes,
	}, nil
}

// Delete removes a previously uploaded asset by its public id.
func (c *Client) Delete(ctx context.Context, publicID string) error {
	_, err := c.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	return err
}
