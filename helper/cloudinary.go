package helper

import (
	"context"
	"errors"
	"io"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"coworking_market/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type UploadSignature struct {
	Signature string `json:"signature"`
	Timestamp int64  `json:"timestamp"`
	APIKey    string `json:"apiKey"`
	CloudName string `json:"cloudName"`
	Folder    string `json:"folder"`
}

type MediaUploader struct {
	cld       *cloudinary.Cloudinary
	cloudName string
	apiKey    string
	apiSecret string
}

func InitCloudinary(settings config.Settings) (*MediaUploader, error) {
	if settings.CloudinaryCloudName == "" {
		return nil, errors.New("cloudinary is not configured")
	}
	cld, err := cloudinary.NewFromParams(
		settings.CloudinaryCloudName,
		settings.CloudinaryAPIKey,
		settings.CloudinaryAPISecret,
	)
	if err != nil {
		return nil, err
	}
	return &MediaUploader{
		cld:       cld,
		cloudName: settings.CloudinaryCloudName,
		apiKey:    settings.CloudinaryAPIKey,
		apiSecret: settings.CloudinaryAPISecret,
	}, nil
}

func (m *MediaUploader) UploadImage(ctx context.Context, file io.Reader, folder, publicID string) (string, error) {
	res, err := m.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:       folder,
		PublicID:     publicID,
		ResourceType: "image",
	})
	if err != nil {
		return "", err
	}
	if res.Error.Message != "" {
		return "", errors.New(res.Error.Message)
	}
	return res.SecureURL, nil
}

// Sign returns the parameters a browser needs for a direct signed upload.
func (m *MediaUploader) Sign(folder string, now time.Time) (*UploadSignature, error) {
	ts := now.Unix()
	params := url.Values{}
	params.Set("folder", folder)
	params.Set("timestamp", strconv.FormatInt(ts, 10))

	signature, err := api.SignParameters(params, m.apiSecret)
	if err != nil {
		return nil, err
	}
	return &UploadSignature{
		Signature: signature,
		Timestamp: ts,
		APIKey:    m.apiKey,
		CloudName: m.cloudName,
		Folder:    folder,
	}, nil
}

// Destroy removes an uploaded asset by its delivery URL. Unknown URLs are ignored.
func (m *MediaUploader) Destroy(ctx context.Context, assetURL string) error {
	publicID := ExtractPublicID(assetURL)
	if publicID == "" {
		return nil
	}
	res, err := m.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return err
	}
	if res.Error.Message != "" {
		return errors.New(res.Error.Message)
	}
	return nil
}

// ExtractPublicID turns
// https://res.cloudinary.com/<cloud>/image/upload/v171/<folder>/<id>.<ext>
// into <folder>/<id>.
func ExtractPublicID(assetURL string) string {
	_, rest, ok := strings.Cut(assetURL, "/upload/")
	if !ok || rest == "" {
		return ""
	}
	parts := strings.Split(rest, "/")
	if len(parts) > 1 && len(parts[0]) > 1 && parts[0][0] == 'v' {
		if _, err := strconv.ParseInt(parts[0][1:], 10, 64); err == nil {
			parts = parts[1:]
		}
	}
	publicID := strings.Join(parts, "/")
	return strings.TrimSuffix(publicID, path.Ext(publicID))
}
