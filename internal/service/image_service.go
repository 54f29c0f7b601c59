package service

import (
	"errors"
	"mime/multipart"
	"movie_discovery/configs"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/kolesa-team/go-webp/encoder"
	"github.com/kolesa-team/go-webp/webp"
)

var (
	ErrImageTooLarge    = errors.New("profile image exceeds size limit")
	ErrInvalidImageType = errors.New("invalid profile image type")
)

type IImageService interface {
	SaveProfileImage(fileHeader *multipart.FileHeader) (string, error)
}

type ImageService struct {
	imageDir string
}

func NewImageService() *ImageService {
	imageDir := configs.GetConfigs().ProfileImageDir
	_ = os.MkdirAll(imageDir, 0755)

	return &ImageService{
		imageDir: imageDir,
	}
}

//------------------------------------------
//------------------------------------------

// SaveProfileImage resizes the upload to 256px width, re-encodes it as
// webp and returns the public url path of the stored file.
func (s *ImageService) SaveProfileImage(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > configs.GetDbConfigs().ProfileFileSizeLimit {
		return "", ErrImageTooLarge
	}

	allowedExts := ".jpg,.jpeg,.png,.webp"
	if limit := configs.GetDbConfigs().ProfileImageExtensionLimit; limit != "" {
		allowedExts = limit
	}
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !strings.Contains(allowedExts, ext) || ext == "" {
		return "", ErrInvalidImageType
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	img, err := imaging.Decode(file, imaging.AutoOrientation(true))
	if err != nil {
		return "", ErrInvalidImageType
	}

	resized := imaging.Resize(img, 256, 0, imaging.Lanczos)

	options, err := encoder.NewLossyEncoderOptions(encoder.PresetDefault, 75)
	if err != nil {
		return "", err
	}

	filename := uuid.NewString() + ".webp"
	out, err := os.Create(filepath.Join(s.imageDir, filename))
	if err != nil {
		return "", err
	}
	defer out.Close()

	if err = webp.Encode(out, resized, options); err != nil {
		return "", err
	}

	return "/profile_images/" + filename, nil
}
