package service

import (
	"context"
	"errors"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"ossu_arabic_backend/internal/config"
	"ossu_arabic_backend/internal/util"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ObjectInfo carries the metadata the media handler turns into response
// headers.
type ObjectInfo struct {
	ContentType string
	Size        int64
	ETag        string
}

// StorageProvider is the blob-store seam: MinIO in deployments, local disk
// as the fallback.
type StorageProvider interface {
	Upload(ctx context.Context, filename string, reader io.Reader, size int64, contentType string, metadata map[string]string) error
	Download(ctx context.Context, filename string) (io.ReadCloser, ObjectInfo, error)
	Delete(ctx context.Context, filename string) error
}

// LocalStorageProvider keeps objects on disk under the configured path.
type LocalStorageProvider struct {
	Config *config.StorageConfig
}

// resolve maps an object name to a path under the storage root. Names whose
// cleaned form would escape the root resolve to not-found.
func (p *LocalStorageProvider) resolve(filename string) (string, error) {
	rel := filepath.Clean(filepath.FromSlash(filename))
	if filepath.IsAbs(rel) || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", util.ErrFileNotFound
	}
	return filepath.Join(p.Config.LocalPath, rel), nil
}

func (p *LocalStorageProvider) Upload(ctx context.Context, filename string, reader io.Reader, size int64, contentType string, metadata map[string]string) error {
	dst, err := p.resolve(filename)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, reader)
	return err
}

func (p *LocalStorageProvider) Download(ctx context.Context, filename string) (io.ReadCloser, ObjectInfo, error) {
	dst, err := p.resolve(filename)
	if err != nil {
		return nil, ObjectInfo{}, err
	}
	f, err := os.Open(dst)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ObjectInfo{}, util.ErrFileNotFound
	}
	if err != nil {
		return nil, ObjectInfo{}, err
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, ObjectInfo{}, err
	}

	contentType := mime.TypeByExtension(filepath.Ext(filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return f, ObjectInfo{ContentType: contentType, Size: stat.Size()}, nil
}

func (p *LocalStorageProvider) Delete(ctx context.Context, filename string) error {
	dst, err := p.resolve(filename)
	if err != nil {
		return err
	}
	return os.Remove(dst)
}

// MinioStorageProvider stores objects in a MinIO bucket.
type MinioStorageProvider struct {
	Config *config.StorageConfig
	Client *minio.Client
}

func NewMinioStorageProvider(cfg *config.StorageConfig) (*MinioStorageProvider, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
		Secure: false,
	})
	if err != nil {
		return nil, err
	}
	return &MinioStorageProvider{Config: cfg, Client: client}, nil
}

func (p *MinioStorageProvider) Upload(ctx context.Context, filename string, reader io.Reader, size int64, contentType string, metadata map[string]string) error {
	_, err := p.Client.PutObject(ctx, p.Config.MinioBucket, filename, reader, size, minio.PutObjectOptions{
		ContentType:  contentType,
		UserMetadata: metadata,
	})
	return err
}

func (p *MinioStorageProvider) Download(ctx context.Context, filename string) (io.ReadCloser, ObjectInfo, error) {
	obj, err := p.Client.GetObject(ctx, p.Config.MinioBucket, filename, minio.GetObjectOptions{})
	if err != nil {
		return nil, ObjectInfo{}, err
	}

	stat, err := obj.Stat()
	if err != nil {
		obj.Close()
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, ObjectInfo{}, util.ErrFileNotFound
		}
		return nil, ObjectInfo{}, err
	}

	return obj, ObjectInfo{
		ContentType: stat.ContentType,
		Size:        stat.Size,
		ETag:        stat.ETag,
	}, nil
}

func (p *MinioStorageProvider) Delete(ctx context.Context, filename string) error {
	return p.Client.RemoveObject(ctx, p.Config.MinioBucket, filename, minio.RemoveObjectOptions{})
}

// StorageService picks the configured provider, falling back to local disk
// when MinIO is unavailable.
type StorageService struct {
	Provider StorageProvider
}

func NewStorageService(cfg *config.Config) *StorageService {
	var provider StorageProvider
	if cfg.Storage.Type == "minio" {
		if p, err := NewMinioStorageProvider(&cfg.Storage); err == nil {
			provider = p
		}
	}
	if provider == nil {
		provider = &LocalStorageProvider{Config: &cfg.Storage}
	}
	return &StorageService{Provider: provider}
}

func (s *StorageService) Upload(ctx context.Context, filename string, reader io.Reader, size int64, contentType string, metadata map[string]string) error {
	return s.Provider.Upload(ctx, filename, reader, size, contentType, metadata)
}

func (s *StorageService) Download(ctx context.Context, filename string) (io.ReadCloser, ObjectInfo, error) {
	return s.Provider.Download(ctx, filename)
}

func (s *StorageService) Delete(ctx context.Context, filename string) error {
	return s.Provider.Delete(ctx, filename)
}
