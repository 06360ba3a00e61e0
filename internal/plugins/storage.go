package plugins

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/breeew/aicare-api/internal/core"
	"github.com/breeew/aicare-api/pkg/object-storage/s3"
)

const (
	STORAGE_DRIVER_NONE  = "none"
	STORAGE_DRIVER_LOCAL = "local"
	STORAGE_DRIVER_S3    = "s3"

	DEFAULT_LOCAL_ROOT = "./data/uploads"
)

type ObjectStorageDriver struct {
	StaticDomain string    `toml:"static_domain"`
	Driver       string    `toml:"driver"` // default: none
	LocalRoot    string    `toml:"local_root"`
	S3           *S3Config `toml:"s3"`
}

func (c *ObjectStorageDriver) FromENV() {
	c.Driver = os.Getenv("AICARE_API_OBJECT_STORAGE_DRIVER")
	c.StaticDomain = os.Getenv("AICARE_API_OBJECT_STORAGE_STATIC_DOMAIN")
	c.LocalRoot = os.Getenv("AICARE_API_OBJECT_STORAGE_LOCAL_ROOT")
	if strings.ToLower(c.Driver) == STORAGE_DRIVER_S3 {
		c.S3 = &S3Config{
			Bucket:    os.Getenv("AICARE_API_OBJECT_STORAGE_S3_BUCKET"),
			Region:    os.Getenv("AICARE_API_OBJECT_STORAGE_S3_REGION"),
			Endpoint:  os.Getenv("AICARE_API_OBJECT_STORAGE_S3_ENDPOINT"),
			AccessKey: os.Getenv("AICARE_API_OBJECT_STORAGE_S3_ACCESS_KEY"),
			SecretKey: os.Getenv("AICARE_API_OBJECT_STORAGE_S3_SECRET_KEY"),
		}
	}
}

type S3Config struct {
	Bucket    string `toml:"bucket"`
	Region    string `toml:"region"`
	Endpoint  string `toml:"endpoint"`
	AccessKey string `toml:"access_key"`
	SecretKey string `toml:"secret_key"`
}

func SetupObjectStorage(cfg ObjectStorageDriver) (core.FileStorage, error) {
	var s core.FileStorage
	switch strings.ToLower(cfg.Driver) {
	case STORAGE_DRIVER_S3:
		s3Cfg := cfg.S3
		if s3Cfg == nil || s3Cfg.Bucket == "" {
			return nil, fmt.Errorf("s3 object storage needs a bucket")
		}
		s = &S3FileStorage{
			StaticDomain: cfg.StaticDomain,
			S3:           s3.NewS3Client(s3Cfg.Endpoint, s3Cfg.Region, s3Cfg.Bucket, s3Cfg.AccessKey, s3Cfg.SecretKey),
		}
	case STORAGE_DRIVER_LOCAL:
		root := cfg.LocalRoot
		if root == "" {
			root = DEFAULT_LOCAL_ROOT
		}
		s = &LocalFileStorage{
			StaticDomain: cfg.StaticDomain,
			Root:         root,
		}
	case "", STORAGE_DRIVER_NONE:
		s = &NoneFileStorage{}
	default:
		return nil, fmt.Errorf("unknown object storage driver %q", cfg.Driver)
	}

	return s, nil
}

var errUnsupported = fmt.Errorf("object storage is not configured")

type NoneFileStorage struct {
}

func (lfs *NoneFileStorage) GetStaticDomain() string {
	return ""
}

func (lfs *NoneFileStorage) GenGetObjectPreSignURL(_ context.Context, url string) (string, error) {
	return "", errUnsupported
}

func (lfs *NoneFileStorage) SaveFile(_ context.Context, filePath, fileName string, content io.Reader) (core.UploadFileMeta, error) {
	return core.UploadFileMeta{}, errUnsupported
}

func (lfs *NoneFileStorage) DeleteFile(_ context.Context, fullFilePath string) error {
	return errUnsupported
}

type LocalFileStorage struct {
	StaticDomain string
	Root         string
}

func (lfs *LocalFileStorage) GetStaticDomain() string {
	return lfs.StaticDomain
}

// SaveFile stores a file under Root on the local file system.
func (lfs *LocalFileStorage) SaveFile(_ context.Context, filePath, fileName string, content io.Reader) (core.UploadFileMeta, error) {
	dir := filepath.Join(lfs.Root, filePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return core.UploadFileMeta{}, fmt.Errorf("failed to create directory: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, fileName))
	if err != nil {
		return core.UploadFileMeta{}, fmt.Errorf("failed to save file: %w", err)
	}
	if _, err = io.Copy(f, content); err != nil {
		f.Close()
		return core.UploadFileMeta{}, fmt.Errorf("failed to save file: %w", err)
	}
	if err = f.Close(); err != nil {
		return core.UploadFileMeta{}, fmt.Errorf("failed to save file: %w", err)
	}

	return core.UploadFileMeta{
		FullPath: filepath.ToSlash(filepath.Join(filePath, fileName)),
		Domain:   lfs.StaticDomain,
	}, nil
}

// DeleteFile deletes a file saved by SaveFile, fullFilePath is relative to Root.
func (lfs *LocalFileStorage) DeleteFile(_ context.Context, fullFilePath string) error {
	if err := os.Remove(filepath.Join(lfs.Root, fullFilePath)); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (lfs *LocalFileStorage) GenGetObjectPreSignURL(_ context.Context, url string) (string, error) {
	return url, nil
}

type S3FileStorage struct {
	StaticDomain string
	*s3.S3
}

func (fs *S3FileStorage) GetStaticDomain() string {
	return fs.StaticDomain
}

func (fs *S3FileStorage) SaveFile(ctx context.Context, filePath, fileName string, content io.Reader) (core.UploadFileMeta, error) {
	if err := fs.Upload(ctx, filePath, fileName, content); err != nil {
		return core.UploadFileMeta{}, err
	}
	return core.UploadFileMeta{
		FullPath: s3.Key(filePath, fileName),
		Domain:   fs.StaticDomain,
	}, nil
}

func (fs *S3FileStorage) DeleteFile(ctx context.Context, fullFilePath string) error {
	return fs.Delete(ctx, fullFilePath)
}

func (fs *S3FileStorage) GenGetObjectPreSignURL(ctx context.Context, url string) (string, error) {
	return fs.S3.GenGetObjectPreSignURL(ctx, strings.TrimPrefix(url, fs.GetStaticDomain()))
}
