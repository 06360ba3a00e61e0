package core

import (
	"context"
	"io"
)

type Plugins interface {
	Name() string
	Install(*Core) error
	UseLimiter(key string, method string, defaultRatelimit int) Limiter
	FileUploader() FileStorage
}

type UploadFileMeta struct {
	FullPath string `json:"full_path"`
	Domain   string `json:"domain"`
}

// FileStorage interface defines methods for file operations.
type FileStorage interface {
	GetStaticDomain() string
	SaveFile(ctx context.Context, filePath, fileName string, content io.Reader) (UploadFileMeta, error)
	DeleteFile(ctx context.Context, fullFilePath string) error
	GenGetObjectPreSignURL(ctx context.Context, url string) (string, error)
}

type Limiter interface {
	Allow() bool
}

type SetupFunc func() Plugins

func (c *Core) InstallPlugins(p Plugins) error {
	if err := p.Install(c); err != nil {
		return err
	}
	c.Plugins = p
	return nil
}
