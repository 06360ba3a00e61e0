package v1

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/breeew/aicare-api/internal/core"
	"github.com/breeew/aicare-api/pkg/errors"
	"github.com/breeew/aicare-api/pkg/i18n"
	"github.com/breeew/aicare-api/pkg/utils"
)

var AllowedAudioExt = []string{".wav", ".mp3", ".m4a"}

type UploadLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewUploadLogic(ctx context.Context, core *core.Core) *UploadLogic {
	return &UploadLogic{
		ctx:  ctx,
		core: core,
	}
}

type AudioUpload struct {
	FullPath string
	URL      string
}

// UploadAudio stores the file and returns a url it can be read from. When no url can be
// issued the stored object is removed again.
func (l *UploadLogic) UploadAudio(fileName string, content io.Reader) (*AudioUpload, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	if !lo.Contains(AllowedAudioExt, ext) {
		return nil, errors.New("UploadLogic.UploadAudio.ext", i18n.ERROR_INVALIDARGUMENT, fmt.Errorf("unsupported audio file %q, expected one of %s", fileName, strings.Join(AllowedAudioExt, ", ")))
	}

	storage := l.core.Plugins.FileUploader()
	meta, err := storage.SaveFile(l.ctx, genAudioFilePath(), utils.HashFileName(utils.GenSpecIDStr()+"_"+fileName), content)
	if err != nil {
		return nil, errors.New("UploadLogic.UploadAudio.FileUploader.SaveFile", i18n.ERROR_STORAGE, err)
	}

	url, err := storage.GenGetObjectPreSignURL(l.ctx, objectURL(storage.GetStaticDomain(), meta.FullPath))
	if err != nil {
		if delErr := storage.DeleteFile(l.ctx, meta.FullPath); delErr != nil {
			slog.Error("failed to remove uploaded audio without url",
				slog.String("full_path", meta.FullPath),
				slog.String("error", delErr.Error()))
		}
		return nil, errors.New("UploadLogic.UploadAudio.FileUploader.GenGetObjectPreSignURL", i18n.ERROR_STORAGE, err)
	}

	return &AudioUpload{
		FullPath: meta.FullPath,
		URL:      url,
	}, nil
}

func objectURL(domain, fullPath string) string {
	if domain == "" {
		return fullPath
	}
	return strings.TrimSuffix(domain, "/") + "/" + strings.TrimPrefix(fullPath, "/")
}

func genAudioFilePath() string {
	return filepath.Join("audio", time.Now().Format("20060102"))
}
