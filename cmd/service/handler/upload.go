package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"

	v1 "github.com/breeew/aicare-api/internal/logic/v1"
	"github.com/breeew/aicare-api/internal/response"
	"github.com/breeew/aicare-api/pkg/errors"
	"github.com/breeew/aicare-api/pkg/i18n"
)

type UploadAudioResponse struct {
	Message  string `json:"message"`
	FullPath string `json:"full_path"`
	URL      string `json:"url"`
}

func (s *HttpSrv) UploadAudio(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.APIError(c, errors.New("HttpSrv.UploadAudio.FormFile", i18n.ERROR_INVALIDARGUMENT, err))
		return
	}

	f, err := file.Open()
	if err != nil {
		response.APIError(c, errors.New("HttpSrv.UploadAudio.Open", i18n.ERROR_INVALIDARGUMENT, err))
		return
	}
	defer f.Close()

	res, err := v1.NewUploadLogic(c, s.Core).UploadAudio(file.Filename, f)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, UploadAudioResponse{
		Message:  fmt.Sprintf("Audio file %s uploaded successfully!", file.Filename),
		FullPath: res.FullPath,
		URL:      res.URL,
	})
}
