package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/breeew/aicare-api/internal/logic/v1"
	"github.com/breeew/aicare-api/internal/response"
	"github.com/breeew/aicare-api/pkg/utils"
)

type TextRequest struct {
	Text string `json:"text" form:"text" binding:"required"`
}

func (s *HttpSrv) SendText(c *gin.Context) {
	var req TextRequest
	if err := utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	if err := v1.NewPatientLogic(c, s.Core).SubmitText(req.Text); err != nil {
		response.APIError(c, err)
		return
	}
	response.APIStatusOK(c)
}

func (s *HttpSrv) Reset(c *gin.Context) {
	if err := v1.NewPatientLogic(c, s.Core).Reset(); err != nil {
		response.APIError(c, err)
		return
	}
	response.APIStatusOK(c)
}

// SummaryAndQuestions reads text from the query string on GET and from the body on POST.
func (s *HttpSrv) SummaryAndQuestions(c *gin.Context) {
	var req TextRequest
	if err := utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	res, err := v1.NewPatientLogic(c, s.Core).SummaryAndQuestions(req.Text)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, res)
}

func (s *HttpSrv) AddPatientData(c *gin.Context) {
	var req TextRequest
	if err := utils.BindArgsWithGin(c, &req); err != nil {
		response.APIErrorDetail(c, err)
		return
	}

	if err := v1.NewPatientLogic(c, s.Core).AddPatientData(req.Text); err != nil {
		response.APIErrorDetail(c, err)
		return
	}
	response.APIStatusOK(c)
}
