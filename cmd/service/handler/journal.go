package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/breeew/aicare-api/internal/logic/v1"
	"github.com/breeew/aicare-api/internal/response"
	"github.com/breeew/aicare-api/pkg/types"
	"github.com/breeew/aicare-api/pkg/utils"
)

type ListJournalResponse struct {
	Entries []types.JournalEntry `json:"entries"`
}

func (s *HttpSrv) ListJournal(c *gin.Context) {
	response.APISuccess(c, ListJournalResponse{
		Entries: v1.NewJournalLogic(c, s.Core).List(),
	})
}

func (s *HttpSrv) CreateJournal(c *gin.Context) {
	var req types.JournalEntry
	if err := utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	if err := v1.NewJournalLogic(c, s.Core).Add(req); err != nil {
		response.APIError(c, err)
		return
	}
	response.APIStatusOK(c)
}

func (s *HttpSrv) ResetJournal(c *gin.Context) {
	if err := v1.NewJournalLogic(c, s.Core).Reset(); err != nil {
		response.APIError(c, err)
		return
	}
	response.APIStatusOK(c)
}
