package utils

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/abadojack/whatlanggo"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/holdno/snowFlakeByGo"

	"github.com/breeew/aicare-api/pkg/errors"
	"github.com/breeew/aicare-api/pkg/i18n"
)

var (
	// idWorker 全局唯一id生成器实例
	idWorker     *snowFlakeByGo.Worker
	idWorkerOnce sync.Once
)

func SetupIDWorker(clusterID int64) {
	idWorkerOnce.Do(func() {
		idWorker, _ = snowFlakeByGo.NewWorker(clusterID)
	})
}

func GenSpecID() int64 {
	SetupIDWorker(1)
	return idWorker.GetId()
}

func GenSpecIDStr() string {
	return strconv.FormatInt(GenSpecID(), 10)
}

func MD5(s string) string {
	md5Ctx := md5.New()
	md5Ctx.Write([]byte(s))
	cipherStr := md5Ctx.Sum(nil)

	return hex.EncodeToString(cipherStr)
}

func BindArgsWithGin(c *gin.Context, req interface{}) error {
	err := c.ShouldBindWith(req, binding.Default(c.Request.Method, c.ContentType()))
	if err != nil {
		return errors.New(fmt.Sprintf("Gin.ShouldBindWith.%s.%s", c.Request.Method, c.Request.URL.Path), i18n.ERROR_INVALIDARGUMENT, err).Code(http.StatusBadRequest)
	}
	return nil
}

// HashFileName keeps the extension and replaces the rest with its md5.
func HashFileName(fileName string) string {
	result := strings.Split(fileName, ".")
	var suffix string
	if len(result) > 1 {
		suffix = "." + result[len(result)-1]
		fileName = strings.TrimSuffix(fileName, suffix)
	}

	return MD5(fileName) + suffix
}

type Lang struct {
	Code string
	Name string
}

var DefaultLang = Lang{Code: "eng", Name: "English"}

// DetectLang guesses the language of text, empty Code when detection is unreliable.
func DetectLang(text string) Lang {
	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return Lang{}
	}
	return Lang{
		Code: info.Lang.Iso6393(),
		Name: info.Lang.String(),
	}
}
